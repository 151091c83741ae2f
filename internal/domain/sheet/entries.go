package sheet

import (
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/sheet-engine/internal/document"
)

// The sheet format stores its entries as heterogeneous tuples. Decoding them
// into typed views up front replaces manual length checks at every use site;
// each view names its optional trailing fields explicitly.

// abilityEntry is the decoded [score, modifierBag, components?] tuple. The
// bag is a single-key mapping whose key names the ability abbreviation.
type abilityEntry struct {
	score      *yaml.Node
	bagKey     *yaml.Node
	bagValue   *yaml.Node
	components *yaml.Node // nil when the score is authoritative
}

func decodeAbility(n *yaml.Node) (abilityEntry, bool) {
	if n == nil || n.Kind != yaml.SequenceNode || len(n.Content) < 2 {
		return abilityEntry{}, false
	}
	bag := document.Entries(n.Content[1])
	if len(bag) != 1 {
		return abilityEntry{}, false
	}
	entry := abilityEntry{
		score:    n.Content[0],
		bagKey:   bag[0].Key,
		bagValue: bag[0].Value,
	}
	if len(n.Content) >= 3 && n.Content[2].Kind == yaml.MappingNode {
		entry.components = n.Content[2]
	}
	return entry, true
}

// statEntry is the decoded [total, contributions] tuple used by saves,
// initiative, generic attacks, and skills.
type statEntry struct {
	total         *yaml.Node
	contributions *yaml.Node
}

func decodeStat(n *yaml.Node) (statEntry, bool) {
	if n == nil || n.Kind != yaml.SequenceNode || len(n.Content) < 2 {
		return statEntry{}, false
	}
	if n.Content[0].Kind != yaml.ScalarNode || n.Content[1].Kind != yaml.MappingNode {
		return statEntry{}, false
	}
	return statEntry{total: n.Content[0], contributions: n.Content[1]}, true
}

// weaponEntry is the decoded
// [attackBonus, damage, crit, bonusBreakdown, abilityMap?, ...flags] tuple.
// Trailing flags are left untouched by the engine.
type weaponEntry struct {
	attack     *yaml.Node
	damage     *yaml.Node
	crit       *yaml.Node
	breakdown  *yaml.Node
	abilityMap *yaml.Node // nil when the weapon carries no ability mirror
}

func decodeWeapon(n *yaml.Node) (weaponEntry, bool) {
	if n == nil || n.Kind != yaml.SequenceNode || len(n.Content) < 4 {
		return weaponEntry{}, false
	}
	if n.Content[3].Kind != yaml.MappingNode {
		return weaponEntry{}, false
	}
	entry := weaponEntry{
		attack:    n.Content[0],
		damage:    n.Content[1],
		crit:      n.Content[2],
		breakdown: n.Content[3],
	}
	if len(n.Content) >= 5 && n.Content[4].Kind == yaml.MappingNode {
		entry.abilityMap = n.Content[4]
	}
	return entry, true
}

// sumValues adds up the integer values of a mapping, skipping anything
// non-numeric. ok is false when the node is not a mapping.
func sumValues(mapping *yaml.Node) (int, bool) {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return 0, false
	}
	sum := 0
	for _, e := range document.Entries(mapping) {
		if v, ok := document.IntValue(e.Value); ok {
			sum += v
		}
	}
	return sum, true
}
