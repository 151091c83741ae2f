package sheet

import (
	"fmt"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/sheet-engine/internal/document"
	"github.com/KirkDiggler/sheet-engine/internal/domain/rulebook/dnd35"
)

// Rule pushes a freshly resolved ability into one family of derived fields.
// Rules are independent: each silently skips when its input ability or its
// target structure is absent, so a sheet with strength data but no dexterity
// data still gets a successful partial update.
type Rule func(doc *document.Document, abilities AbilitySet, tracker *Tracker)

// Rules is the fixed propagation order. Weapon rules run after their generic
// attack rule so the mirrored totals are already fresh.
var Rules = []Rule{
	propagateCapacity,
	propagateMeleeAttacks,
	propagateMeleeWeapons,
	propagateRangedAttacks,
	propagateRangedWeapons,
	propagateInitiative,
	propagateDexterityDefense,
	propagateSkills,
}

// Apply resolves every ability, then runs every propagation rule, and
// reports whether anything in the document changed. Ability resolution
// completes before any rule reads a modifier.
func Apply(doc *document.Document) bool {
	tracker := &Tracker{}
	abilities := ResolveAbilities(doc, tracker)
	for _, rule := range Rules {
		rule(doc, abilities, tracker)
	}
	return tracker.Changed()
}

func propagateCapacity(doc *document.Document, abilities AbilitySet, tracker *Tracker) {
	str, ok := abilities[dnd35.AbbrevStrength]
	if !ok {
		return
	}
	capacity := doc.Lookup("character.movement.capacity")
	if capacity == nil || capacity.Kind != yaml.MappingNode {
		return
	}
	limits := dnd35.CapacityFor(str.Score)
	setWeight(capacity, "light", limits.Light, tracker)
	setWeight(capacity, "medium", limits.Medium, tracker)
	setWeight(capacity, "heavy", limits.Heavy, tracker)
	setWeight(capacity, "lift", limits.Lift, tracker)
	setWeight(capacity, "drag", limits.Drag, tracker)
}

func setWeight(capacity *yaml.Node, key string, pounds int, tracker *Tracker) {
	text := strconv.Itoa(pounds) + " lbs"
	if node := document.Key(capacity, key); node != nil {
		tracker.Record(document.SetString(node, text))
		return
	}
	document.SetKey(capacity, key, document.StringNode(text))
	tracker.Record(true)
}

func propagateMeleeAttacks(doc *document.Document, abilities AbilitySet, tracker *Tracker) {
	str, ok := abilities[dnd35.AbbrevStrength]
	if !ok {
		return
	}
	refreshStat(doc.Lookup("character.combat.attack.melee"), dnd35.AbbrevStrength, str.Modifier, false, tracker)
	refreshStat(doc.Lookup("character.combat.attack.grapple"), dnd35.AbbrevStrength, str.Modifier, false, tracker)
}

func propagateRangedAttacks(doc *document.Document, abilities AbilitySet, tracker *Tracker) {
	dex, ok := abilities[dnd35.AbbrevDexterity]
	if !ok {
		return
	}
	refreshStat(doc.Lookup("character.combat.attack.ranged"), dnd35.AbbrevDexterity, dex.Modifier, false, tracker)
}

func propagateInitiative(doc *document.Document, abilities AbilitySet, tracker *Tracker) {
	dex, ok := abilities[dnd35.AbbrevDexterity]
	if !ok {
		return
	}
	refreshStat(doc.Lookup("character.combat.initiative"), dnd35.AbbrevDexterity, dex.Modifier, false, tracker)
}

// propagateDexterityDefense refreshes saves and defense entries that already
// carry a dex contribution.
func propagateDexterityDefense(doc *document.Document, abilities AbilitySet, tracker *Tracker) {
	dex, ok := abilities[dnd35.AbbrevDexterity]
	if !ok {
		return
	}
	for _, group := range []string{"character.combat.saves", "character.combat.defense"} {
		for _, e := range document.Entries(doc.Lookup(group)) {
			refreshStat(e.Value, dnd35.AbbrevDexterity, dex.Modifier, false, tracker)
		}
	}
}

// propagateSkills refreshes skills keyed by an ability abbreviation. The
// fixed strength-based skills get a str contribution added when missing;
// every other combination only updates a key already present.
func propagateSkills(doc *document.Document, abilities AbilitySet, tracker *Tracker) {
	skills := doc.Lookup("character.skills")
	if skills == nil {
		return
	}
	str, hasStr := abilities[dnd35.AbbrevStrength]
	dex, hasDex := abilities[dnd35.AbbrevDexterity]
	for _, e := range document.Entries(skills) {
		if hasStr {
			refreshStat(e.Value, dnd35.AbbrevStrength, str.Modifier, dnd35.IsStrengthSkill(e.Key.Value), tracker)
		}
		if hasDex {
			refreshStat(e.Value, dnd35.AbbrevDexterity, dex.Modifier, false, tracker)
		}
	}
}

func propagateMeleeWeapons(doc *document.Document, abilities AbilitySet, tracker *Tracker) {
	str, ok := abilities[dnd35.AbbrevStrength]
	if !ok {
		return
	}
	refreshWeapons(doc, "melee", dnd35.AbbrevStrength, str.Modifier, true, tracker)
}

func propagateRangedWeapons(doc *document.Document, abilities AbilitySet, tracker *Tracker) {
	dex, ok := abilities[dnd35.AbbrevDexterity]
	if !ok {
		return
	}
	// Bows don't add dexterity to damage, so the damage string stays as-is.
	refreshWeapons(doc, "ranged", dnd35.AbbrevDexterity, dex.Modifier, false, tracker)
}

// refreshWeapons updates every named weapon in a group: the "_" breakdown
// entry mirrors the group's generic attack total, the ability map mirrors
// the modifier, the attack bonus is re-summed, and for melee weapons the
// damage string's trailing modifier term tracks the ability modifier.
func refreshWeapons(doc *document.Document, group, abbrev string, modifier int, damage bool, tracker *Tracker) {
	weapons := doc.Lookup("character.combat.weapons." + group)
	if weapons == nil {
		return
	}

	genericTotal, genericOK := 0, false
	if stat, ok := decodeStat(doc.Lookup("character.combat.attack." + group)); ok {
		genericTotal, genericOK = document.IntValue(stat.total)
	}

	for _, e := range document.Entries(weapons) {
		w, ok := decodeWeapon(e.Value)
		if !ok {
			continue
		}
		if genericOK {
			if mirror := document.Key(w.breakdown, "_"); mirror != nil {
				tracker.Record(document.SetInt(mirror, genericTotal))
			}
		}
		if w.abilityMap != nil {
			if m := document.Key(w.abilityMap, abbrev); m != nil {
				tracker.Record(document.SetInt(m, modifier))
			}
		}
		if total, ok := sumValues(w.breakdown); ok {
			tracker.Record(document.SetInt(w.attack, total))
		}
		if damage {
			tracker.Record(retagDamage(w.damage, modifier))
		}
	}
}

// refreshStat overwrites the ability contribution of a [total, contributions]
// entry and recomputes the total as the sum of all contributions. With
// require set, a missing contribution key is added first; without it, an
// entry lacking the key is left alone entirely.
func refreshStat(entry *yaml.Node, abbrev string, modifier int, require bool, tracker *Tracker) {
	stat, ok := decodeStat(entry)
	if !ok {
		return
	}
	contribution := document.Key(stat.contributions, abbrev)
	if contribution == nil {
		if !require {
			return
		}
		document.SetKey(stat.contributions, abbrev, document.IntNode(modifier))
		tracker.Record(true)
	} else {
		tracker.Record(document.SetInt(contribution, modifier))
	}
	total, _ := sumValues(stat.contributions)
	tracker.Record(document.SetInt(stat.total, total))
}

var damageModifier = regexp.MustCompile(`[+-]\d+$`)

// retagDamage keeps the trailing +n/-n term of a damage string in step with
// the ability modifier. A zero modifier drops the term.
func retagDamage(n *yaml.Node, modifier int) bool {
	s, ok := document.StringValue(n)
	if !ok {
		return false
	}
	base := damageModifier.ReplaceAllString(s, "")
	next := base
	if modifier != 0 {
		next = fmt.Sprintf("%s%+d", base, modifier)
	}
	return document.SetString(n, next)
}
