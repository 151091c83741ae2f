package document

import "strings"

// StylePolicy is an ordered list of dotted path patterns naming the nodes
// that render in compact flow form. A "*" segment matches any single mapping
// key or sequence index. The policy is injected into Render rather than
// baked in so formatting can be tested and swapped in isolation.
type StylePolicy struct {
	patterns [][]string
}

// NewStylePolicy compiles dotted path patterns into a policy.
func NewStylePolicy(patterns []string) *StylePolicy {
	compiled := make([][]string, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, strings.Split(p, "."))
	}
	return &StylePolicy{patterns: compiled}
}

// DefaultStylePolicy covers the sections of a sheet a human editor keeps on
// one line: per-ability entries, skills, saves, attacks, weapons, and the
// carrying capacity table.
func DefaultStylePolicy() *StylePolicy {
	return NewStylePolicy([]string{
		"character.abilities.*",
		"character.skills.*",
		"character.combat.initiative",
		"character.combat.saves.*",
		"character.combat.attack.*",
		"character.combat.defense.*",
		"character.combat.weapons.*.*",
		"character.movement.capacity",
	})
}

// Inline reports whether the node at path renders in flow form.
func (p *StylePolicy) Inline(path []string) bool {
	if p == nil {
		return false
	}
	for _, pattern := range p.patterns {
		if matchPath(pattern, path) {
			return true
		}
	}
	return false
}

func matchPath(pattern, path []string) bool {
	if len(pattern) != len(path) {
		return false
	}
	for i, seg := range pattern {
		if seg != "*" && seg != path[i] {
			return false
		}
	}
	return true
}
