package sheet

import (
	"github.com/KirkDiggler/sheet-engine/internal/document"
	"github.com/KirkDiggler/sheet-engine/internal/domain/rulebook/dnd35"
)

// Ability is a resolved ability: its recomputed score and modifier.
type Ability struct {
	Score    int
	Modifier int
}

// AbilitySet maps modifier-bag abbreviations (str, dex, ...) to resolved
// abilities.
type AbilitySet map[string]Ability

// ResolveAbilities recomputes every ability entry in place and returns the
// resolved set. When a component breakdown is present it is authoritative:
// the score becomes the sum of its values, whatever the prior score said.
// The modifier is always floor((score-10)/2) of the current score, written
// back under the bag's existing key. Entries that don't decode are skipped.
func ResolveAbilities(doc *document.Document, tracker *Tracker) AbilitySet {
	resolved := AbilitySet{}
	abilities := doc.Lookup("character.abilities")
	for _, e := range document.Entries(abilities) {
		entry, ok := decodeAbility(e.Value)
		if !ok {
			continue
		}

		score, scoreOK := document.IntValue(entry.score)
		if entry.components != nil {
			if sum, ok := sumValues(entry.components); ok {
				score, scoreOK = sum, true
				tracker.Record(document.SetInt(entry.score, score))
			}
		}
		if !scoreOK {
			continue
		}

		modifier := dnd35.Modifier(score)
		tracker.Record(document.SetInt(entry.bagValue, modifier))
		resolved[entry.bagKey.Value] = Ability{Score: score, Modifier: modifier}
	}
	return resolved
}
