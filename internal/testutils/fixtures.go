package testutils

import (
	"github.com/KirkDiggler/sheet-engine/internal/domain/sheet"
)

// StaleSheet is a hand-edited sheet whose derived fields are all out of
// date: the strength score ignores its component breakdown and every
// dependent total still reflects the old values. Tests that need real
// recompute work start from this.
const StaleSheet = `---
character:
  name: Thokk
  abilities:
    strength: [0, str: 0, {base: 7, orc: 2, hd: 2, gloves: 1}]
    dexterity: [15, dex: -4]
  combat:
    initiative: [-4, {dex: -4}]
    saves:
      fortitude: [5, {base: 4, con: 1}]
      reflex: [1, {base: 1, dex: 0}]
    attack:
      melee: [4, {bab: 4, str: 0}]
      grapple: [4, {bab: 4, str: 0}]
      ranged: [4, {bab: 4, dex: 0}]
    weapons:
      melee:
        greataxe: [4, 1d12, 20/x3, {_: 4, enh: 0}, {str: 0}]
  skills:
    climb: [3, {str: 2, acp: -3, ranks: 4}]
    hide: [6, {dex: 2, ranks: 4}]
  movement:
    capacity: {light: 0 lbs, medium: 0 lbs, heavy: 0 lbs, lift: 0 lbs, drag: 0 lbs}
`

// InertSheet has no character.abilities; the engine must return it
// byte-identical.
const InertSheet = `---
character:
  name: Nameless
  notes:
    - no abilities recorded yet
`

// CreateTestSheet builds a stored sheet entity for repository tests
func CreateTestSheet(id, ownerID, name string) *sheet.Sheet {
	return &sheet.Sheet{
		ID:      id,
		OwnerID: ownerID,
		Name:    name,
		Source:  StaleSheet,
	}
}
