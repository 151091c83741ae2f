package sheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/sheet-engine/internal/document"
	"github.com/KirkDiggler/sheet-engine/internal/domain/sheet"
)

func stringAt(t *testing.T, doc *document.Document, path, key string) string {
	t.Helper()
	v, ok := document.StringValue(document.Key(doc.Lookup(path), key))
	require.True(t, ok, "%s.%s", path, key)
	return v
}

func TestApplyInitiative(t *testing.T) {
	doc := parseDoc(t, `character:
  abilities:
    dexterity: [15, {dex: -4}]
  combat:
    initiative: [-4, {dex: -4}]
`)
	assert.True(t, sheet.Apply(doc))

	assert.Equal(t, 2, seqInt(t, doc, "character.combat.initiative", 0))
	assert.Equal(t, 2, seqMapInt(t, doc, "character.combat.initiative", 1, "dex"))
}

func TestApplyAttackLines(t *testing.T) {
	doc := parseDoc(t, `character:
  abilities:
    strength: [12, {str: 0}]
    dexterity: [15, {dex: 0}]
  combat:
    attack:
      melee: [4, {bab: 4, str: 0}]
      grapple: [4, {bab: 4, str: 0}]
      ranged: [4, {bab: 4, dex: 0}]
`)
	assert.True(t, sheet.Apply(doc))

	assert.Equal(t, 5, seqInt(t, doc, "character.combat.attack.melee", 0))
	assert.Equal(t, 1, seqMapInt(t, doc, "character.combat.attack.melee", 1, "str"))
	assert.Equal(t, 5, seqInt(t, doc, "character.combat.attack.grapple", 0))
	assert.Equal(t, 6, seqInt(t, doc, "character.combat.attack.ranged", 0))
	assert.Equal(t, 2, seqMapInt(t, doc, "character.combat.attack.ranged", 1, "dex"))
}

func TestApplySavesAndDefense(t *testing.T) {
	doc := parseDoc(t, `character:
  abilities:
    dexterity: [15, {dex: 0}]
  combat:
    saves:
      fortitude: [5, {base: 4, con: 1}]
      reflex: [1, {base: 1, dex: 0}]
    defense:
      ac: [14, {base: 10, armor: 4, dex: 0}]
`)
	assert.True(t, sheet.Apply(doc))

	// A save without a dex contribution is not touched.
	assert.Equal(t, 5, seqInt(t, doc, "character.combat.saves.fortitude", 0))
	assert.Equal(t, 3, seqInt(t, doc, "character.combat.saves.reflex", 0))
	assert.Equal(t, 2, seqMapInt(t, doc, "character.combat.saves.reflex", 1, "dex"))
	assert.Equal(t, 16, seqInt(t, doc, "character.combat.defense.ac", 0))
}

func TestApplySkills(t *testing.T) {
	doc := parseDoc(t, `character:
  abilities:
    strength: [12, {str: 0}]
    dexterity: [15, {dex: 0}]
  skills:
    climb: [3, {str: 2, acp: -3, ranks: 4}]
    hide: [4, {dex: 0, ranks: 4}]
    spot: [6, {wis: 2, ranks: 4}]
`)
	assert.True(t, sheet.Apply(doc))

	assert.Equal(t, 2, seqInt(t, doc, "character.skills.climb", 0))
	assert.Equal(t, 1, seqMapInt(t, doc, "character.skills.climb", 1, "str"))
	assert.Equal(t, 6, seqInt(t, doc, "character.skills.hide", 0))
	// Skills keyed by neither ability keep their entry as written.
	assert.Equal(t, 6, seqInt(t, doc, "character.skills.spot", 0))
}

func TestApplyInsertsStrengthIntoClimbJumpSwim(t *testing.T) {
	doc := parseDoc(t, `character:
  abilities:
    strength: [18, {str: 4}]
  skills:
    jump: [4, {ranks: 4}]
    hide: [4, {ranks: 4}]
`)
	assert.True(t, sheet.Apply(doc))

	// jump is inherently strength-based, so the contribution is created.
	assert.Equal(t, 4, seqMapInt(t, doc, "character.skills.jump", 1, "str"))
	assert.Equal(t, 8, seqInt(t, doc, "character.skills.jump", 0))
	// hide is not, and has no dex key to refresh.
	assert.Nil(t, document.Key(doc.Lookup("character.skills.hide").Content[1], "str"))
	assert.Equal(t, 4, seqInt(t, doc, "character.skills.hide", 0))
}

func TestApplyCapacity(t *testing.T) {
	doc := parseDoc(t, `character:
  abilities:
    strength: [18, {str: 4}]
  movement:
    capacity:
      light: 0 lbs
      medium: 0 lbs
      heavy: 0 lbs
`)
	assert.True(t, sheet.Apply(doc))

	const path = "character.movement.capacity"
	assert.Equal(t, "100 lbs", stringAt(t, doc, path, "light"))
	assert.Equal(t, "200 lbs", stringAt(t, doc, path, "medium"))
	assert.Equal(t, "300 lbs", stringAt(t, doc, path, "heavy"))
	// lift and drag were absent and get created.
	assert.Equal(t, "600 lbs", stringAt(t, doc, path, "lift"))
	assert.Equal(t, "1500 lbs", stringAt(t, doc, path, "drag"))
}

func TestApplyMeleeWeapons(t *testing.T) {
	doc := parseDoc(t, `character:
  abilities:
    strength: [12, {str: 0}]
  combat:
    attack:
      melee: [4, {bab: 4, str: 0}]
    weapons:
      melee:
        greataxe: [4, 1d12, 20/x3, {_: 4, enh: 0}, {str: 0}]
`)
	assert.True(t, sheet.Apply(doc))

	const path = "character.combat.weapons.melee.greataxe"
	weapon := doc.Lookup(path)
	require.NotNil(t, weapon)

	// Attack total re-summed from the breakdown, "_" mirroring melee's 5.
	assert.Equal(t, 5, seqInt(t, doc, path, 0))
	assert.Equal(t, 5, seqMapInt(t, doc, path, 3, "_"))
	assert.Equal(t, 1, seqMapInt(t, doc, path, 4, "str"))

	damage, ok := document.StringValue(weapon.Content[1])
	require.True(t, ok)
	assert.Equal(t, "1d12+1", damage)
}

func TestApplyZeroModifierDropsDamageTerm(t *testing.T) {
	doc := parseDoc(t, `character:
  abilities:
    strength: [10, {str: 0}]
  combat:
    attack:
      melee: [2, {bab: 2, str: 0}]
    weapons:
      melee:
        club: [2, 1d8+2, 20/x2, {_: 2}, {str: 0}]
`)
	assert.True(t, sheet.Apply(doc))

	weapon := doc.Lookup("character.combat.weapons.melee.club")
	damage, ok := document.StringValue(weapon.Content[1])
	require.True(t, ok)
	assert.Equal(t, "1d8", damage)
}

func TestApplyRangedWeaponDamageUntouched(t *testing.T) {
	doc := parseDoc(t, `character:
  abilities:
    dexterity: [18, {dex: 2}]
  combat:
    attack:
      ranged: [3, {bab: 1, dex: 2}]
    weapons:
      ranged:
        longbow: [3, 1d8, 20/x3, {_: 3}, {dex: 2}]
`)
	assert.True(t, sheet.Apply(doc))

	const path = "character.combat.weapons.ranged.longbow"
	weapon := doc.Lookup(path)
	require.NotNil(t, weapon)

	assert.Equal(t, 5, seqInt(t, doc, "character.combat.attack.ranged", 0))
	assert.Equal(t, 5, seqMapInt(t, doc, path, 3, "_"))
	assert.Equal(t, 4, seqMapInt(t, doc, path, 4, "dex"))
	assert.Equal(t, 5, seqInt(t, doc, path, 0))

	damage, ok := document.StringValue(weapon.Content[1])
	require.True(t, ok)
	assert.Equal(t, "1d8", damage)
}

func TestApplyPartialSheet(t *testing.T) {
	doc := parseDoc(t, `character:
  abilities:
    strength: [14, {str: 0}]
  combat:
    initiative: [3, {dex: 3}]
  skills:
    climb: [2, {str: 0, ranks: 2}]
`)
	assert.True(t, sheet.Apply(doc))

	// Strength rules ran.
	assert.Equal(t, 4, seqInt(t, doc, "character.skills.climb", 0))
	// Dexterity is absent, so initiative was left alone.
	assert.Equal(t, 3, seqInt(t, doc, "character.combat.initiative", 0))
	assert.Equal(t, 3, seqMapInt(t, doc, "character.combat.initiative", 1, "dex"))
}

func TestApplyConsistentSheetReportsNoChange(t *testing.T) {
	doc := parseDoc(t, `character:
  abilities:
    strength: [18, {str: 4}]
  combat:
    attack:
      melee: [6, {bab: 2, str: 4}]
  movement:
    capacity: {light: 100 lbs, medium: 200 lbs, heavy: 300 lbs, lift: 600 lbs, drag: 1500 lbs}
`)
	assert.False(t, sheet.Apply(doc))
}

func TestApplySkipsMalformedEntries(t *testing.T) {
	doc := parseDoc(t, `character:
  abilities:
    strength: [18, {str: 0}]
  combat:
    attack:
      melee: just a note
    weapons:
      melee:
        broken: [1, 1d4]
  skills:
    climb: not a skill entry
`)
	assert.True(t, sheet.Apply(doc))

	// Only the ability entry itself changed; malformed targets survive intact.
	assert.Equal(t, 4, seqMapInt(t, doc, "character.abilities.strength", 1, "str"))
	note, ok := document.StringValue(doc.Lookup("character.combat.attack.melee"))
	require.True(t, ok)
	assert.Equal(t, "just a note", note)
}
