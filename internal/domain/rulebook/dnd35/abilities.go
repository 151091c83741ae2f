// Package dnd35 holds the fixed D&D 3.5e tables and formulas the engine
// derives fields from. Everything here is a process-wide immutable constant.
package dnd35

// Ability abbreviations as they appear in modifier bags and contribution maps.
const (
	AbbrevStrength     = "str"
	AbbrevDexterity    = "dex"
	AbbrevConstitution = "con"
	AbbrevIntelligence = "int"
	AbbrevWisdom       = "wis"
	AbbrevCharisma     = "cha"
)

// Ability names as they appear under character.abilities.
const (
	AbilityStrength  = "strength"
	AbilityDexterity = "dexterity"
)

// Modifier derives the signed ability modifier from a score. The division
// floors toward negative infinity, so score 9 gives -1, not 0.
func Modifier(score int) int {
	return floorDiv(score-10, 2)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// strengthSkills are the skills that always carry a strength contribution,
// whether or not the document entry lists one yet.
var strengthSkills = map[string]bool{
	"climb": true,
	"jump":  true,
	"swim":  true,
}

// IsStrengthSkill reports whether a skill belongs to the fixed
// strength-based set.
func IsStrengthSkill(name string) bool {
	return strengthSkills[name]
}
