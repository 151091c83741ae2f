package dnd35_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/sheet-engine/internal/domain/rulebook/dnd35"
)

func TestModifier(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected int
	}{
		{name: "average score", score: 10, expected: 0},
		{name: "odd score floors toward negative infinity", score: 9, expected: -1},
		{name: "eleven still zero", score: 11, expected: 0},
		{name: "heroic score", score: 18, expected: 4},
		{name: "crippling score", score: 1, expected: -5},
		{name: "zero score", score: 0, expected: -5},
		{name: "negative score", score: -2, expected: -6},
		{name: "epic score", score: 30, expected: 10},
		{name: "odd epic score", score: 31, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dnd35.Modifier(tt.score))
		})
	}
}

func TestIsStrengthSkill(t *testing.T) {
	assert.True(t, dnd35.IsStrengthSkill("climb"))
	assert.True(t, dnd35.IsStrengthSkill("jump"))
	assert.True(t, dnd35.IsStrengthSkill("swim"))
	assert.False(t, dnd35.IsStrengthSkill("hide"))
	assert.False(t, dnd35.IsStrengthSkill("spot"))
}
