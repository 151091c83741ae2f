package dnd35_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/sheet-engine/internal/domain/rulebook/dnd35"
)

func TestHeavyLoad(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected int
	}{
		{name: "negative score carries nothing", score: -1, expected: 0},
		{name: "zero score carries nothing", score: 0, expected: 0},
		{name: "weakest", score: 1, expected: 10},
		{name: "average", score: 10, expected: 100},
		{name: "above average steps off the tens", score: 11, expected: 115},
		{name: "strong", score: 18, expected: 300},
		{name: "table ceiling", score: 29, expected: 1400},
		{name: "first doubling point", score: 30, expected: 800},
		{name: "interpolated between doubling points", score: 35, expected: 1200},
		{name: "second doubling point", score: 40, expected: 1600},
		{name: "interpolated past second doubling", score: 42, expected: 1920},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dnd35.HeavyLoad(tt.score))
		})
	}
}

func TestCapacityFor(t *testing.T) {
	t.Run("strength 18", func(t *testing.T) {
		c := dnd35.CapacityFor(18)
		assert.Equal(t, 100, c.Light)
		assert.Equal(t, 200, c.Medium)
		assert.Equal(t, 300, c.Heavy)
		assert.Equal(t, 600, c.Lift)
		assert.Equal(t, 1500, c.Drag)
	})

	t.Run("thirds floor on an uneven heavy load", func(t *testing.T) {
		c := dnd35.CapacityFor(12) // heavy 130
		assert.Equal(t, 43, c.Light)
		assert.Equal(t, 86, c.Medium)
		assert.Equal(t, 130, c.Heavy)
		assert.Equal(t, 260, c.Lift)
		assert.Equal(t, 650, c.Drag)
	})

	t.Run("strength 0 zeroes every threshold", func(t *testing.T) {
		assert.Equal(t, dnd35.Capacity{}, dnd35.CapacityFor(0))
	})
}
