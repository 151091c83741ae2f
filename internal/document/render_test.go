package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/sheet-engine/internal/document"
)

func render(t *testing.T, text string, policy *document.StylePolicy) string {
	t.Helper()
	doc, err := document.Parse(text)
	require.NoError(t, err)
	return doc.Render(policy)
}

func TestRenderEmptyDocument(t *testing.T) {
	assert.Equal(t, "---\n", render(t, "", nil))
}

func TestRenderBlockForm(t *testing.T) {
	input := `character:
  name: Thokk
  race: half-orc
`
	expected := `---
character:
  name: Thokk
  race: half-orc
`
	assert.Equal(t, expected, render(t, input, document.DefaultStylePolicy()))
}

func TestRenderFlowSections(t *testing.T) {
	input := `character:
  abilities:
    strength:
      - 18
      - str: 4
      - base: 18
  skills:
    climb: [7, {str: 4, ranks: 3}]
  movement:
    capacity:
      light: 100 lbs
      heavy: 300 lbs
`
	expected := `---
character:
  abilities:
    strength: [18, str: 4, {base: 18}]
  skills:
    climb: [7, {str: 4, ranks: 3}]
  movement:
    capacity: {light: 100 lbs, heavy: 300 lbs}
`
	assert.Equal(t, expected, render(t, input, document.DefaultStylePolicy()))
}

// A single-pair mapping drops its braces only when another element follows
// it in the sequence; a trailing mapping keeps them.
func TestRenderBarePairPlacement(t *testing.T) {
	input := `character:
  abilities:
    strength: [18, {str: 4}, {base: 18}]
    dexterity: [15, {dex: 2}]
  combat:
    initiative: [2, {dex: 2}]
`
	expected := `---
character:
  abilities:
    strength: [18, str: 4, {base: 18}]
    dexterity: [15, {dex: 2}]
  combat:
    initiative: [2, {dex: 2}]
`
	assert.Equal(t, expected, render(t, input, document.DefaultStylePolicy()))
}

func TestRenderWithoutPolicyStaysBlock(t *testing.T) {
	input := `character:
  abilities:
    strength: [18, {base: 18}]
`
	expected := `---
character:
  abilities:
    strength:
      - 18
      - base: 18
`
	assert.Equal(t, expected, render(t, input, nil))
}

func TestRenderQuoting(t *testing.T) {
	input := `notes:
  plain: a fine axe
  numberish: "12"
  boolish: "true"
  colon: "key: value"
  hash: "before # after"
  empty: ""
  spaced: " padded "
`
	expected := `---
notes:
  plain: a fine axe
  numberish: "12"
  boolish: "true"
  colon: "key: value"
  hash: "before # after"
  empty: ""
  spaced: " padded "
`
	assert.Equal(t, expected, render(t, input, nil))
}

func TestRenderPreservesComments(t *testing.T) {
	input := `character:
  # rolled at the table
  abilities:
    strength: [18, {base: 18}] # racial bonus folded in
`
	expected := `---
character:
  # rolled at the table
  abilities:
    strength: [18, {base: 18}] # racial bonus folded in
`
	assert.Equal(t, expected, render(t, input, document.DefaultStylePolicy()))
}

func TestRenderEmptyCollections(t *testing.T) {
	input := `character:
  skills: {}
  gear: []
`
	expected := `---
character:
  skills: {}
  gear: []
`
	assert.Equal(t, expected, render(t, input, document.DefaultStylePolicy()))
}

func TestRenderNestedSequences(t *testing.T) {
	input := `log:
  - day one
  - day two
`
	expected := `---
log:
  - day one
  - day two
`
	assert.Equal(t, expected, render(t, input, nil))
}
