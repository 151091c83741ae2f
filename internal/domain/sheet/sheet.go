// Package sheet implements the recomputation-and-propagation engine for
// D&D 3.5e character sheets: resolving ability scores and modifiers, pushing
// them into every derived field, and tracking whether anything changed.
package sheet

import "time"

// Sheet is a stored character sheet. Source holds the canonical recomputed
// document text.
type Sheet struct {
	ID      string
	OwnerID string
	Name    string
	Source  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
