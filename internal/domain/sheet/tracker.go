package sheet

// Tracker records whether any rule actually altered a value, which decides
// whether the document needs re-serialization at all.
type Tracker struct {
	changed bool
}

// Record folds in the outcome of one mutation attempt.
func (t *Tracker) Record(changed bool) {
	if changed {
		t.changed = true
	}
}

// Changed reports whether any value was altered.
func (t *Tracker) Changed() bool {
	return t.changed
}
