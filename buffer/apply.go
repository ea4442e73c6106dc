package buffer

// Apply applies a sequence of text edits in order. Each edit's range is
// interpreted against the buffer state at the time that edit is applied.
//
// Semantics:
// - Edit ranges are clamped into current document bounds.
// - Empty range + non-empty text inserts.
// - Cursor moves to the end of the last applied (effective) edit.
// - Selection is cleared if any edit applies.
func (b *Buffer) Apply(edits ...TextEdit) {
	if len(edits) == 0 {
		return
	}

	change := b.beginChange()

	anyChanged := false
	lastCursor := b.cursor

	for _, e := range edits {
		nextCursor, applied, changed := b.replaceRange(e.Range, e.Text)
		if !changed {
			continue
		}
		anyChanged = true
		lastCursor = nextCursor
		change.addAppliedEdit(applied)
	}

	if !anyChanged {
		return
	}

	b.cursor = b.clampPos(lastCursor)
	b.sel = selectionState{}
	b.version++
	b.commitChange(change)
}

// DocumentRange returns the range covering the whole document.
func (b *Buffer) DocumentRange() Range {
	lastRow := len(b.lines) - 1
	return Range{
		Start: Pos{Row: 0, GraphemeCol: 0},
		End:   Pos{Row: lastRow, GraphemeCol: len(b.lines[lastRow])},
	}
}

// SetText replaces the whole document in one effective edit, then clamps the
// cursor into the new bounds. Hosts use this to commit externally computed
// transformations atomically.
func (b *Buffer) SetText(text string) {
	if b.Text() == text {
		return
	}
	b.Apply(TextEdit{Range: b.DocumentRange(), Text: text})
}
