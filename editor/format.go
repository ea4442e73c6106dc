package editor

import (
	"github.com/inkmark/inkmark/buffer"
	"github.com/inkmark/inkmark/format"
)

// ApplyFormat runs one toolbar transformation against the current buffer
// snapshot and commits the result atomically.
//
// The buffer's (row, col) selection is converted to flat rune offsets, the
// pure format.Apply produces (newText, newSelection), and the result is
// written back as a single whole-document edit before any further input is
// processed.
func (m *Model) ApplyFormat(kind format.Kind) {
	if m.buf == nil {
		return
	}
	ApplyFormatToBuffer(m.buf, kind)
}

// ApplyFormatToBuffer applies kind to b's selection (or caret). Hosts that
// drive the buffer directly can use this without an editor Model.
func ApplyFormatToBuffer(b *buffer.Buffer, kind format.Kind) {
	clamp := buffer.ConvertPolicy{ClampMode: buffer.OffsetClamp}

	r := b.SelectionOrCaret()
	start, ok := b.RuneOffsetFromPos(r.Start, clamp)
	if !ok {
		return
	}
	end, ok := b.RuneOffsetFromPos(r.End, clamp)
	if !ok {
		return
	}

	res := format.Apply(b.Text(), format.Selection{Start: start, End: end}, kind)

	b.SetText(res.Text)

	selStart, okStart := b.PosFromRuneOffset(res.Selection.Start, clamp)
	selEnd, okEnd := b.PosFromRuneOffset(res.Selection.End, clamp)
	if !okStart || !okEnd {
		return
	}
	if res.Selection.IsEmpty() {
		b.ClearSelection()
		b.SetCursor(selStart)
		return
	}
	b.SetSelection(buffer.Range{Start: selStart, End: selEnd})
	b.SetCursor(selEnd)
}
