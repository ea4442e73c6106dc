package buffer

import "unicode/utf8"

// OffsetClampMode selects how out-of-bounds offsets are handled during
// conversion: rejected, or clamped into the document.
type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

type ConvertPolicy struct {
	ClampMode OffsetClampMode
}

// PosFromRuneOffset converts a flat rune offset into a document position.
// Offsets count '\n' as a single rune. Conversion fails when the offset lands
// inside a multi-rune grapheme cluster.
func (b *Buffer) PosFromRuneOffset(off int, p ConvertPolicy) (Pos, bool) {
	off, ok := clampOffset(off, b.DocRuneLen(), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	return b.runeOffsetToPos(off)
}

// RuneOffsetFromPos converts a document position into a flat rune offset.
func (b *Buffer) RuneOffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	pos, ok := b.normalizePosForMode(pos, p.ClampMode)
	if !ok {
		return 0, false
	}
	return b.posToRuneOffset(pos), true
}

// PosFromByteOffset converts a flat byte offset into a document position.
func (b *Buffer) PosFromByteOffset(off int, p ConvertPolicy) (Pos, bool) {
	off, ok := clampOffset(off, b.docByteLen(), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	return b.byteOffsetToPos(off)
}

// ByteOffsetFromPos converts a document position into a flat byte offset.
func (b *Buffer) ByteOffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	pos, ok := b.normalizePosForMode(pos, p.ClampMode)
	if !ok {
		return 0, false
	}
	return b.posToByteOffset(pos), true
}

// DocRuneLen returns the rune length of the whole document, counting each
// line break as one rune.
func (b *Buffer) DocRuneLen() int {
	total := 0
	for row, line := range b.lines {
		for _, cluster := range line {
			total += utf8.RuneCountInString(cluster)
		}
		if row < len(b.lines)-1 {
			total++
		}
	}
	return total
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		if off < 0 {
			return 0, true
		}
		if off > max {
			return max, true
		}
		return off, true
	default:
		return 0, false
	}
}

func (b *Buffer) normalizePosForMode(pos Pos, mode OffsetClampMode) (Pos, bool) {
	switch mode {
	case OffsetError:
		clamped := b.clampPos(pos)
		if clamped != pos {
			return Pos{}, false
		}
		return pos, true
	case OffsetClamp:
		return b.clampPos(pos), true
	default:
		return Pos{}, false
	}
}

func (b *Buffer) docByteLen() int {
	total := 0
	for row, line := range b.lines {
		for _, cluster := range line {
			total += len(cluster)
		}
		if row < len(b.lines)-1 {
			total++
		}
	}
	return total
}

func (b *Buffer) byteOffsetToPos(off int) (Pos, bool) {
	return b.offsetToPos(off, func(cluster string) int { return len(cluster) })
}

func (b *Buffer) runeOffsetToPos(off int) (Pos, bool) {
	return b.offsetToPos(off, utf8.RuneCountInString)
}

func (b *Buffer) offsetToPos(off int, width func(cluster string) int) (Pos, bool) {
	cur := 0

	for row, line := range b.lines {
		if off == cur {
			return Pos{Row: row, GraphemeCol: 0}, true
		}

		for col, cluster := range line {
			next := cur + width(cluster)
			if off > cur && off < next {
				// Mid-cluster offsets have no document position.
				return Pos{}, false
			}
			cur = next
			if off == cur {
				return Pos{Row: row, GraphemeCol: col + 1}, true
			}
		}

		if row < len(b.lines)-1 {
			cur++
			if off == cur {
				return Pos{Row: row + 1, GraphemeCol: 0}, true
			}
		}
	}

	return Pos{}, false
}

func (b *Buffer) posToByteOffset(pos Pos) int {
	return b.posToOffset(pos, func(cluster string) int { return len(cluster) })
}

func (b *Buffer) posToRuneOffset(pos Pos) int {
	return b.posToOffset(pos, utf8.RuneCountInString)
}

func (b *Buffer) posToOffset(pos Pos, width func(cluster string) int) int {
	off := 0

	for row := 0; row < pos.Row; row++ {
		for _, cluster := range b.lines[row] {
			off += width(cluster)
		}
		off++
	}

	for col := 0; col < pos.GraphemeCol; col++ {
		off += width(b.lines[pos.Row][col])
	}

	return off
}
