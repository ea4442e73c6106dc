package editor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// HighlightSpan styles the half-open grapheme range
// [StartGraphemeCol, EndGraphemeCol) of one line.
type HighlightSpan struct {
	StartGraphemeCol int
	EndGraphemeCol   int
	Style            lipgloss.Style
}

// LineContext carries one line of document text to a Highlighter.
type LineContext struct {
	Row  int
	Text string

	// CursorGraphemeCol is the cursor column within Text if the cursor is on
	// this row; otherwise -1.
	CursorGraphemeCol int
	HasCursor         bool
}

// Highlighter decorates lines with styled spans. Errors fall back to plain
// text for the affected line.
type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

// normalizeHighlightSpans clamps spans into the line, sorts them, and drops
// overlaps deterministically (first span wins).
func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = maxInt(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartGraphemeCol, 0, lineLen)
		end := clampInt(sp.EndGraphemeCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartGraphemeCol: start, EndGraphemeCol: end, Style: sp.Style})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartGraphemeCol != out[j].StartGraphemeCol {
			return out[i].StartGraphemeCol < out[j].StartGraphemeCol
		}
		return out[i].EndGraphemeCol < out[j].EndGraphemeCol
	})

	merged := make([]HighlightSpan, 0, len(out))
	for _, sp := range out {
		if len(merged) == 0 {
			merged = append(merged, sp)
			continue
		}
		last := merged[len(merged)-1]
		if sp.StartGraphemeCol < last.EndGraphemeCol {
			continue
		}
		merged = append(merged, sp)
	}

	return merged
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
