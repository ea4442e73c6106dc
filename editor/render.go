package editor

import (
	"fmt"
	"strings"

	"github.com/inkmark/inkmark/buffer"
	"github.com/inkmark/inkmark/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	rowCount := m.buf.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()

	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(rowCount)
	}

	highlightRows := m.visibleRowRange(rowCount)

	out := make([]string, 0, rowCount)
	for row := 0; row < rowCount; row++ {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		line := m.buf.Line(row)
		var spans []HighlightSpan
		if row >= highlightRows.start && row < highlightRows.end {
			spans = m.highlightForLine(row, line, cursor)
		}
		sb.WriteString(m.renderLine(row, line, spans, cursor, sel, selOK))

		out = append(out, sb.String())
	}

	return strings.Join(out, "\n")
}

type rowRange struct {
	start, end int
}

// visibleRowRange limits highlighting work to the viewport window. All rows
// are still rendered; the viewport crops them.
func (m *Model) visibleRowRange(rowCount int) rowRange {
	if m.cfg.Highlighter == nil {
		return rowRange{}
	}
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return rowRange{}
	}
	start := clampInt(m.viewport.YOffset, 0, rowCount)
	end := minInt(start+h, rowCount)
	return rowRange{start: start, end: end}
}

func (m *Model) highlightForLine(row int, line string, cursor buffer.Pos) []HighlightSpan {
	if m.cfg.Highlighter == nil {
		return nil
	}

	lineLen := grapheme.Count(line)
	ctx := LineContext{
		Row:               row,
		Text:              line,
		CursorGraphemeCol: -1,
	}
	if cursor.Row == row {
		ctx.HasCursor = true
		ctx.CursorGraphemeCol = clampInt(cursor.GraphemeCol, 0, lineLen)
	}

	spans, err := m.cfg.Highlighter.HighlightLine(ctx)
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, lineLen)
}

func (m *Model) renderLine(row int, line string, spans []HighlightSpan, cursor buffer.Pos, sel buffer.Range, selOK bool) string {
	clusters := grapheme.Split(line)

	selStart, selEnd := selectionColsForRow(row, len(clusters), sel, selOK)
	cursorCol := -1
	if m.focused && cursor.Row == row {
		cursorCol = clampInt(cursor.GraphemeCol, 0, len(clusters))
	}

	var sb strings.Builder
	for col, cluster := range clusters {
		st := m.cfg.Style.Text
		if sp, ok := spanAt(spans, col); ok {
			st = sp.Style
		}
		if col >= selStart && col < selEnd {
			st = m.cfg.Style.Selection
		}
		if col == cursorCol {
			st = m.cfg.Style.Cursor
		}
		sb.WriteString(st.Render(cluster))
	}

	// Cursor parked at end of line renders on a phantom cell.
	if cursorCol == len(clusters) {
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
	}

	return sb.String()
}

// selectionColsForRow maps a document selection onto one row's columns,
// returning a half-open [start, end) or (0, 0) when the row is untouched.
func selectionColsForRow(row, lineLen int, sel buffer.Range, selOK bool) (int, int) {
	if !selOK || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0
	}
	start := 0
	end := lineLen
	if row == sel.Start.Row {
		start = clampInt(sel.Start.GraphemeCol, 0, lineLen)
	}
	if row == sel.End.Row {
		end = clampInt(sel.End.GraphemeCol, 0, lineLen)
	}
	if end < start {
		return 0, 0
	}
	return start, end
}

func spanAt(spans []HighlightSpan, col int) (HighlightSpan, bool) {
	for _, sp := range spans {
		if col >= sp.StartGraphemeCol && col < sp.EndGraphemeCol {
			return sp, true
		}
	}
	return HighlightSpan{}, false
}

func gutterDigits(rowCount int) int {
	digits := 1
	for rowCount >= 10 {
		rowCount /= 10
		digits++
	}
	return digits
}
