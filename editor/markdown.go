package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/inkmark/inkmark/internal/grapheme"
)

// MarkdownStyle holds the styles the Markdown highlighter hands out.
type MarkdownStyle struct {
	Heading  lipgloss.Style
	Emphasis lipgloss.Style
	Code     lipgloss.Style
	Quote    lipgloss.Style
	Bullet   lipgloss.Style
	Link     lipgloss.Style
}

func DefaultMarkdownStyle() MarkdownStyle {
	return MarkdownStyle{
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		Emphasis: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Code:     lipgloss.NewStyle().Foreground(lipgloss.Color("150")),
		Quote:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Bullet:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Link:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
	}
}

// MarkdownHighlighter is a line-oriented highlighter for Markdown syntax.
//
// It colors whole heading and quote lines, list bullets, and inline code,
// emphasis, and link spans. It is deliberately not a Markdown parser: each
// line is decorated independently and unterminated inline markers are left
// plain.
type MarkdownHighlighter struct {
	style MarkdownStyle
}

func NewMarkdownHighlighter(style MarkdownStyle) *MarkdownHighlighter {
	return &MarkdownHighlighter{style: style}
}

func (h *MarkdownHighlighter) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	line := ctx.Text
	if line == "" {
		return nil, nil
	}
	n := grapheme.Count(line)

	if isHeadingLine(line) {
		return []HighlightSpan{{StartGraphemeCol: 0, EndGraphemeCol: n, Style: h.style.Heading}}, nil
	}
	if strings.HasPrefix(strings.TrimLeft(line, " \t"), ">") {
		return []HighlightSpan{{StartGraphemeCol: 0, EndGraphemeCol: n, Style: h.style.Quote}}, nil
	}

	clusters := grapheme.Split(line)
	var spans []HighlightSpan

	start := bulletMarkerCol(clusters)
	if start >= 0 {
		spans = append(spans, HighlightSpan{StartGraphemeCol: start, EndGraphemeCol: start + 1, Style: h.style.Bullet})
	}

	spans = append(spans, h.inlineSpans(clusters)...)
	return spans, nil
}

func isHeadingLine(line string) bool {
	i := 0
	for i < len(line) && line[i] == '#' {
		i++
	}
	return i >= 1 && i <= 6 && i < len(line) && line[i] == ' '
}

// bulletMarkerCol returns the column of a leading list marker, or -1.
func bulletMarkerCol(clusters []string) int {
	i := 0
	for i < len(clusters) && grapheme.IsSpace(clusters[i]) {
		i++
	}
	if i >= len(clusters) {
		return -1
	}
	c := clusters[i]
	if c != "*" && c != "-" && c != "+" {
		return -1
	}
	if i+1 >= len(clusters) || !grapheme.IsSpace(clusters[i+1]) {
		return -1
	}
	return i
}

func (h *MarkdownHighlighter) inlineSpans(clusters []string) []HighlightSpan {
	var spans []HighlightSpan
	n := len(clusters)
	i := 0
	// Skip a leading list marker so "* item" is not read as emphasis.
	if b := bulletMarkerCol(clusters); b >= 0 {
		i = b + 1
	}

	for i < n {
		switch clusters[i] {
		case "`":
			if j := findCluster(clusters, "`", i+1); j >= 0 {
				spans = append(spans, HighlightSpan{StartGraphemeCol: i, EndGraphemeCol: j + 1, Style: h.style.Code})
				i = j + 1
				continue
			}
		case "*":
			if i+1 < n && clusters[i+1] == "*" {
				if j := findPair(clusters, "*", i+2); j >= 0 {
					spans = append(spans, HighlightSpan{StartGraphemeCol: i, EndGraphemeCol: j + 2, Style: h.style.Emphasis})
					i = j + 2
					continue
				}
			} else if j := findCluster(clusters, "*", i+1); j >= 0 {
				spans = append(spans, HighlightSpan{StartGraphemeCol: i, EndGraphemeCol: j + 1, Style: h.style.Emphasis})
				i = j + 1
				continue
			}
		case "[":
			if end := linkEnd(clusters, i); end >= 0 {
				spans = append(spans, HighlightSpan{StartGraphemeCol: i, EndGraphemeCol: end + 1, Style: h.style.Link})
				i = end + 1
				continue
			}
		}
		i++
	}
	return spans
}

func findCluster(clusters []string, want string, from int) int {
	for i := from; i < len(clusters); i++ {
		if clusters[i] == want {
			return i
		}
	}
	return -1
}

// findPair finds the first index i >= from with clusters[i] == want twice in
// a row.
func findPair(clusters []string, want string, from int) int {
	for i := from; i+1 < len(clusters); i++ {
		if clusters[i] == want && clusters[i+1] == want {
			return i
		}
	}
	return -1
}

// linkEnd returns the index of the ')' closing a [text](url) form starting at
// open ('['), or -1.
func linkEnd(clusters []string, open int) int {
	close := findCluster(clusters, "]", open+1)
	if close < 0 || close+1 >= len(clusters) || clusters[close+1] != "(" {
		return -1
	}
	return findCluster(clusters, ")", close+2)
}
