package format

import "strings"

// Kind identifies one toolbar transformation.
type Kind uint8

const (
	Bold Kind = iota
	Italic
	Code
	Heading
	BulletList
	Quote
	Link
)

// KindCount is the number of defined kinds, for hosts that iterate them.
const KindCount = int(Link) + 1

// Selection is a rune-offset range into the document text, Start <= End.
// Start == End represents a caret.
type Selection struct {
	Start int
	End   int
}

func (s Selection) IsEmpty() bool { return s.Start == s.End }

// Result is the transformed document and the selection to restore in it.
type Result struct {
	Text      string
	Selection Selection
}

type kindSpec struct {
	name   string
	marker string // wrap marker, inserted on both sides of the selection
	prefix string // per-line prefix for line-scoped kinds
}

var kindSpecs = [KindCount]kindSpec{
	Bold:       {name: "bold", marker: "**"},
	Italic:     {name: "italic", marker: "*"},
	Code:       {name: "code", marker: "`"},
	Heading:    {name: "heading", prefix: "# "},
	BulletList: {name: "bullet list", prefix: "* "},
	Quote:      {name: "quote", prefix: "> "},
	Link:       {name: "link"},
}

func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindSpecs[k].name
}

func (k Kind) Valid() bool { return int(k) < KindCount }

// Marker returns the wrap marker for wrap-style kinds, "" otherwise.
func (k Kind) Marker() string {
	if !k.Valid() {
		return ""
	}
	return kindSpecs[k].marker
}

// Prefix returns the line prefix for line-scoped kinds, "" otherwise.
func (k Kind) Prefix() string {
	if !k.Valid() {
		return ""
	}
	return kindSpecs[k].prefix
}

// LineScoped reports whether the kind applies per touched line rather than at
// the selection boundaries.
func (k Kind) LineScoped() bool { return k.Prefix() != "" }

// Kinds returns all defined kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, KindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Apply inserts the Markdown syntax for kind around sel in text.
//
// The transformation is pure: it never mutates its inputs and always returns a
// well-formed result. Markers are inserted in matched pairs within a single
// call, and the returned selection never points inside a marker. Reapplying a
// kind over already-marked text nests markers; nothing is ever stripped.
//
// Selections outside the document are clamped; reversed selections are
// normalized.
func Apply(text string, sel Selection, kind Kind) Result {
	runes := []rune(text)
	sel = clampSelection(sel, len(runes))

	switch {
	case kind == Link:
		return applyLink(runes, sel)
	case kind.LineScoped():
		return applyLinePrefix(runes, sel, kind.Prefix())
	default:
		return applyWrap(runes, sel, kind.Marker())
	}
}

func applyWrap(runes []rune, sel Selection, marker string) Result {
	mlen := len([]rune(marker))

	var sb strings.Builder
	sb.WriteString(string(runes[:sel.Start]))
	sb.WriteString(marker)
	sb.WriteString(string(runes[sel.Start:sel.End]))
	sb.WriteString(marker)
	sb.WriteString(string(runes[sel.End:]))

	caret := sel.Start + mlen
	if !sel.IsEmpty() {
		// Land after the closing marker so further typing continues outside
		// the wrapped span.
		caret = sel.End + 2*mlen
	}
	return Result{Text: sb.String(), Selection: Selection{Start: caret, End: caret}}
}

func applyLinePrefix(runes []rune, sel Selection, prefix string) Result {
	plen := len([]rune(prefix))
	spans := lineSpans(runes)

	var sb strings.Builder
	touched := 0
	firstStart := -1
	for i, span := range spans {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if span.touches(sel) {
			touched++
			if firstStart < 0 {
				firstStart = span.start
			}
			sb.WriteString(prefix)
		}
		sb.WriteString(string(runes[span.start:span.end]))
	}

	if touched <= 1 {
		caret := sel.End + plen
		return Result{Text: sb.String(), Selection: Selection{Start: caret, End: caret}}
	}
	// Multi-line application: reselect the rewritten span.
	return Result{Text: sb.String(), Selection: Selection{
		Start: firstStart,
		End:   sel.End + touched*plen,
	}}
}

const (
	linkOpen  = "["
	linkClose = "](http://)"
)

func applyLink(runes []rune, sel Selection) Result {
	var sb strings.Builder
	sb.WriteString(string(runes[:sel.Start]))
	sb.WriteString(linkOpen)
	sb.WriteString(string(runes[sel.Start:sel.End]))
	sb.WriteString(linkClose)
	sb.WriteString(string(runes[sel.End:]))

	// Empty selection: caret inside the brackets, ready for link text.
	// Non-empty: caret inside the parens, ready to replace the placeholder URL.
	caret := sel.Start + 1
	if !sel.IsEmpty() {
		caret = sel.End + 3
	}
	return Result{Text: sb.String(), Selection: Selection{Start: caret, End: caret}}
}

// lineSpan is the rune-offset extent of one line, excluding its line break.
type lineSpan struct {
	start, end int
}

// touches reports whether the line intersects the closed interval
// [sel.Start, sel.End]. A caret touches exactly the line it sits on.
func (s lineSpan) touches(sel Selection) bool {
	return sel.Start <= s.end && sel.End >= s.start
}

func lineSpans(runes []rune) []lineSpan {
	spans := []lineSpan{}
	start := 0
	for i, r := range runes {
		if r == '\n' {
			spans = append(spans, lineSpan{start: start, end: i})
			start = i + 1
		}
	}
	return append(spans, lineSpan{start: start, end: len(runes)})
}

func clampSelection(sel Selection, max int) Selection {
	sel.Start = clampInt(sel.Start, 0, max)
	sel.End = clampInt(sel.End, 0, max)
	if sel.End < sel.Start {
		sel.Start, sel.End = sel.End, sel.Start
	}
	return sel
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
