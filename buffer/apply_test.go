package buffer

import "testing"

func TestApply_SequentialEdits(t *testing.T) {
	b := New("hello world")

	b.Apply(
		TextEdit{
			Range: Range{Start: Pos{Row: 0, GraphemeCol: 0}, End: Pos{Row: 0, GraphemeCol: 5}},
			Text:  "goodbye",
		},
		TextEdit{
			// Interpreted against the already-edited document.
			Range: Range{Start: Pos{Row: 0, GraphemeCol: 8}, End: Pos{Row: 0, GraphemeCol: 13}},
			Text:  "moon",
		},
	)

	if got, want := b.Text(), "goodbye moon"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 12}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestApply_NoEffectiveEditKeepsVersion(t *testing.T) {
	b := New("abc")
	v := b.Version()

	b.Apply(TextEdit{
		Range: Range{Start: Pos{Row: 0, GraphemeCol: 0}, End: Pos{Row: 0, GraphemeCol: 3}},
		Text:  "abc",
	})
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestApply_ClampsRange(t *testing.T) {
	b := New("ab")
	b.Apply(TextEdit{
		Range: Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 9, GraphemeCol: 9}},
		Text:  "X",
	})
	if got, want := b.Text(), "aX"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestDocumentRange(t *testing.T) {
	b := New("ab\ncde")
	want := Range{Start: Pos{Row: 0, GraphemeCol: 0}, End: Pos{Row: 1, GraphemeCol: 3}}
	if got := b.DocumentRange(); got != want {
		t.Fatalf("DocumentRange()=%v, want %v", got, want)
	}
}

func TestSetText_ReplacesWholeDocument(t *testing.T) {
	b := New("old\ntext")
	v := b.Version()

	b.SetText("new")
	if got, want := b.Text(), "new"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}

	b.SetText("new")
	if got := b.Version(); got != v+1 {
		t.Fatalf("version after same-text SetText=%d, want %d", got, v+1)
	}
}
