package editor

import "testing"

func TestWordCount(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two  three", 3},
		{"line one\nline two", 4},
		{"**bold** text", 2},
	}
	for _, tc := range cases {
		if got := WordCount(tc.text); got != tc.want {
			t.Fatalf("WordCount(%q)=%d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestGraphemeCount(t *testing.T) {
	if got := GraphemeCount("abc"); got != 3 {
		t.Fatalf("count=%d, want 3", got)
	}
	// Combining accent joins with the base letter.
	if got := GraphemeCount("éx"); got != 2 {
		t.Fatalf("count=%d, want 2", got)
	}
}
