package grapheme

import "testing"

const family = "\U0001F468‍\U0001F469‍\U0001F467‍\U0001F466"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
}

func TestSlice_GraphemeSafe(t *testing.T) {
	text := "a" + "é" + family + "b"
	if got, want := Slice(text, 1, 3), "é"+family; got != want {
		t.Fatalf("slice=%q, want %q", got, want)
	}
	if got := Slice(text, 5, 6); got != "" {
		t.Fatalf("slice past end=%q, want empty", got)
	}
}

func TestJoin_RoundTripsSplit(t *testing.T) {
	text := "héllo wörld"
	if got := Join(Split(text)); got != text {
		t.Fatalf("join(split)=%q, want %q", got, text)
	}
}

func TestWidth(t *testing.T) {
	if got := Width(""); got != 0 {
		t.Fatalf("empty width=%d, want 0", got)
	}
	if got := Width("abc"); got != 3 {
		t.Fatalf("ascii width=%d, want 3", got)
	}
	if got := Width("日"); got != 2 {
		t.Fatalf("wide rune width=%d, want 2", got)
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if !IsPunct("!") {
		t.Fatalf("exclamation should be punct")
	}
	if IsPunct("a") {
		t.Fatalf("letter should not be punct")
	}
}
