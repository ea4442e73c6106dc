package buffer

import "testing"

func TestComparePos(t *testing.T) {
	cases := []struct {
		a, b Pos
		want int
	}{
		{a: Pos{Row: 0, GraphemeCol: 0}, b: Pos{Row: 0, GraphemeCol: 0}, want: 0},
		{a: Pos{Row: 0, GraphemeCol: 1}, b: Pos{Row: 0, GraphemeCol: 2}, want: -1},
		{a: Pos{Row: 1, GraphemeCol: 0}, b: Pos{Row: 0, GraphemeCol: 9}, want: 1},
		{a: Pos{Row: 2, GraphemeCol: 3}, b: Pos{Row: 2, GraphemeCol: 1}, want: 1},
	}
	for _, tc := range cases {
		if got := ComparePos(tc.a, tc.b); got != tc.want {
			t.Fatalf("ComparePos(%v, %v)=%d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNormalizeRange_SwapsReversed(t *testing.T) {
	r := Range{Start: Pos{Row: 1, GraphemeCol: 2}, End: Pos{Row: 0, GraphemeCol: 5}}
	got := NormalizeRange(r)
	want := Range{Start: Pos{Row: 0, GraphemeCol: 5}, End: Pos{Row: 1, GraphemeCol: 2}}
	if got != want {
		t.Fatalf("normalized=%v, want %v", got, want)
	}
}

func TestClampPos(t *testing.T) {
	lineLen := func(row int) int { return []int{3, 0, 5}[row] }

	cases := []struct {
		in   Pos
		want Pos
	}{
		{in: Pos{Row: -1, GraphemeCol: -1}, want: Pos{Row: 0, GraphemeCol: 0}},
		{in: Pos{Row: 0, GraphemeCol: 99}, want: Pos{Row: 0, GraphemeCol: 3}},
		{in: Pos{Row: 1, GraphemeCol: 2}, want: Pos{Row: 1, GraphemeCol: 0}},
		{in: Pos{Row: 9, GraphemeCol: 9}, want: Pos{Row: 2, GraphemeCol: 5}},
	}
	for _, tc := range cases {
		if got := ClampPos(tc.in, 3, lineLen); got != tc.want {
			t.Fatalf("ClampPos(%v)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClampPos_EmptyDocument(t *testing.T) {
	got := ClampPos(Pos{Row: 5, GraphemeCol: 5}, 0, nil)
	if got != (Pos{Row: 0, GraphemeCol: 0}) {
		t.Fatalf("ClampPos on empty doc=%v, want origin", got)
	}
}
