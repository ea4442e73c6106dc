package preview

import (
	"strings"
	"testing"
)

func TestRenderer_RendersHeading(t *testing.T) {
	r, err := NewRenderer(60, "notty")
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	out, err := r.Render("# Title\n\nbody text")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "Title") {
		t.Fatalf("output missing heading text:\n%s", out)
	}
	if !strings.Contains(out, "body text") {
		t.Fatalf("output missing body text:\n%s", out)
	}
}

func TestRenderer_StripsMarkers(t *testing.T) {
	// The "dark" style renders strong text with ANSI bold; plain-text styles
	// like "notty" keep the literal markers instead.
	r, err := NewRenderer(60, "dark")
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	out, err := r.Render("**bold** word")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(out, "**") {
		t.Fatalf("markers survived rendering:\n%s", out)
	}
	if !strings.Contains(out, "bold") {
		t.Fatalf("output missing bold text:\n%s", out)
	}
}

func TestRenderer_SetWidthRebuilds(t *testing.T) {
	r, err := NewRenderer(80, "notty")
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if err := r.SetWidth(80); err != nil {
		t.Fatalf("SetWidth same width: %v", err)
	}
	if err := r.SetWidth(20); err != nil {
		t.Fatalf("SetWidth: %v", err)
	}
	out, err := r.Render("one two three four five six seven eight nine ten")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "\n") {
		t.Fatalf("narrow render did not wrap:\n%s", out)
	}
}
