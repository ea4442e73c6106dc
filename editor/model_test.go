package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkmark/inkmark/buffer"
)

func TestModel_New_StartsFocused(t *testing.T) {
	m := New(Config{Text: "hi"})
	if !m.Focused() {
		t.Fatalf("new model blurred, want focused")
	}
	if got := m.Buffer().Text(); got != "hi" {
		t.Fatalf("text=%q, want %q", got, "hi")
	}
}

func TestModel_FocusBlur(t *testing.T) {
	m := New(Config{Text: "hi"})
	m = m.Blur()
	if m.Focused() {
		t.Fatalf("focused after Blur")
	}

	// A blurred editor ignores keys.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if got := m.Buffer().Text(); got != "hi" {
		t.Fatalf("text=%q, want %q", got, "hi")
	}

	m = m.Focus()
	if !m.Focused() {
		t.Fatalf("blurred after Focus")
	}
}

func TestModel_SetSize_ClampsNegative(t *testing.T) {
	m := New(Config{Text: "hi"})
	m = m.SetSize(-4, -2)
	if m.viewport.Width != 0 || m.viewport.Height != 0 {
		t.Fatalf("size=%dx%d, want 0x0", m.viewport.Width, m.viewport.Height)
	}
}

func TestModel_WindowSizeMsg_Resizes(t *testing.T) {
	m := New(Config{Text: "hi"})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if m.viewport.Width != 40 || m.viewport.Height != 10 {
		t.Fatalf("size=%dx%d, want 40x10", m.viewport.Width, m.viewport.Height)
	}
}

func TestModel_FollowsCursorPastViewportBottom(t *testing.T) {
	text := strings.TrimSuffix(strings.Repeat("line\n", 20), "\n")
	m := New(Config{Text: text})
	m = m.SetSize(40, 5)

	m.Buffer().Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirDown})
	m, _ = m.Update(struct{}{})

	want := 20 - 5
	if m.viewport.YOffset != want {
		t.Fatalf("yoffset=%d, want %d", m.viewport.YOffset, want)
	}
}

func TestModel_FollowsCursorBackToTop(t *testing.T) {
	text := strings.TrimSuffix(strings.Repeat("line\n", 20), "\n")
	m := New(Config{Text: text})
	m = m.SetSize(40, 5)

	m.Buffer().Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirDown})
	m, _ = m.Update(struct{}{})
	m.Buffer().Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirUp})
	m, _ = m.Update(struct{}{})

	if m.viewport.YOffset != 0 {
		t.Fatalf("yoffset=%d, want 0", m.viewport.YOffset)
	}
}

func TestModel_HostMutationSyncsView(t *testing.T) {
	m := New(Config{Text: "old"})
	m = m.SetSize(20, 3)

	m.Buffer().SetText("new text")
	m, _ = m.Update(struct{}{})

	if !strings.Contains(m.View(), "new text") {
		t.Fatalf("view does not show host mutation:\n%s", m.View())
	}
}
