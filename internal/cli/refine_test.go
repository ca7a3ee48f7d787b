package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestSelectModelNavigation(t *testing.T) {
	m := newSelectModel("Pick one", []string{"a", "b", "c"}, 0)

	next, _ := m.Update(key("down"))
	m = next.(selectModel)
	next, _ = m.Update(key("j"))
	m = next.(selectModel)
	if m.Cursor != 2 {
		t.Fatalf("cursor = %d, want 2", m.Cursor)
	}

	// Can't move past the last option.
	next, _ = m.Update(key("down"))
	m = next.(selectModel)
	if m.Cursor != 2 {
		t.Fatalf("cursor = %d, want 2 after clamping", m.Cursor)
	}

	next, _ = m.Update(key("enter"))
	m = next.(selectModel)
	if m.Choice != "c" {
		t.Errorf("choice = %q, want c", m.Choice)
	}
}

func TestSelectModelDefaultCursor(t *testing.T) {
	m := newSelectModel("Pick one", []string{"a", "b"}, 1)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor)
	}

	m = newSelectModel("Pick one", []string{"a", "b"}, 5)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0 for out-of-range default", m.Cursor)
	}
}

func TestSelectModelAbort(t *testing.T) {
	m := newSelectModel("Pick one", []string{"a"}, 0)
	next, _ := m.Update(key("esc"))
	m = next.(selectModel)
	if !m.Aborted {
		t.Error("esc did not abort")
	}
}

func TestSelectModelView(t *testing.T) {
	m := newSelectModel("Pick one", []string{"first", "second"}, 0)
	view := m.View()
	if !strings.Contains(view, "Pick one") {
		t.Error("view missing question")
	}
	if !strings.Contains(view, "first") || !strings.Contains(view, "second") {
		t.Error("view missing options")
	}
}

func TestConfirmModelKeys(t *testing.T) {
	tests := []struct {
		name  string
		start bool
		key   string
		want  bool
	}{
		{"y selects yes", false, "y", true},
		{"n selects no", true, "n", false},
		{"enter keeps default yes", true, "enter", true},
		{"enter keeps default no", false, "enter", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := confirmModel{Question: "Sure?", Value: tt.start}
			next, _ := m.Update(key(tt.key))
			m = next.(confirmModel)
			if !m.Decided {
				t.Fatal("not decided")
			}
			if m.Value != tt.want {
				t.Errorf("value = %v, want %v", m.Value, tt.want)
			}
		})
	}
}

func TestConfirmModelToggle(t *testing.T) {
	m := confirmModel{Value: false}
	next, _ := m.Update(key("tab"))
	m = next.(confirmModel)
	if !m.Value {
		t.Error("tab did not toggle")
	}
}

func TestTitleWord(t *testing.T) {
	if got := titleWord("heroku"); got != "Heroku" {
		t.Errorf("titleWord = %q", got)
	}
	if got := titleWord(""); got != "" {
		t.Errorf("titleWord(\"\") = %q", got)
	}
	if got := orNone(""); got != "Not specified" {
		t.Errorf("orNone(\"\") = %q", got)
	}
}
