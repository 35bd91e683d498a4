package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-raycast/internal/maps"
)

func TestSweepRows(t *testing.T) {
	s := classicScene(t)
	rows := SweepRows(s.Frame(60, 20))
	if len(rows) != 60 {
		t.Fatalf("len(rows) = %d, expected 60", len(rows))
	}
	first := rows[0]
	if first[0] != "0" || first[1] != "120.00" {
		t.Errorf("first row = %v, expected ray 0 at 120°", first)
	}
	for _, r := range rows {
		if r[2] == "miss" {
			t.Errorf("unexpected miss in closed map: %v", r)
		}
		if r[3] != "vertical" && r[3] != "horizontal" {
			t.Errorf("axis = %q", r[3])
		}
	}
}

func TestInspectResweepsOnTurn(t *testing.T) {
	s := classicScene(t)
	m := NewInspectModel(s, 80, 30)
	before := m.Frame().Columns[0].Hit.Angle

	next, _ := m.Update(runes("a"))
	m = next.(InspectModel)
	after := m.Frame().Columns[0].Hit.Angle
	if after <= before {
		t.Errorf("turning left should raise column 0 angle: %f -> %f", before, after)
	}

	if !strings.Contains(m.View(), "SWEEP") {
		t.Error("view missing title")
	}

	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if next.(InspectModel).View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestMenuSelect(t *testing.T) {
	levels, err := maps.Builtin()
	if err != nil {
		t.Fatal(err)
	}
	m := NewMenuModel(levels, "courtyard", 80, 24)
	if levels[m.cursor].ID != "courtyard" {
		t.Fatalf("cursor on %q, expected preselected courtyard", levels[m.cursor].ID)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if !strings.Contains(m.View(), "Select a map") {
		t.Error("view missing prompt")
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if cmd == nil || m.Selected() == nil {
		t.Fatal("enter did not select")
	}
	if m.Selected().ID != levels[1].ID {
		t.Errorf("selected %q, expected %q", m.Selected().ID, levels[1].ID)
	}
}

func TestMenuQuit(t *testing.T) {
	levels, _ := maps.Builtin()
	m := NewMenuModel(levels, "", 80, 24)
	next, cmd := m.Update(runes("q"))
	if cmd == nil || next.(MenuModel).Selected() != nil {
		t.Error("q should quit without a selection")
	}
}
