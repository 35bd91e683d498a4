package core

import "testing"

func TestCommandFramePush(t *testing.T) {
	var f CommandFrame
	f.Push(Cmd(CommandTurnLeft))
	f.Push(Cmd(CommandNone))
	f.Push(Command{Kind: CommandMoveForward, Magnitude: 3})

	if f.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2 (CommandNone is dropped)", f.Len())
	}
	if f.Commands[0].Kind != CommandTurnLeft || f.Commands[1].Kind != CommandMoveForward {
		t.Errorf("commands should keep push order, got %v", f.Commands)
	}
	if f.Commands[1].Magnitude != 3 {
		t.Errorf("Magnitude = %f, expected 3", f.Commands[1].Magnitude)
	}
}

func TestCommandFrameClear(t *testing.T) {
	var f CommandFrame
	f.Push(Cmd(CommandMoveBackward))
	f.Clear()

	if f.Len() != 0 {
		t.Errorf("Clear should empty the frame, got %d commands", f.Len())
	}
	f.Push(Cmd(CommandTurnRight))
	if f.Len() != 1 || f.Commands[0].Kind != CommandTurnRight {
		t.Errorf("frame should be reusable after Clear, got %v", f.Commands)
	}
}

func TestCommandKindString(t *testing.T) {
	tests := map[CommandKind]string{
		CommandNone:         "None",
		CommandMoveForward:  "MoveForward",
		CommandMoveBackward: "MoveBackward",
		CommandTurnLeft:     "TurnLeft",
		CommandTurnRight:    "TurnRight",
		CommandKind(99):     "Unknown",
	}
	for kind, expected := range tests {
		if kind.String() != expected {
			t.Errorf("%d.String() = %q, expected %q", int(kind), kind.String(), expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("bright_white")
	if !ok || c != ColorBrightWhite {
		t.Errorf("ParseColor(bright_white) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("ParseColor should reject unknown names")
	}
	if ColorDarkGray.String() != "dark_gray" {
		t.Errorf("ColorDarkGray.String() = %q", ColorDarkGray.String())
	}
}
