package core

// CommandKind is a discrete player command, abstracted from physical keys.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandMoveForward
	CommandMoveBackward
	CommandTurnLeft
	CommandTurnRight
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "None"
	case CommandMoveForward:
		return "MoveForward"
	case CommandMoveBackward:
		return "MoveBackward"
	case CommandTurnLeft:
		return "TurnLeft"
	case CommandTurnRight:
		return "TurnRight"
	default:
		return "Unknown"
	}
}

// Command is one player command. A zero Magnitude means "use the configured
// default step". Turn magnitudes are in degrees; they are converted to radians
// once, when the command is applied.
type Command struct {
	Kind      CommandKind
	Magnitude float64
}

// Cmd is a convenience constructor for a command with the default magnitude.
func Cmd(kind CommandKind) Command {
	return Command{Kind: kind}
}

// CommandFrame collects the commands issued during one frame, in order.
type CommandFrame struct {
	Commands []Command
}

// Push appends a command. CommandNone is ignored.
func (f *CommandFrame) Push(c Command) {
	if c.Kind == CommandNone {
		return
	}
	f.Commands = append(f.Commands, c)
}

// Len returns the number of queued commands.
func (f CommandFrame) Len() int {
	return len(f.Commands)
}

// Clear resets the frame for reuse, keeping its backing storage.
func (f *CommandFrame) Clear() {
	f.Commands = f.Commands[:0]
}
