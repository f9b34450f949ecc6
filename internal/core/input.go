package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota // unrecognized input
	ActionUpLeft                  // Q
	ActionUp                      // W, Up arrow
	ActionUpRight                 // E
	ActionLeft                    // A, Left arrow
	ActionStay                    // S - let the zombies move
	ActionRight                   // D, Right arrow
	ActionDownLeft                // Z
	ActionDown                    // X, Down arrow
	ActionDownRight               // C
	ActionTeleport                // T - jump to a random empty cell
	ActionQuit                    // Ctrl+C - give up (counts as a loss)
)

// moveDeltas maps movement actions to their displacement.
var moveDeltas = map[Action]Point{
	ActionUpLeft:    {X: -1, Y: -1},
	ActionUp:        {X: 0, Y: -1},
	ActionUpRight:   {X: 1, Y: -1},
	ActionLeft:      {X: -1, Y: 0},
	ActionStay:      {X: 0, Y: 0},
	ActionRight:     {X: 1, Y: 0},
	ActionDownLeft:  {X: -1, Y: 1},
	ActionDown:      {X: 0, Y: 1},
	ActionDownRight: {X: 1, Y: 1},
}

// Delta returns the displacement for a movement action.
// The second result is false for actions that are not moves
// (teleport, quit, none).
func (a Action) Delta() (Point, bool) {
	d, ok := moveDeltas[a]
	return d, ok
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUpLeft:
		return "UpLeft"
	case ActionUp:
		return "Up"
	case ActionUpRight:
		return "UpRight"
	case ActionLeft:
		return "Left"
	case ActionStay:
		return "Stay"
	case ActionRight:
		return "Right"
	case ActionDownLeft:
		return "DownLeft"
	case ActionDown:
		return "Down"
	case ActionDownRight:
		return "DownRight"
	case ActionTeleport:
		return "Teleport"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
