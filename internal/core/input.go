package core

// Intent is a semantic input event, decoupled from the physical key that
// produced it.
type Intent int

const (
	IntentNone    Intent = iota
	IntentUp             // Up arrow, W
	IntentDown           // Down arrow, S
	IntentLeft           // Left arrow, A
	IntentRight          // Right arrow, D
	IntentRestart        // R, only meaningful on end screens
	IntentQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentUp:
		return "Up"
	case IntentDown:
		return "Down"
	case IntentLeft:
		return "Left"
	case IntentRight:
		return "Right"
	case IntentRestart:
		return "Restart"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the intent steers the snake.
func (i Intent) IsDirection() bool {
	return i >= IntentUp && i <= IntentRight
}
