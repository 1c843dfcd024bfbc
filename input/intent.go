package input

// IntentType discriminates semantic actions decoded from key and window events
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // q, Esc, Ctrl+C
	IntentReset      // r: draw a new puzzle
	IntentToggleMute // m
	IntentResize     // terminal resize event
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentReset:
		return "reset"
	case IntentToggleMute:
		return "toggle-mute"
	case IntentResize:
		return "resize"
	default:
		return "none"
	}
}

// Intent is a decoded non-pointer action
// Width and Height are set for IntentResize
type Intent struct {
	Type          IntentType
	Width, Height int
}
