package ports

// Key identifies a non-printable key in a KeyEvent.
type Key int

const (
	KeyRune Key = iota // printable character, see KeyEvent.Rune
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
	KeyCtrlC
)

// KeyEvent is a single keyboard input event captured by the screen.
type KeyEvent struct {
	Key  Key
	Rune rune // valid when Key == KeyRune
}

// Screen abstracts the terminal the player draws to.
type Screen interface {
	// Setup switches the terminal into playback mode: raw input, the
	// alternate screen buffer, hidden cursor.
	Setup() error

	// Restore returns the terminal to its normal state. It must be safe
	// to call after a partial Setup and on every exit path.
	Restore() error

	// Size returns the terminal dimensions in character cells.
	Size() (cols, rows int, err error)

	// Write draws one complete frame. Calls are serialized by the caller;
	// a slow terminal therefore throttles the whole pipeline.
	Write(frame []byte) error

	// Events returns the stream of keyboard events. The channel closes
	// when input capture stops.
	Events() <-chan KeyEvent

	// SetTitle sets the terminal window title.
	SetTitle(title string)
}
