// Package termscreen drives the real terminal: raw mode, the alternate
// screen buffer, frame writes and keyboard capture.
package termscreen

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/user/termplay/pkg/ports"
)

// ErrNotTerminal indicates stdout is not attached to a terminal.
var ErrNotTerminal = errors.New("termscreen: stdout is not a terminal")

const (
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	clearScreen    = "\x1b[2J\x1b[H"
)

// Screen implements ports.Screen over stdin/stdout.
type Screen struct {
	in  *os.File
	out *os.File

	mu       sync.Mutex
	oldState *term.State
	events   chan ports.KeyEvent
	done     chan struct{}
}

var _ ports.Screen = (*Screen)(nil)

// New creates a screen over the process's standard streams.
func New() *Screen {
	return &Screen{
		in:     os.Stdin,
		out:    os.Stdout,
		events: make(chan ports.KeyEvent, 16),
	}
}

// Setup enters raw mode and the alternate screen, hides the cursor and
// starts the input reader.
func (s *Screen) Setup() error {
	if !term.IsTerminal(int(s.out.Fd())) {
		return ErrNotTerminal
	}

	state, err := term.MakeRaw(int(s.in.Fd()))
	if err != nil {
		return fmt.Errorf("termscreen: enter raw mode: %w", err)
	}

	s.mu.Lock()
	s.oldState = state
	s.done = make(chan struct{})
	s.mu.Unlock()

	fmt.Fprint(s.out, enterAltScreen+hideCursor+clearScreen)
	go s.readKeys()
	return nil
}

// Restore leaves the alternate screen and returns the terminal to its
// previous mode. Safe to call repeatedly and after a partial Setup.
func (s *Screen) Restore() error {
	s.mu.Lock()
	state := s.oldState
	s.oldState = nil
	done := s.done
	s.done = nil
	s.mu.Unlock()

	if done != nil {
		close(done)
	}
	if state == nil {
		return nil
	}
	fmt.Fprint(s.out, showCursor+leaveAltScreen)
	if err := term.Restore(int(s.in.Fd()), state); err != nil {
		return fmt.Errorf("termscreen: restore terminal: %w", err)
	}
	return nil
}

// Size reports the terminal dimensions in character cells.
func (s *Screen) Size() (int, int, error) {
	cols, rows, err := term.GetSize(int(s.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("termscreen: terminal size: %w", err)
	}
	return cols, rows, nil
}

// Write draws one complete frame.
func (s *Screen) Write(frame []byte) error {
	if _, err := s.out.Write(frame); err != nil {
		return fmt.Errorf("termscreen: write frame: %w", err)
	}
	return nil
}

// Events returns the keyboard event stream.
func (s *Screen) Events() <-chan ports.KeyEvent {
	return s.events
}

// SetTitle sets the terminal window title with an OSC sequence.
func (s *Screen) SetTitle(title string) {
	fmt.Fprintf(s.out, "\x1b]0;%s\x07", title)
}

// readKeys turns raw stdin bytes into key events until Restore. Arrow
// keys arrive as three-byte CSI sequences; a lone escape byte is the
// Escape key.
func (s *Screen) readKeys() {
	buf := make([]byte, 64)
	for {
		n, err := s.in.Read(buf)
		if err != nil {
			return
		}

		s.mu.Lock()
		done := s.done
		s.mu.Unlock()
		if done == nil {
			return
		}

		for _, ev := range parseKeys(buf[:n]) {
			select {
			case s.events <- ev:
			case <-done:
				return
			default:
				// Input faster than the player consumes it; drop.
			}
		}
	}
}

// parseKeys decodes a chunk of raw input bytes into key events.
func parseKeys(b []byte) []ports.KeyEvent {
	var events []ports.KeyEvent
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c == 0x03:
			events = append(events, ports.KeyEvent{Key: ports.KeyCtrlC})
		case c == 0x1b:
			if i+2 < len(b) && b[i+1] == '[' {
				var key ports.Key
				switch b[i+2] {
				case 'A':
					key = ports.KeyUp
				case 'B':
					key = ports.KeyDown
				case 'C':
					key = ports.KeyRight
				case 'D':
					key = ports.KeyLeft
				default:
					i += 2
					continue
				}
				events = append(events, ports.KeyEvent{Key: key})
				i += 2
				continue
			}
			events = append(events, ports.KeyEvent{Key: ports.KeyEscape})
		case c >= 0x20 && c < 0x7f:
			events = append(events, ports.KeyEvent{Key: ports.KeyRune, Rune: rune(c)})
		}
	}
	return events
}
