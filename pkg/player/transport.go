package player

import (
	"time"

	"github.com/user/termplay/pkg/ports"
)

// CommandForKey translates a key event into a transport command.
// Returns false for keys with no binding.
//
//	space        toggle pause
//	q, Esc, ^C   stop
//	left/right   seek backward/forward
//	up/down, +/- volume
//	m            toggle mute
//	g            toggle grayscale
//	c            cycle character maps
//	0-9          select a character map
//	l            toggle looping
func CommandForKey(ev ports.KeyEvent, seekStep time.Duration, volumeStep float64) (Command, bool) {
	switch ev.Key {
	case ports.KeyEscape, ports.KeyCtrlC:
		return Command{Kind: CmdStop}, true
	case ports.KeyLeft:
		return Command{Kind: CmdSeekBy, Seek: -seekStep}, true
	case ports.KeyRight:
		return Command{Kind: CmdSeekBy, Seek: seekStep}, true
	case ports.KeyUp:
		return Command{Kind: CmdAdjustVolume, Volume: volumeStep}, true
	case ports.KeyDown:
		return Command{Kind: CmdAdjustVolume, Volume: -volumeStep}, true
	case ports.KeyRune:
		switch ev.Rune {
		case ' ':
			return Command{Kind: CmdTogglePause}, true
		case 'q', 'Q':
			return Command{Kind: CmdStop}, true
		case 'm', 'M':
			return Command{Kind: CmdToggleMute}, true
		case 'g', 'G':
			return Command{Kind: CmdToggleGrayscale}, true
		case 'c', 'C':
			return Command{Kind: CmdCycleCharMap}, true
		case 'l', 'L':
			return Command{Kind: CmdToggleLoop}, true
		case '+', '=':
			return Command{Kind: CmdAdjustVolume, Volume: volumeStep}, true
		case '-', '_':
			return Command{Kind: CmdAdjustVolume, Volume: -volumeStep}, true
		}
		if ev.Rune >= '0' && ev.Rune <= '9' {
			return Command{Kind: CmdSetCharMap, CharMap: int(ev.Rune - '0')}, true
		}
	}
	return Command{}, false
}
