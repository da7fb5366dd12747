package player

import "time"

// CommandKind identifies a transport command.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdPlay
	CmdPause
	CmdTogglePause
	CmdStop
	CmdSeekTo
	CmdSeekBy
	CmdMute
	CmdUnmute
	CmdToggleMute
	CmdSetVolume
	CmdAdjustVolume
	CmdSetCharMap
	CmdCycleCharMap
	CmdToggleGrayscale
	CmdToggleLoop
	CmdResize
)

func (k CommandKind) String() string {
	switch k {
	case CmdPlay:
		return "play"
	case CmdPause:
		return "pause"
	case CmdTogglePause:
		return "toggle-pause"
	case CmdStop:
		return "stop"
	case CmdSeekTo:
		return "seek-to"
	case CmdSeekBy:
		return "seek-by"
	case CmdMute:
		return "mute"
	case CmdUnmute:
		return "unmute"
	case CmdToggleMute:
		return "toggle-mute"
	case CmdSetVolume:
		return "set-volume"
	case CmdAdjustVolume:
		return "adjust-volume"
	case CmdSetCharMap:
		return "set-charmap"
	case CmdCycleCharMap:
		return "cycle-charmap"
	case CmdToggleGrayscale:
		return "toggle-grayscale"
	case CmdToggleLoop:
		return "toggle-loop"
	case CmdResize:
		return "resize"
	default:
		return "none"
	}
}

// Command is a transport command with its payload. Commands are queued
// by the input loop and applied by the scheduler between ticks, never
// mid-render.
type Command struct {
	Kind CommandKind

	// Seek carries the target for CmdSeekTo and the delta for CmdSeekBy.
	Seek time.Duration
	// Volume carries the absolute value for CmdSetVolume and the delta
	// for CmdAdjustVolume.
	Volume float64
	// CharMap carries the ramp index for CmdSetCharMap.
	CharMap int
	// Cols and Rows carry the new terminal size for CmdResize.
	Cols, Rows int
}
