package player

// State is the scheduler's transport state.
type State int32

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
	StateSeeking
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateSeeking:
		return "seeking"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
