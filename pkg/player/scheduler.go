package player

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/user/termplay/pkg/charmap"
	"github.com/user/termplay/pkg/ports"
	"github.com/user/termplay/pkg/render"
)

// SyncConfig bounds the per-frame drift decisions.
type SyncConfig struct {
	// ToleranceEarly is how far ahead of the playback position a frame
	// may be and still render immediately. Beyond it the scheduler waits.
	ToleranceEarly time.Duration
	// ToleranceLate is how far behind the playback position a frame may
	// be and still render. Beyond it the frame is a drop candidate.
	ToleranceLate time.Duration
	// MaxConsecutiveDrops caps the catch-up loop. Once reached the next
	// frame renders even if it is still late.
	MaxConsecutiveDrops int
	// AllowFrameSkip enables dropping late frames at all. When false
	// every frame renders and playback slows instead of skipping.
	AllowFrameSkip bool
	// WakeEpsilon is subtracted from waits so the scheduler wakes just
	// before the deadline rather than just after.
	WakeEpsilon time.Duration
	// StarvationPoll is the retry interval while the decoder has not
	// produced the next frame yet.
	StarvationPoll time.Duration
}

// DefaultSyncConfig returns the tolerances used when none are configured.
func DefaultSyncConfig() SyncConfig {
	return SyncConfig{
		ToleranceEarly:      100 * time.Millisecond,
		ToleranceLate:       50 * time.Millisecond,
		MaxConsecutiveDrops: 5,
		AllowFrameSkip:      true,
		WakeEpsilon:         2 * time.Millisecond,
		StarvationPoll:      10 * time.Millisecond,
	}
}

// Action is what the scheduler does with a frame on one tick.
type Action int

const (
	ActionRender Action = iota
	ActionWait
	ActionDrop
)

func (a Action) String() string {
	switch a {
	case ActionRender:
		return "render"
	case ActionWait:
		return "wait"
	case ActionDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// Decision is the outcome of classifying one frame.
type Decision struct {
	Action Action
	// Delay is how long to sleep before re-evaluating, for ActionWait.
	Delay time.Duration
}

// Decide classifies a frame timestamp against the current playback
// position. Positive drift means the frame is early, negative means
// late. Frames on either tolerance boundary render.
func Decide(pts, pos time.Duration, consecutiveDrops int, cfg SyncConfig) Decision {
	drift := pts - pos
	if drift > cfg.ToleranceEarly {
		return Decision{Action: ActionWait, Delay: drift - cfg.WakeEpsilon}
	}
	if drift < -cfg.ToleranceLate && cfg.AllowFrameSkip && consecutiveDrops < cfg.MaxConsecutiveDrops {
		return Decision{Action: ActionDrop}
	}
	return Decision{Action: ActionRender}
}

// Counters accumulates playback statistics for the session summary.
type Counters struct {
	Rendered int
	Dropped  int
	Starved  int
	Loops    int
	Seeks    int
	// MaxLag is the worst lateness observed at render time.
	MaxLag time.Duration
}

// SchedulerConfig carries the playback knobs the scheduler owns.
type SchedulerConfig struct {
	Sync SyncConfig
	// Loop restarts playback from the beginning at end of stream.
	Loop bool
	// HoldOnFinish keeps the last frame on screen after the end of the
	// stream and serves commands until stopped. Used for still images.
	HoldOnFinish bool
	// WidthModifier compensates for character cells being taller than
	// wide when deriving the grid size from the terminal size.
	WidthModifier int
	CharMap       int
	Grayscale     bool
	Volume        float64
	// DrainTimeout caps how long the scheduler waits for the audio tail
	// after the last frame rendered.
	DrainTimeout time.Duration
	DrainPoll    time.Duration
}

// Scheduler drives playback: it pulls frames, measures their drift
// against the audio position (or the fallback clock), and renders,
// waits or drops accordingly. Transport commands are applied between
// ticks.
type Scheduler struct {
	cfg      SchedulerConfig
	log      ports.Logger
	source   ports.FrameSource
	audio    ports.AudioSink // nil when playing without sound
	clock    ports.Clock
	renderer ports.FrameRenderer
	colorEnc ports.GridEncoder
	grayEnc  ports.GridEncoder
	screen   ports.Screen
	sink     ports.DebugSink
	commands <-chan Command

	state     atomic.Int32
	opts      ports.RenderOptions
	grayscale bool
	loop      bool
	muted     bool
	volume    float64
	drops     int
	seekGen   int
	pausePos  time.Duration
	starving  bool
	last      *ports.Frame
	counters  Counters
}

func (s *Scheduler) setState(st State) {
	s.state.Store(int32(st))
}

// State reports the current transport state. Safe to call from other
// goroutines.
func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// now returns the playback position: the audio clock when a sink is
// attached, the fallback clock otherwise.
func (s *Scheduler) now() time.Duration {
	if s.audio != nil {
		return s.audio.Position()
	}
	if s.State() == StatePaused {
		return s.pausePos
	}
	return s.clock.Now()
}

// Run plays the stream to completion, a stop command, or context
// cancellation. It returns the accumulated counters either way.
func (s *Scheduler) Run(ctx context.Context) (Counters, error) {
	s.setState(StatePlaying)
	defer s.setState(StateStopped)

	for {
		select {
		case <-ctx.Done():
			return s.counters, ctx.Err()
		default:
		}

		quit, err := s.drainCommands()
		if err != nil || quit {
			return s.counters, err
		}

		if s.State() == StatePaused {
			quit, err := s.waitPaused(ctx)
			if err != nil || quit {
				return s.counters, err
			}
			continue
		}

		frame, ok := s.source.Next()
		if !ok {
			if s.source.Finished() {
				done, err := s.finish(ctx)
				if err != nil || done {
					return s.counters, err
				}
				continue
			}
			quit, err := s.pollStarved(ctx)
			if err != nil || quit {
				return s.counters, err
			}
			continue
		}
		s.starving = false

		quit, err = s.present(ctx, frame)
		if err != nil || quit {
			return s.counters, err
		}
	}
}

// present holds one frame through the decide loop until it renders, is
// dropped in favor of a successor, or playback is interrupted.
func (s *Scheduler) present(ctx context.Context, frame *ports.Frame) (bool, error) {
	gen := s.seekGen
	pos := s.now()
	for {
		d := Decide(frame.PTS, pos, s.drops, s.cfg.Sync)
		switch d.Action {
		case ActionWait:
			quit, err := s.sleep(ctx, d.Delay)
			if err != nil || quit {
				return quit, err
			}
			if s.State() == StatePaused {
				quit, err := s.waitPaused(ctx)
				if err != nil || quit {
					return quit, err
				}
			}
			if s.seekGen != gen {
				// A seek flushed the source; the held frame is stale.
				return false, nil
			}
			pos = s.now()

		case ActionDrop:
			s.drops++
			s.counters.Dropped++
			next, ok := s.source.Next()
			if !ok {
				return false, nil
			}
			// Successors are judged against the position that triggered
			// the drop, so one slow render cannot cascade unbounded.
			frame = next

		case ActionRender:
			if lag := pos - frame.PTS; lag > s.counters.MaxLag {
				s.counters.MaxLag = lag
			}
			s.render(frame)
			s.drops = 0
			return false, nil
		}
	}
}

func (s *Scheduler) render(frame *ports.Frame) {
	grid := s.renderer.Render(frame, s.opts)
	enc := s.colorEnc
	if s.grayscale {
		enc = s.grayEnc
	}
	payload := enc.Encode(grid)
	if err := s.screen.Write(payload); err != nil {
		s.log.Warn("Failed to write frame to terminal: %s", err)
	}
	s.last = frame
	s.counters.Rendered++

	if s.sink.Enabled() {
		if err := s.sink.SaveGridText(frame.Index, payload); err != nil {
			s.log.Warn("Failed to save frame text: %s", err)
		}
		if err := s.sink.SaveGridImage(frame.Index, grid); err != nil {
			s.log.Warn("Failed to save frame image: %s", err)
		}
	}
}

// rerender repaints the held frame so visual commands take effect while
// no new frames are flowing (paused, or holding a still image).
func (s *Scheduler) rerender() {
	if s.last == nil {
		return
	}
	if st := s.State(); st != StatePaused && !(st == StatePlaying && s.source.Finished()) {
		return
	}
	grid := s.renderer.Render(s.last, s.opts)
	enc := s.colorEnc
	if s.grayscale {
		enc = s.grayEnc
	}
	if err := s.screen.Write(enc.Encode(grid)); err != nil {
		s.log.Warn("Failed to write frame to terminal: %s", err)
	}
}

// sleep waits for d, remaining responsive to commands and cancellation.
func (s *Scheduler) sleep(ctx context.Context, d time.Duration) (bool, error) {
	if d <= 0 {
		return false, nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-t.C:
		return false, nil
	case cmd := <-s.commands:
		return s.apply(cmd)
	}
}

func (s *Scheduler) pollStarved(ctx context.Context) (bool, error) {
	if !s.starving {
		s.starving = true
		s.log.Debug("Waiting for the decoder to catch up")
	}
	s.counters.Starved++
	t := time.NewTimer(s.cfg.Sync.StarvationPoll)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-t.C:
		return false, nil
	case cmd := <-s.commands:
		return s.apply(cmd)
	}
}

func (s *Scheduler) drainCommands() (bool, error) {
	for {
		select {
		case cmd := <-s.commands:
			quit, err := s.apply(cmd)
			if quit || err != nil {
				return quit, err
			}
		default:
			return false, nil
		}
	}
}

func (s *Scheduler) waitPaused(ctx context.Context) (bool, error) {
	for s.State() == StatePaused {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case cmd := <-s.commands:
			quit, err := s.apply(cmd)
			if quit || err != nil {
				return quit, err
			}
		}
	}
	return false, nil
}

// finish handles the end of the stream: loop restart, hold for still
// images, or drain the audio tail and stop.
func (s *Scheduler) finish(ctx context.Context) (bool, error) {
	if s.loop {
		if err := s.source.Rewind(); err != nil {
			return true, fmt.Errorf("rewind source: %w", err)
		}
		if s.audio != nil {
			s.audio.Flush()
			s.audio.SetPosition(0)
		}
		s.clock.Reset()
		s.drops = 0
		s.seekGen++
		s.counters.Loops++
		s.log.Debug("Looping back to the start")
		return false, nil
	}

	if s.cfg.HoldOnFinish {
		return true, s.hold(ctx)
	}

	return true, s.drainAudio(ctx)
}

// hold keeps the last frame up and serves commands until stopped.
func (s *Scheduler) hold(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-s.commands:
			quit, err := s.apply(cmd)
			if quit || err != nil {
				return err
			}
		}
	}
}

// drainAudio waits for queued audio to finish playing after the last
// frame, bounded by DrainTimeout.
func (s *Scheduler) drainAudio(ctx context.Context) error {
	if s.audio == nil {
		return nil
	}
	deadline := time.Now().Add(s.cfg.DrainTimeout)
	for time.Now().Before(deadline) {
		if s.audio.Drained() {
			return nil
		}
		t := time.NewTimer(s.cfg.DrainPoll)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case cmd := <-s.commands:
			t.Stop()
			quit, err := s.apply(cmd)
			if quit || err != nil {
				return err
			}
		case <-t.C:
		}
	}
	s.log.Warn("Gave up waiting for audio to finish")
	return nil
}

// apply executes one transport command. It reports whether playback
// should stop.
func (s *Scheduler) apply(cmd Command) (bool, error) {
	switch cmd.Kind {
	case CmdStop:
		s.log.Debug("Stop requested")
		return true, nil

	case CmdPlay:
		s.resume()
	case CmdPause:
		s.pause()
	case CmdTogglePause:
		if s.State() == StatePaused {
			s.resume()
		} else {
			s.pause()
		}

	case CmdSeekBy:
		s.seek(s.now() + cmd.Seek)
	case CmdSeekTo:
		s.seek(cmd.Seek)

	case CmdMute:
		s.setMuted(true)
	case CmdUnmute:
		s.setMuted(false)
	case CmdToggleMute:
		s.setMuted(!s.muted)

	case CmdSetVolume:
		s.setVolume(cmd.Volume)
	case CmdAdjustVolume:
		s.setVolume(s.volume + cmd.Volume)

	case CmdSetCharMap:
		s.opts.CharMapIndex = cmd.CharMap
		s.log.Debug("Character map: %s", charmap.Name(s.opts.CharMapIndex))
		s.rerender()
	case CmdCycleCharMap:
		s.opts.CharMapIndex++
		s.log.Debug("Character map: %s", charmap.Name(s.opts.CharMapIndex))
		s.rerender()

	case CmdToggleGrayscale:
		s.grayscale = !s.grayscale
		s.rerender()

	case CmdToggleLoop:
		s.loop = !s.loop
		if s.loop {
			s.log.Debug("Loop enabled")
		} else {
			s.log.Debug("Loop disabled")
		}

	case CmdResize:
		s.opts.Width, s.opts.Height = render.TargetSize(cmd.Cols, cmd.Rows, s.cfg.WidthModifier)
		s.rerender()
	}
	return false, nil
}

func (s *Scheduler) pause() {
	if s.State() != StatePlaying {
		return
	}
	if s.audio != nil {
		s.audio.SetPaused(true)
	} else {
		s.pausePos = s.clock.Now()
	}
	s.setState(StatePaused)
	s.log.Debug("Playback paused")
}

func (s *Scheduler) resume() {
	if s.State() != StatePaused {
		return
	}
	if s.audio != nil {
		s.audio.SetPaused(false)
	} else {
		// Re-base the fallback clock so the pause does not count as lag.
		s.clock.Set(s.pausePos)
	}
	s.setState(StatePlaying)
	s.log.Debug("Playback resumed")
}

// seek moves playback to target, flushing the source and the audio
// queue. The previous transport state is restored afterwards; a seek
// while paused renders one frame at the target.
func (s *Scheduler) seek(target time.Duration) {
	if target < 0 {
		target = 0
	}
	prev := s.State()
	s.setState(StateSeeking)

	if err := s.source.Seek(target); err != nil {
		s.log.Warn("Seek failed: %s", err)
		s.setState(prev)
		return
	}
	if s.audio != nil {
		s.audio.Flush()
		s.audio.SetPosition(target)
	}
	s.clock.Set(target)
	if prev == StatePaused {
		s.pausePos = target
	}
	s.drops = 0
	s.seekGen++
	s.counters.Seeks++
	s.log.Debug("Seeked to %s", target.Truncate(time.Millisecond))

	if prev == StatePaused {
		if frame, ok := s.nextWithin(500 * time.Millisecond); ok {
			s.render(frame)
		}
	}
	s.setState(prev)
}

// nextWithin polls the source for the next frame for up to budget,
// covering the decoder restart after a seek.
func (s *Scheduler) nextWithin(budget time.Duration) (*ports.Frame, bool) {
	deadline := time.Now().Add(budget)
	for {
		if frame, ok := s.source.Next(); ok {
			return frame, true
		}
		if s.source.Finished() || !time.Now().Before(deadline) {
			return nil, false
		}
		time.Sleep(s.cfg.Sync.StarvationPoll)
	}
}

func (s *Scheduler) setMuted(muted bool) {
	s.muted = muted
	if s.audio != nil {
		s.audio.SetMuted(muted)
	}
	if muted {
		s.log.Debug("Muted")
	} else {
		s.log.Debug("Unmuted")
	}
}

func (s *Scheduler) setVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 2 {
		v = 2
	}
	s.volume = v
	if s.audio != nil {
		s.audio.SetVolume(v)
	}
	s.log.Debug("Volume: %d%%", int(v*100))
}
