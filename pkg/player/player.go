// Package player drives media playback in the terminal: it owns the
// scheduler that paces frames against the audio clock, the transport
// command loop, and the audio feeder.
package player

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ideamans/go-l10n"

	"github.com/user/termplay/pkg/charmap"
	"github.com/user/termplay/pkg/ports"
	"github.com/user/termplay/pkg/render"
	"github.com/user/termplay/pkg/stats"
)

// Config holds the playback configuration.
type Config struct {
	// Info describes the media being played, as reported by the prober.
	Info ports.MediaInfo
	// Title is shown in the terminal title bar.
	Title string

	Sync          SyncConfig
	Loop          bool
	CharMap       int
	Grayscale     bool
	WidthModifier int
	Volume        float64
	Muted         bool

	// SeekStep is the distance of one arrow-key seek.
	SeekStep time.Duration
	// VolumeStep is the increment of one volume-key press.
	VolumeStep float64

	// DrainTimeout caps the wait for the audio tail after the last frame.
	DrainTimeout time.Duration
	// DrainPoll is the completion poll interval.
	DrainPoll time.Duration

	// ColorMode names the encoder in the summary: ansi256, truecolor
	// or none.
	ColorMode string
}

// DefaultConfig returns the default playback configuration.
func DefaultConfig() Config {
	return Config{
		Sync:          DefaultSyncConfig(),
		WidthModifier: 2,
		Volume:        1.0,
		SeekStep:      5 * time.Second,
		VolumeStep:    0.1,
		DrainTimeout:  60 * time.Second,
		DrainPoll:     500 * time.Millisecond,
		ColorMode:     "ansi256",
	}
}

// Player wires the decoding source, audio sink, renderer and screen
// together and runs a playback session.
type Player struct {
	config   Config
	logger   ports.Logger
	source   ports.FrameSource
	samples  ports.SampleSource // nil when the media has no audio
	audio    ports.AudioSink    // nil when playing without sound
	clock    ports.Clock
	renderer ports.FrameRenderer
	colorEnc ports.GridEncoder
	grayEnc  ports.GridEncoder
	screen   ports.Screen
	sink     ports.DebugSink
}

// New creates a Player with the given configuration and adapters.
func New(
	config Config,
	logger ports.Logger,
	source ports.FrameSource,
	samples ports.SampleSource,
	audio ports.AudioSink,
	clock ports.Clock,
	renderer ports.FrameRenderer,
	colorEnc ports.GridEncoder,
	grayEnc ports.GridEncoder,
	screen ports.Screen,
	sink ports.DebugSink,
) *Player {
	return &Player{
		config:   config,
		logger:   logger,
		source:   source,
		samples:  samples,
		audio:    audio,
		clock:    clock,
		renderer: renderer,
		colorEnc: colorEnc,
		grayEnc:  grayEnc,
		screen:   screen,
		sink:     sink,
	}
}

// Run plays the media to completion or until stopped and returns the
// session summary.
func (p *Player) Run(ctx context.Context) (*stats.Summary, error) {
	start := time.Now()

	if err := p.screen.Setup(); err != nil {
		return nil, fmt.Errorf("set up terminal: %w", err)
	}
	defer func() {
		if err := p.screen.Restore(); err != nil {
			p.logger.Warn("Failed to restore terminal: %s", err)
		}
	}()
	if p.config.Title != "" {
		p.screen.SetTitle(p.config.Title)
	}

	cols, rows, err := p.screen.Size()
	if err != nil {
		p.logger.Warn("Could not determine terminal size: %s", err)
		cols, rows = 80, 24
	}

	if err := p.source.Start(ctx); err != nil {
		return nil, fmt.Errorf("start media source: %w", err)
	}
	defer func() {
		if err := p.source.Close(); err != nil {
			p.logger.Warn("Failed to close media source: %s", err)
		}
	}()

	if p.audio != nil {
		if err := p.audio.Start(); err != nil {
			// Keep playing without sound; the fallback clock paces video.
			p.logger.Warn("Audio device unavailable: %s", err)
			p.audio = nil
		} else {
			defer p.audio.Close()
			p.audio.SetVolume(p.config.Volume)
			if p.config.Muted {
				p.audio.SetMuted(true)
			}
			if p.samples != nil {
				go p.pumpAudio(ctx)
			}
		}
	}

	commands := make(chan Command, 16)
	go p.readInput(ctx, commands)
	go p.watchResize(ctx, commands, cols, rows)

	sched := p.newScheduler(commands, cols, rows)

	p.logger.Info(l10n.T("Starting playback"))
	var counters Counters
	var runErr error
	if p.config.Info.Type == ports.MediaTypeAudio {
		counters, runErr = p.runAudio(ctx, sched, commands)
	} else {
		counters, runErr = sched.Run(ctx)
	}
	if errors.Is(runErr, context.Canceled) {
		p.logger.Info(l10n.T("Interrupted, shutting down..."))
		runErr = nil
	}

	return p.buildSummary(counters, time.Since(start), sched), runErr
}

func (p *Player) newScheduler(commands <-chan Command, cols, rows int) *Scheduler {
	opts := ports.RenderOptions{CharMapIndex: p.config.CharMap}
	opts.Width, opts.Height = render.TargetSize(cols, rows, p.config.WidthModifier)

	return &Scheduler{
		cfg: SchedulerConfig{
			Sync:          p.config.Sync,
			Loop:          p.config.Loop,
			HoldOnFinish:  p.config.Info.Type == ports.MediaTypeImage,
			WidthModifier: p.config.WidthModifier,
			CharMap:       p.config.CharMap,
			Grayscale:     p.config.Grayscale,
			Volume:        p.config.Volume,
			DrainTimeout:  p.config.DrainTimeout,
			DrainPoll:     p.config.DrainPoll,
		},
		log:       p.logger.WithComponent("scheduler"),
		source:    p.source,
		audio:     p.audio,
		clock:     p.clock,
		renderer:  p.renderer,
		colorEnc:  p.colorEnc,
		grayEnc:   p.grayEnc,
		screen:    p.screen,
		sink:      p.sink,
		commands:  commands,
		opts:      opts,
		grayscale: p.config.Grayscale,
		loop:      p.config.Loop,
		muted:     p.config.Muted,
		volume:    p.config.Volume,
	}
}

// runAudio plays media without video frames. The scheduler is used only
// for its transport handling; completion is polled the same way the
// audio tail is drained for video.
func (p *Player) runAudio(ctx context.Context, sched *Scheduler, commands <-chan Command) (Counters, error) {
	sched.setState(StatePlaying)
	defer sched.setState(StateStopped)

	if p.audio == nil {
		p.logger.Warn(l10n.T("No audio device; nothing to play"))
		return sched.counters, nil
	}

	progress := time.NewTicker(500 * time.Millisecond)
	defer progress.Stop()
	p.drawProgress()

	for {
		t := time.NewTimer(p.config.DrainPoll)
		select {
		case <-ctx.Done():
			t.Stop()
			return sched.counters, ctx.Err()
		case cmd := <-commands:
			t.Stop()
			quit, err := sched.apply(cmd)
			if quit || err != nil {
				return sched.counters, err
			}
			p.drawProgress()
		case <-progress.C:
			t.Stop()
			p.drawProgress()
		case <-t.C:
			if !p.source.Finished() || !p.audio.Drained() {
				continue
			}
			if !sched.loop {
				return sched.counters, nil
			}
			if err := p.source.Rewind(); err != nil {
				return sched.counters, fmt.Errorf("rewind source: %w", err)
			}
			p.audio.SetPosition(0)
			sched.counters.Loops++
		}
	}
}

// drawProgress writes the audio-only progress line: a coarse bar plus
// position over duration.
func (p *Player) drawProgress() {
	cols, _, err := p.screen.Size()
	if err != nil || cols < 16 {
		cols = 80
	}
	line := formatProgress(p.audio.Position(), p.config.Info.Duration, cols)
	if err := p.screen.Write([]byte("\x1b[H" + line)); err != nil {
		p.logger.Warn("Failed to write progress line: %s", err)
	}
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

func formatProgress(pos, dur time.Duration, cols int) string {
	label := formatClock(pos) + " / " + formatClock(dur)
	width := cols - len(label) - 4
	if width < 10 {
		return label
	}
	filled := 0
	if dur > 0 {
		filled = int(int64(width) * int64(pos) / int64(dur))
		if filled > width {
			filled = width
		}
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "] " + label
}

// readInput translates key events into transport commands.
func (p *Player) readInput(ctx context.Context, commands chan<- Command) {
	events := p.screen.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			cmd, ok := CommandForKey(ev, p.config.SeekStep, p.config.VolumeStep)
			if !ok {
				continue
			}
			select {
			case commands <- cmd:
			case <-ctx.Done():
				return
			}
		}
	}
}

// watchResize polls the terminal size and queues a resize command when
// it changes, so the grid follows the window between ticks.
func (p *Player) watchResize(ctx context.Context, commands chan<- Command, cols, rows int) {
	t := time.NewTicker(500 * time.Millisecond)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c, r, err := p.screen.Size()
			if err != nil || (c == cols && r == rows) {
				continue
			}
			cols, rows = c, r
			select {
			case commands <- Command{Kind: CmdResize, Cols: c, Rows: r}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// pumpAudio moves decoded sample blocks into the audio sink. When the
// current channel ends it waits for a rewind or seek to publish a new
// one, so looped playback keeps its sound.
func (p *Player) pumpAudio(ctx context.Context) {
	for {
		ch := p.samples.Samples()
		if ch == nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		case block, ok := <-ch:
			if !ok {
				if !p.waitNewSamples(ctx, ch) {
					return
				}
				continue
			}
			if err := p.audio.Enqueue(block); err != nil {
				p.logger.Debug("Audio feeder stopped: %s", err)
				return
			}
		}
	}
}

// waitNewSamples polls until the source publishes a different sample
// channel. Reports false when the context ends first.
func (p *Player) waitNewSamples(ctx context.Context, old <-chan [][2]float64) bool {
	t := time.NewTicker(50 * time.Millisecond)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return false
		case <-t.C:
			if ch := p.samples.Samples(); ch != old {
				return ch != nil
			}
		}
	}
}

func (p *Player) buildSummary(c Counters, elapsed time.Duration, sched *Scheduler) *stats.Summary {
	info := p.config.Info
	return stats.NewBuilder().
		WithMedia(stats.MediaInfo{
			Path:       info.Path,
			Kind:       info.Type.String(),
			Format:     info.Format,
			DurationMs: int(info.Duration / time.Millisecond),
			VideoCodec: info.VideoCodec,
			Width:      info.Width,
			Height:     info.Height,
			FPS:        info.FPS,
			AudioCodec: info.AudioCodec,
			SampleRate: info.SampleRate,
			Channels:   info.Channels,
		}).
		WithPlayback(stats.PlaybackInfo{
			ElapsedMs:      int(elapsed / time.Millisecond),
			FramesRendered: c.Rendered,
			FramesDropped:  c.Dropped,
			StarvedPolls:   c.Starved,
			Loops:          c.Loops,
			Seeks:          c.Seeks,
			MaxLagMs:       int(c.MaxLag / time.Millisecond),
		}).
		WithSettings(stats.Settings{
			CharMap:             charmap.Name(sched.opts.CharMapIndex),
			Grayscale:           sched.grayscale,
			Color:               p.config.ColorMode,
			WidthModifier:       p.config.WidthModifier,
			GridWidth:           sched.opts.Width,
			GridHeight:          sched.opts.Height,
			Loop:                sched.loop,
			FrameSkip:           p.config.Sync.AllowFrameSkip,
			Audio:               p.audio != nil,
			ToleranceEarlyMs:    int(p.config.Sync.ToleranceEarly / time.Millisecond),
			ToleranceLateMs:     int(p.config.Sync.ToleranceLate / time.Millisecond),
			MaxConsecutiveDrops: p.config.Sync.MaxConsecutiveDrops,
		}).
		Build()
}
