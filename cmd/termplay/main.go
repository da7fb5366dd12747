// Package main provides the CLI entry point for termplay.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"

	"github.com/user/termplay/pkg/adapters/beepaudio"
	"github.com/user/termplay/pkg/adapters/filesink"
	"github.com/user/termplay/pkg/adapters/httpfetch"
	"github.com/user/termplay/pkg/adapters/imagesource"
	"github.com/user/termplay/pkg/adapters/logger"
	"github.com/user/termplay/pkg/adapters/nullsink"
	"github.com/user/termplay/pkg/adapters/osfilesystem"
	"github.com/user/termplay/pkg/adapters/reisensource"
	"github.com/user/termplay/pkg/adapters/smartprobe"
	"github.com/user/termplay/pkg/adapters/termscreen"
	"github.com/user/termplay/pkg/charmap"
	"github.com/user/termplay/pkg/config"
	"github.com/user/termplay/pkg/pipeline"
	"github.com/user/termplay/pkg/player"
	"github.com/user/termplay/pkg/ports"
	"github.com/user/termplay/pkg/render"
	"github.com/user/termplay/pkg/stages/fetch"
	"github.com/user/termplay/pkg/stages/probe"
	"github.com/user/termplay/pkg/stats"
	"github.com/user/termplay/pkg/termplay"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Play     PlayCmd     `cmd:"" help:"Play a media file or URL in the terminal."`
	Info     InfoCmd     `cmd:"" help:"Show media file metadata."`
	Maps     MapsCmd     `cmd:"" help:"List the available character maps."`
	Diagnose DiagnoseCmd `cmd:"" help:"Check the audio output device."`
	Version  VersionCmd  `cmd:"" help:"Show version information."`
}

// PlayCmd defines the play subcommand.
type PlayCmd struct {
	Input string `arg:"" help:"Media file path or http(s) URL."`

	// Render options
	CharMap   *int    `short:"m" help:"Character map index (0-9)."`
	Gray      bool    `short:"g" help:"Render in grayscale."`
	Color     *string `help:"Color mode (auto, 256, true, none)."`
	WidthMod  *int    `short:"w" help:"Terminal columns per grid cell (min: 1)."`
	NoNewline bool    `help:"Do not emit newlines between rows."`

	// Playback options
	FPS            *float64 `help:"Force a fixed frame rate instead of container timestamps."`
	Loop           bool     `short:"L" help:"Loop playback."`
	AllowFrameSkip *bool    `help:"Permit dropping late frames (default: on)."`
	SeekStepSec    *int     `help:"Arrow-key seek distance in seconds."`

	// Audio options
	NoAudio bool     `help:"Disable audio output."`
	Mute    bool     `help:"Start muted."`
	Volume  *float64 `help:"Initial volume (0.0-2.0)."`

	// Summary
	Summary string `help:"Write the playback summary to this file."`

	// Debug options
	Debug    bool   `short:"d" help:"Enable debug output."`
	DebugDir string `default:"./debug" help:"Directory for debug output."`

	// Config
	Config string `short:"c" help:"Path to a YAML configuration file."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// InfoCmd defines the info subcommand.
type InfoCmd struct {
	Input string `arg:"" help:"Media file path."`
	JSON  bool   `help:"Print metadata as JSON."`
}

// MapsCmd lists the character maps.
type MapsCmd struct{}

// DiagnoseCmd checks audio device availability.
type DiagnoseCmd struct {
	SampleRate int `default:"48000" help:"Sample rate to initialize the device with."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("termplay"),
		kong.Description("Play video, audio and images as colorized ASCII art in the terminal."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the play command.
func (cmd *PlayCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	// Log writers buffer while the terminal shows frames; lines appear
	// after the screen is restored instead of tearing the grid.
	outWriter := logger.NewDeferred(os.Stdout)
	errWriter := logger.NewDeferred(os.Stderr)
	var log ports.Logger
	if cfg.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsoleWithWriters(ports.ParseLogLevel(cfg.LogLevel), outWriter, errWriter)
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("termplay: %s", l10n.T("stdout is not a terminal; playback needs one"))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if httpfetch.IsURL(cmd.Input) {
		log.Info(l10n.F("Downloading %s...", cmd.Input))
	}
	fetched, err := fetch.NewStage(httpfetch.New(nil, log), log).
		Execute(ctx, pipeline.FetchInput{URL: cmd.Input})
	if err != nil {
		return fmt.Errorf("fetch input: %w", err)
	}
	if fetched.Temp {
		defer os.Remove(fetched.Path)
	}
	input := fetched.Path

	probed, err := probe.NewStage(smartprobe.New(log), log).
		Execute(ctx, pipeline.ProbeInput{Path: input})
	if err != nil {
		return fmt.Errorf("probe input: %w", err)
	}
	info := probed.Info
	logMediaInfo(log, info)

	fs := osfilesystem.New()
	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs)
		if data, err := json.MarshalIndent(probeDocument(info), "", "  "); err == nil {
			if err := sink.SaveProbeJSON(data); err != nil {
				log.Warn("Failed to save probe metadata: %s", err)
			}
		}
	} else {
		sink = nullsink.New()
	}

	var (
		source  ports.FrameSource
		samples ports.SampleSource
	)
	if info.Type == ports.MediaTypeImage {
		source = imagesource.New(input)
	} else {
		rs := reisensource.New(input, log, reisensource.Options{
			FPSOverride: cfg.Public.FPSOverride,
		})
		source = rs
		samples = rs
	}

	var audio ports.AudioSink
	if !cfg.NoAudio() && info.HasAudio && info.Type != ports.MediaTypeImage {
		rate := info.SampleRate
		if rate == 0 {
			rate = 44100
		}
		audio = beepaudio.New(rate)
	}

	playerCfg := cfg.Public.ToPlayerConfig(info)
	playerCfg.Title = "termplay - " + info.Path

	p := player.New(
		playerCfg,
		log,
		source,
		samples,
		audio,
		player.NewMonotonicClock(),
		render.NewRenderer(),
		colorEncoder(cfg),
		grayEncoder(cfg),
		termscreen.New(),
		sink,
	)

	outWriter.Hold()
	errWriter.Hold()
	summary, runErr := p.Run(ctx)
	if relErr := outWriter.Release(); relErr != nil {
		fmt.Fprintln(os.Stderr, relErr)
	}
	if relErr := errWriter.Release(); relErr != nil {
		fmt.Fprintln(os.Stderr, relErr)
	}
	if runErr != nil {
		return runErr
	}

	formatter := stats.NewTextFormatter()
	if summary != nil {
		log.Info(l10n.T("Playback finished"))
		log.Info("%s", formatter.Format(summary))
		if cfg.Summary != "" {
			var fileFormatter stats.Formatter = formatter
			if strings.EqualFold(filepath.Ext(cfg.Summary), ".md") {
				fileFormatter = stats.NewMarkdownFormatter()
			}
			if err := stats.NewWriter(fileFormatter).Write(cfg.Summary, summary); err != nil {
				log.Warn("Failed to write summary: %s", err)
			}
		}
		if sink.Enabled() {
			if err := sink.SaveSummary([]byte(formatter.Format(summary))); err != nil {
				log.Warn("Failed to save summary: %s", err)
			}
		}
	}
	return nil
}

// playConfig bundles the public playback config with the CLI-only
// knobs that never reach the player.
type playConfig struct {
	Public   termplay.Config
	Summary  string
	Debug    bool
	DebugDir string
	LogLevel string
	Quiet    bool
}

func (c playConfig) NoAudio() bool {
	return c.Public.NoAudio
}

// buildConfig merges defaults, the optional YAML file and CLI flags,
// in that order.
func (cmd *PlayCmd) buildConfig() (playConfig, error) {
	fileCfg := config.Defaults()
	if cmd.Config != "" {
		loaded, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return playConfig{}, fmt.Errorf("load config %s: %w", cmd.Config, err)
		}
		fileCfg = loaded
	}

	builder := termplay.NewConfigBuilder().
		WithCharMap(fileCfg.CharMap).
		WithGrayscale(fileCfg.Grayscale).
		WithColor(termplay.ColorMode(fileCfg.Color)).
		WithWidthModifier(fileCfg.WidthModifier).
		WithNewlines(fileCfg.Newlines).
		WithTolerances(
			time.Duration(fileCfg.Sync.ToleranceEarlyMs)*time.Millisecond,
			time.Duration(fileCfg.Sync.ToleranceLateMs)*time.Millisecond,
		).
		WithMaxConsecutiveDrops(fileCfg.Sync.MaxConsecutiveDrops).
		WithFrameSkip(fileCfg.Sync.AllowFrameSkip).
		WithLoop(fileCfg.Loop).
		WithFPSOverride(fileCfg.FPS).
		WithSeekStep(time.Duration(fileCfg.SeekStepSec) * time.Second).
		WithNoAudio(fileCfg.Audio.Disabled).
		WithMuted(fileCfg.Audio.Muted).
		WithVolume(fileCfg.Audio.Volume)

	if cmd.CharMap != nil {
		builder.WithCharMap(*cmd.CharMap)
	}
	if cmd.Gray {
		builder.WithGrayscale(true)
	}
	if cmd.Color != nil {
		builder.WithColor(termplay.ColorMode(*cmd.Color))
	}
	if cmd.WidthMod != nil {
		builder.WithWidthModifier(*cmd.WidthMod)
	}
	if cmd.NoNewline {
		builder.WithNewlines(false)
	}
	if cmd.AllowFrameSkip != nil {
		builder.WithFrameSkip(*cmd.AllowFrameSkip)
	}
	if cmd.Loop {
		builder.WithLoop(true)
	}
	if cmd.FPS != nil {
		builder.WithFPSOverride(*cmd.FPS)
	}
	if cmd.SeekStepSec != nil {
		builder.WithSeekStep(time.Duration(*cmd.SeekStepSec) * time.Second)
	}
	if cmd.NoAudio {
		builder.WithNoAudio(true)
	}
	if cmd.Mute {
		builder.WithMuted(true)
	}
	if cmd.Volume != nil {
		builder.WithVolume(*cmd.Volume)
	}

	cfg := playConfig{
		Public:   builder.Build(),
		Summary:  cmd.Summary,
		Debug:    cmd.Debug || fileCfg.Debug,
		DebugDir: cmd.DebugDir,
		LogLevel: cmd.LogLevel,
		Quiet:    cmd.Quiet || fileCfg.Quiet,
	}
	if cfg.Summary == "" {
		cfg.Summary = fileCfg.SummaryPath
	}
	if cmd.LogLevel == "info" && fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.DebugDir != "" && cmd.DebugDir == "./debug" {
		cfg.DebugDir = fileCfg.DebugDir
	}
	return cfg, nil
}

// colorEncoder picks the encoder for normal rendering.
func colorEncoder(cfg playConfig) ports.GridEncoder {
	newlines := cfg.Public.Newlines
	switch resolveColorMode(cfg.Public.Color) {
	case termplay.ColorTrue:
		return &render.TrueColorEncoder{Newlines: newlines}
	case termplay.ColorNone:
		return &render.PlainEncoder{Newlines: newlines}
	default:
		return &render.Ansi256Encoder{Newlines: newlines}
	}
}

// grayEncoder picks the encoder used while grayscale is toggled on.
func grayEncoder(cfg playConfig) ports.GridEncoder {
	newlines := cfg.Public.Newlines
	switch resolveColorMode(cfg.Public.Color) {
	case termplay.ColorTrue:
		return &render.TrueColorEncoder{Grayscale: true, Newlines: newlines}
	case termplay.ColorNone:
		return &render.PlainEncoder{Newlines: newlines}
	default:
		return &render.Ansi256Encoder{Grayscale: true, Newlines: newlines}
	}
}

// resolveColorMode turns auto into a concrete mode based on COLORTERM.
func resolveColorMode(mode termplay.ColorMode) termplay.ColorMode {
	if mode != termplay.ColorAuto {
		return mode
	}
	switch os.Getenv("COLORTERM") {
	case "truecolor", "24bit":
		return termplay.ColorTrue
	}
	return termplay.Color256
}

func logMediaInfo(log ports.Logger, info ports.MediaInfo) {
	log.Info(l10n.F("Media: %s (%s)", info.Path, info.Type))
	if info.Duration > 0 {
		log.Info(l10n.F("Duration: %s", info.Duration.Truncate(time.Millisecond)))
	}
	if info.HasVideo {
		log.Info(l10n.F("Video: %dx%d %.3g fps %s", info.Width, info.Height, info.FPS, info.VideoCodec))
	}
	if info.HasAudio {
		log.Info(l10n.F("Audio: %d Hz, %d channels %s", info.SampleRate, info.Channels, info.AudioCodec))
	}
}

// probeDocument shapes MediaInfo for JSON output.
func probeDocument(info ports.MediaInfo) map[string]interface{} {
	doc := map[string]interface{}{
		"path":        info.Path,
		"type":        info.Type.String(),
		"format":      info.Format,
		"duration_ms": int(info.Duration / time.Millisecond),
	}
	if info.HasVideo {
		doc["video"] = map[string]interface{}{
			"codec":  info.VideoCodec,
			"width":  info.Width,
			"height": info.Height,
			"fps":    info.FPS,
		}
	}
	if info.HasAudio {
		doc["audio"] = map[string]interface{}{
			"codec":       info.AudioCodec,
			"sample_rate": info.SampleRate,
			"channels":    info.Channels,
		}
	}
	return doc
}

// Run executes the info command.
func (cmd *InfoCmd) Run() error {
	log := logger.NewConsole(ports.LevelWarn)
	info, err := smartprobe.New(log).Probe(cmd.Input)
	if err != nil {
		return err
	}

	if cmd.JSON {
		data, err := json.MarshalIndent(probeDocument(info), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s: %s\n", l10n.T("Path"), info.Path)
	fmt.Printf("%s: %s (%s)\n", l10n.T("Type"), info.Type, info.Format)
	if info.Duration > 0 {
		fmt.Printf("%s: %s\n", l10n.T("Duration"), info.Duration.Truncate(time.Millisecond))
	}
	if info.HasVideo {
		fmt.Printf("%s: %dx%d, %.3g fps, %s\n", l10n.T("Video"), info.Width, info.Height, info.FPS, info.VideoCodec)
	}
	if info.HasAudio {
		fmt.Printf("%s: %d Hz, %d %s, %s\n", l10n.T("Audio"), info.SampleRate, info.Channels, l10n.T("channels"), info.AudioCodec)
	}
	return nil
}

// Run executes the maps command.
func (cmd *MapsCmd) Run() error {
	for i := 0; i < charmap.Count(); i++ {
		fmt.Printf("%d: %-26s %s\n", i, charmap.Name(i), string(charmap.Get(i)))
	}
	return nil
}

// Run executes the diagnose command.
func (cmd *DiagnoseCmd) Run() error {
	sink := beepaudio.New(cmd.SampleRate)
	if err := sink.Start(); err != nil {
		fmt.Println(l10n.F("Audio device unavailable: %s", err))
		fmt.Println(l10n.T("Playback will run silently (video only)."))
		return nil
	}
	defer sink.Close()
	fmt.Println(l10n.F("Audio device initialized at %d Hz.", cmd.SampleRate))
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("termplay version %s", version))
	return nil
}
