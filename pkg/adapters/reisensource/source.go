// Package reisensource decodes video frames and audio samples from a
// media file through the reisen ffmpeg bindings.
package reisensource

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zergon321/reisen"

	"github.com/user/termplay/pkg/ports"
)

const (
	// DefaultBufferSize is the frame look-ahead. A full buffer pauses
	// the decode goroutine; the scheduler never waits on it.
	DefaultBufferSize = 8

	// fallbackFPS paces streams whose container reports no frame rate.
	fallbackFPS = 30.0
)

// Options tunes a Source.
type Options struct {
	// FPSOverride replaces container timestamps with a fixed cadence of
	// index/fps. Zero uses the stream's own presentation offsets.
	FPSOverride float64
	// BufferSize is the decoded frame look-ahead. Zero means
	// DefaultBufferSize.
	BufferSize int
}

// Source streams decoded frames and samples from one media file. It
// implements both ports.FrameSource and ports.SampleSource; decoding
// runs on its own goroutine and hands off through bounded channels.
type Source struct {
	path string
	log  ports.Logger
	opts Options

	mu         sync.Mutex
	frames     chan *ports.Frame
	samples    chan [][2]float64
	sampleRate int

	eof  atomic.Bool
	stop chan struct{}
	wg   sync.WaitGroup
}

var (
	_ ports.FrameSource  = (*Source)(nil)
	_ ports.SampleSource = (*Source)(nil)
)

// New creates a source for the media file at path.
func New(path string, log ports.Logger, opts Options) *Source {
	if opts.BufferSize <= 0 {
		opts.BufferSize = DefaultBufferSize
	}
	return &Source{path: path, log: log.WithComponent("decoder"), opts: opts}
}

// Start opens the container and begins decoding into the look-ahead
// buffer. An unreadable container is fatal; later single-frame decode
// errors are skipped.
func (s *Source) Start(ctx context.Context) error {
	return s.open(0)
}

// open spins up a decode session that discards media before skip.
func (s *Source) open(skip time.Duration) error {
	media, err := reisen.NewMedia(s.path)
	if err != nil {
		return fmt.Errorf("reisensource: open %s: %w", s.path, err)
	}
	if err := media.OpenDecode(); err != nil {
		media.Close()
		return fmt.Errorf("reisensource: open decoder for %s: %w", s.path, err)
	}

	var video *reisen.VideoStream
	if streams := media.VideoStreams(); len(streams) > 0 {
		video = streams[0]
		if err := video.Open(); err != nil {
			media.CloseDecode()
			media.Close()
			return fmt.Errorf("reisensource: open video stream: %w", err)
		}
	}
	var audio *reisen.AudioStream
	if streams := media.AudioStreams(); len(streams) > 0 {
		audio = streams[0]
		if err := audio.Open(); err != nil {
			if video != nil {
				video.Close()
			}
			media.CloseDecode()
			media.Close()
			return fmt.Errorf("reisensource: open audio stream: %w", err)
		}
	}

	s.log.Debug("Opening %s", s.path)
	if video != nil {
		s.log.Debug("Video stream: %dx%d %s", video.Width(), video.Height(), video.CodecName())
	}
	if audio != nil {
		s.log.Debug("Audio stream: %d Hz %s", audio.SampleRate(), audio.CodecName())
	}

	s.mu.Lock()
	s.frames = make(chan *ports.Frame, s.opts.BufferSize)
	s.samples = make(chan [][2]float64, s.opts.BufferSize)
	if audio != nil {
		s.sampleRate = audio.SampleRate()
	}
	s.stop = make(chan struct{})
	s.mu.Unlock()
	s.eof.Store(false)

	s.wg.Add(1)
	go s.decode(media, video, audio, skip)
	return nil
}

// decode is the producer loop: one packet per iteration, routed to the
// matching stream. It exits on stop or end of stream.
func (s *Source) decode(media *reisen.Media, video *reisen.VideoStream, audio *reisen.AudioStream, skip time.Duration) {
	defer s.wg.Done()

	s.mu.Lock()
	frames, samples, stop := s.frames, s.samples, s.stop
	s.mu.Unlock()

	defer func() {
		s.eof.Store(true)
		close(frames)
		close(samples)
		if video != nil {
			video.Close()
		}
		if audio != nil {
			audio.Close()
		}
		media.CloseDecode()
		media.Close()
	}()

	fps := s.opts.FPSOverride
	if fps == 0 && video != nil {
		if num, den := video.FrameRate(); num > 0 && den > 0 {
			fps = float64(num) / float64(den)
		}
	}
	if fps == 0 {
		fps = fallbackFPS
	}

	index := 0       // decoded video frames, drives override pacing
	emitted := 0     // frames actually delivered
	var audioPos time.Duration

	for {
		select {
		case <-stop:
			return
		default:
		}

		packet, got, err := media.ReadPacket()
		if err != nil {
			// One bad packet is not a session failure.
			s.log.Warn("Decode error: %s", err)
			continue
		}
		if !got {
			return
		}

		switch packet.Type() {
		case reisen.StreamVideo:
			if video == nil || packet.StreamIndex() != video.Index() {
				continue
			}
			vf, got, err := video.ReadVideoFrame()
			if err != nil {
				s.log.Warn("Corrupt frame skipped: %s", err)
				continue
			}
			if !got || vf == nil {
				continue
			}

			pts := time.Duration(float64(index) / fps * float64(time.Second))
			if s.opts.FPSOverride == 0 {
				if off, err := vf.PresentationOffset(); err == nil {
					pts = off
				}
			}
			index++
			if pts < skip {
				continue
			}

			frame := &ports.Frame{Image: vf.Image(), PTS: pts, Index: emitted}
			select {
			case <-stop:
				return
			case frames <- frame:
				emitted++
			}

		case reisen.StreamAudio:
			if audio == nil || packet.StreamIndex() != audio.Index() {
				continue
			}
			af, got, err := audio.ReadAudioFrame()
			if err != nil {
				s.log.Warn("Corrupt audio frame skipped: %s", err)
				continue
			}
			if !got || af == nil {
				continue
			}

			block := sampleBlock(af.Data())
			if s.sampleRate > 0 {
				blockDur := time.Duration(len(block)) * time.Second / time.Duration(s.sampleRate)
				if audioPos+blockDur <= skip {
					audioPos += blockDur
					continue
				}
				audioPos += blockDur
			}

			select {
			case <-stop:
				return
			case samples <- block:
			}
		}
	}
}

// Next returns the next buffered frame without blocking.
func (s *Source) Next() (*ports.Frame, bool) {
	s.mu.Lock()
	frames := s.frames
	s.mu.Unlock()
	if frames == nil {
		return nil, false
	}
	select {
	case frame, ok := <-frames:
		if !ok {
			return nil, false
		}
		return frame, true
	default:
		return nil, false
	}
}

// Finished reports end of stream with the buffer drained.
func (s *Source) Finished() bool {
	s.mu.Lock()
	frames := s.frames
	s.mu.Unlock()
	return s.eof.Load() && (frames == nil || len(frames) == 0)
}

// Rewind restarts decoding from the beginning of the stream.
func (s *Source) Rewind() error {
	s.shutdown()
	return s.open(0)
}

// Seek repositions the stream. The decoder is restarted and media
// before pos is discarded, so the first delivered frame has a
// timestamp at or after pos.
func (s *Source) Seek(pos time.Duration) error {
	if pos < 0 {
		pos = 0
	}
	s.shutdown()
	return s.open(pos)
}

// Samples exposes the decoded audio block channel for the current
// decode session. Rewind and Seek publish a fresh channel.
func (s *Source) Samples() <-chan [][2]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.samples
}

// SampleRate reports the audio stream's sample rate, zero without audio.
func (s *Source) SampleRate() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sampleRate
}

// Close stops the decode goroutine and releases the container.
func (s *Source) Close() error {
	s.shutdown()
	return nil
}

// shutdown stops the current decode session and waits for the
// goroutine to release the media handle.
func (s *Source) shutdown() {
	s.mu.Lock()
	stop := s.stop
	s.stop = nil
	frames := s.frames
	s.mu.Unlock()
	if stop != nil {
		close(stop)
	}
	// Unblock a producer waiting on a full frame buffer.
	if frames != nil {
		for {
			if _, ok := <-frames; !ok {
				break
			}
		}
	}
	s.wg.Wait()
}

// sampleBlock converts raw f64le interleaved stereo data into sample
// pairs, the format reisen produces and beep consumes.
func sampleBlock(data []byte) [][2]float64 {
	n := len(data) / 16
	block := make([][2]float64, n)
	for i := 0; i < n; i++ {
		l := math.Float64frombits(binary.LittleEndian.Uint64(data[i*16:]))
		r := math.Float64frombits(binary.LittleEndian.Uint64(data[i*16+8:]))
		block[i] = [2]float64{l, r}
	}
	return block
}
