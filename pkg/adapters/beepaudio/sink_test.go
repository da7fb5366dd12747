package beepaudio

import (
	"testing"
	"time"
)

// pull runs the speaker callback directly so tests exercise the queue
// without opening a real output device.
func pull(s *Sink, n int) [][2]float64 {
	out := make([][2]float64, n)
	s.stream(out)
	return out
}

func newStarted(rate int) *Sink {
	s := New(rate)
	s.started = true
	return s
}

func TestEnqueueBeforeStartFails(t *testing.T) {
	s := New(48000)
	if err := s.Enqueue([][2]float64{{0.5, 0.5}}); err == nil {
		t.Error("expected error when enqueueing before Start")
	}
}

func TestStreamConsumesInOrder(t *testing.T) {
	s := newStarted(48000)
	if err := s.Enqueue([][2]float64{{0.1, 0.1}, {0.2, 0.2}, {0.3, 0.3}}); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}

	out := pull(s, 2)
	if out[0][0] != 0.1 || out[1][0] != 0.2 {
		t.Errorf("samples out of order: %v", out)
	}
	if s.Drained() {
		t.Error("sink reported drained with a sample queued")
	}

	pull(s, 2)
	if !s.Drained() {
		t.Error("sink not drained after consuming everything")
	}
}

func TestStreamSilenceOnStarvation(t *testing.T) {
	s := newStarted(48000)
	if err := s.Enqueue([][2]float64{{0.5, 0.5}}); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	out := pull(s, 4)
	for i := 1; i < 4; i++ {
		if out[i] != ([2]float64{}) {
			t.Errorf("sample %d not silent: %v", i, out[i])
		}
	}
}

func TestMuteZeroesButConsumes(t *testing.T) {
	s := newStarted(48000)
	if err := s.Enqueue([][2]float64{{0.5, 0.5}, {0.5, 0.5}}); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	s.SetMuted(true)
	out := pull(s, 2)
	if out[0] != ([2]float64{}) || out[1] != ([2]float64{}) {
		t.Errorf("muted output not silent: %v", out)
	}
	if !s.Drained() {
		t.Error("muted playback must still consume samples")
	}
	if s.pulled != 2 {
		t.Errorf("pulled = %d, want 2 (position advances while muted)", s.pulled)
	}
}

func TestPauseFreezesPosition(t *testing.T) {
	s := newStarted(48000)
	if err := s.Enqueue(make([][2]float64, 100)); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	s.SetPaused(true)
	out := pull(s, 50)
	for _, v := range out[:5] {
		if v != ([2]float64{}) {
			t.Fatalf("paused output not silent: %v", v)
		}
	}
	if s.pulled != 0 {
		t.Errorf("pulled = %d while paused, want 0", s.pulled)
	}

	s.SetPaused(false)
	pull(s, 50)
	if s.pulled != 50 {
		t.Errorf("pulled = %d after resume, want 50", s.pulled)
	}
}

func TestVolumeScalesAndClamps(t *testing.T) {
	s := newStarted(48000)
	s.SetVolume(0.5)
	if err := s.Enqueue([][2]float64{{0.8, 0.4}}); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	out := pull(s, 1)
	if out[0][0] != 0.4 || out[0][1] != 0.2 {
		t.Errorf("volume not applied: %v", out[0])
	}

	s.SetVolume(5)
	if s.volume != 2 {
		t.Errorf("volume = %v, want clamp to 2", s.volume)
	}
	s.SetVolume(-1)
	if s.volume != 0 {
		t.Errorf("volume = %v, want clamp to 0", s.volume)
	}
}

func TestPositionAccountsForDeviceBuffer(t *testing.T) {
	s := newStarted(48000)
	if s.Position() != 0 {
		t.Errorf("initial position = %v, want 0", s.Position())
	}

	// Half a second consumed; 100ms still sits in the device buffer.
	if err := s.Enqueue(make([][2]float64, 24000)); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	pull(s, 24000)
	if got, want := s.Position(), 400*time.Millisecond; got != want {
		t.Errorf("position = %v, want %v", got, want)
	}
}

func TestSetPositionRebases(t *testing.T) {
	s := newStarted(48000)
	if err := s.Enqueue(make([][2]float64, 24000)); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	pull(s, 24000)

	s.Flush()
	s.SetPosition(9 * time.Second)
	if got := s.Position(); got != 9*time.Second {
		t.Errorf("position after seek = %v, want 9s", got)
	}
	if !s.Drained() {
		t.Error("queue not empty after Flush")
	}
}

func TestEnqueueBackpressure(t *testing.T) {
	s := newStarted(1000) // queue bound = 1000 samples
	if err := s.Enqueue(make([][2]float64, 1000)); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- s.Enqueue(make([][2]float64, 10))
	}()

	select {
	case <-done:
		t.Fatal("Enqueue returned with a full queue")
	case <-time.After(20 * time.Millisecond):
	}

	pull(s, 500)
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Enqueue failed after space freed: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Enqueue still blocked after space freed")
	}
}

func TestCloseUnblocksProducer(t *testing.T) {
	s := newStarted(1000)
	if err := s.Enqueue(make([][2]float64, 1000)); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}
	done := make(chan error, 1)
	go func() {
		done <- s.Enqueue(make([][2]float64, 10))
	}()
	time.Sleep(10 * time.Millisecond)

	// The sink was never handed to the speaker, so Close only has to
	// release the producer.
	s.started = false
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	select {
	case err := <-done:
		if err == nil {
			t.Error("expected error from Enqueue after Close")
		}
	case <-time.After(time.Second):
		t.Fatal("Enqueue still blocked after Close")
	}
}
