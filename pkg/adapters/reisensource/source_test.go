package reisensource

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/user/termplay/pkg/ports"
)

func TestSampleBlock(t *testing.T) {
	data := make([]byte, 32)
	binary.LittleEndian.PutUint64(data[0:], math.Float64bits(0.25))
	binary.LittleEndian.PutUint64(data[8:], math.Float64bits(-0.25))
	binary.LittleEndian.PutUint64(data[16:], math.Float64bits(1.0))
	binary.LittleEndian.PutUint64(data[24:], math.Float64bits(0.0))

	block := sampleBlock(data)
	if len(block) != 2 {
		t.Fatalf("len = %d, want 2", len(block))
	}
	if block[0] != ([2]float64{0.25, -0.25}) {
		t.Errorf("block[0] = %v", block[0])
	}
	if block[1] != ([2]float64{1.0, 0.0}) {
		t.Errorf("block[1] = %v", block[1])
	}
}

func TestSampleBlockTruncatedTail(t *testing.T) {
	// A partial trailing pair is discarded, never mis-read.
	if got := sampleBlock(make([]byte, 17)); len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
	if got := sampleBlock(nil); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestNextNonBlocking(t *testing.T) {
	s := &Source{}
	if _, ok := s.Next(); ok {
		t.Error("Next reported a frame before Start")
	}

	s.frames = make(chan *ports.Frame, 2)
	if _, ok := s.Next(); ok {
		t.Error("Next reported a frame from an empty buffer")
	}

	want := &ports.Frame{PTS: 40 * time.Millisecond, Index: 1}
	s.frames <- want
	got, ok := s.Next()
	if !ok || got != want {
		t.Errorf("Next = %v, %v; want the buffered frame", got, ok)
	}
}

func TestFinished(t *testing.T) {
	s := &Source{}
	s.frames = make(chan *ports.Frame, 2)
	if s.Finished() {
		t.Error("finished before EOF")
	}

	s.frames <- &ports.Frame{}
	s.eof.Store(true)
	if s.Finished() {
		t.Error("finished with a frame still buffered")
	}

	s.Next()
	if !s.Finished() {
		t.Error("not finished after EOF with a drained buffer")
	}
}
