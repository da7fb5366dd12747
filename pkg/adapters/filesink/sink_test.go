package filesink

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/user/termplay/pkg/mocks"
	"github.com/user/termplay/pkg/ports"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func testGrid(w, h int) *ports.Grid {
	grid := &ports.Grid{Width: w, Height: h, Cells: make([]ports.Cell, w*h)}
	for i := range grid.Cells {
		grid.Cells[i] = ports.Cell{Ch: '#', R: uint8(i * 40), G: 128, B: 200}
	}
	return grid
}

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem())
	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveGridText(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	payload := []byte("\x1b[H\x1b[38;5;46m##")
	if err := sink.SaveGridText(3, payload); err != nil {
		t.Fatalf("SaveGridText failed: %v", err)
	}

	path := filepath.Join(testBaseDir, "frames", "text", "frame-0003.txt")
	data, ok := fs.GetFile(path)
	if !ok {
		t.Fatalf("expected file at %s", path)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("saved %q, want %q", data, payload)
	}
}

func TestSink_SaveGridImage(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	if err := sink.SaveGridImage(0, testGrid(4, 2)); err != nil {
		t.Fatalf("SaveGridImage failed: %v", err)
	}

	path := filepath.Join(testBaseDir, "frames", "png", "frame-0000.png")
	data, ok := fs.GetFile(path)
	if !ok {
		t.Fatalf("expected file at %s", path)
	}
	// PNG signature
	if len(data) < 8 || !bytes.Equal(data[:4], []byte{0x89, 'P', 'N', 'G'}) {
		t.Errorf("saved data is not a PNG (starts with % x)", data[:min(8, len(data))])
	}
}

func TestSink_SaveProbeJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	if err := sink.SaveProbeJSON([]byte(`{"type":"video"}`)); err != nil {
		t.Fatalf("SaveProbeJSON failed: %v", err)
	}
	if _, ok := fs.GetFile(filepath.Join(testBaseDir, "probe.json")); !ok {
		t.Error("probe.json not written")
	}
}

func TestSink_SaveSummary(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	if err := sink.SaveSummary([]byte("frames rendered: 42")); err != nil {
		t.Fatalf("SaveSummary failed: %v", err)
	}
	if _, ok := fs.GetFile(filepath.Join(testBaseDir, "summary.txt")); !ok {
		t.Error("summary.txt not written")
	}
}
