package mp4probe

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHandles(t *testing.T) {
	for _, ext := range []string{".mp4", ".m4v", ".m4a", ".mov"} {
		if !Handles(ext) {
			t.Errorf("Handles(%q) = false, want true", ext)
		}
	}
	for _, ext := range []string{".mkv", ".webm", ".png", ""} {
		if Handles(ext) {
			t.Errorf("Handles(%q) = true, want false", ext)
		}
	}
}

func TestProbeMissingFile(t *testing.T) {
	if _, err := New().Probe("/nonexistent/clip.mp4"); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestProbeCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.mp4")
	if err := os.WriteFile(path, []byte("this is not an mp4"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := New().Probe(path); err == nil {
		t.Error("expected error for a corrupt file")
	}
}
