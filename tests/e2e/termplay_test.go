// Package e2e contains end-to-end tests for the termplay CLI. The tests
// build the binary and exercise the non-interactive subcommands; they
// are skipped unless TERMPLAY_E2E=1 so CI without a display stays fast.
package e2e

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// getBinaryName returns the test binary name with platform-specific extension
func getBinaryName() string {
	if runtime.GOOS == "windows" {
		return "termplay-test.exe"
	}
	return "termplay-test"
}

// getBinaryPath returns the path to execute the test binary.
// If TERMPLAY_BINARY env var is set, use that instead (for CI with pre-built binaries)
func getBinaryPath() string {
	if path := os.Getenv("TERMPLAY_BINARY"); path != "" {
		return path
	}
	if runtime.GOOS == "windows" {
		return ".\\termplay-test.exe"
	}
	return "./termplay-test"
}

func shouldBuildBinary() bool {
	return os.Getenv("TERMPLAY_BINARY") == ""
}

// getProjectRoot returns the repository root relative to this test file.
func getProjectRoot(t *testing.T) string {
	t.Helper()
	root, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("Failed to resolve project root: %v", err)
	}
	return root
}

func buildBinary(t *testing.T) {
	t.Helper()
	if !shouldBuildBinary() {
		return
	}
	buildCmd := exec.Command("go", "build", "-o", getBinaryName(), "./cmd/termplay")
	buildCmd.Dir = getProjectRoot(t)
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build CLI: %v\n%s", err, out)
	}
	t.Cleanup(func() {
		os.Remove(filepath.Join(getProjectRoot(t), getBinaryName()))
	})
}

// writeTestImage creates a small gradient PNG and returns its path.
func writeTestImage(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 16), B: 64, A: 255})
		}
	}
	f, err := os.CreateTemp("", "termplay-e2e-*.png")
	if err != nil {
		t.Fatalf("Failed to create temp image: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		t.Fatalf("Failed to encode test image: %v", err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })
	return f.Name()
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := exec.Command(getBinaryPath(), args...)
	cmd.Dir = getProjectRoot(t)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	if os.Getenv("TERMPLAY_E2E") != "1" {
		t.Skip("Skipping E2E test (set TERMPLAY_E2E=1 to run)")
	}
	buildBinary(t)

	stdout, stderr, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("Version command failed: %v\nstderr: %s", err, stderr)
	}
	if !strings.Contains(stdout, "termplay") {
		t.Errorf("Version output missing program name: %q", stdout)
	}
}

func TestMapsCommand(t *testing.T) {
	if os.Getenv("TERMPLAY_E2E") != "1" {
		t.Skip("Skipping E2E test (set TERMPLAY_E2E=1 to run)")
	}
	buildBinary(t)

	stdout, stderr, err := runCLI(t, "maps")
	if err != nil {
		t.Fatalf("Maps command failed: %v\nstderr: %s", err, stderr)
	}
	// Every map index 0-9 should be listed.
	for _, want := range []string{"0:", "9:"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("Maps output missing %q:\n%s", want, stdout)
		}
	}
}

func TestInfoCommandOnImage(t *testing.T) {
	if os.Getenv("TERMPLAY_E2E") != "1" {
		t.Skip("Skipping E2E test (set TERMPLAY_E2E=1 to run)")
	}
	buildBinary(t)
	imgPath := writeTestImage(t)

	stdout, stderr, err := runCLI(t, "info", imgPath)
	if err != nil {
		t.Fatalf("Info command failed: %v\nstderr: %s", err, stderr)
	}
	if !strings.Contains(stdout, "image") {
		t.Errorf("Info output missing media kind:\n%s", stdout)
	}
	if !strings.Contains(stdout, "32") || !strings.Contains(stdout, "16") {
		t.Errorf("Info output missing dimensions:\n%s", stdout)
	}
}

func TestInfoCommandJSON(t *testing.T) {
	if os.Getenv("TERMPLAY_E2E") != "1" {
		t.Skip("Skipping E2E test (set TERMPLAY_E2E=1 to run)")
	}
	buildBinary(t)
	imgPath := writeTestImage(t)

	stdout, stderr, err := runCLI(t, "info", "--json", imgPath)
	if err != nil {
		t.Fatalf("Info command failed: %v\nstderr: %s", err, stderr)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("Info --json did not produce valid JSON: %v\n%s", err, stdout)
	}
	if doc["type"] != "image" {
		t.Errorf("type = %v, want image", doc["type"])
	}
}

func TestInfoCommandMissingFile(t *testing.T) {
	if os.Getenv("TERMPLAY_E2E") != "1" {
		t.Skip("Skipping E2E test (set TERMPLAY_E2E=1 to run)")
	}
	buildBinary(t)

	_, _, err := runCLI(t, "info", "no-such-file.mp4")
	if err == nil {
		t.Fatal("Info on a missing file should fail")
	}
}
