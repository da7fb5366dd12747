package httpfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/user/termplay/pkg/adapters/logger"
)

func TestFetchSavesBody(t *testing.T) {
	payload := []byte("fake media bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	f := New(srv.Client(), logger.NewNoop())
	path, err := f.Fetch(context.Background(), srv.URL+"/clip.mp4")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	defer os.Remove(path)

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read downloaded file: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("downloaded %q, want %q", got, payload)
	}
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := New(srv.Client(), logger.NewNoop())
	if _, err := f.Fetch(context.Background(), srv.URL+"/missing.mp4"); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestFetchCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("data"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := New(srv.Client(), logger.NewNoop())
	if _, err := f.Fetch(ctx, srv.URL); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"http://example.com/a.mp4", true},
		{"https://example.com/a.mp4", true},
		{"/home/user/a.mp4", false},
		{"a.mp4", false},
		{"ftp://example.com/a.mp4", false},
	}
	for _, tt := range tests {
		if got := IsURL(tt.input); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
