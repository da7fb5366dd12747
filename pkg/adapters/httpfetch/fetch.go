// Package httpfetch downloads remote media to a temporary file so the
// decoder can treat every input as a local path.
package httpfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/user/termplay/pkg/ports"
)

// Fetcher implements ports.Fetcher over net/http.
type Fetcher struct {
	client *http.Client
	log    ports.Logger
}

var _ ports.Fetcher = (*Fetcher)(nil)

// New creates a fetcher. A nil client uses a default with no overall
// timeout, since media files can be large; cancellation comes from the
// request context.
func New(client *http.Client, log ports.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &Fetcher{client: client, log: log.WithComponent("fetch")}
}

// Fetch downloads url into a temporary file and returns its path.
// The caller removes the file when the session ends.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("httpfetch: build request: %w", err)
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("httpfetch: get %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("httpfetch: get %s: unexpected status %s", url, resp.Status)
	}

	tmp, err := os.CreateTemp("", "termplay-*"+path.Ext(req.URL.Path))
	if err != nil {
		return "", fmt.Errorf("httpfetch: create temp file: %w", err)
	}

	n, err := io.Copy(tmp, resp.Body)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("httpfetch: download %s: %w", url, err)
	}

	f.log.Debug("Downloaded %d bytes in %s", n, time.Since(start).Truncate(time.Millisecond))
	return tmp.Name(), nil
}

// IsURL reports whether input names a remote resource to fetch.
func IsURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}
