package ports

import "context"

// Fetcher acquires remote media and materializes it as a local file.
type Fetcher interface {
	// Fetch downloads url to a temporary file and returns its path.
	// The caller owns the file and removes it when the session ends.
	Fetch(ctx context.Context, url string) (string, error)
}
