// Package fetch implements the input materialization stage: remote URLs
// are downloaded to a temporary file, local paths pass through.
package fetch

import (
	"context"
	"fmt"

	"github.com/user/termplay/pkg/adapters/httpfetch"
	"github.com/user/termplay/pkg/pipeline"
	"github.com/user/termplay/pkg/ports"
)

// Stage resolves the play target to a local file.
type Stage struct {
	fetcher ports.Fetcher
	logger  ports.Logger
}

// NewStage creates a new fetch stage.
func NewStage(fetcher ports.Fetcher, logger ports.Logger) *Stage {
	return &Stage{
		fetcher: fetcher,
		logger:  logger.WithComponent("fetch"),
	}
}

// Execute returns a local path for the input. Temp reports whether the
// caller owns a downloaded file and must remove it.
func (s *Stage) Execute(ctx context.Context, input pipeline.FetchInput) (pipeline.FetchResult, error) {
	result := pipeline.FetchResult{}

	if !httpfetch.IsURL(input.URL) {
		result.Path = input.URL
		return result, nil
	}

	s.logger.Debug("Downloading %s", input.URL)
	path, err := s.fetcher.Fetch(ctx, input.URL)
	if err != nil {
		return result, fmt.Errorf("fetch %s: %w", input.URL, err)
	}

	result.Path = path
	result.Temp = true
	return result, nil
}

var _ pipeline.Stage[pipeline.FetchInput, pipeline.FetchResult] = (*Stage)(nil)
