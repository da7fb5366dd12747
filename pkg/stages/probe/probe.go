// Package probe implements the metadata inspection stage that runs
// before playback starts.
package probe

import (
	"context"
	"fmt"

	"github.com/user/termplay/pkg/pipeline"
	"github.com/user/termplay/pkg/ports"
)

// Stage inspects a local media file.
type Stage struct {
	prober ports.MediaProber
	logger ports.Logger
}

// NewStage creates a new probe stage.
func NewStage(prober ports.MediaProber, logger ports.Logger) *Stage {
	return &Stage{
		prober: prober,
		logger: logger.WithComponent("probe"),
	}
}

// Execute gathers the metadata that drives source and sink selection.
func (s *Stage) Execute(ctx context.Context, input pipeline.ProbeInput) (pipeline.ProbeResult, error) {
	result := pipeline.ProbeResult{}

	info, err := s.prober.Probe(input.Path)
	if err != nil {
		return result, fmt.Errorf("probe %s: %w", input.Path, err)
	}

	s.logger.Debug("Probed %s: %s (%s)", input.Path, info.Type, info.Format)
	result.Info = info
	return result, nil
}

var _ pipeline.Stage[pipeline.ProbeInput, pipeline.ProbeResult] = (*Stage)(nil)
