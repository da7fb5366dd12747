// Package pipeline provides the staged-processing infrastructure for termplay.
package pipeline

import (
	"context"
)

// Stage is one processing step of a playback session. A stage consumes an
// input value and produces an output value, or an error that aborts the
// session.
type Stage[In, Out any] interface {
	// Execute runs the stage with the given input and returns the output.
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc is a function adapter for the Stage interface.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute implements the Stage interface.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}
