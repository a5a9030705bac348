package core

import (
	"errors"
	"fmt"
)

// Stage identifies which step of the pipeline a failure came from.
type Stage string

const (
	StageValidation     Stage = "validation"
	StageReconstruction Stage = "reconstruction"
	StageSearch         Stage = "search"
)

// ErrEmptyInput is the validation failure for empty or whitespace-only input.
var ErrEmptyInput = errors.New("input text cannot be empty")

// PipelineError tags an underlying failure with the stage it occurred in.
type PipelineError struct {
	Stage Stage
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}
