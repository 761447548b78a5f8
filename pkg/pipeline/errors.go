package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/spextract/pkg/progress"
)

var (
	ErrPreviousStepsIncomplete = errors.New("previous steps not completed")
	ErrOddExposureCount        = errors.New("the number of images must be even")
	ErrInvalidIndexString      = errors.New("invalid index string")
	ErrNoFiles                 = errors.New("no files given")
	ErrInvalidConfig           = errors.New("invalid pipeline config")
	ErrNilStages               = errors.New("stages implementation is nil")
	ErrReportNotFound          = errors.New("run report not found")
	ErrReportNotSaved          = errors.New("failed to save run report")
)

// StageError reports the stage and exposures a run failed on.
type StageError struct {
	Stage  progress.Event
	Subset int // 1-based
	Files  []string
	Err    error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed on subset %d (%s): %v",
		e.Stage, e.Subset, strings.Join(e.Files, ", "), e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// IsStageError checks if err wraps a *StageError.
func IsStageError(err error) bool {
	var se *StageError
	return errors.As(err, &se)
}
