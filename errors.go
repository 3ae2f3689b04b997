package sdk

import (
	"errors"

	"github.com/caseforge/sdk/recorder"
)

// Sentinel errors for common SDK error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrNoGenerator indicates Run was called without a case generator.
	ErrNoGenerator = errors.New("no generator provided")

	// ErrNoSuchRun mirrors recorder.ErrNoSuchRun so callers resolving a
	// previous run through the runner do not need to import the recorder
	// package for the check.
	ErrNoSuchRun = recorder.ErrNoSuchRun
)
