package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess          = 0 // All categories met their targets
	ExitValidationFailed = 1 // One or more categories failed validation
	ExitError            = 2 // Configuration or runtime error
)

// ThresholdFailureError indicates that the analysis completed, but
// one or more categories missed their performance target.
type ThresholdFailureError struct {
	Failures int
}

func (e *ThresholdFailureError) Error() string {
	return fmt.Sprintf("%d critical tests failed", e.Failures)
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var thresholdErr *ThresholdFailureError
		if errors.As(err, &thresholdErr) {
			os.Exit(ExitValidationFailed)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
