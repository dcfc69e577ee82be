package util

import (
	"fmt"

	"github.com/reconquest/pkg/log"
)

// FatalErrorHandler stops the run on the first failed screen unless
// ContinueOnError is set, then failures are logged and skipped.
type FatalErrorHandler struct {
	ContinueOnError bool

	failures int
}

func NewErrorHandler(continueOnError bool) *FatalErrorHandler {
	return &FatalErrorHandler{
		ContinueOnError: continueOnError,
	}
}

func (h *FatalErrorHandler) Handle(err error, format string, args ...interface{}) {
	h.failures++

	if err == nil {
		if h.ContinueOnError {
			log.Error(fmt.Sprintf(format, args...))
			return
		}
		log.Fatal(fmt.Sprintf(format, args...))
	}

	if h.ContinueOnError {
		log.Errorf(err, format, args...)
		return
	}
	log.Fatalf(err, format, args...)
}

// Failures is the number of errors handled so far.
func (h *FatalErrorHandler) Failures() int {
	return h.failures
}
