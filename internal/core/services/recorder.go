package services

import (
	"time"

	"modeldb-common/internal/core/ports/output"
)

func recorderOrNop(r ports.Recorder) ports.Recorder {
	if r == nil {
		return ports.NopRecorder{}
	}
	return r
}

// observe is deferred by every operation with a pointer to its named error result.
func observe(r ports.Recorder, op string, start time.Time, err *error) {
	r.ObserveOperation(op, time.Since(start), *err)
}
