package cli

import (
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// logged wraps a command with one completion log line.
func logged(name string, fn commandFunc) commandFunc {
	return func(args []string) error {
		start := time.Now()
		runID := uuid.New().String()

		err := fn(args)

		code := ExitOK
		if err != nil {
			code = ExitFailure
			var exitErr *ExitError
			if errors.As(mapDomainError(err), &exitErr) {
				code = exitErr.Code
			}
		}

		entry := log.WithFields(log.Fields{
			"command":    name,
			"run_id":     runID,
			"exit_code":  code,
			"latency_ms": time.Since(start).Milliseconds(),
		})
		if err != nil {
			entry.WithError(err).Info("command failed")
		} else {
			entry.Info("command completed")
		}
		return err
	}
}
