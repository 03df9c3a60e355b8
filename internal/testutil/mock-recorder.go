package testutil

import (
	"errors"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockRecorder is a mock of ports.Recorder.
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) ObserveOperation(op string, d time.Duration, err error) {
	m.Called(op, d, err)
}

// ExpectObservation registers an ObserveOperation call for op with any duration. A nil
// wantErr expects a nil error; otherwise the recorded error must match with errors.Is.
func (m *MockRecorder) ExpectObservation(op string, wantErr error) *mock.Call {
	return m.On("ObserveOperation", op, mock.AnythingOfType("time.Duration"), mock.MatchedBy(func(err error) bool {
		if wantErr == nil {
			return err == nil
		}
		return errors.Is(err, wantErr)
	}))
}
