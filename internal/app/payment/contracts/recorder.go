package contracts

import "time"

// Outcome labels for Recorder.ObserveRequest
const (
	OutcomeSuccess  = "success"
	OutcomeDeclined = "declined"
	OutcomeError    = "error"
)

// Recorder observes requests sent to the payment processor
type Recorder interface {
	ObserveRequest(operation, outcome string, elapsed time.Duration)
}

// NopRecorder discards observations
type NopRecorder struct{}

func (NopRecorder) ObserveRequest(string, string, time.Duration) {}
