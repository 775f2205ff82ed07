package service

import "errors"

// Wizard errors. Remote failures are returned as *predictor.Failure instead.
var (
	ErrCallInFlight = errors.New("a prediction call is already in progress")
	ErrWrongStep    = errors.New("operation not allowed on the current step")
	ErrNoPrediction = errors.New("no prediction result yet")
	ErrNoLifespan   = errors.New("no lifespan result yet")
	ErrOutOfRange   = errors.New("value outside the allowed range")
	ErrUnknownField = errors.New("unknown field")
	ErrEmptyEdit    = errors.New("edit must carry text, value or abandon")
)

// ErrResultDiscarded is returned to a caller whose call finished after the wizard was reset.
var ErrResultDiscarded = errors.New("wizard was reset while the call was in flight")
