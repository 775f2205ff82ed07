package predictor

import (
	"errors"
	"fmt"
)

// Kind classifies why a remote call did not produce a result.
type Kind string

const (
	KindTransport Kind = "transport" // unreachable, non-2xx, malformed body
	KindService   Kind = "service"   // body parsed but status != "success"
	KindTimeout   Kind = "timeout"   // the call exceeded its deadline
)

// Failure is the single error type returned by a Client.
type Failure struct {
	Kind   Kind
	Reason string // user-facing
	Err    error  // underlying cause, may be nil
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s failure: %s: %v", f.Kind, f.Reason, f.Err)
	}
	return fmt.Sprintf("%s failure: %s", f.Kind, f.Reason)
}

func (f *Failure) Unwrap() error { return f.Err }

// AsFailure extracts a *Failure from err. Any other error is reported as a transport failure.
func AsFailure(err error) *Failure {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return &Failure{Kind: KindTransport, Reason: reasonUnavailable, Err: err}
}
