package generate

import "errors"

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports missing or blank request inputs. The model is never called when it is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// CompletionServiceError wraps a completion backend failure. Its message is the upstream message unchanged.
type CompletionServiceError struct {
	Err error
}

func (e *CompletionServiceError) Error() string {
	if e.Err == nil {
		return "completion service failed"
	}
	return e.Err.Error()
}

func (e *CompletionServiceError) Unwrap() error {
	return e.Err
}
