package domain

// ValidationError rejects a payload before any store mutation happens.
// The message is part of the wire contract and is returned to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with the given client-facing message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
