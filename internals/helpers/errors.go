package helper

import "errors"

// Error kinds. Match with errors.Is; the concrete *DomainError carries
// the caller-facing message.
var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidValue = errors.New("invalid value")
	ErrValidation   = errors.New("validation failed")
)

type DomainError struct {
	Kind    error
	Field   string
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return e.Kind }

func NotFound(message string) error {
	return &DomainError{Kind: ErrNotFound, Message: message}
}

// DuplicateKey names the field whose uniqueness would be violated.
func DuplicateKey(field, message string) error {
	return &DomainError{Kind: ErrDuplicateKey, Field: field, Message: message}
}

func InvalidValue(field, message string) error {
	return &DomainError{Kind: ErrInvalidValue, Field: field, Message: message}
}

func Validation(field, message string) error {
	return &DomainError{Kind: ErrValidation, Field: field, Message: message}
}
