package domain

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrDisbursementExists = errors.New("Disbursement already exists for merchant and window")

// ValidationError reports bad constructor input to a value object or entity.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// DomainRuleError reports a violated business rule such as an invalid status
// transition or an unsupported frequency.
type DomainRuleError struct {
	Message string
}

func (e *DomainRuleError) Error() string {
	return e.Message
}

func NewDomainRuleError(message string) *DomainRuleError {
	return &DomainRuleError{Message: message}
}
