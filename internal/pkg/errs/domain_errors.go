package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Lead errors
	ErrLeadNotFound         = errors.New("lead not found")
	ErrLeadValidationFailed = errors.New("lead validation failed")

	// Appointment errors
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrServiceNotFound      = errors.New("service not found")
	ErrInvalidStatusChange  = errors.New("invalid status change")
	ErrAppointmentCancelled = errors.New("appointment already cancelled")

	// Validation errors
	ErrDomainValidation       = errors.New("domain validation error")
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
