package service

import "errors"

// Common service errors
var (
	// ErrCustomerNotFound is returned when a customer does not exist
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrProjectNotFound is returned when a project does not exist
	ErrProjectNotFound = errors.New("project not found")

	// ErrContractNotFound is returned when a contract does not exist
	ErrContractNotFound = errors.New("contract not found")

	// ErrInvoiceNotFound is returned when an invoice does not exist
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrMaintenanceLogNotFound is returned when a maintenance log does not exist
	ErrMaintenanceLogNotFound = errors.New("maintenance log not found")

	// ErrUserNotFound is returned when a user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when registering with an email already in use
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned for a failed login. The same error
	// covers unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidStatus is returned for an unknown status value
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPeriod is returned for an out-of-range billing period
	ErrInvalidPeriod = errors.New("invalid billing period")
)
