package provisioner

import "fmt"

// ProvisionerErrorType represents the type of provisioner resolution error.
type ProvisionerErrorType int

const (
	// UnknownProvisionerTemplate indicates the requested built-in does not exist.
	UnknownProvisionerTemplate ProvisionerErrorType = iota
	// NoProvisioner indicates neither a file nor a built-in name was given.
	NoProvisioner
	// LoadFailed indicates the provisioner file could not be loaded.
	LoadFailed
)

// ProvisionerError represents a failure to resolve the injected provisioner.
type ProvisionerError struct {
	// Type is the error type.
	Type ProvisionerErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *ProvisionerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error.
func (e *ProvisionerError) Unwrap() error {
	return e.Cause
}

// NewProvisionerError creates a new ProvisionerError.
func NewProvisionerError(typ ProvisionerErrorType, message string, cause error) *ProvisionerError {
	return &ProvisionerError{
		Type:    typ,
		Message: message,
		Cause:   cause,
	}
}
