package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ProvisionerResolveFailed indicates the injected provisioner could not be resolved.
	ProvisionerResolveFailed AppErrorType = iota
	// TemplateLoadFailed indicates the template could not be read or parsed.
	TemplateLoadFailed
	// ValidationFailed indicates the template or options failed validation.
	ValidationFailed
	// SpliceFailed indicates the splice step failed.
	SpliceFailed
	// RenderFailed indicates the output could not be written.
	RenderFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewProvisionerResolveError creates a provisioner resolve error.
func NewProvisionerResolveError(message string, cause error) *AppError {
	return NewAppError(ProvisionerResolveFailed, message, cause)
}

// NewTemplateLoadError creates a template load error.
func NewTemplateLoadError(message string, cause error) *AppError {
	return NewAppError(TemplateLoadFailed, message, cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewSpliceError creates a splice error.
func NewSpliceError(message string, cause error) *AppError {
	return NewAppError(SpliceFailed, message, cause)
}

// NewRenderError creates a render error.
func NewRenderError(message string, cause error) *AppError {
	return NewAppError(RenderFailed, message, cause)
}
