package template

import "fmt"

// TemplateErrorType represents the type of template error.
type TemplateErrorType int

const (
	// MissingProvisionersKey indicates the template has no provisioners field.
	MissingProvisionersKey TemplateErrorType = iota
	// UnexpectedProvisionerCount indicates provisioners does not hold exactly one element.
	UnexpectedProvisionerCount
	// MissingScriptsKey indicates the provisioner has no scripts field.
	MissingScriptsKey
	// UnsupportedProvisionerType indicates the provisioner type is not "shell".
	UnsupportedProvisionerType
	// InvalidScripts indicates the scripts field is not a list.
	InvalidScripts
	// NotFound indicates the file does not exist.
	NotFound
	// ReadFailed indicates the file could not be read.
	ReadFailed
	// InvalidSyntax indicates the file is not well-formed JSON.
	InvalidSyntax
	// SpliceFailed indicates splicing could not be performed.
	SpliceFailed
)

// String returns a short name for the error type.
func (t TemplateErrorType) String() string {
	switch t {
	case MissingProvisionersKey:
		return "MissingProvisionersKey"
	case UnexpectedProvisionerCount:
		return "UnexpectedProvisionerCount"
	case MissingScriptsKey:
		return "MissingScriptsKey"
	case UnsupportedProvisionerType:
		return "UnsupportedProvisionerType"
	case InvalidScripts:
		return "InvalidScripts"
	case NotFound:
		return "NotFound"
	case ReadFailed:
		return "ReadFailed"
	case InvalidSyntax:
		return "InvalidSyntax"
	case SpliceFailed:
		return "SpliceFailed"
	default:
		return fmt.Sprintf("TemplateErrorType(%d)", int(t))
	}
}

// TemplateError represents an error loading or validating a template file.
type TemplateError struct {
	// Type is the error type.
	Type TemplateErrorType
	// Message is the error message.
	Message string
	// File is the template file path.
	File string
	// Field is the JSON field that caused the error.
	Field string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *TemplateError) Error() string {
	file := e.File
	if file == "" {
		file = "<input>"
	}
	if e.Field != "" {
		if e.Cause != nil {
			return fmt.Sprintf("template error in %s [field: %s]: %s: %v", file, e.Field, e.Message, e.Cause)
		}
		return fmt.Sprintf("template error in %s [field: %s]: %s", file, e.Field, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("template error in %s: %s: %v", file, e.Message, e.Cause)
	}
	return fmt.Sprintf("template error in %s: %s", file, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// NewTemplateError creates a new TemplateError.
func NewTemplateError(typ TemplateErrorType, file, message string) *TemplateError {
	return &TemplateError{
		Type:    typ,
		File:    file,
		Message: message,
	}
}

// NewTemplateErrorWithField creates a new TemplateError with a field name.
func NewTemplateErrorWithField(typ TemplateErrorType, file, field, message string) *TemplateError {
	return &TemplateError{
		Type:    typ,
		File:    file,
		Field:   field,
		Message: message,
	}
}

// NewTemplateErrorWithCause creates a new TemplateError with a cause.
func NewTemplateErrorWithCause(typ TemplateErrorType, file, message string, cause error) *TemplateError {
	return &TemplateError{
		Type:    typ,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}
