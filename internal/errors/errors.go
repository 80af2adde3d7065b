package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
)

// Kind represents the kind of error
type Kind int

const (
	KindUnknown Kind = iota
	KindIO
	KindInvalidValue
	KindIncludeNotFound
	KindConfiguration
	KindNotFound
)

// String returns the string representation of the error kind
func (k Kind) String() string {
	switch k {
	case KindIO:
		return "IO"
	case KindInvalidValue:
		return "INVALID_VALUE"
	case KindIncludeNotFound:
		return "INCLUDE_NOT_FOUND"
	case KindConfiguration:
		return "CONFIGURATION"
	case KindNotFound:
		return "NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}

// ConfigError represents an error with context and suggestions
type ConfigError struct {
	Kind        Kind              `json:"kind"`
	Code        string            `json:"code"`
	Message     string            `json:"message"`
	Cause       error             `json:"cause,omitempty"`
	Context     map[string]string `json:"context,omitempty"`
	Suggestions []string          `json:"suggestions,omitempty"`
	Stack       []string          `json:"stack,omitempty"`
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a ConfigError of the same kind. A target with
// a non-empty Code must match the code as well.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	return t.Code == "" || e.Code == t.Code
}

// WithContext adds context to the error
func (e *ConfigError) WithContext(key, value string) *ConfigError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithSuggestion adds a suggestion to the error
func (e *ConfigError) WithSuggestion(suggestion string) *ConfigError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *ConfigError) WithSuggestions(suggestions []string) *ConfigError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// FormatDetailed returns a detailed error message with context and suggestions
func (e *ConfigError) FormatDetailed() string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("%s error [%s]: %s\n", e.Kind.String(), e.Code, e.Message))

	if len(e.Context) > 0 {
		builder.WriteString("\nContext:\n")
		keys := make([]string, 0, len(e.Context))
		for key := range e.Context {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			builder.WriteString(fmt.Sprintf("   %s: %s\n", key, e.Context[key]))
		}
	}

	if e.Cause != nil {
		builder.WriteString(fmt.Sprintf("\nUnderlying cause: %v\n", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		builder.WriteString("\nSuggestions:\n")
		for _, suggestion := range e.Suggestions {
			builder.WriteString(fmt.Sprintf("   - %s\n", suggestion))
		}
	}

	return builder.String()
}

// NewError creates a new ConfigError
func NewError(kind Kind, code, message string) *ConfigError {
	return &ConfigError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Context: make(map[string]string),
		Stack:   captureStack(),
	}
}

// WrapError wraps an existing error with a ConfigError
func WrapError(err error, kind Kind, code, message string) *ConfigError {
	return &ConfigError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Cause:   err,
		Context: make(map[string]string),
		Stack:   captureStack(),
	}
}

// captureStack captures the current stack trace
func captureStack() []string {
	var stack []string

	// Skip this function and the constructor
	for i := 2; i < 10; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		if strings.Contains(fn.Name(), "pacview") {
			stack = append(stack, fmt.Sprintf("%s:%d %s", file, line, fn.Name()))
		}
	}

	return stack
}

// KindOf returns the kind of the first ConfigError in err's chain
func KindOf(err error) Kind {
	var cfgErr *ConfigError
	if stderrors.As(err, &cfgErr) {
		return cfgErr.Kind
	}
	return KindUnknown
}

// As returns the first ConfigError in err's chain
func As(err error) (*ConfigError, bool) {
	var cfgErr *ConfigError
	ok := stderrors.As(err, &cfgErr)
	return cfgErr, ok
}

// Sentinels for errors.Is
var (
	ErrIO              = &ConfigError{Kind: KindIO}
	ErrInvalidValue    = &ConfigError{Kind: KindInvalidValue}
	ErrIncludeNotFound = &ConfigError{Kind: KindIncludeNotFound}
	ErrNotFound        = &ConfigError{Kind: KindNotFound}
)

// Common error constructors

// NewIOError reports a file that could not be opened or read
func NewIOError(path string, err error) *ConfigError {
	return WrapError(err, KindIO, "IO_ERROR", fmt.Sprintf("failed to read %s", path)).
		WithContext("path", path).
		WithSuggestions([]string{
			"Check that the file exists",
			"Check file permissions",
		})
}

// NewInvalidValueError reports a directive whose raw text failed conversion
func NewInvalidValueError(field, raw string, err error) *ConfigError {
	e := NewError(KindInvalidValue, "INVALID_VALUE", fmt.Sprintf("invalid value %q for %s", raw, field)).
		WithContext("field", field).
		WithContext("value", raw)
	e.Cause = err
	return e.WithSuggestion("See pacman.conf(5) for the accepted values")
}

// NewIncludeNotFoundError reports a repository Include that could not be opened
func NewIncludeNotFoundError(section, path string, err error) *ConfigError {
	return WrapError(err, KindIncludeNotFound, "INCLUDE_NOT_FOUND",
		fmt.Sprintf("failed to open mirrorlist %s for [%s]", path, section)).
		WithContext("section", section).
		WithContext("path", path).
		WithSuggestions([]string{
			"Verify the Include path in the repository section",
			"Install the package that provides the mirrorlist",
		})
}

// NewConfigurationError creates a configuration error
func NewConfigurationError(code, message string) *ConfigError {
	return NewError(KindConfiguration, code, message).
		WithSuggestions([]string{
			"Check the settings file syntax",
			"Verify command line flags",
		})
}

// NewNotFoundError creates a not found error
func NewNotFoundError(code, message string) *ConfigError {
	return NewError(KindNotFound, code, message).
		WithSuggestion("Names are case-sensitive, check the spelling")
}

// ErrorHandler provides centralized error handling
type ErrorHandler struct {
	logger Logger
}

// Logger interface for error logging
type Logger interface {
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs an error and returns it as a ConfigError
func (eh *ErrorHandler) Handle(err error) *ConfigError {
	if err == nil {
		return nil
	}

	cfgErr, ok := As(err)
	if !ok {
		cfgErr = WrapError(err, KindUnknown, "UNKNOWN", err.Error())
	}

	if eh.logger != nil {
		eh.logger.Error("Error occurred: %s [%s] %s", cfgErr.Kind.String(), cfgErr.Code, cfgErr.Message)
		for key, value := range cfgErr.Context {
			eh.logger.Debug("Error context: %s = %s", key, value)
		}
	}

	return cfgErr
}

// Global error handler
var globalErrorHandler *ErrorHandler

// InitGlobalErrorHandler initializes the global error handler
func InitGlobalErrorHandler(logger Logger) {
	globalErrorHandler = NewErrorHandler(logger)
}

// GetGlobalErrorHandler returns the global error handler
func GetGlobalErrorHandler() *ErrorHandler {
	if globalErrorHandler == nil {
		globalErrorHandler = NewErrorHandler(nil)
	}
	return globalErrorHandler
}

// Handle handles an error using the global error handler
func Handle(err error) *ConfigError {
	return GetGlobalErrorHandler().Handle(err)
}
