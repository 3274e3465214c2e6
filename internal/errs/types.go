package errs

import (
	"fmt"
	"strings"
)

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// MissingConfigurationError means none of the accepted auth options were set.
type MissingConfigurationError struct {
	ErrorMessage
	Options []string
}

type CredentialsNotFoundError struct {
	ErrorMessage
	Path string
	Err  error
}

func (e *CredentialsNotFoundError) Unwrap() error { return e.Err }

type CredentialsParseError struct {
	ErrorMessage
	Err error
}

func (e *CredentialsParseError) Unwrap() error { return e.Err }

// FetchFailedError wraps a backend read failure after successful auth.
type FetchFailedError struct {
	ErrorMessage
	Source string
	Err    error
}

func (e *FetchFailedError) Unwrap() error { return e.Err }

// NotConfiguredError is returned by a fetch whose lazy initialization failed.
type NotConfiguredError struct {
	ErrorMessage
	Source string
	Err    error
}

func (e *NotConfiguredError) Unwrap() error { return e.Err }

func NewMissingConfigurationError(options ...string) *MissingConfigurationError {
	return &MissingConfigurationError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("one of %s must be set", strings.Join(options, ", "))},
		Options:      options,
	}
}

func NewCredentialsNotFoundError(path string, err error) *CredentialsNotFoundError {
	return &CredentialsNotFoundError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("credentials not found at: %s", path)},
		Path:         path,
		Err:          err,
	}
}

func NewCredentialsParseError(option string, err error) *CredentialsParseError {
	return &CredentialsParseError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("failed to parse credentials from %s: %v", option, err)},
		Err:          err,
	}
}

func NewFetchFailedError(source string, err error) *FetchFailedError {
	return &FetchFailedError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("failed to read bonuses from %s: %v", source, err)},
		Source:       source,
		Err:          err,
	}
}

func NewNotConfiguredError(source string, err error) *NotConfiguredError {
	return &NotConfiguredError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("%s is not configured: %v", source, err)},
		Source:       source,
		Err:          err,
	}
}
