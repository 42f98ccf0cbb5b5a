// Package errclass defines stable, machine-readable error classes for fimon.
package errclass

import "fmt"

// FimError is a stable, machine-readable error class.
type FimError struct {
	Code    string
	Message string
}

func (e *FimError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *FimError) Is(target error) bool {
	t, ok := target.(*FimError)
	return ok && e.Code == t.Code
}

// WithMessage returns a new FimError with the same Code but a specific message.
func (e *FimError) WithMessage(msg string) *FimError {
	return &FimError{Code: e.Code, Message: msg}
}

// WithMessagef returns a new FimError with a formatted message.
func (e *FimError) WithMessagef(format string, args ...any) *FimError {
	return &FimError{Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

// All stable error classes.
var (
	ErrTargetInvalid    = &FimError{Code: "E_TARGET_INVALID"}
	ErrBaselineCorrupt  = &FimError{Code: "E_BASELINE_CORRUPT"}
	ErrKeyUnreadable    = &FimError{Code: "E_KEY_UNREADABLE"}
	ErrDecryptFailed    = &FimError{Code: "E_DECRYPT_FAILED"}
	ErrSaveFailed       = &FimError{Code: "E_SAVE_FAILED"}
	ErrHashFailed       = &FimError{Code: "E_HASH_FAILED"}
	ErrWatchUnavailable = &FimError{Code: "E_WATCH_UNAVAILABLE"}
)
