package types

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors. Operations wrap one of these with detail; callers test the
// category with errors.Is.
var (
	ErrPrecondition = errors.New("precondition failed")
	ErrValidation   = errors.New("validation failed")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrCorruptData  = errors.New("corrupt data")
)

func preconditionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...))
}

func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func duplicatef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDuplicateKey, fmt.Sprintf(format, args...))
}

func invalidStatef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// requireText returns ErrValidation when value is empty or whitespace only.
func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return validationf("%s must not be blank", field)
	}
	return nil
}

// requireTextList checks a list has at least one entry and no blank entries.
func requireTextList(field string, values []string) error {
	if len(values) == 0 {
		return validationf("%s must not be empty", field)
	}
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			return validationf("%s[%d] must not be blank", field, i)
		}
	}
	return nil
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
