package reservation

import (
	"fmt"
	"time"
)

// FormatError reports input that does not match InputTimeLayout.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("datetime %q does not match format %s", e.Input, InputTimeLayout)
}

// Code returns a stable identifier used as err_code in logs.
func (e *FormatError) Code() string { return "DATETIME_FORMAT" }

// PastDatetimeError reports a well-formed datetime that is not in the future.
type PastDatetimeError struct {
	When time.Time
}

func (e *PastDatetimeError) Error() string {
	return fmt.Sprintf("datetime %s is in the past", e.When.Format(InputTimeLayout))
}

// Code returns a stable identifier used as err_code in logs.
func (e *PastDatetimeError) Code() string { return "PAST_DATETIME" }

// ValidateFormat checks that input matches the user-facing datetime layout.
func ValidateFormat(input string) error {
	if _, err := time.ParseInLocation(InputTimeLayout, input, time.Local); err != nil {
		return &FormatError{Input: input}
	}
	return nil
}

// ValidateFuture checks that t is not earlier than now.
func ValidateFuture(t, now time.Time) error {
	if t.Before(now) {
		return &PastDatetimeError{When: t}
	}
	return nil
}

// ParseDateTime validates input against the user-facing layout, parses it,
// and checks that the instant is in the future relative to now. The format
// check runs first: malformed input never yields a PastDatetimeError.
func ParseDateTime(input string, now time.Time) (time.Time, error) {
	if err := ValidateFormat(input); err != nil {
		return time.Time{}, err
	}
	t, err := time.ParseInLocation(InputTimeLayout, input, time.Local)
	if err != nil {
		return time.Time{}, &FormatError{Input: input}
	}
	if err := ValidateFuture(t, now); err != nil {
		return time.Time{}, err
	}
	return t, nil
}
