package profile

import (
	"errors"
	"fmt"
)

// ErrProfileNotFound is returned when the user has no profile row.
var ErrProfileNotFound = errors.New("profile not found")

// StagedDataError reports staged data that could not be decoded.
type StagedDataError struct {
	Key string
	Err error
}

func (e *StagedDataError) Error() string {
	return fmt.Sprintf("malformed staged data under %s: %v", e.Key, e.Err)
}

func (e *StagedDataError) Unwrap() error {
	return e.Err
}
