// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrorUnauthorized covers bad credentials and absent, unknown, revoked
	// or expired tokens.
	ErrorUnauthorized = errors.New("Unauthorized (401)")

	// ErrorNotFound is returned when a record with the requested key does not exist.
	ErrorNotFound = errors.New("Not Found (404)")

	// ErrorConflict is returned when a write would break student email uniqueness.
	ErrorConflict = errors.New("Conflict (409)")

	// ErrorValidation is returned for malformed or missing request input.
	ErrorValidation = errors.New("Validation Failed (422)")

	// ErrorInternal hides storage and other unexpected failures from callers.
	ErrorInternal = errors.New("internal error")
)

var kinds = []error{ErrorUnauthorized, ErrorNotFound, ErrorConflict, ErrorValidation}

// Kind returns the sentinel that err wraps, or ErrorInternal when err matches
// none of the known kinds. Kind(nil) is nil.
func Kind(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrorInternal
}

// Label returns the stable human-readable label of the error kind err belongs to.
func Label(err error) string {
	k := Kind(err)
	if k == nil {
		return ""
	}
	return k.Error()
}
