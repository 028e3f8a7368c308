package apperrors

import "strings"

// Message returns the human-readable part of a wrapped sentinel error, with
// the sentinel prefix stripped. Errors that wrap no sentinel come back
// unchanged.
func Message(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{ErrValidation, ErrNotFound, ErrUnauthorized, ErrForbidden, ErrDuplicate} {
		prefix := sentinel.Error() + ": "
		if strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}
