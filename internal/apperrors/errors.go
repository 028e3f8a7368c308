package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates a missing or invalid session.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates an authenticated caller without sufficient
// role or ownership for the target record.
var ErrForbidden = errors.New("forbidden")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")
