package publica

import "errors"

var (
	// ErrNotFound covers missing records and ownership mismatches that
	// must not reveal whether the record exists.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied covers role and workflow policy violations.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidCredentials is returned for a failed login, without
	// distinguishing unknown email from wrong password.
	ErrInvalidCredentials = errors.New("Invalid credentials")
)
