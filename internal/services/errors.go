package services

import "errors"

// Domain outcomes the handlers translate into the response envelope.
// Anything else that escapes a service is an upstream failure and maps
// to a generic 5xx.
var (
	ErrNotFound           = errors.New("record not found")
	ErrEmailInUse         = errors.New("email is already in use")
	ErrInvalidCredentials = errors.New("email or password is wrong")
	ErrNoIdentity         = errors.New("no request identity in context")
)
