package auth

import "errors"

// ErrInvalidCredentials covers both an unknown username and a wrong
// password — callers must not be able to tell which.
var ErrInvalidCredentials = errors.New("invalid credentials")
