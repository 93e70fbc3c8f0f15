package repository

import "errors"

// ErrNotFound is returned by every store implementation (SQL and local)
// when the requested record does not exist, so services never have to
// know which backend is wired in.
var ErrNotFound = errors.New("record not found")
