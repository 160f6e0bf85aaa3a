package repository

import "errors"

// ErrNotFound indicates the requested snapshot namespace has never been
// saved.
var ErrNotFound = errors.New("not found")
