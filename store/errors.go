package store

import "github.com/pkg/errors"

// Error kinds returned by store operations. Callers classify them with
// errors.Is and translate to transport responses themselves; the store never
// formats user-facing messages or logs.
var (
	// ErrNotFound means a referenced entity id does not exist where
	// existence was required for the operation to proceed.
	ErrNotFound = errors.New("entity not found")

	// ErrBadRequest means a payload or referenced id violates a domain
	// invariant: duplicate profile per user, unknown member type, missing
	// required fields, removing a non-existent subscription edge, deleting
	// an entity whose id is unknown.
	ErrBadRequest = errors.New("bad request")
)
