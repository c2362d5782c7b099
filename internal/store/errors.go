package store

import "errors"

// ErrPendingSync is returned when a mutation targets an entity that still
// carries a client-generated temporary identity: its remote row does not
// exist yet, so an update or delete against it could only miss. Retry after
// the pending insert reconciles or after a refresh.
var ErrPendingSync = errors.New("entity not yet persisted; retry after sync")
