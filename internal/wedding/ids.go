package wedding

import (
	"strings"

	"github.com/google/uuid"
)

const tempIDPrefix = "tmp_"

// NewTempID returns a client-generated identity for an entity that has not
// been persisted yet. The prefix keeps it distinguishable from a
// server-assigned id until reconciliation replaces it.
func NewTempID() string {
	return tempIDPrefix + uuid.NewString()
}

// IsTempID reports whether id was generated by NewTempID, i.e. the entity
// has no remote row yet.
func IsTempID(id string) bool {
	return strings.HasPrefix(id, tempIDPrefix)
}
