// Package remote is the generic surface over the durable store. The sync
// layer addresses named collections through it and never sees SQL; rows are
// plain structs whose columns are named by their json tags (which match the
// gorm column tags).
package remote

import "context"

// Filter narrows an operation to rows matching a column condition.
type Filter struct {
	Column string
	Value  any
	Values []any
	isIn   bool
}

// Eq matches rows whose column equals value.
func Eq(column string, value any) Filter {
	return Filter{Column: column, Value: value}
}

// In matches rows whose column is a member of values.
func In(column string, values ...any) Filter {
	return Filter{Column: column, Values: values, isIn: true}
}

// InStrings is In for the common case of a string id set.
func InStrings(column string, values []string) Filter {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return In(column, vs...)
}

// Service is the remote persistence contract. Implementations are the sole
// source of durable truth; the sync layer treats every call as best-effort
// and reconciles through a full reload when in doubt.
type Service interface {
	// Select reads all rows matching the filters into dest, a pointer to a
	// slice of row structs.
	Select(ctx context.Context, collection string, dest any, filters ...Filter) error

	// Insert persists rows (a pointer to one row struct or to a slice of
	// them) and writes any server-assigned identity back into them.
	Insert(ctx context.Context, collection string, rows any) error

	// Update applies column-keyed changes to every row matching the filters.
	Update(ctx context.Context, collection string, changes map[string]any, filters ...Filter) error

	// Delete removes every row matching the filters.
	Delete(ctx context.Context, collection string, filters ...Filter) error

	// Upsert inserts rows, replacing existing rows that collide on the
	// conflict columns.
	Upsert(ctx context.Context, collection string, rows any, conflictColumns ...string) error
}
