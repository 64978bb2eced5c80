package queries

import (
	"errors"

	"github.com/marribaloch/Indian-food/internal/pkg/guard"
)

var ErrListDispatchableOrdersQueryIsNotConstructed = errors.New(
	"ListDispatchableOrdersQuery must be created via NewListDispatchableOrdersQuery constructor",
)

const (
	// DefaultDispatchPageSize is the dispatch feed page size when the client
	// does not ask for one.
	DefaultDispatchPageSize = 50
	// MaxDispatchPageSize caps the dispatch feed page size.
	MaxDispatchPageSize = 100
)

// ListDispatchableOrdersQuery retrieves unassigned orders awaiting a driver,
// oldest first so the longest-waiting orders surface at the top of the feed.
type ListDispatchableOrdersQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewListDispatchableOrdersQuery creates a dispatch feed query.
// A non-positive limit takes the default page size; anything above the cap
// is clamped down to it.
func NewListDispatchableOrdersQuery(limit int) (ListDispatchableOrdersQuery, error) {
	if limit <= 0 {
		limit = DefaultDispatchPageSize
	}
	if limit > MaxDispatchPageSize {
		limit = MaxDispatchPageSize
	}
	return ListDispatchableOrdersQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDispatchableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListDispatchableOrdersQueryIsNotConstructed)
}

// Limit returns the effective page size.
func (q ListDispatchableOrdersQuery) Limit() int {
	return q.limit
}
