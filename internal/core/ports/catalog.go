package ports

import (
	"context"
)

// CatalogItem is a menu entry as priced by the restaurant.
type CatalogItem struct {
	ID     int64
	Name   string
	Price  int64
	Active bool
}

// Catalog looks up menu entries for order pricing. Items placed with a
// catalog reference are re-priced from the catalog at order time; the
// client-supplied price is never trusted for them.
type Catalog interface {
	// GetItems retrieves the catalog entries for the given ids.
	// Missing ids are absent from the result map, not an error.
	GetItems(ctx context.Context, ids []int64) (map[int64]CatalogItem, error)
}
