// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/marribaloch/Indian-food/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the facet of the unit of work it actually uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PresenceRepoFactory provides access to the presence repository within a transaction.
	PresenceRepoFactory interface {
		PresenceRepository() ports.PresenceRepository
	}

	// CatalogFactory provides access to the menu catalog within a transaction.
	CatalogFactory interface {
		Catalog() ports.Catalog
	}

	// IdentityFactory provides access to identity resolution within a transaction.
	IdentityFactory interface {
		Identity() ports.Identity
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlaceOrderUoW manages transactions for order placement, which touches
	// the catalog and the user table in addition to orders.
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		CatalogFactory
		IdentityFactory
	}

	// PlaceOrderUoWFactory creates new place-order unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// PresenceUoW manages transactions for presence-only operations.
	PresenceUoW interface {
		TxManager
		PresenceRepoFactory
	}

	// PresenceUoWFactory creates new presence unit of work instances.
	PresenceUoWFactory interface {
		Create() PresenceUoW
	}

	// DriverUpdateUoW manages transactions for the combined driver update,
	// which refreshes presence and may also advance an order.
	DriverUpdateUoW interface {
		TxManager
		OrderRepoFactory
		PresenceRepoFactory
	}

	// DriverUpdateUoWFactory creates new driver update unit of work instances.
	DriverUpdateUoWFactory interface {
		Create() DriverUpdateUoW
	}
)
