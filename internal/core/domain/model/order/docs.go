// Package order provides domain entities and business logic for order
// lifecycle management in the delivery system. It implements the Order
// aggregate root with pricing totals, status transitions, and driver linkage.
//
// The package includes:
//   - Order: The aggregate root that manages identity, line items, totals,
//     lifecycle status, and the assigned driver
//   - Status: A state machine that enforces valid order status transitions
//   - LineItem: A value object capturing a priced catalog entry at order time
//   - Totals: A value object holding the immutable fee breakdown
//
// Key business rules:
//   - Orders are created in pending status with their totals computed once
//   - grand_total always equals items_total + service_fee + delivery_fee
//   - delivered and cancelled are terminal: no further mutation is permitted
//   - An order with a driver assigned can never return to pending
//   - Exactly one driver may ever hold an order; acceptance never moves the
//     status backward
//   - Driver-reported sub-statuses stamp pickup/delivery timestamps once
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
