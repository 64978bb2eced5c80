// Package driver provides the driver presence entity for the delivery system.
//
// Presence is a deliberately small model: one row per driver, overwritten in
// place on each report (last-write-wins). The registry keeps no history and
// never expires rows; readers decide staleness by comparing UpdatedAt against
// their own horizon.
package driver
