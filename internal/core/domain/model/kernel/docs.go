// Package kernel holds the value objects shared by every aggregate in the
// retail domain.
//
// The package includes:
//   - UUID: stable record identifier used as the key of purchases and deliveries
//   - ItemName: the trimmed, non-empty name that keys the inventory ledger
//   - Name: a trimmed, non-empty free-text name (supplier, customer, driver)
//
// All values are immutable and safe for concurrent use. Zero values are invalid
// and report so through Validate.
package kernel
