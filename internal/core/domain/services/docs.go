// Package services holds domain services that coordinate more than one
// aggregate inside a single unit of work.
//
// The package includes:
//   - StockReceiver: applies an approved purchase order to the inventory ledger
package services
