// Package delivery models outbound customer deliveries.
//
// Delivery status is a free label rather than a guarded state machine: any of
// Scheduled, In Transit and Delivered may follow any other, including itself.
// Backward moves are allowed on purpose and are reported through IsRegression
// so callers can surface them. Deliveries never touch the inventory ledger.
package delivery
