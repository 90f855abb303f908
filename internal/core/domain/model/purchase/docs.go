// Package purchase models supplier purchase orders and their approval lifecycle.
//
// An order is created Pending and moves exactly once to one of the terminal
// statuses Approved, Rejected or Cancelled. Approval is the only transition
// with a side effect outside the aggregate (stock is received into the ledger);
// that cascade is coordinated by services.StockReceiver so both aggregates
// change inside one unit of work.
//
// Orders are never deleted. Item, quantity and supplier are fixed at creation.
package purchase
