// Package inventory models the stock ledger: one non-negative quantity per item.
//
// Items are created implicitly at zero the first time they are touched and are
// never removed. Withdrawals larger than the current quantity clamp at zero
// instead of failing; the clamp is the ledger's only floor.
//
// Two mutation paths exist. Adjust is the manual edit an inventory clerk makes
// and records an audit event. Receive is the purchase approval cascade and
// records nothing, because the approval itself is audited by the purchase flow.
package inventory
