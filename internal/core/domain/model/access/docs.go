// Package access holds the single role/operation gating table.
//
// Every mutating command asks Authorize before it opens a unit of work, so a
// denied request leaves no trace in storage or in the audit log. Read-only
// queries are not gated here; any authenticated actor may call them.
package access
