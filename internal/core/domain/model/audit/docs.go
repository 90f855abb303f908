// Package audit models the append-only trail of mutating actions.
//
// Aggregates do not write to the log themselves. They record Events on an
// embedded Trail while a command runs; the command handler drains those events
// and appends one Entry per event through the audit log repository. This keeps
// the sink swappable and lets domain tests assert on emitted messages directly.
//
// Entries are immutable once appended. Storage keeps insertion order and reads
// are newest-first.
package audit
