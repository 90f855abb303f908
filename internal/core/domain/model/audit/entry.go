package audit

import (
	"errors"
	"strings"
	"time"

	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/pkg/errs"
	"retailops/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when an Entry was not built via NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// displayLayout renders RecordedAt the way operators read the log.
const displayLayout = "2006-01-02 15:04:05"

// Entry is one immutable line of the audit log.
type Entry struct {
	id         kernel.UUID
	recordedAt time.Time
	message    string
	guard      guard.ConstructorGuard
}

// NewEntry creates an entry for an emitted event.
func NewEntry(event Event) (Entry, error) {
	at := event.OccurredAt()
	if at.IsZero() {
		at = time.Now().UTC()
	}
	return RestoreEntry(kernel.NewUUID(), at, event.Message())
}

// RestoreEntry rebuilds a persisted entry.
func RestoreEntry(id kernel.UUID, recordedAt time.Time, message string) (Entry, error) {
	if err := id.Validate(); err != nil {
		return Entry{}, err
	}
	if strings.TrimSpace(message) == "" {
		return Entry{}, errs.NewValueIsRequiredError("message")
	}
	return Entry{
		id:         id,
		recordedAt: recordedAt.UTC(),
		message:    message,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (e Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e Entry) ID() kernel.UUID {
	return e.id
}

func (e Entry) RecordedAt() time.Time {
	return e.recordedAt
}

func (e Entry) Message() string {
	return e.message
}

// String renders "2006-01-02 15:04:05 - message".
func (e Entry) String() string {
	return e.recordedAt.Format(displayLayout) + " - " + e.message
}
