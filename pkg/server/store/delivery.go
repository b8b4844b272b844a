package store

import (
	"errors"

	"github.com/google/uuid"

	"github.com/franqsuite/backoffice/pkg/model"
)

// ErrInvalidAttempt is returned when a delivery attempt number is below 1
var ErrInvalidAttempt = errors.New("attempt must be >= 1")

// DeliveryStore abstracts the notification delivery ledger. The store is a
// passive record of attempts made by the external delivery mechanism; it
// performs no retries itself.
type DeliveryStore interface {
	// Append records one delivery attempt.
	// Returns ErrInvalidAttempt when row.Attempt < 1.
	Append(row *model.NotificationDeliveryLog) error

	// List returns all delivery rows, newest dispatch first.
	List() ([]model.NotificationDeliveryLog, error)

	// DeleteOne hard-deletes a single delivery row.
	DeleteOne(id uuid.UUID) error

	// DeleteAll hard-deletes every delivery row and reports how many were
	// removed.
	DeleteAll() (int64, error)
}
