package store

import (
	"github.com/google/uuid"

	"github.com/franqsuite/backoffice/pkg/model"
)

// UsersStore abstracts identity lookups. User records are owned by the
// identity provider; the back-office only reads them.
type UsersStore interface {
	// FetchUser returns the user row, or nil when unknown
	FetchUser(id uuid.UUID) *model.User
}
