package store

import (
	"context"

	"github.com/MKhiriev/insighted-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the two local session entries: the bearer token
// and the serialized user profile. Both are always written and cleared
// together.
type SessionRepository interface {
	// SaveSession replaces both entries in one transaction.
	SaveSession(ctx context.Context, session models.Session) error

	// LoadSession returns whatever is persisted. A missing or undecodable
	// profile yields a nil User; ErrLocalSessionNotFound is returned only
	// when neither entry exists.
	LoadSession(ctx context.Context) (models.Session, error)

	// ClearSession removes both entries. Clearing an empty store is not an
	// error.
	ClearSession(ctx context.Context) error
}
