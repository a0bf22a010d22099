package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/insighted-client/internal/config"
	"github.com/MKhiriev/insighted-client/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// SessionRepository persists the bearer token and user profile between
	// runs.
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN, creating it
// when missing, and applies pending migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the underlying database handle.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
