// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{DB: db, logger: logger, now: time.Now}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := r.logger

	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	now := r.now().UTC()
	query, args, err := r.builder().
		Insert(clientStateTable).
		Columns(colKey, colValue, colUpdatedAt).
		Values(keyToken, session.Token, now).
		Values(keyUser, string(userJSON), now).
		Suffix(upsertClientStateSuffix).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	log := r.logger

	query, args, err := r.builder().
		Select(colKey, colValue).
		From(clientStateTable).
		Where(sq.Eq{colKey: sessionKeys}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.LoadSession").Msg("error building query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.LoadSession").Msg("error loading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var (
		session models.Session
		found   bool
	)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			log.Err(err).Str("func", "*sessionRepository.LoadSession").Msg("error scanning row")
			return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		found = true

		switch key {
		case keyToken:
			session.Token = value
		case keyUser:
			session.User = decodeUser(value)
			if session.User == nil {
				log.Warn().Str("func", "*sessionRepository.LoadSession").Msg("stored user profile is unreadable")
			}
		}
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.LoadSession").Msg("error iterating rows")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if !found {
		return models.Session{}, ErrLocalSessionNotFound
	}

	return session, nil
}

func (r *sessionRepository) ClearSession(ctx context.Context) error {
	log := r.logger

	query, args, err := r.builder().
		Delete(clientStateTable).
		Where(sq.Eq{colKey: sessionKeys}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.ClearSession").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.ClearSession").Msg("error clearing session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// decodeUser returns nil for "null", malformed JSON or an empty object.
func decodeUser(value string) *models.User {
	var user *models.User
	if err := json.Unmarshal([]byte(value), &user); err != nil {
		return nil
	}
	if user == nil || (user.ID == 0 && user.Role == "") {
		return nil
	}
	return user
}
