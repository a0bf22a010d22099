// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/insighted-client/internal/adapter"
	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/internal/store"
	"github.com/MKhiriev/insighted-client/models"
)

// SessionStore is the only writer of the session. It keeps the persisted
// entries, the adapter's bearer token and the in-memory snapshot in step.
type SessionStore struct {
	repo store.SessionRepository
	auth adapter.AuthAdapter

	mu        sync.RWMutex
	current   models.Session
	nextID    int
	observers map[int]func(models.Session)

	logger *logger.Logger
}

func NewSessionStore(repo store.SessionRepository, auth adapter.AuthAdapter, logger *logger.Logger) *SessionStore {
	return &SessionStore{
		repo:      repo,
		auth:      auth,
		observers: make(map[int]func(models.Session)),
		logger:    logger,
	}
}

// Load reads the persisted session and makes it current. A missing session
// yields a zero value and no error.
func (s *SessionStore) Load(ctx context.Context) (models.Session, error) {
	session, err := s.repo.LoadSession(ctx)
	if err != nil && !errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	s.set(session)
	return session, nil
}

// Begin persists a freshly issued session and makes it current.
func (s *SessionStore) Begin(ctx context.Context, auth models.AuthResponse) (models.Session, error) {
	user := auth.User
	session := models.Session{Token: auth.AccessToken, User: &user}

	if err := s.repo.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	s.set(session)
	s.logger.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("session started")
	return session, nil
}

// End clears both persisted entries and the current session. The in-memory
// session is dropped even when clearing the store fails.
func (s *SessionStore) End(ctx context.Context) error {
	s.set(models.Session{})
	s.logger.Info().Msg("session cleared")

	if err := s.repo.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Current returns a snapshot of the current session.
func (s *SessionStore) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Observe registers fn to be called after every session transition. The
// returned function unregisters it.
func (s *SessionStore) Observe(fn func(models.Session)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

// Check inspects the error of an authenticated call. A 401 ends the session
// and is reported as ErrAuthInvalid; transport failures are reported as
// ErrNetworkFailure.
func (s *SessionStore) Check(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrUnauthorized) {
		if clearErr := s.End(ctx); clearErr != nil {
			s.logger.Err(clearErr).Str("func", "*SessionStore.Check").Msg("error clearing session after 401")
		}
		return fmt.Errorf("%w: %w", ErrAuthInvalid, err)
	}

	return mapAdapterError(err)
}

func (s *SessionStore) set(session models.Session) {
	s.auth.SetToken(session.Token)

	s.mu.Lock()
	s.current = session
	observers := make([]func(models.Session), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(session)
	}
}
