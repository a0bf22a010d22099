package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/insighted-client/internal/adapter"
	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/internal/validators"
	"github.com/MKhiriev/insighted-client/models"
)

type clientAuthService struct {
	adapter   adapter.AuthAdapter
	sessions  *SessionStore
	validator validators.Validator

	logger *logger.Logger
}

func NewClientAuthService(auth adapter.AuthAdapter, sessions *SessionStore, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: auth, sessions: sessions, validator: validator, logger: logger}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrValidationRejected, err)
	}

	auth, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", mapAdapterError(err))
	}
	if !auth.User.Role.Valid() {
		return models.Session{}, fmt.Errorf("login: unknown role %q", auth.User.Role)
	}

	session, err := a.sessions.Begin(ctx, auth)
	if err != nil {
		return models.Session{}, err
	}

	return session, nil
}

func (a *clientAuthService) Register(ctx context.Context, reg models.Registration) error {
	if err := a.validator.Validate(ctx, reg); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationRejected, err)
	}

	if err := a.adapter.Register(ctx, reg); err != nil {
		return fmt.Errorf("register: %w", mapAdapterError(err))
	}

	a.logger.Info().Str("email", reg.Email).Msg("account registered")
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	return a.sessions.End(ctx)
}
