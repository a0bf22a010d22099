package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/internal/tui"
	"github.com/MKhiriev/insighted-client/internal/workers"
	"github.com/MKhiriev/insighted-client/models"
)

var errAuthWithoutSession = errors.New("auth flow ended without a session")

type App struct {
	sessions SessionLoader
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(sessions SessionLoader, ui UI, workers *workers.Workers, logger *logger.Logger) (*App, error) {
	if sessions == nil || ui == nil || workers == nil {
		return nil, errors.New("client: sessions, ui and workers are required")
	}
	return &App{sessions: sessions, ui: ui, workers: workers, logger: logger}, nil
}

func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	session, err := a.sessions.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	for {
		if !session.Complete() {
			session, err = a.ui.AuthFlow(ctx)
			if err != nil {
				return quitIsExit(err)
			}
			if !session.Complete() {
				return errAuthWithoutSession
			}
			a.logger.Info().Str("user_role", string(session.User.Role)).Msg("logged in")
		}

		logout, err := a.ui.Dashboard(ctx, session)
		if err != nil {
			return quitIsExit(err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().Msg("returning to login")
		session = models.Session{}
	}
}

// quitIsExit treats the user quitting as a clean exit.
func quitIsExit(err error) error {
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}
