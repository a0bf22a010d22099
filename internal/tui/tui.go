package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/insighted-client/internal/config"
	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/internal/service"
	"github.com/MKhiriev/insighted-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	app       config.ClientApp
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// notice is shown by the next auth menu, e.g. why the dashboard closed.
	notice string
}

func New(services *service.ClientServices, app config.ClientApp, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are nil")
	}
	return &TUI{services: services, app: app, buildInfo: buildInfo, logger: logger}, nil
}

// AuthFlow runs the menu, login and register screens until a login succeeds.
func (t *TUI) AuthFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(t.buildInfo).withStatus(t.notice),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	t.notice = ""

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// Dashboard opens the dashboard of the session role behind a fresh guard.
// It reports logout when the user logged out or the guard denied access;
// both send the caller back to [TUI.AuthFlow].
func (t *TUI) Dashboard(ctx context.Context, session models.Session) (logout bool, err error) {
	role := models.RoleTeacher
	if session.User != nil && session.User.Role.Valid() {
		role = session.User.Role
	}

	var model dashboard
	switch role {
	case models.RoleAdmin:
		model = newAdminModel(ctx, t.services, t.services.Guard(role), t.app, t.logger)
	default:
		model = newTeacherModel(ctx, t.services, t.services.Guard(role), t.app, t.logger)
	}
	defer model.close()

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(dashboard)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quitByUser() {
		return false, ErrUserQuit
	}
	t.notice = result.authNotice()
	return result.exitToAuth(), nil
}

// dashboard is a role-scoped main loop model.
type dashboard interface {
	tea.Model

	// exitToAuth reports whether the loop ended by logout or denial.
	exitToAuth() bool
	quitByUser() bool
	authNotice() string
	close()
}
