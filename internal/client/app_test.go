package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/internal/tui"
	"github.com/MKhiriev/insighted-client/internal/workers"
	"github.com/MKhiriev/insighted-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoader struct {
	session models.Session
	err     error
}

func (f fakeLoader) Load(context.Context) (models.Session, error) {
	return f.session, f.err
}

type dashboardCall struct {
	logout bool
	err    error
}

type fakeUI struct {
	logins     []models.Session
	loginErr   error
	dashboards []dashboardCall

	authCalls int
	opened    []models.Session
}

func (f *fakeUI) AuthFlow(context.Context) (models.Session, error) {
	f.authCalls++
	if f.loginErr != nil {
		return models.Session{}, f.loginErr
	}
	s := f.logins[0]
	f.logins = f.logins[1:]
	return s, nil
}

func (f *fakeUI) Dashboard(_ context.Context, session models.Session) (bool, error) {
	f.opened = append(f.opened, session)
	call := f.dashboards[0]
	f.dashboards = f.dashboards[1:]
	return call.logout, call.err
}

type fakeWorker struct {
	started, stopped int
}

func (w *fakeWorker) Start(context.Context) { w.started++ }
func (w *fakeWorker) Stop()                  { w.stopped++ }

func session(name string, role models.Role) models.Session {
	return models.Session{Token: "tok-" + name, User: &models.User{Name: name, Role: role}}
}

func newTestApp(t *testing.T, loader SessionLoader, ui UI) (*App, *fakeWorker) {
	t.Helper()
	w := &fakeWorker{}
	app, err := NewApp(loader, ui, workers.NewWorkers(w), logger.Nop())
	require.NoError(t, err)
	return app, w
}

func TestApp_RestoredSessionSkipsLogin(t *testing.T) {
	restored := session("ana", models.RoleTeacher)
	ui := &fakeUI{dashboards: []dashboardCall{{logout: false}}}
	app, w := newTestApp(t, fakeLoader{session: restored}, ui)

	require.NoError(t, app.Run())

	assert.Zero(t, ui.authCalls)
	assert.Equal(t, []models.Session{restored}, ui.opened)
	assert.Equal(t, 1, w.started)
	assert.Equal(t, 1, w.stopped)
}

func TestApp_LogoutReturnsToLogin(t *testing.T) {
	first := session("ana", models.RoleTeacher)
	second := session("root", models.RoleAdmin)
	ui := &fakeUI{
		logins:     []models.Session{second},
		dashboards: []dashboardCall{{logout: true}, {logout: false}},
	}
	app, _ := newTestApp(t, fakeLoader{session: first}, ui)

	require.NoError(t, app.Run())

	assert.Equal(t, 1, ui.authCalls)
	assert.Equal(t, []models.Session{first, second}, ui.opened)
}

func TestApp_IncompleteSessionStartsWithLogin(t *testing.T) {
	loggedIn := session("ana", models.RoleTeacher)
	ui := &fakeUI{
		logins:     []models.Session{loggedIn},
		dashboards: []dashboardCall{{logout: false}},
	}
	app, _ := newTestApp(t, fakeLoader{session: models.Session{Token: "orphan"}}, ui)

	require.NoError(t, app.Run())

	assert.Equal(t, 1, ui.authCalls)
	assert.Equal(t, []models.Session{loggedIn}, ui.opened)
}

func TestApp_UserQuitIsCleanExit(t *testing.T) {
	ui := &fakeUI{loginErr: tui.ErrUserQuit}
	app, w := newTestApp(t, fakeLoader{}, ui)

	assert.NoError(t, app.Run())
	assert.Equal(t, 1, w.stopped)
}

func TestApp_Errors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("restore failure", func(t *testing.T) {
		app, _ := newTestApp(t, fakeLoader{err: boom}, &fakeUI{})
		assert.ErrorIs(t, app.Run(), boom)
	})

	t.Run("dashboard failure", func(t *testing.T) {
		ui := &fakeUI{dashboards: []dashboardCall{{err: boom}}}
		app, _ := newTestApp(t, fakeLoader{session: session("ana", models.RoleTeacher)}, ui)
		assert.ErrorIs(t, app.Run(), boom)
	})

	t.Run("auth without session", func(t *testing.T) {
		ui := &fakeUI{logins: []models.Session{{}}}
		app, _ := newTestApp(t, fakeLoader{}, ui)
		assert.ErrorIs(t, app.Run(), errAuthWithoutSession)
	})
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, workers.NewWorkers(), logger.Nop())
	assert.Error(t, err)
}
