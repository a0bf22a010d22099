// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/insighted-client/internal/app"
	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/internal/refresh"
	"github.com/MKhiriev/insighted-client/internal/service"
	"github.com/MKhiriev/insighted-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// dashboardBase is the part shared by the role dashboards: the guard, the
// session and refresh subscriptions, logout and the status line.
type dashboardBase struct {
	ctx      context.Context
	services *service.ClientServices
	guard    *service.SessionGuard
	logger   *logger.Logger
	title    string

	guardState service.GuardState
	user       models.User

	refreshes *feed[refresh.Signal]
	sessions  *feed[models.Session]

	loggingOut bool
	toAuth     bool
	quit       bool
	notice     string

	status string
	errMsg string
}

func newDashboardBase(ctx context.Context, services *service.ClientServices, guard *service.SessionGuard, title string, log *logger.Logger) dashboardBase {
	return dashboardBase{
		ctx:      ctx,
		services: services,
		guard:    guard,
		logger:   log,
		title:    title,
		refreshes: newFeed(func(fn func(refresh.Signal)) func() {
			return services.Refresh.Subscribe(fn)
		}, mergeSignals),
		sessions: newFeed(services.Sessions.Observe, latest[models.Session]),
	}
}

// mergeSignals widens two pending signals for different scopes to a global one.
func mergeSignals(pending, next refresh.Signal) refresh.Signal {
	if pending.Scope == next.Scope {
		return next
	}
	return refresh.Signal{}
}

func (b *dashboardBase) exitToAuth() bool { return b.toAuth }

func (b *dashboardBase) quitByUser() bool { return b.quit }

// authNotice is the message the auth menu shows after the dashboard closed.
func (b *dashboardBase) authNotice() string { return b.notice }

func (b *dashboardBase) close() {
	b.refreshes.close()
	b.sessions.close()
	b.logger.Debug().Int("refresh_listeners", b.services.Refresh.Len()).Msg("dashboard closed")
}

func (b *dashboardBase) cmdResolveGuard() tea.Cmd {
	ctx := b.ctx
	guard := b.guard

	return func() tea.Msg {
		state, err := guard.Resolve(ctx)
		return guardResolvedMsg{state: state, err: err}
	}
}

// onGuard records the guard outcome. It returns the command to run and
// whether access was granted.
func (b *dashboardBase) onGuard(msg guardResolvedMsg) (tea.Cmd, bool) {
	b.guardState = msg.state
	if msg.state != service.GuardGranted {
		b.toAuth = true
		b.notice = errorText(msg.err)
		b.logger.Info().Str("dashboard", string(b.guard.Role())).Err(msg.err).Msg("dashboard access denied")
		return tea.Quit, false
	}

	if current := b.services.Sessions.Current(); current.User != nil {
		b.user = *current.User
	}
	return tea.Batch(b.waitRefresh(), b.waitSession()), true
}

func (b *dashboardBase) waitRefresh() tea.Cmd {
	return b.refreshes.wait(func(s refresh.Signal) tea.Msg { return refreshMsg{signal: s} })
}

func (b *dashboardBase) waitSession() tea.Cmd {
	return b.sessions.wait(func(s models.Session) tea.Msg { return sessionChangedMsg{session: s} })
}

// handleCommon processes the messages every dashboard treats the same way.
// When handled is true the caller returns cmd without further processing.
func (b *dashboardBase) handleCommon(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC:
			b.quit = true
			return tea.Quit, true
		case key.Matches(msg, keys.logout):
			if b.guardState != service.GuardGranted || b.loggingOut {
				return nil, true
			}
			b.loggingOut = true
			return b.cmdLogout(), true
		}
		if b.guardState != service.GuardGranted {
			return nil, true
		}
	case sessionChangedMsg:
		if b.loggingOut {
			return nil, true
		}
		if !msg.session.Complete() {
			b.toAuth = true
			b.notice = app.MsgSessionExpired
			return tea.Quit, true
		}
		return b.waitSession(), true
	case logoutDoneMsg:
		if msg.err != nil {
			b.logger.Error().Err(msg.err).Msg("logout failed to clear the local session")
		}
		b.toAuth = true
		return tea.Quit, true
	case clearStatusMsg:
		b.status = ""
		return nil, true
	case copiedMsg:
		return b.setStatus("Copied to clipboard"), true
	case copyFailedMsg:
		b.errMsg = "Copy to clipboard failed: " + msg.err.Error()
		return nil, true
	}
	return nil, false
}

func (b *dashboardBase) cmdLogout() tea.Cmd {
	ctx := b.ctx
	auth := b.services.AuthService

	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func (b *dashboardBase) setStatus(status string) tea.Cmd {
	b.status = status
	b.errMsg = ""
	return cmdClearStatus()
}

// setError shows err in the status line. A lost session is reported through
// the session feed, so it is not shown here.
func (b *dashboardBase) setError(err error) {
	if err == nil || sessionLost(err) {
		b.errMsg = ""
		return
	}
	b.errMsg = errorText(err)
}

// pendingView is rendered until the guard resolves.
func (b *dashboardBase) pendingView() string {
	return renderPage(b.title, "Checking your session...", "")
}

func (b *dashboardBase) header(tabs []string, active int) string {
	var sb strings.Builder
	if b.user.Name != "" {
		sb.WriteString("Signed in as ")
		sb.WriteString(b.user.Name)
		sb.WriteString("\n")
	}
	sb.WriteString(renderTabs(tabs, active))
	sb.WriteString("\n\n")
	renderStatus(&sb, b.errMsg, b.status)
	return sb.String()
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
