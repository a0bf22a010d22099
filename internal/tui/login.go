// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/insighted-client/internal/service"
	"github.com/MKhiriev/insighted-client/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. It renders the
// email and password inputs and dispatches an async login command on
// submission. On success a [LoginResult] message is produced and handled by
// [RootModel] to finish the auth flow.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       inputForm
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel]. The email field receives focus
// immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newInputForm(
			formField{label: "Email", placeholder: "teacher@school.edu", charLimit: 254},
			formField{label: "Password", placeholder: "password", charLimit: 256, secret: true},
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]  clears submitting state; on error, populates errMsg.
//   - esc            cancels and navigates back to the menu.
//   - tab/shift+tab  move focus between inputs.
//   - enter          checks required inputs and dispatches the async login.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = loginErrorText(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab":
			m.form.focusNext()
			return m, nil
		case "shift+tab":
			m.form.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := m.form.value(0)
			pass := m.form.rawValue(1)
			if email == "" || pass == "" {
				m.errMsg = "Email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Login(ctx, models.Credentials{
			Email:    email,
			Password: pass,
		})

		return LoginResult{
			Session: session,
			Err:     err,
		}
	}
}
