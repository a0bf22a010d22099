package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/insighted-client/internal/service"
	"github.com/MKhiriev/insighted-client/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the Bubble Tea model for the teacher registration screen.
// It renders name, email, password and password confirmation inputs and
// dispatches an async registration command on submission. On success the
// form is reset and the menu is opened with a [RegisterSuccessNotice].
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       inputForm
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel]. The name field receives focus
// immediately; the password fields use masked echo.
func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newInputForm(
			formField{label: "Name", placeholder: "full name"},
			formField{label: "Email", placeholder: "teacher@school.edu", charLimit: 254},
			formField{label: "Password", placeholder: "at least 6 characters", secret: true},
			formField{label: "Repeat password", placeholder: "repeat password", secret: true},
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterResult] clears submitting state; on error, populates errMsg;
//     on success, resets the form and navigates to the menu.
//   - esc              cancels and navigates back to the menu.
//   - tab/shift+tab    move focus between inputs.
//   - enter            checks that all fields are set and the passwords
//     match, then dispatches the async registration command.
//
// All other key events are forwarded to the focused input widget.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = errorText(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    pageMenu,
				Payload: RegisterSuccessNotice{Email: result.Email},
			}
		}
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

			name := m.form.value(0)
			email := m.form.value(1)
			pass := m.form.rawValue(2)
			repeat := m.form.rawValue(3)

			if name == "" || email == "" || pass == "" || repeat == "" {
				m.errMsg = "All fields are required"
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(name, email, pass)
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(name, email, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		err := auth.Register(ctx, models.Registration{
			Name:     name,
			Email:    email,
			Password: pass,
		})
		return RegisterResult{
			Err:   err,
			Email: email,
		}
	}
}
