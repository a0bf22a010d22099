package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/insighted-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type MenuModel struct {
	items     []string
	idx       int
	status    string
	buildInfo models.AppBuildInfo
}

func NewMenuModel(buildInfo models.AppBuildInfo) *MenuModel {
	return &MenuModel{
		items:     []string{"Log in", "Register"},
		buildInfo: buildInfo,
	}
}

// withStatus sets the line shown above the menu until the next action.
func (m *MenuModel) withStatus(status string) *MenuModel {
	m.status = status
	return m
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(RegisterSuccessNotice); ok {
		if notice.Email != "" {
			m.status = "Account " + notice.Email + " registered. You can log in now."
		} else {
			m.status = "Registration successful"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		m.status = ""
		if m.idx == 0 {
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageRegister} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.status != "" {
		b.WriteString("Note: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		idCell := fmt.Sprintf("%s %d", cursorMark(i == m.idx), i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.buildInfo.String()))

	return renderPage("INSIGHTED", b.String(), "enter: select │ ↑/↓: navigate │ v: version")
}
