package tui

// errorOverlayModel boxes a failure that replaces a whole panel.
type errorOverlayModel struct {
	title   string
	message string
}

func (m errorOverlayModel) View() string {
	content := m.title + "\n\n" + m.message + "\n\nenter / esc: close"
	return overlayBoxStyle.Render(content)
}
