package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/insighted-client/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return appStyle.Render(b.String())
}

// renderTabs renders the tab strip with the active tab highlighted.
func renderTabs(names []string, active int) string {
	parts := make([]string, len(names))
	for i, name := range names {
		if i == active {
			parts[i] = activeTabStyle.Render(name)
			continue
		}
		parts[i] = name
	}
	return strings.Join(parts, " │ ")
}

// renderStatus renders the error and status lines shared by the dashboards.
func renderStatus(b *strings.Builder, errMsg, status string) {
	if errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + errMsg))
		b.WriteString("\n")
	}
	if status != "" {
		b.WriteString("Status: ")
		b.WriteString(status)
		b.WriteString("\n")
	}
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func textOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func formatScore(v float64) string {
	return fmt.Sprintf("%.2f", models.Round2(v))
}

func cursorMark(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}

// moveCursor returns idx moved by delta and clamped to [0, n-1].
func moveCursor(idx, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return min(max(idx+delta, 0), n-1)
}
