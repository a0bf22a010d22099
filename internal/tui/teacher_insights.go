package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *teacherModel) viewOverview() (string, string) {
	state := m.overview.State()
	hotKeys := "s: subject │ r: reload │ tab: next tab"

	if state.Loading && state.Err == nil && state.Data.Averages == nil {
		return "Loading overview...\n", hotKeys
	}
	if state.Err != nil {
		return "Overview unavailable\n", hotKeys
	}

	o := state.Data
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Total students     │ %d\n", o.Stats.TotalStudents))
	b.WriteString(fmt.Sprintf("Distinct traits    │ %d\n", o.Stats.DistinctTraits))
	b.WriteString(fmt.Sprintf("Most common trait  │ %s\n", valueOrDash(o.Stats.MostCommonTrait)))
	b.WriteString(fmt.Sprintf("Last upload        │ %s\n", valueOrDash(o.Stats.LastUpload)))

	b.WriteString("\nClass averages\n")
	b.WriteString("Trait             │ Score  │ Level\n")
	b.WriteString("──────────────────┼────────┼─────────\n")
	for _, a := range o.Averages {
		b.WriteString(fmt.Sprintf("%-17s │ %6s │ %s\n", a.Trait, formatScore(a.Score), a.Level()))
	}

	b.WriteString("\nDominant trait distribution\n")
	total := 0
	for _, d := range o.Distribution {
		total += d.Count
	}
	for _, d := range o.Distribution {
		b.WriteString(fmt.Sprintf("%-26s │ %3d │ %s\n", fitText(d.Trait, 26), d.Count, bar(d.Count, total, 20)))
	}

	if o.Recommendation != nil && o.Recommendation.TeacherStrategy != "" {
		b.WriteString("\nClass strategy\n")
		b.WriteString(o.Recommendation.TeacherStrategy)
		b.WriteString("\n")
	}

	return b.String(), hotKeys
}

func (m *teacherModel) handleClustersKey(msg tea.KeyMsg) tea.Cmd {
	groups := m.clusters.State().Data
	switch {
	case key.Matches(msg, keys.up):
		m.clusterIdx = moveCursor(m.clusterIdx, -1, len(groups))
	case key.Matches(msg, keys.down):
		m.clusterIdx = moveCursor(m.clusterIdx, 1, len(groups))
	case key.Matches(msg, keys.copy):
		if m.clusterIdx < len(groups) && !groups[m.clusterIdx].Failed {
			return cmdCopyToClipboard(groups[m.clusterIdx].Intervention)
		}
	}
	return nil
}

func (m *teacherModel) viewClusters() (string, string) {
	state := m.clusters.State()
	hotKeys := "↑/↓: select │ c: copy intervention │ s: subject │ tab: next tab"

	if state.Loading && state.Data == nil {
		return "Loading clusters...\n", hotKeys
	}
	if state.Err != nil {
		return "Clusters unavailable\n", hotKeys
	}
	if len(state.Data) == 0 {
		return "No clusters for this scope\n", hotKeys
	}

	var b strings.Builder
	for i, g := range state.Data {
		b.WriteString(fmt.Sprintf("%s %s (%d)\n", cursorMark(i == m.clusterIdx), g.Trait, len(g.Students)))
		if i != m.clusterIdx {
			continue
		}
		names := make([]string, len(g.Students))
		for j, s := range g.Students {
			names[j] = s.Name
		}
		b.WriteString("    Students: ")
		b.WriteString(textOrDash(strings.Join(names, ", ")))
		b.WriteString("\n    Intervention: ")
		b.WriteString(g.Intervention)
		b.WriteString("\n")
	}
	return b.String(), hotKeys
}

// handleUploadKey owns every key of the upload tab except tab switching, so
// typed paths never trigger dashboard shortcuts.
func (m *teacherModel) handleUploadKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		return nil, false
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return nil, true
		}
		m.submitting = true
		m.errMsg = ""
		return m.cmdUploadMasterlist(m.uploadForm.value(0)), true
	}
	return m.uploadForm.update(msg), true
}

func (m *teacherModel) cmdUploadMasterlist(path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.DashboardService

	return func() tea.Msg {
		result, err := svc.UploadMasterlist(ctx, path)
		return masterlistUploadedMsg{result: result, err: err}
	}
}

func (m *teacherModel) viewUpload() (string, string) {
	var b strings.Builder
	b.WriteString("Upload a class masterlist (CSV)\n\n")
	b.WriteString(m.uploadForm.view())
	if m.submitting {
		b.WriteString("\n[Uploading...]\n")
	} else {
		b.WriteString("\n[Upload]\n")
	}

	if r := m.uploadResult; r != nil {
		b.WriteString(fmt.Sprintf("\nMatched: %d   Unmatched: %d\n", r.Matched, r.Unmatched))
		for _, name := range r.UnmatchedStudents {
			b.WriteString("  - ")
			b.WriteString(name)
			b.WriteString("\n")
		}
	}
	return b.String(), "enter: upload │ tab: next tab"
}

func uploadStatus(message, fallback string) string {
	if strings.TrimSpace(message) != "" {
		return message
	}
	return fallback
}

// bar renders count as a share of total in width cells.
func bar(count, total, width int) string {
	if total <= 0 || count <= 0 {
		return ""
	}
	return strings.Repeat("█", max(count*width/total, 1))
}
