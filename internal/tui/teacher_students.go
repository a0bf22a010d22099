package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/insighted-client/internal/app"
	"github.com/MKhiriev/insighted-client/internal/roster"
	"github.com/MKhiriev/insighted-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const studentsHotKeys = "/: search │ t: trait │ 1-4: sort │ ←/→: page │ enter: profile │ e: edit │ ctrl+d: delete │ c: copy id │ s: subject │ tab: next tab"

func (m *teacherModel) records() []models.StudentRecord {
	return m.students.State().Data.Records
}

// page derives the visible page of the student table from the current
// collection and controls.
func (m *teacherModel) page() roster.View {
	return roster.Derive(m.records(), m.controls.Query())
}

func (m *teacherModel) clampPage() {
	view := m.page()
	m.controls.Clamp(view.TotalPages)
	m.idx = moveCursor(m.idx, 0, len(m.page().Rows))
}

func (m *teacherModel) selected() (models.StudentRecord, bool) {
	rows := m.page().Rows
	if m.idx < 0 || m.idx >= len(rows) {
		return models.StudentRecord{}, false
	}
	return rows[m.idx], true
}

func (m *teacherModel) handleStudentsKey(msg tea.KeyMsg) tea.Cmd {
	if sortKey, ok := sortKeyFor(msg); ok {
		m.controls.ToggleSort(sortKey)
		m.idx = 0
		return nil
	}

	view := m.page()
	switch {
	case key.Matches(msg, keys.up):
		m.idx = moveCursor(m.idx, -1, len(view.Rows))
	case key.Matches(msg, keys.down):
		m.idx = moveCursor(m.idx, 1, len(view.Rows))
	case key.Matches(msg, keys.left):
		m.controls.Prev(view.TotalPages)
		m.idx = 0
	case key.Matches(msg, keys.right):
		m.controls.Next(view.TotalPages)
		m.idx = 0
	case key.Matches(msg, keys.search):
		m.mode = modeSearch
		return m.search.Focus()
	case key.Matches(msg, keys.trait):
		m.controls.CycleTrait()
		m.idx = 0
	case key.Matches(msg, keys.enter):
		rec, ok := m.selected()
		if !ok {
			return nil
		}
		m.mode = modeProfile
		m.profile = profileView{record: rec, loading: true}
		return m.cmdLoadProfile(rec.ID)
	case key.Matches(msg, keys.edit):
		rec, ok := m.selected()
		if !ok {
			return nil
		}
		if !m.scope.Selected() {
			m.errMsg = app.MsgScopeNotSelected
			return nil
		}
		m.editID = rec.ID
		m.editForm.reset()
		m.editForm.setValues(rec.Name, rec.Email)
		m.mode = modeEdit
		return nil
	case key.Matches(msg, keys.delete):
		rec, ok := m.selected()
		if !ok {
			return nil
		}
		m.pending = rec
		m.mode = modeConfirmDelete
	case key.Matches(msg, keys.copy):
		if rec, ok := m.selected(); ok {
			return cmdCopyToClipboard(rec.ID)
		}
	}
	return nil
}

func (m *teacherModel) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
		m.mode = modeBrowse
		m.search.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.controls.Query().Search {
		m.controls.SetSearch(m.search.Value())
		m.idx = 0
	}
	return cmd
}

func (m *teacherModel) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeBrowse
		m.errMsg = ""
		return nil
	case key.Matches(msg, keys.tab):
		m.editForm.focusNext()
		return nil
	case key.Matches(msg, keys.backtab):
		m.editForm.focusPrev()
		return nil
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return nil
		}
		m.submitting = true
		m.errMsg = ""
		return m.cmdUpdate(m.editID, models.StudentPatch{
			Name:  m.editForm.value(0),
			Email: m.editForm.value(1),
		})
	}
	return m.editForm.update(msg)
}

func (m *teacherModel) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = modeBrowse
		return m.cmdDelete(m.pending.ID)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.mode = modeBrowse
	}
	return nil
}

func (m *teacherModel) handleProfileKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeBrowse
	case key.Matches(msg, keys.enter) && m.profile.err != nil:
		m.mode = modeBrowse
	case key.Matches(msg, keys.copy):
		return cmdCopyToClipboard(m.profile.record.ID)
	}
	return nil
}

func (m *teacherModel) cmdLoadProfile(studentID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.RosterService

	return func() tea.Msg {
		summary, err := svc.Profile(ctx, studentID)
		return profileLoadedMsg{studentID: studentID, summary: summary, err: err}
	}
}

func (m *teacherModel) cmdUpdate(studentID string, patch models.StudentPatch) tea.Cmd {
	ctx, scope := m.ctx, m.scope
	svc := m.services.StudentService

	return func() tea.Msg {
		err := svc.Update(ctx, studentID, scope, patch)
		return mutationDoneMsg{status: app.MsgStudentUpdated, err: err}
	}
}

func (m *teacherModel) cmdDelete(studentID string) tea.Cmd {
	ctx, scope := m.ctx, m.scope
	svc := m.services.StudentService

	return func() tea.Msg {
		err := svc.Delete(ctx, studentID, scope)
		return mutationDoneMsg{status: app.MsgStudentDeleted, err: err}
	}
}

func (m *teacherModel) viewStudents() (string, string) {
	state := m.students.State()
	query := m.controls.Query()

	var b strings.Builder
	b.WriteString("Search: ")
	if m.mode == modeSearch {
		b.WriteString(m.search.View())
	} else {
		b.WriteString(textOrDash(query.Search))
	}
	b.WriteString("   Trait: ")
	b.WriteString(traitFilterLabel(query.Trait))
	b.WriteString(fmt.Sprintf("   Sort: %s %s\n", query.Sort.Key, query.Sort.Direction))

	if state.Loading && len(state.Data.Records) == 0 {
		b.WriteString("\nLoading students...\n")
		return b.String(), studentsHotKeys
	}
	if n := len(state.Data.Failures); n > 0 {
		b.WriteString(fmt.Sprintf("%d student(s) could not be enriched and show N/A\n", n))
	}

	view := m.page()
	if view.Total == 0 {
		b.WriteString("\nNo students found\n")
		return b.String(), studentsHotKeys
	}

	b.WriteString("\n")
	b.WriteString("  ID         │ Name                     │ Dominant trait             │ Score\n")
	b.WriteString("  ───────────┼──────────────────────────┼────────────────────────────┼──────\n")
	for i, rec := range view.Rows {
		b.WriteString(fmt.Sprintf(
			"%s %-10s │ %-24s │ %-26s │ %s\n",
			cursorMark(i == m.idx),
			fitText(rec.ID, 10),
			fitText(rec.Name, 24),
			fitText(rec.DominantTrait, 26),
			formatScore(rec.Score),
		))
	}
	b.WriteString(fmt.Sprintf("\nPage %d of %d (%d students)\n", view.Page, max(view.TotalPages, 1), view.Total))

	return b.String(), studentsHotKeys
}

func (m *teacherModel) viewEdit() (string, string) {
	var b strings.Builder
	b.WriteString("Editing student ")
	b.WriteString(m.editID)
	b.WriteString("\n\n")
	b.WriteString(m.editForm.view())
	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	return b.String(), "esc: back │ tab: next field │ enter: save"
}

func (m *teacherModel) viewProfile() (string, string) {
	p := m.profile

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Student: %s (%s)\n", p.record.Name, p.record.ID))
	switch {
	case p.loading:
		b.WriteString("\nLoading profile...\n")
	case p.err != nil:
		b.WriteString("\n")
		b.WriteString(errorOverlayModel{title: "Could not load the profile", message: errorText(p.err)}.View())
		b.WriteString("\n")
	default:
		dominant := models.SplitDominant(p.summary.DominantTrait)
		b.WriteString("Dominant trait: ")
		if len(dominant) == 0 {
			b.WriteString(models.NoDominantTrait)
		} else {
			b.WriteString(strings.Join(dominant, ", "))
		}
		b.WriteString("\n\n")
		b.WriteString("Trait             │ Score  │ Level\n")
		b.WriteString("──────────────────┼────────┼─────────\n")
		for _, s := range p.summary.TraitScores() {
			b.WriteString(fmt.Sprintf("%-17s │ %6s │ %s\n", s.Trait, formatScore(s.Score), s.Level))
		}
	}
	return b.String(), "esc: back │ c: copy id"
}

func traitFilterLabel(trait string) string {
	if trait == "" {
		return "All traits"
	}
	return trait
}
