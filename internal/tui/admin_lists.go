package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/insighted-client/internal/roster"
	"github.com/MKhiriev/insighted-client/internal/service"
	"github.com/MKhiriev/insighted-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// profilePage returns the visible page of the filtered profile list.
func (m *adminModel) profilePage() ([]models.StudentProfile, int) {
	q := m.profileControls.Query()
	filtered := service.FilterProfiles(m.data.profiles, q.Search)
	return roster.Paginate(filtered, q.Page, roster.PageSize), roster.TotalPages(len(filtered), roster.PageSize)
}

func (m *adminModel) teacherPage() ([]models.Account, int) {
	q := m.teacherControls.Query()
	filtered := service.FilterTeachers(m.data.teachers, q.Search)
	return roster.Paginate(filtered, q.Page, roster.PageSize), roster.TotalPages(len(filtered), roster.PageSize)
}

// clamp pulls both lists back into range after the data changed.
func (m *adminModel) clamp() {
	_, profilePages := m.profilePage()
	m.profileControls.Clamp(profilePages)
	_, teacherPages := m.teacherPage()
	m.teacherControls.Clamp(teacherPages)

	switch m.tab {
	case tabProfiles:
		rows, _ := m.profilePage()
		m.idx = moveCursor(m.idx, 0, len(rows))
	case tabTeachers:
		rows, _ := m.teacherPage()
		m.idx = moveCursor(m.idx, 0, len(rows))
	}
}

// handleListKey applies the navigation keys shared by both list tabs. It
// reports whether msg was consumed.
func (m *adminModel) handleListKey(msg tea.KeyMsg, rows, totalPages int) (tea.Cmd, bool) {
	c := m.controls()
	switch {
	case key.Matches(msg, keys.up):
		m.idx = moveCursor(m.idx, -1, rows)
	case key.Matches(msg, keys.down):
		m.idx = moveCursor(m.idx, 1, rows)
	case key.Matches(msg, keys.left):
		c.Prev(totalPages)
		m.idx = 0
	case key.Matches(msg, keys.right):
		c.Next(totalPages)
		m.idx = 0
	case key.Matches(msg, keys.search):
		m.mode = modeSearch
		return m.search.Focus(), true
	default:
		return nil, false
	}
	return nil, true
}

func (m *adminModel) handleProfilesKey(msg tea.KeyMsg) tea.Cmd {
	rows, totalPages := m.profilePage()
	if cmd, ok := m.handleListKey(msg, len(rows), totalPages); ok {
		return cmd
	}
	if m.idx >= len(rows) {
		return nil
	}
	p := rows[m.idx]

	switch {
	case key.Matches(msg, keys.edit):
		m.editProfile = p.StudentID
		m.editForm = newInputForm(
			formField{label: "Name", placeholder: "student name"},
			formField{label: "Year level", placeholder: "e.g. 2"},
		)
		m.editForm.setValues(p.Name, p.YearLevel)
		m.mode = modeEdit
	case key.Matches(msg, keys.delete):
		m.pendingProfile = &p
		m.mode = modeConfirmDelete
	case key.Matches(msg, keys.copy):
		return cmdCopyToClipboard(p.StudentID)
	}
	return nil
}

func (m *adminModel) handleTeachersKey(msg tea.KeyMsg) tea.Cmd {
	rows, totalPages := m.teacherPage()
	if cmd, ok := m.handleListKey(msg, len(rows), totalPages); ok {
		return cmd
	}
	if m.idx >= len(rows) {
		return nil
	}
	t := rows[m.idx]

	switch {
	case key.Matches(msg, keys.edit):
		m.editTeacher = t.ID
		m.editForm = newInputForm(
			formField{label: "Name", placeholder: "teacher name"},
			formField{label: "Email", placeholder: "teacher@school.edu", charLimit: 254},
		)
		m.editForm.setValues(t.Name, t.Email)
		m.mode = modeEdit
	case key.Matches(msg, keys.delete):
		m.pendingTeacher = &t
		m.mode = modeConfirmDelete
	case key.Matches(msg, keys.copy):
		return cmdCopyToClipboard(t.Email)
	}
	return nil
}

func (m *adminModel) cmdUpdateProfile(studentID string, update models.StudentProfileUpdate) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AdminService

	return func() tea.Msg {
		err := svc.UpdateProfile(ctx, studentID, update)
		return mutationDoneMsg{status: "Student profile updated.", err: err}
	}
}

func (m *adminModel) cmdDeleteProfile(studentID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AdminService

	return func() tea.Msg {
		err := svc.DeleteProfile(ctx, studentID)
		return profileDeletedMsg{studentID: studentID, err: err}
	}
}

func (m *adminModel) cmdUpdateTeacher(id int64, update models.AccountUpdate) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AdminService

	return func() tea.Msg {
		err := svc.UpdateTeacher(ctx, id, update)
		return mutationDoneMsg{status: "Teacher updated.", err: err}
	}
}

func (m *adminModel) cmdDeleteTeacher(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AdminService

	return func() tea.Msg {
		err := svc.DeleteTeacher(ctx, id)
		return mutationDoneMsg{status: "Teacher deleted.", err: err}
	}
}

func (m *adminModel) handleUploadKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.tab):
		if m.uploadForm.focus < len(m.uploadForm.inputs)-1 {
			m.uploadForm.focusNext()
			return nil, true
		}
		m.uploadForm.focusNext()
		return nil, false
	case key.Matches(msg, keys.backtab):
		return nil, false
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return nil, true
		}
		m.submitting = true
		m.errMsg = ""
		return m.cmdUploadPsychometric(m.uploadForm.value(0), m.uploadForm.value(1)), true
	}
	return m.uploadForm.update(msg), true
}

func (m *adminModel) cmdUploadPsychometric(path, academicYear string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AdminService

	return func() tea.Msg {
		result, err := svc.UploadPsychometric(ctx, path, academicYear)
		return psychometricUploadedMsg{result: result, err: err}
	}
}

func (m *adminModel) searchLine(b *strings.Builder) {
	b.WriteString("Search: ")
	if m.mode == modeSearch {
		b.WriteString(m.search.View())
	} else {
		b.WriteString(textOrDash(m.controls().Query().Search))
	}
	b.WriteString("\n\n")
}

func (m *adminModel) viewProfiles() (string, string) {
	rows, totalPages := m.profilePage()

	var b strings.Builder
	m.searchLine(&b)
	if len(rows) == 0 {
		b.WriteString("No student profiles found\n")
	} else {
		b.WriteString("  ID         │ Name                     │ Dominant trait             │ Period    │ Level\n")
		b.WriteString("  ───────────┼──────────────────────────┼────────────────────────────┼───────────┼──────\n")
		for i, p := range rows {
			b.WriteString(fmt.Sprintf(
				"%s %-10s │ %-24s │ %-26s │ %-9s │ %s\n",
				cursorMark(i == m.idx),
				fitText(p.StudentID, 10),
				fitText(p.Name, 24),
				fitText(textOrDash(p.DominantTrait), 26),
				fitText(textOrDash(p.AcademicYear), 9),
				textOrDash(p.YearLevel),
			))
		}
		b.WriteString(fmt.Sprintf("\nPage %d of %d\n", m.profileControls.Query().Page, max(totalPages, 1)))
	}
	return b.String(), "/: search │ ←/→: page │ e: edit │ ctrl+d: delete │ c: copy id │ tab: next tab"
}

func (m *adminModel) viewTeachers() (string, string) {
	rows, totalPages := m.teacherPage()

	var b strings.Builder
	m.searchLine(&b)
	if len(rows) == 0 {
		b.WriteString("No teachers found\n")
	} else {
		b.WriteString("  Name                     │ Email                          │ Uploads │ Joined\n")
		b.WriteString("  ─────────────────────────┼────────────────────────────────┼─────────┼───────────\n")
		for i, t := range rows {
			b.WriteString(fmt.Sprintf(
				"%s %-24s │ %-30s │ %7d │ %s\n",
				cursorMark(i == m.idx),
				fitText(t.Name, 24),
				fitText(t.Email, 30),
				t.UploadCount,
				textOrDash(t.CreatedAt),
			))
		}
		b.WriteString(fmt.Sprintf("\nPage %d of %d\n", m.teacherControls.Query().Page, max(totalPages, 1)))
	}
	return b.String(), "/: search │ ←/→: page │ e: edit │ ctrl+d: delete │ c: copy email │ tab: next tab"
}

func (m *adminModel) viewFiles() (string, string) {
	var b strings.Builder
	b.WriteString("Upload psychometric results (CSV)\n\n")
	b.WriteString(m.uploadForm.view())
	if m.submitting {
		b.WriteString("\n[Uploading...]\n")
	} else {
		b.WriteString("\n[Upload]\n")
	}

	if r := m.uploadResult; r != nil {
		b.WriteString(fmt.Sprintf("\nInserted: %d   Skipped: %d\n", r.Inserted, r.Skipped))
		for _, name := range r.SkippedStudents {
			b.WriteString("  - ")
			b.WriteString(name)
			b.WriteString("\n")
		}
	}

	b.WriteString("\nProcessed files\n")
	if len(m.data.files) == 0 {
		b.WriteString("-\n")
	}
	for _, f := range m.data.files {
		b.WriteString(fmt.Sprintf("%-28s │ %-9s │ %-5s │ %-19s │ %s\n",
			fitText(f.FileName, 28),
			textOrDash(f.AcademicYear),
			textOrDash(f.YearLevel),
			fitText(textOrDash(f.DateUploaded), 19),
			textOrDash(f.TeacherName),
		))
	}
	return b.String(), "tab: next field │ enter: upload"
}

func (m *adminModel) viewEdit() (string, string) {
	var b strings.Builder
	if m.tab == tabTeachers {
		b.WriteString("Editing teacher\n\n")
	} else {
		b.WriteString("Editing student ")
		b.WriteString(m.editProfile)
		b.WriteString("\n\n")
	}
	b.WriteString(m.editForm.view())
	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	return b.String(), "esc: back │ tab: next field │ enter: save"
}
