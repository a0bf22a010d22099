package tui

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/insighted-client/internal/async"
	"github.com/MKhiriev/insighted-client/internal/config"
	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/internal/roster"
	"github.com/MKhiriev/insighted-client/internal/service"
	"github.com/MKhiriev/insighted-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type teacherTab int

const (
	tabStudents teacherTab = iota
	tabOverview
	tabClusters
	tabUpload
)

var teacherTabs = []string{"Students", "Overview", "Clusters", "Upload"}

type viewMode int

const (
	modeBrowse viewMode = iota
	modeSearch
	modeEdit
	modeConfirmDelete
	modeProfile
)

// teacherModel is the teacher dashboard: the student table of the selected
// subject, the class overview, trait clusters and the masterlist upload.
type teacherModel struct {
	dashboardBase

	scope    models.Scope
	subjects []string

	tab  teacherTab
	mode viewMode

	students *async.Loader[string, service.RosterResult]
	overview *async.Loader[string, models.Overview]
	clusters *async.Loader[models.Scope, []models.TraitGroup]

	controls *roster.Controls
	idx      int
	search   textinput.Model

	editForm   inputForm
	editID     string
	submitting bool
	pending    models.StudentRecord

	profile profileView

	clusterIdx int

	uploadForm   inputForm
	uploadResult *models.MasterlistResult
}

type profileView struct {
	record  models.StudentRecord
	summary models.TraitSummary
	loading bool
	err     error
}

func newTeacherModel(ctx context.Context, services *service.ClientServices, guard *service.SessionGuard, appCfg config.ClientApp, log *logger.Logger) *teacherModel {
	search := textinput.New()
	search.Placeholder = "name or id"
	search.Width = 30

	return &teacherModel{
		dashboardBase: newDashboardBase(ctx, services, guard, "TEACHER DASHBOARD", log),
		scope:         models.Scope{Subject: models.AllSubjects, AcademicYear: appCfg.AcademicYear},
		subjects:      []string{models.AllSubjects},
		students:      async.NewLoader(services.RosterService.Fetch),
		overview:      async.NewLoader(services.DashboardService.Overview),
		clusters:      async.NewLoader(services.DashboardService.Clusters),
		controls:      roster.NewControls(),
		search:        search,
		editForm: newInputForm(
			formField{label: "Name", placeholder: "student name"},
			formField{label: "Email", placeholder: "student@school.edu", charLimit: 254},
		),
		uploadForm: newInputForm(
			formField{label: "CSV file", placeholder: "/path/to/masterlist.csv"},
		),
	}
}

func (m *teacherModel) close() {
	m.dashboardBase.close()
	m.students.Close()
	m.overview.Close()
	m.clusters.Close()
}

func (m *teacherModel) Init() tea.Cmd {
	return m.cmdResolveGuard()
}

func (m *teacherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if guard, ok := msg.(guardResolvedMsg); ok {
		cmd, granted := m.onGuard(guard)
		if !granted {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.cmdLoadSubjects(), m.reloadAll())
	}

	if cmd, handled := m.handleCommon(msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case refreshMsg:
		if msg.signal.Affects(m.scope) {
			return m, tea.Batch(m.waitRefresh(), m.reloadAll())
		}
		return m, m.waitRefresh()

	case subjectsLoadedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.subjects = msg.subjects
		return m, nil

	case rosterLoadedMsg:
		if !msg.applied {
			return m, nil
		}
		m.setError(msg.state.Err)
		m.clampPage()
		return m, nil

	case overviewLoadedMsg:
		if msg.applied {
			m.setError(msg.state.Err)
		}
		return m, nil

	case clustersLoadedMsg:
		if msg.applied {
			m.setError(msg.state.Err)
			m.clusterIdx = moveCursor(m.clusterIdx, 0, len(msg.state.Data))
		}
		return m, nil

	case profileLoadedMsg:
		if msg.studentID != m.profile.record.ID {
			return m, nil
		}
		m.profile.loading = false
		m.profile.summary = msg.summary
		m.profile.err = msg.err
		return m, nil

	case mutationDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.mode = modeBrowse
		return m, m.setStatus(msg.status)

	case masterlistUploadedMsg:
		m.submitting = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.uploadResult = &msg.result
		m.uploadForm.reset()
		return m, m.setStatus(uploadStatus(msg.result.Message, "Masterlist uploaded"))

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, m.forwardToInputs(msg)
}

func (m *teacherModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeEdit:
		return m.handleEditKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	case modeProfile:
		return m.handleProfileKey(msg)
	}

	if m.tab == tabUpload {
		if cmd, ok := m.handleUploadKey(msg); ok {
			return cmd
		}
	}

	switch {
	case key.Matches(msg, keys.tab):
		m.tab = (m.tab + 1) % teacherTab(len(teacherTabs))
		return nil
	case key.Matches(msg, keys.backtab):
		m.tab = (m.tab - 1 + teacherTab(len(teacherTabs))) % teacherTab(len(teacherTabs))
		return nil
	case key.Matches(msg, keys.subject):
		m.nextSubject()
		return m.reloadAll()
	case key.Matches(msg, keys.reload):
		return m.reloadAll()
	}

	switch m.tab {
	case tabStudents:
		return m.handleStudentsKey(msg)
	case tabClusters:
		return m.handleClustersKey(msg)
	}
	return nil
}

func (m *teacherModel) forwardToInputs(msg tea.Msg) tea.Cmd {
	switch {
	case m.mode == modeSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return cmd
	case m.mode == modeEdit:
		return m.editForm.update(msg)
	case m.tab == tabUpload:
		return m.uploadForm.update(msg)
	}
	return nil
}

// nextSubject moves the scope to the next subject. The table controls reset
// because the collection they applied to is gone.
func (m *teacherModel) nextSubject() {
	i := slices.Index(m.subjects, m.scope.Subject)
	m.scope.Subject = m.subjects[(i+1)%len(m.subjects)]
	m.controls = roster.NewControls()
	m.search.SetValue("")
	m.idx = 0
	m.clusterIdx = 0
	m.errMsg = ""
}

func (m *teacherModel) reloadAll() tea.Cmd {
	return tea.Batch(m.cmdLoadStudents(), m.cmdLoadOverview(), m.cmdLoadClusters())
}

func (m *teacherModel) cmdLoadSubjects() tea.Cmd {
	ctx := m.ctx
	svc := m.services.DashboardService

	return func() tea.Msg {
		subjects, err := svc.Subjects(ctx)
		return subjectsLoadedMsg{subjects: subjects, err: err}
	}
}

func (m *teacherModel) cmdLoadStudents() tea.Cmd {
	ctx, loader, subject := m.ctx, m.students, m.scope.Subject

	return func() tea.Msg {
		state, applied := loader.Load(ctx, subject)
		return rosterLoadedMsg{state: state, applied: applied}
	}
}

func (m *teacherModel) cmdLoadOverview() tea.Cmd {
	ctx, loader, subject := m.ctx, m.overview, m.scope.Subject

	return func() tea.Msg {
		state, applied := loader.Load(ctx, subject)
		return overviewLoadedMsg{state: state, applied: applied}
	}
}

func (m *teacherModel) cmdLoadClusters() tea.Cmd {
	ctx, loader, scope := m.ctx, m.clusters, m.scope

	return func() tea.Msg {
		state, applied := loader.Load(ctx, scope)
		return clustersLoadedMsg{state: state, applied: applied}
	}
}

func (m *teacherModel) View() string {
	if m.guardState != service.GuardGranted {
		return m.pendingView()
	}

	var b strings.Builder
	b.WriteString(m.header(teacherTabs, int(m.tab)))
	b.WriteString("Subject: ")
	b.WriteString(m.scope.Subject)
	b.WriteString("   Academic year: ")
	b.WriteString(textOrDash(m.scope.AcademicYear))
	b.WriteString("\n\n")

	var (
		body    string
		hotKeys string
	)
	switch {
	case m.mode == modeProfile:
		body, hotKeys = m.viewProfile()
	case m.mode == modeEdit:
		body, hotKeys = m.viewEdit()
	case m.tab == tabStudents:
		body, hotKeys = m.viewStudents()
	case m.tab == tabOverview:
		body, hotKeys = m.viewOverview()
	case m.tab == tabClusters:
		body, hotKeys = m.viewClusters()
	case m.tab == tabUpload:
		body, hotKeys = m.viewUpload()
	}
	b.WriteString(body)

	if m.mode == modeConfirmDelete {
		b.WriteString("\n")
		b.WriteString(confirmModel{message: m.pending.Name + " (" + m.pending.ID + ")"}.View())
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), hotKeys+" │ ctrl+l: log out")
}
