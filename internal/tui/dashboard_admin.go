package tui

import (
	"context"
	"fmt"
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
	"golang.org/x/sync/errgroup"
)

type adminTab int

const (
	tabAdminOverview adminTab = iota
	tabProfiles
	tabTeachers
	tabFiles
)

var adminTabs = []string{"Overview", "Student profiles", "Teachers", "Files"}

// adminDataKey is the only key of the admin loader; reloads keep the previous
// data visible.
const adminDataKey = "admin"

type adminData struct {
	stats        models.AdminStats
	distribution []models.TraitCount
	profiles     []models.StudentProfile
	teachers     []models.Account
	files        []models.ProcessedFile
}

// adminModel is the admin dashboard: system stats, student profiles,
// teacher accounts and psychometric uploads.
type adminModel struct {
	dashboardBase

	tab  adminTab
	mode viewMode

	loader *async.Loader[string, adminData]
	data   adminData

	profileControls *roster.Controls
	teacherControls *roster.Controls
	idx             int
	search          textinput.Model

	editForm    inputForm
	editProfile string
	editTeacher int64
	submitting  bool

	pendingProfile *models.StudentProfile
	pendingTeacher *models.Account

	uploadForm   inputForm
	uploadResult *models.PsychometricResult
}

func newAdminModel(ctx context.Context, services *service.ClientServices, guard *service.SessionGuard, appCfg config.ClientApp, log *logger.Logger) *adminModel {
	search := textinput.New()
	search.Placeholder = "search"
	search.Width = 30

	uploadForm := newInputForm(
		formField{label: "CSV file", placeholder: "/path/to/psychometric.csv"},
		formField{label: "Academic year", placeholder: "2023-2024", charLimit: 9},
	)
	uploadForm.setValues("", appCfg.AcademicYear)

	admin := services.AdminService
	return &adminModel{
		dashboardBase: newDashboardBase(ctx, services, guard, "ADMIN DASHBOARD", log),
		loader: async.NewLoader(func(ctx context.Context, _ string) (adminData, error) {
			return loadAdminData(ctx, admin)
		}),
		profileControls: roster.NewControls(),
		teacherControls: roster.NewControls(),
		search:          search,
		uploadForm:      uploadForm,
	}
}

// loadAdminData fetches every admin panel concurrently. Any failure fails
// the whole load.
func loadAdminData(ctx context.Context, admin service.ClientAdminService) (adminData, error) {
	var data adminData

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.stats, err = admin.Stats(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.distribution, err = admin.TraitDistribution(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.profiles, err = admin.Profiles(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.teachers, err = admin.Teachers(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.files, err = admin.ProcessedFiles(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return adminData{}, err
	}
	return data, nil
}

func (m *adminModel) close() {
	m.dashboardBase.close()
	m.loader.Close()
}

func (m *adminModel) Init() tea.Cmd {
	return m.cmdResolveGuard()
}

func (m *adminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if guard, ok := msg.(guardResolvedMsg); ok {
		cmd, granted := m.onGuard(guard)
		if !granted {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.cmdLoad())
	}

	if cmd, handled := m.handleCommon(msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case refreshMsg:
		return m, tea.Batch(m.waitRefresh(), m.cmdLoad())

	case adminLoadedMsg:
		if !msg.applied {
			return m, nil
		}
		if msg.state.Err != nil {
			m.setError(msg.state.Err)
			return m, nil
		}
		m.data = msg.state.Data
		m.clamp()
		return m, nil

	case mutationDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.mode = modeBrowse
		return m, tea.Batch(m.setStatus(msg.status), m.cmdLoad())

	case profileDeletedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.data.profiles = service.RemoveProfile(m.data.profiles, msg.studentID)
		m.clamp()
		return m, m.setStatus("Student profile deleted.")

	case psychometricUploadedMsg:
		m.submitting = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.uploadResult = &msg.result
		return m, m.setStatus(uploadStatus(msg.result.Message, "Psychometric results uploaded"))

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, m.forwardToInputs(msg)
}

func (m *adminModel) cmdLoad() tea.Cmd {
	ctx, loader := m.ctx, m.loader

	return func() tea.Msg {
		state, applied := loader.Load(ctx, adminDataKey)
		return adminLoadedMsg{state: state, applied: applied}
	}
}

func (m *adminModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeEdit:
		return m.handleEditKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	}

	if m.tab == tabFiles {
		if cmd, ok := m.handleUploadKey(msg); ok {
			return cmd
		}
	}

	switch {
	case key.Matches(msg, keys.tab):
		m.switchTab((m.tab + 1) % adminTab(len(adminTabs)))
		return nil
	case key.Matches(msg, keys.backtab):
		m.switchTab((m.tab - 1 + adminTab(len(adminTabs))) % adminTab(len(adminTabs)))
		return nil
	case key.Matches(msg, keys.reload):
		return m.cmdLoad()
	}

	switch m.tab {
	case tabProfiles:
		return m.handleProfilesKey(msg)
	case tabTeachers:
		return m.handleTeachersKey(msg)
	}
	return nil
}

func (m *adminModel) switchTab(tab adminTab) {
	m.tab = tab
	m.idx = 0
	m.search.SetValue(m.controls().Query().Search)
}

func (m *adminModel) forwardToInputs(msg tea.Msg) tea.Cmd {
	switch {
	case m.mode == modeSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return cmd
	case m.mode == modeEdit:
		return m.editForm.update(msg)
	case m.tab == tabFiles:
		return m.uploadForm.update(msg)
	}
	return nil
}

// controls returns the search and paging state of the active list tab.
func (m *adminModel) controls() *roster.Controls {
	if m.tab == tabTeachers {
		return m.teacherControls
	}
	return m.profileControls
}

func (m *adminModel) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
		m.mode = modeBrowse
		m.search.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if c := m.controls(); m.search.Value() != c.Query().Search {
		c.SetSearch(m.search.Value())
		m.idx = 0
	}
	return cmd
}

func (m *adminModel) handleEditKey(msg tea.KeyMsg) tea.Cmd {
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
		if m.tab == tabTeachers {
			return m.cmdUpdateTeacher(m.editTeacher, models.AccountUpdate{
				Name:  m.editForm.value(0),
				Email: m.editForm.value(1),
			})
		}
		return m.cmdUpdateProfile(m.editProfile, models.StudentProfileUpdate{
			Name:      m.editForm.value(0),
			YearLevel: m.editForm.value(1),
		})
	}
	return m.editForm.update(msg)
}

func (m *adminModel) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = modeBrowse
		if p := m.pendingProfile; p != nil {
			m.pendingProfile = nil
			return m.cmdDeleteProfile(p.StudentID)
		}
		if t := m.pendingTeacher; t != nil {
			m.pendingTeacher = nil
			return m.cmdDeleteTeacher(t.ID)
		}
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.mode = modeBrowse
		m.pendingProfile = nil
		m.pendingTeacher = nil
	}
	return nil
}

func (m *adminModel) View() string {
	if m.guardState != service.GuardGranted {
		return m.pendingView()
	}

	var b strings.Builder
	b.WriteString(m.header(adminTabs, int(m.tab)))

	var (
		body    string
		hotKeys string
	)
	switch {
	case m.loader.State().Loading && m.data.profiles == nil:
		body, hotKeys = "Loading...\n", "tab: next tab"
	case m.mode == modeEdit:
		body, hotKeys = m.viewEdit()
	case m.tab == tabAdminOverview:
		body, hotKeys = m.viewOverview()
	case m.tab == tabProfiles:
		body, hotKeys = m.viewProfiles()
	case m.tab == tabTeachers:
		body, hotKeys = m.viewTeachers()
	case m.tab == tabFiles:
		body, hotKeys = m.viewFiles()
	}
	b.WriteString(body)

	if m.mode == modeConfirmDelete {
		b.WriteString("\n")
		switch {
		case m.pendingProfile != nil:
			b.WriteString(confirmModel{message: m.pendingProfile.Name + " (" + m.pendingProfile.StudentID + ")"}.View())
		case m.pendingTeacher != nil:
			b.WriteString(confirmModel{message: m.pendingTeacher.Name + " <" + m.pendingTeacher.Email + ">"}.View())
		}
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), hotKeys+" │ ctrl+l: log out")
}

func (m *adminModel) viewOverview() (string, string) {
	s := m.data.stats

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Total students      │ %d\n", s.TotalStudents))
	b.WriteString(fmt.Sprintf("Profiles completed  │ %d\n", s.ProfilesCompleted))
	b.WriteString(fmt.Sprintf("Files uploaded      │ %d\n", s.FilesUploaded))
	b.WriteString(fmt.Sprintf("Active teachers     │ %d\n", s.ActiveTeachers))
	b.WriteString(fmt.Sprintf("Last upload         │ %s\n", textOrDash(s.LastUpload)))

	b.WriteString("\nDominant trait distribution\n")
	total := 0
	for _, d := range m.data.distribution {
		total += d.Count
	}
	for _, d := range m.data.distribution {
		b.WriteString(fmt.Sprintf("%-26s │ %3d │ %s\n", fitText(d.Trait, 26), d.Count, bar(d.Count, total, 20)))
	}

	return b.String(), "r: reload │ tab: next tab"
}
