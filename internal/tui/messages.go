package tui

import (
	"github.com/MKhiriev/insighted-client/internal/async"
	"github.com/MKhiriev/insighted-client/internal/refresh"
	"github.com/MKhiriev/insighted-client/internal/service"
	"github.com/MKhiriev/insighted-client/models"
)

// NavigateTo switches the auth router to Page. A non-nil Payload is delivered
// to the new page right after its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult finishes the auth flow when Err is nil.
type LoginResult struct {
	Session models.Session
	Err     error
}

// RegisterResult is the outcome of a registration attempt.
type RegisterResult struct {
	Email string
	Err   error
}

// RegisterSuccessNotice is shown by the menu after a registration.
type RegisterSuccessNotice struct {
	Email string
}

type guardResolvedMsg struct {
	state service.GuardState
	err   error
}

type refreshMsg struct {
	signal refresh.Signal
}

type subjectsLoadedMsg struct {
	subjects []string
	err      error
}

type rosterLoadedMsg struct {
	state   async.State[string, service.RosterResult]
	applied bool
}

type overviewLoadedMsg struct {
	state   async.State[string, models.Overview]
	applied bool
}

type clustersLoadedMsg struct {
	state   async.State[models.Scope, []models.TraitGroup]
	applied bool
}

type profileLoadedMsg struct {
	studentID string
	summary   models.TraitSummary
	err       error
}

type adminLoadedMsg struct {
	state   async.State[string, adminData]
	applied bool
}

// mutationDoneMsg reports a finished write. status is shown on success.
type mutationDoneMsg struct {
	status string
	err    error
}

type profileDeletedMsg struct {
	studentID string
	err       error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}

type sessionChangedMsg struct {
	session models.Session
}

type logoutDoneMsg struct {
	err error
}

type masterlistUploadedMsg struct {
	result models.MasterlistResult
	err    error
}

type psychometricUploadedMsg struct {
	result models.PsychometricResult
	err    error
}
