package service

import (
	"context"
	"time"

	"github.com/MKhiriev/insighted-client/models"
)

// ClientAuthService covers login, registration and logout. Session state is
// written only through [SessionStore].
type ClientAuthService interface {
	// Login validates creds, exchanges them for a token via the backend and
	// persists the resulting session.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Register creates a teacher account. It does not log in.
	Register(ctx context.Context, reg models.Registration) error

	// Logout clears the persisted session.
	Logout(ctx context.Context) error
}

// ClientRosterService produces the enriched student collection of one subject.
type ClientRosterService interface {
	// Fetch lists the roster for subject ("" or "All" means unscoped) and
	// enriches every row with its trait summary. Per-row failures degrade
	// that row and are reported in RosterResult.Failures; only a failure of
	// the roster listing itself is returned as an error.
	Fetch(ctx context.Context, subject string) (RosterResult, error)

	// Profile returns one student's trait summary.
	Profile(ctx context.Context, studentID string) (models.TraitSummary, error)
}

// ClientStudentService mutates roster rows. Both operations require a
// selected scope and publish a refresh signal once the backend has answered.
type ClientStudentService interface {
	Delete(ctx context.Context, studentID string, scope models.Scope) error
	Update(ctx context.Context, studentID string, scope models.Scope, patch models.StudentPatch) error
}

// ClientDashboardService loads the teacher overview and clusters and uploads
// class masterlists.
type ClientDashboardService interface {
	// Subjects returns "All" followed by the teacher's subject codes.
	Subjects(ctx context.Context) ([]string, error)

	// Overview loads stats, trait averages and the dominant-trait
	// distribution concurrently.
	Overview(ctx context.Context, subject string) (models.Overview, error)

	// Clusters groups the scope's students by trait and attaches an
	// intervention to each group.
	Clusters(ctx context.Context, scope models.Scope) ([]models.TraitGroup, error)

	// UploadMasterlist uploads the CSV at path and publishes a refresh.
	UploadMasterlist(ctx context.Context, path string) (models.MasterlistResult, error)
}

// ClientAdminService covers the admin dashboard.
type ClientAdminService interface {
	Stats(ctx context.Context) (models.AdminStats, error)
	TraitDistribution(ctx context.Context) ([]models.TraitCount, error)

	Profiles(ctx context.Context) ([]models.StudentProfile, error)
	UpdateProfile(ctx context.Context, studentID string, update models.StudentProfileUpdate) error
	DeleteProfile(ctx context.Context, studentID string) error

	// Teachers returns the accounts whose role is teacher.
	Teachers(ctx context.Context) ([]models.Account, error)
	UpdateTeacher(ctx context.Context, id int64, update models.AccountUpdate) error
	// DeleteTeacher removes the account and publishes a refresh.
	DeleteTeacher(ctx context.Context, id int64) error

	ProcessedFiles(ctx context.Context) ([]models.ProcessedFile, error)
	UploadPsychometric(ctx context.Context, path, academicYear string) (models.PsychometricResult, error)
}

// ClientRefreshJob periodically publishes a refresh signal so open views
// converge with server state.
type ClientRefreshJob interface {
	// Start launches the background goroutine. It publishes every interval;
	// a zero or negative interval leaves the job idle. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
