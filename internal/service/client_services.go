package service

import (
	"github.com/MKhiriev/insighted-client/internal/adapter"
	"github.com/MKhiriev/insighted-client/internal/config"
	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/internal/refresh"
	"github.com/MKhiriev/insighted-client/internal/store"
	"github.com/MKhiriev/insighted-client/internal/validators"
	"github.com/MKhiriev/insighted-client/models"
)

type ClientServices struct {
	Sessions         *SessionStore
	AuthService      ClientAuthService
	RosterService    ClientRosterService
	StudentService   ClientStudentService
	DashboardService ClientDashboardService
	AdminService     ClientAdminService
	RefreshJob       ClientRefreshJob

	Refresh *refresh.Broadcaster

	backend adapter.AuthAdapter
	logger  *logger.Logger
}

func NewClientServices(storages *store.ClientStorages, backend adapter.BackendAdapter, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	sessions := NewSessionStore(storages.SessionRepository, backend, logger)
	broadcaster := refresh.NewBroadcaster()
	validator := validators.NewFormValidator()

	return &ClientServices{
		Sessions:         sessions,
		AuthService:      NewClientAuthService(backend, sessions, validator, logger),
		RosterService:    NewClientRosterService(backend, sessions, cfg.EnrichConcurrency, logger),
		StudentService:   NewClientStudentService(backend, sessions, validator, broadcaster, logger),
		DashboardService: NewClientDashboardService(backend, sessions, broadcaster, logger),
		AdminService:     NewClientAdminService(backend, sessions, validator, broadcaster, logger),
		RefreshJob:       NewClientRefreshJob(broadcaster),
		Refresh:          broadcaster,
		backend:          backend,
		logger:           logger,
	}
}

// Guard returns a new guard for one activation of a role-scoped view.
func (s *ClientServices) Guard(role models.Role) *SessionGuard {
	return NewSessionGuard(role, s.Sessions, s.backend, s.logger)
}
