package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/insighted-client/internal/adapter"
	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/models"
)

// GuardState is the access decision of a [SessionGuard].
type GuardState int

const (
	GuardPending GuardState = iota
	GuardGranted
	GuardDenied
)

func (s GuardState) String() string {
	switch s {
	case GuardGranted:
		return "granted"
	case GuardDenied:
		return "denied"
	default:
		return "pending"
	}
}

// SessionGuard gates one role-scoped view. It resolves exactly once; later
// calls to Resolve return the first decision.
type SessionGuard struct {
	role     models.Role
	sessions *SessionStore
	auth     adapter.AuthAdapter

	once   sync.Once
	mu     sync.RWMutex
	state  GuardState
	reason error

	logger *logger.Logger
}

func NewSessionGuard(role models.Role, sessions *SessionStore, auth adapter.AuthAdapter, logger *logger.Logger) *SessionGuard {
	return &SessionGuard{role: role, sessions: sessions, auth: auth, logger: logger}
}

// Resolve decides access:
//   - no persisted token or profile: denied, no request
//   - profile role differs: denied, no request
//   - GET /me fails for any reason: session cleared, denied
//   - otherwise granted
//
// The returned error explains a denial and is nil when granted.
func (g *SessionGuard) Resolve(ctx context.Context) (GuardState, error) {
	g.once.Do(func() {
		state, reason := g.resolve(ctx)

		g.mu.Lock()
		g.state, g.reason = state, reason
		g.mu.Unlock()

		g.logger.Info().
			Str("required_role", string(g.role)).
			Stringer("state", state).
			AnErr("reason", reason).
			Msg("session guard resolved")
	})

	return g.State()
}

func (g *SessionGuard) resolve(ctx context.Context) (GuardState, error) {
	session, err := g.sessions.Load(ctx)
	if err != nil {
		return GuardDenied, fmt.Errorf("%w: %w", ErrSessionMissing, err)
	}
	if !session.Complete() {
		return GuardDenied, ErrSessionMissing
	}
	if !session.HasRole(g.role) {
		return GuardDenied, ErrRoleMismatch
	}

	if _, err = g.auth.Me(ctx); err != nil {
		if clearErr := g.sessions.End(ctx); clearErr != nil {
			g.logger.Err(clearErr).Str("func", "*SessionGuard.resolve").Msg("error clearing session")
		}
		return GuardDenied, fmt.Errorf("%w: %w", ErrAuthInvalid, mapAdapterError(err))
	}

	return GuardGranted, nil
}

// State returns the decision and its reason. It is GuardPending until
// Resolve has finished.
func (g *SessionGuard) State() (GuardState, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state, g.reason
}

// Role returns the role this guard requires.
func (g *SessionGuard) Role() models.Role {
	return g.role
}
