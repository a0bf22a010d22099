package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/insighted-client/internal/adapter"
	"github.com/MKhiriev/insighted-client/internal/app"
	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/internal/mock"
	"github.com/MKhiriev/insighted-client/internal/validators"
	"github.com/MKhiriev/insighted-client/models"
)

// newTestAuthSvc builds clientAuthService over mocks
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, *mock.MockAuthAdapter, *mock.MockSessionRepository, *SessionStore) {
	t.Helper()
	sessions, repo, auth := newTestSessions(t, ctrl)
	svc := NewClientAuthService(auth, sessions, validators.NewFormValidator(), logger.Nop()).(*clientAuthService)
	return svc, auth, repo, sessions
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, auth, repo, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	creds := models.Credentials{Email: "reyes@school.edu", Password: "secret"}
	gomock.InOrder(
		auth.EXPECT().Login(ctx, creds).Return(models.AuthResponse{AccessToken: "tok", User: teacherUser}, nil),
		repo.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil),
		auth.EXPECT().SetToken("tok"),
	)

	session, err := svc.Login(ctx, creds)
	require.NoError(t, err)
	assert.True(t, session.HasRole(models.RoleTeacher))
	assert.Equal(t, session, sessions.Current())
}

func TestClientAuthService_Login_InvalidFormSendsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "nope"})
	require.ErrorIs(t, err, ErrValidationRejected)
	assert.Equal(t, KindValidationRejected, Classify(err))
}

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, auth, _, _ := newTestAuthSvc(t, ctrl)

	auth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, adapter.NewResponseError(http.StatusUnauthorized, app.MsgInvalidCredentials))

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "x"})
	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, app.MsgInvalidCredentials, UserMessage(err))
}

func TestClientAuthService_Login_UnknownRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, auth, _, _ := newTestAuthSvc(t, ctrl)

	auth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{AccessToken: "tok", User: models.User{ID: 4, Role: "student"}}, nil)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, auth, _, _ := newTestAuthSvc(t, ctrl)

	reg := models.Registration{Name: "Ms. Cruz", Email: "cruz@school.edu", Password: "123456"}
	auth.EXPECT().Register(gomock.Any(), reg).Return(nil)

	require.NoError(t, svc.Register(context.Background(), reg))
}

func TestClientAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, auth, _, _ := newTestAuthSvc(t, ctrl)

	auth.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(adapter.NewResponseError(http.StatusConflict, app.MsgEmailAlreadyRegistered))

	err := svc.Register(context.Background(), models.Registration{Name: "C", Email: "c@school.edu", Password: "123456"})
	require.ErrorIs(t, err, adapter.ErrConflict)
	assert.Equal(t, app.MsgEmailAlreadyRegistered, UserMessage(err))
}

func TestClientAuthService_Register_ShortPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	err := svc.Register(context.Background(), models.Registration{Name: "C", Email: "c@school.edu", Password: "123"})
	assert.ErrorIs(t, err, validators.ErrValueTooShort)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, auth, repo, _ := newTestAuthSvc(t, ctrl)

	auth.EXPECT().SetToken("")
	repo.EXPECT().ClearSession(gomock.Any()).Return(nil)

	require.NoError(t, svc.Logout(context.Background()))
}
