// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	"github.com/MKhiriev/insighted-client/internal/refresh"
	"github.com/MKhiriev/insighted-client/internal/validators"
	"github.com/MKhiriev/insighted-client/models"
)

var selectedScope = models.Scope{Subject: "MATH101", AcademicYear: "2023-2024"}

// recordSignals subscribes to b and returns a pointer to the received signals.
func recordSignals(t *testing.T, b *refresh.Broadcaster) *[]refresh.Signal {
	t.Helper()
	var got []refresh.Signal
	t.Cleanup(b.Subscribe(func(s refresh.Signal) { got = append(got, s) }))
	return &got
}

func newTestStudentSvc(t *testing.T, ctrl *gomock.Controller) (ClientStudentService, *mock.MockTeacherAdapter, *[]refresh.Signal) {
	t.Helper()
	sessions, repo, auth := newTestSessions(t, ctrl)
	// a 401 anywhere ends the session
	auth.EXPECT().SetToken("").AnyTimes()
	repo.EXPECT().ClearSession(gomock.Any()).Return(nil).AnyTimes()

	teacher := mock.NewMockTeacherAdapter(ctrl)
	broadcaster := refresh.NewBroadcaster()
	signals := recordSignals(t, broadcaster)

	svc := NewClientStudentService(teacher, sessions, validators.NewFormValidator(), broadcaster, logger.Nop())
	return svc, teacher, signals
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestClientStudentService_Delete_RejectedWithoutScope(t *testing.T) {
	scopes := []models.Scope{
		{Subject: "All", AcademicYear: "2023-2024"},
		{Subject: "", AcademicYear: "2023-2024"},
		{Subject: "MATH101"},
	}

	for _, scope := range scopes {
		ctrl := gomock.NewController(t)
		svc, _, signals := newTestStudentSvc(t, ctrl)
		// no DeleteStudent expectation: zero network calls

		err := svc.Delete(context.Background(), "S001", scope)
		require.ErrorIs(t, err, ErrScopeNotSelected)
		assert.Equal(t, KindValidationRejected, Classify(err))
		assert.Equal(t, app.MsgScopeNotSelected, UserMessage(err))
		assert.Empty(t, *signals)
	}
}

func TestClientStudentService_Delete_PublishesRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, teacher, signals := newTestStudentSvc(t, ctrl)

	teacher.EXPECT().DeleteStudent(gomock.Any(), "S001", selectedScope).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "S001", selectedScope))
	assert.Equal(t, []refresh.Signal{{Scope: selectedScope}}, *signals)
}

func TestClientStudentService_Delete_BackendErrorStillRefreshes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, teacher, signals := newTestStudentSvc(t, ctrl)

	teacher.EXPECT().DeleteStudent(gomock.Any(), "S001", selectedScope).
		Return(adapter.NewResponseError(http.StatusNotFound, "Student not linked to this subject"))

	err := svc.Delete(context.Background(), "S001", selectedScope)
	require.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Len(t, *signals, 1)
}

func TestClientStudentService_Delete_NetworkFailureDoesNotRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, teacher, signals := newTestStudentSvc(t, ctrl)

	teacher.EXPECT().DeleteStudent(gomock.Any(), "S001", selectedScope).Return(errDial)

	err := svc.Delete(context.Background(), "S001", selectedScope)
	require.ErrorIs(t, err, ErrNetworkFailure)
	assert.Empty(t, *signals)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestClientStudentService_Update_SendsScopedPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, teacher, signals := newTestStudentSvc(t, ctrl)

	teacher.EXPECT().UpdateStudent(gomock.Any(), "S001", models.StudentUpdate{
		SubjectCode:  "MATH101",
		AcademicYear: "2023-2024",
		Name:         "Ana Cruz",
		Email:        "ana@school.edu",
	}).Return(nil)

	err := svc.Update(context.Background(), "S001", selectedScope, models.StudentPatch{Name: " Ana Cruz ", Email: "ana@school.edu"})
	require.NoError(t, err)
	assert.Equal(t, []refresh.Signal{{Scope: selectedScope}}, *signals)
}

func TestClientStudentService_Update_InvalidPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, signals := newTestStudentSvc(t, ctrl)

	err := svc.Update(context.Background(), "S001", selectedScope, models.StudentPatch{Name: "Ana", Email: "not-an-email"})
	require.ErrorIs(t, err, ErrValidationRejected)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)
	assert.Empty(t, *signals)
}

func TestClientStudentService_Update_RejectedWithoutScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestStudentSvc(t, ctrl)

	err := svc.Update(context.Background(), "S001", models.Scope{Subject: "All"}, models.StudentPatch{Name: "Ana"})
	assert.ErrorIs(t, err, ErrScopeNotSelected)
}

func TestClientStudentService_Update_UnauthorizedEndsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, teacher, signals := newTestStudentSvc(t, ctrl)

	teacher.EXPECT().UpdateStudent(gomock.Any(), "S001", gomock.Any()).Return(unauthorized())

	err := svc.Update(context.Background(), "S001", selectedScope, models.StudentPatch{Name: "Ana"})
	require.ErrorIs(t, err, ErrAuthInvalid)
	assert.Equal(t, app.MsgSessionExpired, UserMessage(err))
	assert.Len(t, *signals, 1)
}
