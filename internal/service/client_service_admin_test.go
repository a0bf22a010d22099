// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/internal/mock"
	"github.com/MKhiriev/insighted-client/internal/refresh"
	"github.com/MKhiriev/insighted-client/internal/validators"
	"github.com/MKhiriev/insighted-client/models"
)

func newTestAdminSvc(t *testing.T, ctrl *gomock.Controller) (ClientAdminService, *mock.MockAdminAdapter, *[]refresh.Signal) {
	t.Helper()
	sessions, _, _ := newTestSessions(t, ctrl)
	admin := mock.NewMockAdminAdapter(ctrl)
	broadcaster := refresh.NewBroadcaster()
	signals := recordSignals(t, broadcaster)
	return NewClientAdminService(admin, sessions, validators.NewFormValidator(), broadcaster, logger.Nop()), admin, signals
}

func TestClientAdminService_Teachers_FiltersRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, admin, _ := newTestAdminSvc(t, ctrl)

	admin.EXPECT().ListAccounts(gomock.Any()).Return([]models.Account{
		{ID: 1, Name: "Root", Role: models.RoleAdmin},
		{ID: 2, Name: "Ms. Reyes", Role: models.RoleTeacher},
		{ID: 3, Name: "Mr. Tan", Role: models.RoleTeacher},
	}, nil)

	teachers, err := svc.Teachers(context.Background())
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	assert.Equal(t, int64(2), teachers[0].ID)
	assert.Equal(t, int64(3), teachers[1].ID)
}

func TestClientAdminService_DeleteTeacher_PublishesRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, admin, signals := newTestAdminSvc(t, ctrl)

	admin.EXPECT().DeleteAccount(gomock.Any(), int64(2)).Return(nil)

	require.NoError(t, svc.DeleteTeacher(context.Background(), 2))
	assert.Len(t, *signals, 1)
}

func TestClientAdminService_DeleteProfile_DoesNotPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, admin, signals := newTestAdminSvc(t, ctrl)

	admin.EXPECT().DeleteStudentProfile(gomock.Any(), "S001").Return(nil)

	require.NoError(t, svc.DeleteProfile(context.Background(), "S001"))
	assert.Empty(t, *signals)
}

func TestClientAdminService_UpdateProfile_Validates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, admin, _ := newTestAdminSvc(t, ctrl)

	err := svc.UpdateProfile(context.Background(), "S001", models.StudentProfileUpdate{Name: "Ana"})
	assert.ErrorIs(t, err, ErrValidationRejected)

	update := models.StudentProfileUpdate{Name: "Ana", YearLevel: "Grade 10"}
	admin.EXPECT().UpdateStudentProfile(gomock.Any(), "S001", update).Return(nil)
	assert.NoError(t, svc.UpdateProfile(context.Background(), "S001", update))
}

func TestClientAdminService_UpdateTeacher(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, admin, signals := newTestAdminSvc(t, ctrl)

	err := svc.UpdateTeacher(context.Background(), 2, models.AccountUpdate{Name: "T", Email: "bad"})
	require.ErrorIs(t, err, validators.ErrInvalidEmail)

	update := models.AccountUpdate{Name: "T", Email: "t@school.edu"}
	admin.EXPECT().UpdateAccount(gomock.Any(), int64(2), update).Return(nil)
	require.NoError(t, svc.UpdateTeacher(context.Background(), 2, update))
	assert.Len(t, *signals, 1)
}

func TestClientAdminService_UploadPsychometric(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, admin, signals := newTestAdminSvc(t, ctrl)

	path := filepath.Join(t.TempDir(), "survey.csv")
	require.NoError(t, os.WriteFile(path, []byte("student_id,q1\nS001,5\n"), 0o600))

	admin.EXPECT().UploadPsychometric(gomock.Any(), "survey.csv", gomock.Any(), "2023-2024").
		Return(models.PsychometricResult{Message: "Uploaded", SkippedStudents: []string{"S009"}}, nil)

	result, err := svc.UploadPsychometric(context.Background(), path, "2023-2024")
	require.NoError(t, err)
	assert.Equal(t, []string{"S009"}, result.SkippedStudents)
	assert.Len(t, *signals, 1)
}

// ── local helpers ────────────────────────────────────────────────────────────

func TestFilterProfiles(t *testing.T) {
	profiles := []models.StudentProfile{
		{StudentID: "S001", Name: "Ana Cruz"},
		{StudentID: "S002", Name: "Ben Uy"},
		{StudentID: "X100", Name: "Cy Santos"},
	}

	assert.Len(t, FilterProfiles(profiles, ""), 3)
	assert.Len(t, FilterProfiles(profiles, "  "), 3)
	assert.Equal(t, "S002", FilterProfiles(profiles, "ben")[0].StudentID)
	assert.Len(t, FilterProfiles(profiles, "s0"), 2)
	assert.Len(t, profiles, 3, "input must not be modified")
}

func TestFilterTeachers(t *testing.T) {
	accounts := []models.Account{
		{ID: 2, Name: "Ms. Reyes", Email: "reyes@school.edu"},
		{ID: 3, Name: "Mr. Tan", Email: "tan@school.edu"},
	}

	assert.Len(t, FilterTeachers(accounts, "SCHOOL"), 2)
	assert.Equal(t, int64(3), FilterTeachers(accounts, "tan@")[0].ID)
}

func TestRemoveProfile(t *testing.T) {
	profiles := []models.StudentProfile{{StudentID: "S001"}, {StudentID: "S002"}}

	out := RemoveProfile(profiles, "S001")
	assert.Equal(t, []models.StudentProfile{{StudentID: "S002"}}, out)
	assert.Len(t, profiles, 2)
}
