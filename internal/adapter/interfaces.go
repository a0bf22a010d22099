// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the InsightEd client
// and the analytics backend.
//
// The backend surface is split by audience into [AuthAdapter],
// [TeacherAdapter] and [AdminAdapter]; [BackendAdapter] combines them and is
// implemented over HTTP/REST by [NewHTTPBackendAdapter].
//
// Non-2xx responses are mapped by mapHTTPError to a [*ResponseError] that
// unwraps to one of the sentinel values in errors.go, so callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401) and still show the backend's
// own message.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/insighted-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// AuthAdapter covers session establishment and validation.
type AuthAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. An empty token disables the header.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string

	// Me validates the current token with GET /me and returns the identity
	// the backend sees. Any non-2xx status is an error.
	Me(ctx context.Context) (models.User, error)

	// Login exchanges credentials for a token and profile via POST /login.
	// It does not store the token; session ownership belongs to the caller.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// Register creates a teacher account via POST /register.
	Register(ctx context.Context, reg models.Registration) error
}

// TeacherAdapter covers the teacher dashboard endpoints.
type TeacherAdapter interface {
	// ListStudents returns the roster linked to the teacher via
	// GET /students. An empty or "All" subject is sent unscoped.
	ListStudents(ctx context.Context, subject string) ([]models.RosterEntry, error)

	// TraitSummary returns one student's dominant trait and average scores
	// via GET /assess/individual.
	TraitSummary(ctx context.Context, studentID string) (models.TraitSummary, error)

	// UpdateStudent sends PUT /teacher/student/{id}/update.
	UpdateStudent(ctx context.Context, studentID string, body models.StudentUpdate) error

	// DeleteStudent unlinks a student from the scope via
	// DELETE /teacher/student/{id}/delete.
	DeleteStudent(ctx context.Context, studentID string, scope models.Scope) error

	// ListSubjects returns the subject codes the teacher has students in.
	ListSubjects(ctx context.Context) ([]string, error)

	// DashboardStats returns the overview counters for subject.
	DashboardStats(ctx context.Context, subject string) (models.DashboardStats, error)

	// OceanAverages returns the class average of each trait for subject.
	OceanAverages(ctx context.Context, subject string) ([]models.TraitAverage, error)

	// DominantDistribution returns how many students have each trait as
	// (part of) their dominant label.
	DominantDistribution(ctx context.Context, subject string) ([]models.TraitCount, error)

	// ClassRecommendation asks for a class-wide strategy for trait.
	ClassRecommendation(ctx context.Context, trait string) (models.ClassRecommendation, error)

	// ClusteredStudents groups the scope's students by dominant trait.
	ClusteredStudents(ctx context.Context, scope models.Scope) (models.Clusters, error)

	// TraitIntervention returns a teaching recommendation for trait.
	TraitIntervention(ctx context.Context, trait string) (models.TraitIntervention, error)

	// UploadMasterlist posts a roster CSV as multipart field "file".
	UploadMasterlist(ctx context.Context, filename string, file io.Reader) (models.MasterlistResult, error)
}

// AdminAdapter covers the admin dashboard endpoints.
type AdminAdapter interface {
	AdminStats(ctx context.Context) (models.AdminStats, error)
	AdminTraitDistribution(ctx context.Context) ([]models.TraitCount, error)

	ListStudentProfiles(ctx context.Context) ([]models.StudentProfile, error)
	UpdateStudentProfile(ctx context.Context, studentID string, body models.StudentProfileUpdate) error
	DeleteStudentProfile(ctx context.Context, studentID string) error

	ListAccounts(ctx context.Context) ([]models.Account, error)
	UpdateAccount(ctx context.Context, id int64, body models.AccountUpdate) error
	DeleteAccount(ctx context.Context, id int64) error

	ListProcessedFiles(ctx context.Context) ([]models.ProcessedFile, error)

	// UploadPsychometric posts survey answers as multipart field "file"
	// together with the academic_year form value.
	UploadPsychometric(ctx context.Context, filename string, file io.Reader, academicYear string) (models.PsychometricResult, error)
}
