// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/models"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	log := logger.Nop()
	repo := NewSessionRepository(&DB{DB: db, logger: log}, log).(*sessionRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

// ── SaveSession ──

func TestSaveSession_UpsertsBothKeysInTransaction(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	session := models.Session{
		Token: "tok-123",
		User:  &models.User{ID: 7, Name: "Ms. Reyes", Email: "reyes@school.edu", Role: models.RoleTeacher},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO client_state (key,value,updated_at) VALUES (?,?,?),(?,?,?) ON CONFLICT(key) DO UPDATE")).
		WithArgs("token", "tok-123", fixedNow, "user", `{"id":7,"name":"Ms. Reyes","email":"reyes@school.edu","role":"teacher"}`, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	if err := repo.SaveSession(context.Background(), session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveSession_ExecErrorRollsBack(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO client_state").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.SaveSession(context.Background(), models.Session{Token: "t", User: &models.User{ID: 1, Role: models.RoleTeacher}})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveSession_BeginError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	err := repo.SaveSession(context.Background(), models.Session{Token: "t"})
	if !errors.Is(err, ErrBeginningTransaction) {
		t.Fatalf("expected ErrBeginningTransaction, got %v", err)
	}
}

func TestSaveSession_CommitError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO client_state").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit().WillReturnError(errors.New("io"))

	err := repo.SaveSession(context.Background(), models.Session{Token: "t"})
	if !errors.Is(err, ErrCommitingTransaction) {
		t.Fatalf("expected ErrCommitingTransaction, got %v", err)
	}
}

// ── LoadSession ──

func TestLoadSession_ReturnsTokenAndUser(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow("token", "tok-123").
		AddRow("user", `{"id":3,"name":"Root","role":"admin"}`)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT key, value FROM client_state WHERE key IN (?,?)")).
		WithArgs("token", "user").
		WillReturnRows(rows)

	got, err := repo.LoadSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Token != "tok-123" {
		t.Errorf("token = %q", got.Token)
	}
	if got.User == nil || got.User.ID != 3 || got.User.Role != models.RoleAdmin {
		t.Errorf("user = %+v", got.User)
	}
}

func TestLoadSession_NothingStored(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT key, value FROM client_state").
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}))

	_, err := repo.LoadSession(context.Background())
	if !errors.Is(err, ErrLocalSessionNotFound) {
		t.Fatalf("expected ErrLocalSessionNotFound, got %v", err)
	}
}

func TestLoadSession_TokenWithoutUser(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT key, value FROM client_state").
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).AddRow("token", "tok"))

	got, err := repo.LoadSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Token != "tok" || got.User != nil {
		t.Errorf("got %+v", got)
	}
	if got.Complete() {
		t.Error("session without user must not be complete")
	}
}

func TestLoadSession_CorruptUser(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT key, value FROM client_state").
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow("token", "tok").
			AddRow("user", "{not json"))

	got, err := repo.LoadSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.User != nil {
		t.Errorf("expected nil user for corrupt profile, got %+v", got.User)
	}
}

func TestLoadSession_QueryError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT key, value FROM client_state").WillReturnError(errors.New("no such table"))

	_, err := repo.LoadSession(context.Background())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

// ── ClearSession ──

func TestClearSession_DeletesBothKeys(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM client_state WHERE key IN (?,?)")).
		WithArgs("token", "user").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.ClearSession(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestClearSession_ExecError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("DELETE FROM client_state").WillReturnError(errors.New("readonly"))

	if err := repo.ClearSession(context.Background()); !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

// ── helpers ──

func TestSqliteFilePath(t *testing.T) {
	tests := map[string]string{
		"client.db":                      "client.db",
		"file:client.db?_busy_timeout=5": "client.db",
		"/tmp/x/client.db":               "/tmp/x/client.db",
	}
	for dsn, want := range tests {
		if got := sqliteFilePath(dsn); got != want {
			t.Errorf("sqliteFilePath(%q) = %q, want %q", dsn, got, want)
		}
	}
}
