package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/insighted-client/internal/adapter"
	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/internal/refresh"
	"github.com/MKhiriev/insighted-client/internal/validators"
	"github.com/MKhiriev/insighted-client/models"
)

type clientStudentService struct {
	teacher   adapter.TeacherAdapter
	sessions  *SessionStore
	validator validators.Validator
	refresh   *refresh.Broadcaster

	logger *logger.Logger
}

func NewClientStudentService(teacher adapter.TeacherAdapter, sessions *SessionStore, validator validators.Validator, broadcaster *refresh.Broadcaster, logger *logger.Logger) ClientStudentService {
	return &clientStudentService{
		teacher:   teacher,
		sessions:  sessions,
		validator: validator,
		refresh:   broadcaster,
		logger:    logger,
	}
}

// Delete unlinks the student from scope. The refresh signal is published
// whenever the backend answered, including an error answer, so the view
// always reconverges with server state.
func (s *clientStudentService) Delete(ctx context.Context, studentID string, scope models.Scope) error {
	if !scope.Selected() {
		return ErrScopeNotSelected
	}

	err := s.teacher.DeleteStudent(ctx, studentID, scope)
	s.publishIfAnswered(scope, err)
	if err != nil {
		return fmt.Errorf("delete student %s: %w", studentID, s.sessions.Check(ctx, err))
	}

	s.logger.Info().Str("student_id", studentID).Str("subject", scope.Subject).Msg("student deleted")
	return nil
}

// Update saves patch for the student within scope. No local row is changed;
// the refresh signal triggers a full reload.
func (s *clientStudentService) Update(ctx context.Context, studentID string, scope models.Scope, patch models.StudentPatch) error {
	if !scope.Selected() {
		return ErrScopeNotSelected
	}
	if err := s.validator.Validate(ctx, patch); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationRejected, err)
	}

	err := s.teacher.UpdateStudent(ctx, studentID, models.NewStudentUpdate(scope, patch))
	s.publishIfAnswered(scope, err)
	if err != nil {
		return fmt.Errorf("update student %s: %w", studentID, s.sessions.Check(ctx, err))
	}

	s.logger.Info().Str("student_id", studentID).Str("subject", scope.Subject).Msg("student updated")
	return nil
}

func (s *clientStudentService) publishIfAnswered(scope models.Scope, err error) {
	var respErr *adapter.ResponseError
	if err == nil || errors.As(err, &respErr) {
		s.refresh.Publish(refresh.Signal{Scope: scope})
	}
}
