package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/insighted-client/internal/adapter"
	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/internal/refresh"
	"github.com/MKhiriev/insighted-client/internal/roster"
	"github.com/MKhiriev/insighted-client/internal/validators"
	"github.com/MKhiriev/insighted-client/models"
)

type clientAdminService struct {
	admin     adapter.AdminAdapter
	sessions  *SessionStore
	validator validators.Validator
	refresh   *refresh.Broadcaster

	logger *logger.Logger
}

func NewClientAdminService(admin adapter.AdminAdapter, sessions *SessionStore, validator validators.Validator, broadcaster *refresh.Broadcaster, logger *logger.Logger) ClientAdminService {
	return &clientAdminService{
		admin:     admin,
		sessions:  sessions,
		validator: validator,
		refresh:   broadcaster,
		logger:    logger,
	}
}

func (s *clientAdminService) Stats(ctx context.Context) (models.AdminStats, error) {
	stats, err := s.admin.AdminStats(ctx)
	if err != nil {
		return models.AdminStats{}, fmt.Errorf("admin stats: %w", s.sessions.Check(ctx, err))
	}
	return stats, nil
}

func (s *clientAdminService) TraitDistribution(ctx context.Context) ([]models.TraitCount, error) {
	counts, err := s.admin.AdminTraitDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("trait distribution: %w", s.sessions.Check(ctx, err))
	}
	return counts, nil
}

func (s *clientAdminService) Profiles(ctx context.Context) ([]models.StudentProfile, error) {
	profiles, err := s.admin.ListStudentProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("student profiles: %w", s.sessions.Check(ctx, err))
	}
	return profiles, nil
}

func (s *clientAdminService) UpdateProfile(ctx context.Context, studentID string, update models.StudentProfileUpdate) error {
	if err := s.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationRejected, err)
	}
	if err := s.admin.UpdateStudentProfile(ctx, studentID, update); err != nil {
		return fmt.Errorf("update profile %s: %w", studentID, s.sessions.Check(ctx, err))
	}
	return nil
}

// DeleteProfile publishes nothing; the caller removes the row locally with
// RemoveProfile.
func (s *clientAdminService) DeleteProfile(ctx context.Context, studentID string) error {
	if err := s.admin.DeleteStudentProfile(ctx, studentID); err != nil {
		return fmt.Errorf("delete profile %s: %w", studentID, s.sessions.Check(ctx, err))
	}
	s.logger.Info().Str("student_id", studentID).Msg("student profile deleted")
	return nil
}

func (s *clientAdminService) Teachers(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.admin.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", s.sessions.Check(ctx, err))
	}
	return slices.DeleteFunc(accounts, func(a models.Account) bool {
		return a.Role != models.RoleTeacher
	}), nil
}

func (s *clientAdminService) UpdateTeacher(ctx context.Context, id int64, update models.AccountUpdate) error {
	if err := s.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationRejected, err)
	}
	if err := s.admin.UpdateAccount(ctx, id, update); err != nil {
		return fmt.Errorf("update account %d: %w", id, s.sessions.Check(ctx, err))
	}
	s.refresh.Publish(refresh.Signal{})
	return nil
}

func (s *clientAdminService) DeleteTeacher(ctx context.Context, id int64) error {
	if err := s.admin.DeleteAccount(ctx, id); err != nil {
		return fmt.Errorf("delete account %d: %w", id, s.sessions.Check(ctx, err))
	}
	s.logger.Info().Int64("account_id", id).Msg("teacher account deleted")
	s.refresh.Publish(refresh.Signal{})
	return nil
}

func (s *clientAdminService) ProcessedFiles(ctx context.Context) ([]models.ProcessedFile, error) {
	files, err := s.admin.ListProcessedFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("processed files: %w", s.sessions.Check(ctx, err))
	}
	return files, nil
}

func (s *clientAdminService) UploadPsychometric(ctx context.Context, path, academicYear string) (models.PsychometricResult, error) {
	f, name, err := openUpload(path)
	if err != nil {
		return models.PsychometricResult{}, err
	}
	defer f.Close()

	result, err := s.admin.UploadPsychometric(ctx, name, f, academicYear)
	if err != nil {
		return models.PsychometricResult{}, fmt.Errorf("upload psychometric: %w", s.sessions.Check(ctx, err))
	}

	s.logger.Info().Str("file", name).Int("skipped", len(result.SkippedStudents)).Msg("psychometric results uploaded")
	s.refresh.Publish(refresh.Signal{})
	return result, nil
}

// FilterProfiles keeps profiles whose name or id contains search, ignoring
// case. A blank search keeps everything.
func FilterProfiles(profiles []models.StudentProfile, search string) []models.StudentProfile {
	search = strings.TrimSpace(search)
	return slices.DeleteFunc(slices.Clone(profiles), func(p models.StudentProfile) bool {
		return !roster.ContainsFold(p.Name, search) && !roster.ContainsFold(p.StudentID, search)
	})
}

// FilterTeachers keeps accounts whose name or email contains search,
// ignoring case.
func FilterTeachers(accounts []models.Account, search string) []models.Account {
	search = strings.TrimSpace(search)
	return slices.DeleteFunc(slices.Clone(accounts), func(a models.Account) bool {
		return !roster.ContainsFold(a.Name, search) && !roster.ContainsFold(a.Email, search)
	})
}

// RemoveProfile returns profiles without the row for studentID.
func RemoveProfile(profiles []models.StudentProfile, studentID string) []models.StudentProfile {
	return slices.DeleteFunc(slices.Clone(profiles), func(p models.StudentProfile) bool {
		return p.StudentID == studentID
	})
}
