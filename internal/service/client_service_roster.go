// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/insighted-client/internal/adapter"
	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/internal/utils"
	"github.com/MKhiriev/insighted-client/models"
)

const defaultEnrichConcurrency = 8

// RosterResult is one enriched roster.
type RosterResult struct {
	Subject  string
	Records  []models.StudentRecord
	Failures []EnrichmentFailure
}

// EnrichmentFailure records a row whose trait summary could not be fetched.
// The row is still present in Records with the "N/A" label.
type EnrichmentFailure struct {
	StudentID string
	Err       error
}

type clientRosterService struct {
	teacher     adapter.TeacherAdapter
	sessions    *SessionStore
	concurrency int
	batchIDs    *utils.UUIDGenerator

	logger *logger.Logger
}

func NewClientRosterService(teacher adapter.TeacherAdapter, sessions *SessionStore, concurrency int, logger *logger.Logger) ClientRosterService {
	if concurrency < 1 {
		concurrency = defaultEnrichConcurrency
	}
	return &clientRosterService{
		teacher:     teacher,
		sessions:    sessions,
		concurrency: concurrency,
		batchIDs:    utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

func (s *clientRosterService) Fetch(ctx context.Context, subject string) (RosterResult, error) {
	scope := models.Scope{Subject: subject}
	log := s.logger.With().
		Str("batch_id", s.batchIDs.Generate()).
		Str("subject", scope.SubjectParam()).
		Logger()

	entries, err := s.teacher.ListStudents(ctx, scope.SubjectParam())
	if err != nil {
		return RosterResult{}, s.sessions.Check(ctx, err)
	}

	summaries, errs := s.enrich(ctx, entries)
	if err = ctx.Err(); err != nil {
		return RosterResult{}, err
	}

	result := RosterResult{
		Subject: subject,
		Records: make([]models.StudentRecord, len(entries)),
	}
	var authErr error
	for i, entry := range entries {
		result.Records[i] = models.NewStudentRecord(entry, summaries[i])
		if errs[i] == nil {
			continue
		}
		if errors.Is(errs[i], adapter.ErrUnauthorized) {
			authErr = errs[i]
		}
		result.Failures = append(result.Failures, EnrichmentFailure{StudentID: entry.StudentID, Err: mapAdapterError(errs[i])})
		log.Warn().Err(errs[i]).Str("student_id", entry.StudentID).Msg("trait summary unavailable, row degraded")
	}
	if authErr != nil {
		return RosterResult{}, s.sessions.Check(ctx, authErr)
	}

	log.Debug().Int("rows", len(result.Records)).Int("degraded", len(result.Failures)).Msg("roster enriched")
	return result, nil
}

// enrich fetches every trait summary with at most s.concurrency requests in
// flight. Row failures do not cancel the other rows; cancelling ctx cancels
// all of them.
func (s *clientRosterService) enrich(ctx context.Context, entries []models.RosterEntry) ([]*models.TraitSummary, []error) {
	summaries := make([]*models.TraitSummary, len(entries))
	errs := make([]error, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, entry := range entries {
		g.Go(func() error {
			summary, err := s.teacher.TraitSummary(gctx, entry.StudentID)
			if err != nil {
				errs[i] = err
				return nil
			}
			summaries[i] = &summary
			return nil
		})
	}
	_ = g.Wait()

	return summaries, errs
}

func (s *clientRosterService) Profile(ctx context.Context, studentID string) (models.TraitSummary, error) {
	summary, err := s.teacher.TraitSummary(ctx, studentID)
	if err != nil {
		return models.TraitSummary{}, fmt.Errorf("student %s profile: %w", studentID, s.sessions.Check(ctx, err))
	}
	if summary.StudentID == "" {
		summary.StudentID = studentID
	}
	return summary, nil
}
