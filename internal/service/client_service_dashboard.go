// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/insighted-client/internal/adapter"
	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/internal/refresh"
	"github.com/MKhiriev/insighted-client/models"
)

type clientDashboardService struct {
	teacher  adapter.TeacherAdapter
	sessions *SessionStore
	refresh  *refresh.Broadcaster

	logger *logger.Logger
}

func NewClientDashboardService(teacher adapter.TeacherAdapter, sessions *SessionStore, broadcaster *refresh.Broadcaster, logger *logger.Logger) ClientDashboardService {
	return &clientDashboardService{teacher: teacher, sessions: sessions, refresh: broadcaster, logger: logger}
}

func (s *clientDashboardService) Subjects(ctx context.Context) ([]string, error) {
	subjects, err := s.teacher.ListSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", s.sessions.Check(ctx, err))
	}

	out := make([]string, 0, len(subjects)+1)
	out = append(out, models.AllSubjects)
	for _, subject := range subjects {
		if subject = strings.TrimSpace(subject); subject != "" && subject != models.AllSubjects {
			out = append(out, subject)
		}
	}
	return out, nil
}

// Overview fails as a whole when any of the three panels fails. The
// class recommendation is optional and only logged on failure.
func (s *clientDashboardService) Overview(ctx context.Context, subject string) (models.Overview, error) {
	subject = models.Scope{Subject: subject}.SubjectParam()

	var overview models.Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		overview.Stats, err = s.teacher.DashboardStats(gctx, subject)
		return err
	})
	g.Go(func() (err error) {
		overview.Averages, err = s.teacher.OceanAverages(gctx, subject)
		return err
	})
	g.Go(func() (err error) {
		overview.Distribution, err = s.teacher.DominantDistribution(gctx, subject)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.Overview{}, fmt.Errorf("load overview: %w", s.sessions.Check(ctx, err))
	}

	if trait := overview.Stats.MostCommonTrait; trait != nil && *trait != "" {
		rec, err := s.teacher.ClassRecommendation(ctx, *trait)
		if err != nil {
			s.logger.Warn().Err(err).Str("trait", *trait).Msg("class recommendation unavailable")
		} else {
			overview.Recommendation = &rec
		}
	}

	return overview, nil
}

// Clusters fetches one intervention per trait concurrently. A failed
// intervention degrades its group to models.InterventionUnavailable, except
// a 401, which ends the session and fails the call.
func (s *clientDashboardService) Clusters(ctx context.Context, scope models.Scope) ([]models.TraitGroup, error) {
	clusters, err := s.teacher.ClusteredStudents(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("load clusters: %w", s.sessions.Check(ctx, err))
	}

	groups := make([]models.TraitGroup, 0, len(clusters))
	for trait, students := range clusters {
		groups = append(groups, models.TraitGroup{Trait: trait, Students: students})
	}
	slices.SortFunc(groups, func(a, b models.TraitGroup) int {
		return compareTraitNames(a.Trait, b.Trait)
	})

	errs := make([]error, len(groups))
	var g errgroup.Group
	for i := range groups {
		g.Go(func() error {
			intervention, err := s.teacher.TraitIntervention(ctx, groups[i].Trait)
			if err != nil || strings.TrimSpace(intervention.Recommendation) == "" {
				groups[i].Intervention = models.InterventionUnavailable
				groups[i].Failed = true
				errs[i] = err
				s.logger.Warn().Err(err).Str("trait", groups[i].Trait).Msg("trait intervention unavailable")
				return nil
			}
			groups[i].Intervention = intervention.Recommendation
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return nil, fmt.Errorf("load interventions: %w", s.sessions.Check(ctx, err))
		}
	}

	return groups, ctx.Err()
}

// compareTraitNames orders canonical traits in OCEAN order, before any
// other label.
func compareTraitNames(a, b string) int {
	ia, ib := traitIndex(a), traitIndex(b)
	if ia != ib {
		return ia - ib
	}
	return strings.Compare(a, b)
}

func traitIndex(name string) int {
	t, ok := models.ParseTrait(name)
	if !ok {
		return len(models.TraitOrder)
	}
	return slices.Index(models.TraitOrder, t)
}

func (s *clientDashboardService) UploadMasterlist(ctx context.Context, path string) (models.MasterlistResult, error) {
	f, name, err := openUpload(path)
	if err != nil {
		return models.MasterlistResult{}, err
	}
	defer f.Close()

	result, err := s.teacher.UploadMasterlist(ctx, name, f)
	if err != nil {
		return models.MasterlistResult{}, fmt.Errorf("upload masterlist: %w", s.sessions.Check(ctx, err))
	}

	s.logger.Info().Str("file", name).Int("matched", result.Matched).Int("unmatched", result.Unmatched).Msg("masterlist uploaded")
	s.refresh.Publish(refresh.Signal{})
	return result, nil
}

func openUpload(path string) (*os.File, string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, "", ErrNoFileSelected
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrValidationRejected, err)
	}
	return f, filepath.Base(path), nil
}
