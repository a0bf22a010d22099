// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/insighted-client/models"
	"github.com/go-resty/resty/v2"
)

// withSubject adds ?subject= unless subject is empty or "All".
func withSubject(req *resty.Request, subject string) *resty.Request {
	if param := (models.Scope{Subject: subject}).SubjectParam(); param != "" {
		req.SetQueryParam("subject", param)
	}
	return req
}

func (h *httpBackendAdapter) ListStudents(ctx context.Context, subject string) ([]models.RosterEntry, error) {
	var students []models.RosterEntry

	resp, err := withSubject(h.authedRequest(ctx), subject).
		SetResult(&students).
		Get("/students")
	if err != nil {
		return nil, fmt.Errorf("list students request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return students, nil
}

func (h *httpBackendAdapter) TraitSummary(ctx context.Context, studentID string) (models.TraitSummary, error) {
	var summary models.TraitSummary

	resp, err := h.authedRequest(ctx).
		SetQueryParam("student_id", studentID).
		SetResult(&summary).
		Get("/assess/individual")
	if err != nil {
		return models.TraitSummary{}, fmt.Errorf("trait summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TraitSummary{}, err
	}

	if summary.StudentID == "" {
		summary.StudentID = studentID
	}
	return summary, nil
}

func (h *httpBackendAdapter) UpdateStudent(ctx context.Context, studentID string, body models.StudentUpdate) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", studentID).
		SetBody(body).
		Put("/teacher/student/{id}/update")
	if err != nil {
		return fmt.Errorf("update student request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) DeleteStudent(ctx context.Context, studentID string, scope models.Scope) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", studentID).
		SetQueryParam("subject_code", strings.TrimSpace(scope.Subject)).
		SetQueryParam("academic_year", strings.TrimSpace(scope.AcademicYear)).
		Delete("/teacher/student/{id}/delete")
	if err != nil {
		return fmt.Errorf("delete student request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) ListSubjects(ctx context.Context) ([]string, error) {
	var subjects []string

	resp, err := h.authedRequest(ctx).
		SetResult(&subjects).
		Get("/teacher/subjects")
	if err != nil {
		return nil, fmt.Errorf("list subjects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return subjects, nil
}

func (h *httpBackendAdapter) DashboardStats(ctx context.Context, subject string) (models.DashboardStats, error) {
	var stats models.DashboardStats

	resp, err := withSubject(h.authedRequest(ctx), subject).
		SetResult(&stats).
		Get("/dashboard/stats")
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DashboardStats{}, err
	}

	return stats, nil
}

func (h *httpBackendAdapter) OceanAverages(ctx context.Context, subject string) ([]models.TraitAverage, error) {
	var averages []models.TraitAverage

	resp, err := withSubject(h.authedRequest(ctx), subject).
		SetResult(&averages).
		Get("/assess/ocean-averages")
	if err != nil {
		return nil, fmt.Errorf("ocean averages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return averages, nil
}

func (h *httpBackendAdapter) DominantDistribution(ctx context.Context, subject string) ([]models.TraitCount, error) {
	var counts []models.TraitCount

	resp, err := withSubject(h.authedRequest(ctx), subject).
		SetResult(&counts).
		Get("/assess/dominant-distribution")
	if err != nil {
		return nil, fmt.Errorf("dominant distribution request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return counts, nil
}

func (h *httpBackendAdapter) ClassRecommendation(ctx context.Context, trait string) (models.ClassRecommendation, error) {
	var rec models.ClassRecommendation

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"dominant_trait": strings.ToLower(trait)}).
		SetResult(&rec).
		Post("/get-recommendation")
	if err != nil {
		return models.ClassRecommendation{}, fmt.Errorf("class recommendation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ClassRecommendation{}, err
	}

	return rec, nil
}

func (h *httpBackendAdapter) ClusteredStudents(ctx context.Context, scope models.Scope) (models.Clusters, error) {
	clusters := models.Clusters{}

	req := withSubject(h.authedRequest(ctx), scope.Subject)
	if year := strings.TrimSpace(scope.AcademicYear); year != "" {
		req.SetQueryParam("academic_year", year)
	}

	resp, err := req.
		SetResult(&clusters).
		Get("/teacher/clustered-students")
	if err != nil {
		return nil, fmt.Errorf("clustered students request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return clusters, nil
}

func (h *httpBackendAdapter) TraitIntervention(ctx context.Context, trait string) (models.TraitIntervention, error) {
	var intervention models.TraitIntervention

	resp, err := h.authedRequest(ctx).
		SetQueryParam("trait", trait).
		SetResult(&intervention).
		Get("/teacher/trait-intervention")
	if err != nil {
		return models.TraitIntervention{}, fmt.Errorf("trait intervention request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TraitIntervention{}, err
	}

	return intervention, nil
}

func (h *httpBackendAdapter) UploadMasterlist(ctx context.Context, filename string, file io.Reader) (models.MasterlistResult, error) {
	var result models.MasterlistResult

	resp, err := h.authedRequest(ctx).
		SetFileReader("file", filename, file).
		SetResult(&result).
		Post("/teacher/upload-masterlist")
	if err != nil {
		return models.MasterlistResult{}, fmt.Errorf("upload masterlist request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MasterlistResult{}, err
	}

	return result, nil
}
