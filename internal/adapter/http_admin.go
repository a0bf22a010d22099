// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/insighted-client/models"
)

func (h *httpBackendAdapter) AdminStats(ctx context.Context) (models.AdminStats, error) {
	var stats models.AdminStats

	resp, err := h.authedRequest(ctx).
		SetResult(&stats).
		Get("/admin/stats")
	if err != nil {
		return models.AdminStats{}, fmt.Errorf("admin stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AdminStats{}, err
	}

	return stats, nil
}

func (h *httpBackendAdapter) AdminTraitDistribution(ctx context.Context) ([]models.TraitCount, error) {
	var counts []models.TraitCount

	resp, err := h.authedRequest(ctx).
		SetResult(&counts).
		Get("/admin/trait-distribution")
	if err != nil {
		return nil, fmt.Errorf("admin trait distribution request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return counts, nil
}

func (h *httpBackendAdapter) ListStudentProfiles(ctx context.Context) ([]models.StudentProfile, error) {
	var profiles []models.StudentProfile

	resp, err := h.authedRequest(ctx).
		SetResult(&profiles).
		Get("/admin/student-profiles")
	if err != nil {
		return nil, fmt.Errorf("list student profiles request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (h *httpBackendAdapter) UpdateStudentProfile(ctx context.Context, studentID string, body models.StudentProfileUpdate) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", studentID).
		SetBody(body).
		Put("/admin/student/{id}")
	if err != nil {
		return fmt.Errorf("update student profile request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) DeleteStudentProfile(ctx context.Context, studentID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", studentID).
		Delete("/admin/student/{id}")
	if err != nil {
		return fmt.Errorf("delete student profile request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account

	resp, err := h.authedRequest(ctx).
		SetResult(&accounts).
		Get("/admin/users")
	if err != nil {
		return nil, fmt.Errorf("list accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (h *httpBackendAdapter) UpdateAccount(ctx context.Context, id int64, body models.AccountUpdate) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(body).
		Put("/admin/user/{id}")
	if err != nil {
		return fmt.Errorf("update account request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) DeleteAccount(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/admin/user/{id}")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) ListProcessedFiles(ctx context.Context) ([]models.ProcessedFile, error) {
	var files []models.ProcessedFile

	resp, err := h.authedRequest(ctx).
		SetResult(&files).
		Get("/admin/processed-files")
	if err != nil {
		return nil, fmt.Errorf("list processed files request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return files, nil
}

func (h *httpBackendAdapter) UploadPsychometric(ctx context.Context, filename string, file io.Reader, academicYear string) (models.PsychometricResult, error) {
	var result models.PsychometricResult

	resp, err := h.authedRequest(ctx).
		SetFileReader("file", filename, file).
		SetFormData(map[string]string{"academic_year": academicYear}).
		SetResult(&result).
		Post("/admin/upload-psychometric")
	if err != nil {
		return models.PsychometricResult{}, fmt.Errorf("upload psychometric request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PsychometricResult{}, err
	}

	return result, nil
}
