// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AllSubjects is the subject value meaning "no subject scope".
const AllSubjects = "All"

// RosterEntry is one lightweight row of GET /students.
type RosterEntry struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
}

// StudentRecord is the enriched row rendered by the student table.
type StudentRecord struct {
	ID            string
	Name          string
	Email         string
	DominantTrait string
	Score         float64
}

// NewStudentRecord enriches entry with summary. A nil summary degrades the row
// to the "N/A" label and a zero score.
func NewStudentRecord(entry RosterEntry, summary *TraitSummary) StudentRecord {
	rec := StudentRecord{
		ID:            entry.StudentID,
		Name:          entry.Name,
		Email:         entry.Email,
		DominantTrait: NoDominantTrait,
	}
	if summary == nil {
		return rec
	}
	if summary.DominantTrait != "" {
		rec.DominantTrait = summary.DominantTrait
	}
	rec.Score = DominantScore(summary.DominantTrait, summary.AverageScores)
	return rec
}

// Scope qualifies which roster a listing or mutation applies to.
type Scope struct {
	Subject      string
	AcademicYear string
}

// Unscoped reports whether the subject is empty or "All".
func (s Scope) Unscoped() bool {
	subject := strings.TrimSpace(s.Subject)
	return subject == "" || subject == AllSubjects
}

// Selected reports whether both a concrete subject and a period are set.
// Mutations require a selected scope.
func (s Scope) Selected() bool {
	return !s.Unscoped() && strings.TrimSpace(s.AcademicYear) != ""
}

// SubjectParam returns the subject query value, or "" when unscoped.
func (s Scope) SubjectParam() string {
	if s.Unscoped() {
		return ""
	}
	return strings.TrimSpace(s.Subject)
}

// StudentPatch holds the editable fields of a roster student.
type StudentPatch struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

// StudentUpdate is the PUT /teacher/student/{id}/update body.
type StudentUpdate struct {
	SubjectCode  string `json:"subject_code"`
	AcademicYear string `json:"academic_year"`
	Name         string `json:"name"`
	Email        string `json:"email"`
}

// NewStudentUpdate combines patch with scope into a request body.
func NewStudentUpdate(scope Scope, patch StudentPatch) StudentUpdate {
	return StudentUpdate{
		SubjectCode:  strings.TrimSpace(scope.Subject),
		AcademicYear: strings.TrimSpace(scope.AcademicYear),
		Name:         strings.TrimSpace(patch.Name),
		Email:        strings.TrimSpace(patch.Email),
	}
}

// StudentCluster is one member of a trait cluster.
type StudentCluster struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MasterlistResult is the POST /teacher/upload-masterlist payload.
type MasterlistResult struct {
	Matched           int      `json:"matched"`
	Unmatched         int      `json:"unmatched"`
	UnmatchedStudents []string `json:"unmatched_students"`
	Message           string   `json:"message,omitempty"`
}
