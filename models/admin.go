// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AdminStats is the GET /admin/stats payload.
type AdminStats struct {
	TotalStudents     int    `json:"total_students"`
	ProfilesCompleted int    `json:"profiles_completed"`
	FilesUploaded     int    `json:"files_uploaded"`
	ActiveTeachers    int    `json:"active_teachers"`
	LastUpload        string `json:"last_upload"`
}

// StudentProfile is one row of GET /admin/student-profiles.
type StudentProfile struct {
	StudentID     string `json:"student_id"`
	Name          string `json:"name"`
	DominantTrait string `json:"dominant_trait"`
	AcademicYear  string `json:"academic_year"`
	YearLevel     string `json:"year_level"`
	CreatedAt     string `json:"created_at"`
}

// StudentProfileUpdate is the PUT /admin/student/{id} body.
type StudentProfileUpdate struct {
	Name      string `json:"name" validate:"required"`
	YearLevel string `json:"year_level" validate:"required"`
}

// Account is one row of GET /admin/users.
type Account struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	CreatedAt   string `json:"created_at"`
	UploadCount int    `json:"upload_count"`
}

// AccountUpdate is the PUT /admin/user/{id} body.
type AccountUpdate struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// ProcessedFile is one row of GET /admin/processed-files.
type ProcessedFile struct {
	FileName     string `json:"file_name"`
	AcademicYear string `json:"academic_year"`
	YearLevel    string `json:"year_level"`
	DateUploaded string `json:"date_uploaded"`
	TeacherName  string `json:"teacher_name"`
}

// PsychometricResult is the POST /admin/upload-psychometric payload.
type PsychometricResult struct {
	Message         string   `json:"message"`
	Inserted        int      `json:"inserted"`
	Skipped         int      `json:"skipped"`
	SkippedStudents []string `json:"skipped_students"`
}
