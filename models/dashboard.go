// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DashboardStats is the GET /dashboard/stats payload. MostCommonTrait and
// LastUpload are null when the teacher has no linked students.
type DashboardStats struct {
	TotalStudents   int     `json:"total_students"`
	DistinctTraits  int     `json:"distinct_traits"`
	MostCommonTrait *string `json:"most_common_trait"`
	LastUpload      *string `json:"last_upload"`
}

// TraitAverage is one entry of GET /assess/ocean-averages.
type TraitAverage struct {
	Trait string  `json:"trait"`
	Score float64 `json:"score"`
}

// Level classifies the average.
func (a TraitAverage) Level() Level {
	return LevelFor(a.Score)
}

// TraitCount is one entry of GET /assess/dominant-distribution and
// GET /admin/trait-distribution.
type TraitCount struct {
	Trait string `json:"trait"`
	Count int    `json:"count"`
}

// ClassRecommendation is the POST /get-recommendation payload.
type ClassRecommendation struct {
	StudentRecommendation string `json:"student_recommendation,omitempty"`
	TeacherStrategy       string `json:"teacher_strategy"`
}

// Overview aggregates the three teacher overview panels and the class-wide
// recommendation for the most common trait.
type Overview struct {
	Stats          DashboardStats
	Averages       []TraitAverage
	Distribution   []TraitCount
	Recommendation *ClassRecommendation
}

// Clusters maps a trait name to the students whose dominant label names it.
type Clusters map[string][]StudentCluster

// TraitIntervention is the GET /teacher/trait-intervention payload.
type TraitIntervention struct {
	Trait          string `json:"trait"`
	Recommendation string `json:"recommendation"`
}

// InterventionUnavailable is the text shown for a trait whose intervention
// could not be fetched.
const InterventionUnavailable = "Error fetching intervention."

// TraitGroup is one rendered cluster with its teaching intervention.
type TraitGroup struct {
	Trait        string
	Students     []StudentCluster
	Intervention string
	Failed       bool
}
