// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFor_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  Level
	}{
		{score: 0, want: LevelLow},
		{score: 30, want: LevelLow},
		{score: 30.5, want: LevelModerate},
		{score: 31, want: LevelModerate},
		{score: 40, want: LevelModerate},
		{score: 40.99, want: LevelModerate},
		{score: 41, want: LevelHigh},
		{score: 50, want: LevelHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.score), "score %v", tt.score)
	}
}

func TestDominantScore(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		averages map[string]float64
		want     float64
	}{
		{
			name:     "tie takes the max, not the sum",
			label:    "Openness & Extraversion",
			averages: map[string]float64{"Openness": 35, "Extraversion": 42},
			want:     42,
		},
		{
			name:     "single trait",
			label:    "Agreeableness",
			averages: map[string]float64{"Agreeableness": 38.5, "Openness": 44},
			want:     38.5,
		},
		{
			name:     "missing average counts as zero",
			label:    "Neuroticism",
			averages: map[string]float64{"Openness": 44},
			want:     0,
		},
		{
			name:     "one tied trait missing",
			label:    "Openness & Neuroticism",
			averages: map[string]float64{"Openness": 33},
			want:     33,
		},
		{
			name:     "empty label",
			label:    "",
			averages: map[string]float64{"Openness": 33},
			want:     0,
		},
		{
			name:     "nil averages",
			label:    "Openness",
			averages: nil,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DominantScore(tt.label, tt.averages))
		})
	}
}

func TestTraitSummary_TraitScores_OceanOrderAndRounding(t *testing.T) {
	summary := TraitSummary{
		DominantTrait: "Extraversion",
		AverageScores: map[string]float64{
			"Neuroticism":       22.456,
			"Extraversion":      41.004,
			"Openness":          30.999,
			"Conscientiousness": 35,
		},
	}

	scores := summary.TraitScores()

	assert.Equal(t, []TraitScore{
		{Trait: Openness, Score: 31, Level: LevelModerate},
		{Trait: Conscientiousness, Score: 35, Level: LevelModerate},
		{Trait: Extraversion, Score: 41, Level: LevelHigh},
		{Trait: Neuroticism, Score: 22.46, Level: LevelLow},
	}, scores)
}

func TestNewStudentRecord(t *testing.T) {
	entry := RosterEntry{StudentID: "S001", Name: "Ana", Email: "ana@school.edu"}

	t.Run("degraded row", func(t *testing.T) {
		rec := NewStudentRecord(entry, nil)
		assert.Equal(t, StudentRecord{ID: "S001", Name: "Ana", Email: "ana@school.edu", DominantTrait: "N/A"}, rec)
	})

	t.Run("enriched row", func(t *testing.T) {
		rec := NewStudentRecord(entry, &TraitSummary{
			DominantTrait: "Openness & Extraversion",
			AverageScores: map[string]float64{"Openness": 35, "Extraversion": 42},
		})
		assert.Equal(t, "Openness & Extraversion", rec.DominantTrait)
		assert.Equal(t, float64(42), rec.Score)
	})

	t.Run("summary without label", func(t *testing.T) {
		rec := NewStudentRecord(entry, &TraitSummary{AverageScores: map[string]float64{"Openness": 35}})
		assert.Equal(t, "N/A", rec.DominantTrait)
		assert.Zero(t, rec.Score)
	})
}

func TestScope_Selected(t *testing.T) {
	assert.False(t, Scope{}.Selected())
	assert.False(t, Scope{Subject: "All", AcademicYear: "2023-2024"}.Selected())
	assert.False(t, Scope{Subject: "MATH101"}.Selected())
	assert.True(t, Scope{Subject: "MATH101", AcademicYear: "2023-2024"}.Selected())

	assert.Equal(t, "", Scope{Subject: "All"}.SubjectParam())
	assert.Equal(t, "MATH101", Scope{Subject: " MATH101 "}.SubjectParam())
}
