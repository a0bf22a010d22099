// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"strings"
)

// Trait is one of the five OCEAN personality dimensions.
type Trait string

const (
	Openness          Trait = "Openness"
	Conscientiousness Trait = "Conscientiousness"
	Extraversion      Trait = "Extraversion"
	Agreeableness     Trait = "Agreeableness"
	Neuroticism       Trait = "Neuroticism"
)

// TraitOrder is the canonical OCEAN display order.
var TraitOrder = []Trait{Openness, Conscientiousness, Extraversion, Agreeableness, Neuroticism}

// ParseTrait returns the trait whose name equals s ignoring case.
func ParseTrait(s string) (Trait, bool) {
	for _, t := range TraitOrder {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, true
		}
	}
	return "", false
}

// Level is the coarse classification of a trait score.
type Level string

const (
	LevelLow      Level = "Low"
	LevelModerate Level = "Moderate"
	LevelHigh     Level = "High"
)

// Level thresholds. Both boundaries are inclusive.
const (
	HighLevelMin = 41
	LowLevelMax  = 30
)

// LevelFor classifies score: High iff score >= 41, Low iff score <= 30,
// Moderate otherwise.
func LevelFor(score float64) Level {
	switch {
	case score >= HighLevelMin:
		return LevelHigh
	case score <= LowLevelMax:
		return LevelLow
	default:
		return LevelModerate
	}
}

// DominantSeparator joins tied trait names inside a dominant-trait label.
const DominantSeparator = " & "

// NoDominantTrait is the placeholder label of a row whose summary is missing.
const NoDominantTrait = "N/A"

// SplitDominant returns the trait names encoded in a dominant-trait label.
// An empty label yields no names.
func SplitDominant(label string) []string {
	if strings.TrimSpace(label) == "" {
		return nil
	}
	parts := strings.Split(label, DominantSeparator)
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// DominantScore is the representative intensity of a possibly tied dominant
// label: the maximum over the named traits of their average score. Missing
// averages count as 0 and the result is never below 0.
func DominantScore(label string, averages map[string]float64) float64 {
	var best float64
	for _, name := range SplitDominant(label) {
		if v := averages[name]; v > best {
			best = v
		}
	}
	return best
}

// TraitSummary is the GET /assess/individual payload.
type TraitSummary struct {
	StudentID     string             `json:"student_id,omitempty"`
	DominantTrait string             `json:"dominant_trait"`
	AverageScores map[string]float64 `json:"average_scores"`
}

// Score returns the dominant score of the summary.
func (s TraitSummary) Score() float64 {
	return DominantScore(s.DominantTrait, s.AverageScores)
}

// TraitScore is one row of a student profile.
type TraitScore struct {
	Trait Trait
	Score float64
	Level Level
}

// TraitScores projects the summary averages into OCEAN order, rounding each
// score to two decimals. Traits absent from the summary are skipped.
func (s TraitSummary) TraitScores() []TraitScore {
	scores := make([]TraitScore, 0, len(TraitOrder))
	for _, t := range TraitOrder {
		v, ok := s.AverageScores[string(t)]
		if !ok {
			continue
		}
		v = Round2(v)
		scores = append(scores, TraitScore{Trait: t, Score: v, Level: LevelFor(v)})
	}
	return scores
}

// Round2 rounds v half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
