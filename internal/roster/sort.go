// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package roster

import (
	"cmp"
	"slices"
	"strings"

	"github.com/MKhiriev/insighted-client/models"
)

// SortKey names the record field the table is ordered by.
type SortKey string

const (
	SortByID            SortKey = "id"
	SortByName          SortKey = "name"
	SortByDominantTrait SortKey = "dominantTrait"
	SortByScore         SortKey = "score"
)

// SortKeys lists the keys in column order.
var SortKeys = []SortKey{SortByID, SortByName, SortByDominantTrait, SortByScore}

// Direction is the sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Sort is the active ordering of the table.
type Sort struct {
	Key       SortKey
	Direction Direction
}

// DefaultSort orders by id ascending.
var DefaultSort = Sort{Key: SortByID, Direction: Ascending}

// Toggle returns the ordering after the user selects key: the active key flips
// direction, any other key starts ascending.
func (s Sort) Toggle(key SortKey) Sort {
	if s.Key == key && s.Direction == Ascending {
		return Sort{Key: key, Direction: Descending}
	}
	return Sort{Key: key, Direction: Ascending}
}

func compareBy(key SortKey) func(a, b models.StudentRecord) int {
	switch key {
	case SortByName:
		return func(a, b models.StudentRecord) int { return strings.Compare(a.Name, b.Name) }
	case SortByDominantTrait:
		return func(a, b models.StudentRecord) int { return strings.Compare(a.DominantTrait, b.DominantTrait) }
	case SortByScore:
		return func(a, b models.StudentRecord) int { return cmp.Compare(a.Score, b.Score) }
	default:
		return func(a, b models.StudentRecord) int { return strings.Compare(a.ID, b.ID) }
	}
}

// Apply returns a stably sorted copy of records.
func (s Sort) Apply(records []models.StudentRecord) []models.StudentRecord {
	sorted := slices.Clone(records)
	compare := compareBy(s.Key)
	if s.Direction == Descending {
		slices.SortStableFunc(sorted, func(a, b models.StudentRecord) int { return compare(b, a) })
		return sorted
	}
	slices.SortStableFunc(sorted, compare)
	return sorted
}
