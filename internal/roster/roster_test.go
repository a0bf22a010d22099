// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package roster

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/MKhiriev/insighted-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

var testTraits = []string{
	"Openness", "Conscientiousness", "Extraversion", "Agreeableness", "Neuroticism",
	"Openness & Extraversion", "N/A",
}

func makeRoster(n int) []models.StudentRecord {
	records := make([]models.StudentRecord, n)
	for i := range n {
		records[i] = models.StudentRecord{
			ID:    fmt.Sprintf("S%03d", i+1),
			Name:  fmt.Sprintf("Student %02d", i+1),
			Email: fmt.Sprintf("s%d@school.edu", i+1),
		}
	}
	return records
}

func randomRoster(r *rand.Rand, n int) []models.StudentRecord {
	names := []string{"Ana", "Ben", "Carla", "dave", "Eve", "Farid", "gina", "Hugo"}
	records := make([]models.StudentRecord, n)
	for i := range n {
		records[i] = models.StudentRecord{
			ID:            fmt.Sprintf("S%03d", r.IntN(1000)),
			Name:          names[r.IntN(len(names))],
			DominantTrait: testTraits[r.IntN(len(testTraits))],
			Score:         float64(r.IntN(50)),
		}
	}
	return records
}

func ids(records []models.StudentRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

// distinctKeys keeps only the first record per sort key value so that the
// reversal property is not blurred by tie order.
func distinctKeys(records []models.StudentRecord, key SortKey) []models.StudentRecord {
	seen := map[string]bool{}
	out := make([]models.StudentRecord, 0, len(records))
	for _, r := range records {
		var k string
		switch key {
		case SortByName:
			k = r.Name
		case SortByDominantTrait:
			k = r.DominantTrait
		case SortByScore:
			k = fmt.Sprint(r.Score)
		default:
			k = r.ID
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}

// ── pagination ────────────────────────────────────────────────────────────────

func TestDerive_TwentyFiveStudents(t *testing.T) {
	records := makeRoster(25)

	q := Query{Sort: DefaultSort, Page: 1}
	page1 := Derive(records, q)
	assert.Equal(t, ids(records[0:10]), ids(page1.Rows))
	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, 25, page1.Total)

	q.Page = 3
	page3 := Derive(records, q)
	assert.Equal(t, ids(records[20:25]), ids(page3.Rows))
	assert.Len(t, page3.Rows, 5)

	q.Page = 4
	page4 := Derive(records, q)
	assert.NotNil(t, page4.Rows)
	assert.Empty(t, page4.Rows)
}

func TestPaginate_OutOfRange(t *testing.T) {
	items := []int{1, 2, 3}
	assert.Empty(t, Paginate(items, 0, PageSize))
	assert.Empty(t, Paginate(items, -1, PageSize))
	assert.Empty(t, Paginate(items, 2, PageSize))
	assert.Empty(t, Paginate([]int{}, 1, PageSize))
	assert.Equal(t, []int{1, 2, 3}, Paginate(items, 1, PageSize))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
}

func TestDerive_PagesConcatenateToFullSequence(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		records := randomRoster(r, r.IntN(60))
		q := Query{Trait: testTraits[r.IntN(len(testTraits))], Sort: Sort{Key: SortByScore, Direction: Descending}}
		if r.IntN(2) == 0 {
			q.Trait = ""
		}

		q.Page = 1
		first := Derive(records, q)
		full := q.Sort.Apply(Filter(records, q.Trait, q.Search))

		var joined []models.StudentRecord
		for page := 1; page <= first.TotalPages; page++ {
			q.Page = page
			joined = append(joined, Derive(records, q).Rows...)
		}
		assert.Equal(t, len(full), len(joined))
		if len(full) > 0 {
			assert.Equal(t, full, joined)
		}
	}
}

// ── filtering ─────────────────────────────────────────────────────────────────

func TestFilter_TraitIsExactMatch(t *testing.T) {
	records := []models.StudentRecord{
		{ID: "S1", Name: "Ana", DominantTrait: "Openness"},
		{ID: "S2", Name: "Ben", DominantTrait: "Openness & Extraversion"},
		{ID: "S3", Name: "Cy", DominantTrait: "Extraversion"},
	}

	got := Filter(records, "Openness", "")
	assert.Equal(t, []string{"S1"}, ids(got))

	got = Filter(records, "Openness & Extraversion", "")
	assert.Equal(t, []string{"S2"}, ids(got))
}

func TestFilter_SearchNameOrIDCaseInsensitive(t *testing.T) {
	records := []models.StudentRecord{
		{ID: "S001", Name: "Maria Santos"},
		{ID: "S002", Name: "John Cruz"},
		{ID: "X-MAR", Name: "Peter"},
	}

	assert.Equal(t, []string{"S001", "X-MAR"}, ids(Filter(records, "", "  mar ")))
	assert.Equal(t, []string{"S002"}, ids(Filter(records, "", "s002")))
	assert.Len(t, Filter(records, "", "   "), 3)
	assert.Empty(t, Filter(records, "", "zzz"))
}

func TestFilter_Commutative(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	terms := []string{"", "a", "S0", "EVE", "x"}
	for range 100 {
		records := randomRoster(r, r.IntN(40))
		trait := testTraits[r.IntN(len(testTraits))]
		term := terms[r.IntN(len(terms))]

		traitFirst := Filter(Filter(records, trait, ""), "", term)
		searchFirst := Filter(Filter(records, "", term), trait, "")
		combined := Filter(records, trait, term)

		assert.ElementsMatch(t, traitFirst, searchFirst)
		assert.ElementsMatch(t, combined, traitFirst)
	}
}

func TestFilter_KeepsDuplicateIDs(t *testing.T) {
	records := []models.StudentRecord{
		{ID: "S1", Name: "Ana"},
		{ID: "S1", Name: "Ana (second subject)"},
	}
	assert.Len(t, Filter(records, "", "s1"), 2)
	assert.Len(t, Derive(records, Query{Sort: DefaultSort, Page: 1}).Rows, 2)
}

// ── sorting ───────────────────────────────────────────────────────────────────

func TestSort_AscendingThenDescendingReverses(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for _, key := range SortKeys {
		records := distinctKeys(randomRoster(r, 40), key)

		asc := Sort{Key: key, Direction: Ascending}.Apply(records)
		desc := Sort{Key: key, Direction: Descending}.Apply(records)

		reversed := slices.Clone(desc)
		slices.Reverse(reversed)
		assert.Equal(t, asc, reversed, "key %s", key)
	}
}

func TestSort_ScoreIsNumeric(t *testing.T) {
	records := []models.StudentRecord{
		{ID: "a", Score: 9},
		{ID: "b", Score: 41},
		{ID: "c", Score: 100},
	}
	got := Sort{Key: SortByScore}.Apply(records)
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestSort_StableOnTies(t *testing.T) {
	records := []models.StudentRecord{
		{ID: "S3", DominantTrait: "Openness"},
		{ID: "S1", DominantTrait: "Agreeableness"},
		{ID: "S2", DominantTrait: "Openness"},
	}
	got := Sort{Key: SortByDominantTrait}.Apply(records)
	assert.Equal(t, []string{"S1", "S3", "S2"}, ids(got))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	records := []models.StudentRecord{{ID: "b"}, {ID: "a"}}
	_ = Sort{Key: SortByID}.Apply(records)
	assert.Equal(t, []string{"b", "a"}, ids(records))
}

func TestSort_Toggle(t *testing.T) {
	s := DefaultSort
	s = s.Toggle(SortByID)
	assert.Equal(t, Sort{Key: SortByID, Direction: Descending}, s)

	s = s.Toggle(SortByID)
	assert.Equal(t, Sort{Key: SortByID, Direction: Ascending}, s)

	s = s.Toggle(SortByID).Toggle(SortByScore)
	assert.Equal(t, Sort{Key: SortByScore, Direction: Ascending}, s)
}

// ── purity ────────────────────────────────────────────────────────────────────

func TestDerive_Idempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	records := randomRoster(r, 35)
	snapshot := slices.Clone(records)
	q := Query{Search: "a", Sort: Sort{Key: SortByName, Direction: Descending}, Page: 2}

	first := Derive(records, q)
	second := Derive(records, q)

	require.Equal(t, first, second)
	assert.Equal(t, snapshot, records)
}

// ── controls ──────────────────────────────────────────────────────────────────

func TestControls_FilterChangesResetPage(t *testing.T) {
	c := NewControls()
	c.GoTo(3, 5)
	require.Equal(t, 3, c.Query().Page)

	c.SetSearch("ana")
	assert.Equal(t, 1, c.Query().Page)

	c.GoTo(2, 5)
	c.SetTrait("Openness")
	assert.Equal(t, 1, c.Query().Page)

	c.GoTo(2, 5)
	c.ToggleSort(SortByName)
	assert.Equal(t, 2, c.Query().Page)
}

func TestControls_NavigationClamps(t *testing.T) {
	c := NewControls()
	c.Prev(3)
	assert.Equal(t, 1, c.Query().Page)

	c.Next(3)
	c.Next(3)
	c.Next(3)
	assert.Equal(t, 3, c.Query().Page)

	c.Clamp(2)
	assert.Equal(t, 2, c.Query().Page)

	c.Clamp(0)
	assert.Equal(t, 1, c.Query().Page)
}

func TestControls_CycleTrait(t *testing.T) {
	c := NewControls()
	seen := make([]string, 0, len(TraitFilters))
	for range TraitFilters {
		c.CycleTrait()
		seen = append(seen, c.Query().Trait)
	}
	assert.Equal(t, append(slices.Clone(TraitFilters[1:]), ""), seen)
}
