// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package roster

// Controls holds the interactive state of a student table. The zero value is
// not ready for use; call [NewControls].
type Controls struct {
	query Query
}

// NewControls returns controls on page 1 ordered by [DefaultSort].
func NewControls() *Controls {
	return &Controls{query: Query{Sort: DefaultSort, Page: 1}}
}

// Query returns a snapshot of the current controls.
func (c *Controls) Query() Query {
	return c.query
}

// SetSearch changes the search term and resets to page 1.
func (c *Controls) SetSearch(term string) {
	c.query.Search = term
	c.query.Page = 1
}

// SetTrait changes the trait filter and resets to page 1. An empty trait
// clears the filter.
func (c *Controls) SetTrait(trait string) {
	c.query.Trait = trait
	c.query.Page = 1
}

// ToggleSort applies [Sort.Toggle] for key.
func (c *Controls) ToggleSort(key SortKey) {
	c.query.Sort = c.query.Sort.Toggle(key)
}

// Next advances one page without passing totalPages.
func (c *Controls) Next(totalPages int) {
	c.GoTo(c.query.Page+1, totalPages)
}

// Prev goes back one page, never below 1.
func (c *Controls) Prev(totalPages int) {
	c.GoTo(c.query.Page-1, totalPages)
}

// GoTo moves to page, clamped to [1, max(totalPages, 1)].
func (c *Controls) GoTo(page, totalPages int) {
	last := max(totalPages, 1)
	c.query.Page = min(max(page, 1), last)
}

// Clamp pulls the current page back into range after the collection shrank.
func (c *Controls) Clamp(totalPages int) {
	c.GoTo(c.query.Page, totalPages)
}

// TraitFilters is the cycle order of the trait filter; "" means all traits.
var TraitFilters = []string{"", "Openness", "Conscientiousness", "Extraversion", "Agreeableness", "Neuroticism"}

// CycleTrait moves the trait filter to the next entry of [TraitFilters].
func (c *Controls) CycleTrait() {
	next := 0
	for i, t := range TraitFilters {
		if t == c.query.Trait {
			next = (i + 1) % len(TraitFilters)
			break
		}
	}
	c.SetTrait(TraitFilters[next])
}
