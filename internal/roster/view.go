// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package roster

import "github.com/MKhiriev/insighted-client/models"

// Query is the set of table controls applied to the enriched collection.
type Query struct {
	Search string
	Trait  string
	Sort   Sort
	Page   int
}

// View is one derived page of the table.
type View struct {
	Rows       []models.StudentRecord
	Page       int
	TotalPages int
	// Total is the number of records left after filtering.
	Total int
}

// Derive filters, sorts and paginates records according to q.
func Derive(records []models.StudentRecord, q Query) View {
	filtered := Filter(records, q.Trait, q.Search)
	sorted := q.Sort.Apply(filtered)
	return View{
		Rows:       Paginate(sorted, q.Page, PageSize),
		Page:       q.Page,
		TotalPages: TotalPages(len(sorted), PageSize),
		Total:      len(sorted),
	}
}
