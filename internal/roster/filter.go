// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package roster

import (
	"strings"

	"github.com/MKhiriev/insighted-client/models"
)

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Filter keeps records whose dominant label equals trait exactly (when trait
// is set) and whose name or id contains the trimmed search term ignoring case
// (when search is set). Tied labels never match a single trait.
func Filter(records []models.StudentRecord, trait, search string) []models.StudentRecord {
	term := strings.TrimSpace(search)
	out := make([]models.StudentRecord, 0, len(records))
	for _, r := range records {
		if trait != "" && r.DominantTrait != trait {
			continue
		}
		if term != "" && !ContainsFold(r.Name, term) && !ContainsFold(r.ID, term) {
			continue
		}
		out = append(out, r)
	}
	return out
}
