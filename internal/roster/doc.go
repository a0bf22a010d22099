// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package roster derives the visible page of a student table from the
// enriched collection and the current table controls.
//
// [Derive] is pure: it never mutates its input and identical arguments always
// produce an identical [View]. Side effects of the controls (resetting the
// page when the search term or trait filter changes) live on [Controls].
package roster
