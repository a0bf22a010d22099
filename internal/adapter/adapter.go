// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

// BackendAdapter is the complete backend surface used by the client.
type BackendAdapter interface {
	AuthAdapter
	TeacherAdapter
	AdminAdapter
}
