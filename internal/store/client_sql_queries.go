// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	clientStateTable = "client_state"

	colKey       = "key"
	colValue     = "value"
	colUpdatedAt = "updated_at"

	keyToken = "token"
	keyUser  = "user"

	upsertClientStateSuffix = "ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

var sessionKeys = []string{keyToken, keyUser}
