// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Insight is a single data insight appended to the memo during a session.
type Insight struct {
	Text    string    `json:"text"`
	AddedAt time.Time `json:"added_at"`
}
