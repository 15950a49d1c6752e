// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "strings"

// quoteIdentifier wraps a name read back from INFORMATION_SCHEMA in double
// quotes so that its stored case is matched exactly.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
