// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

const flagMarker = "--"

// ParseInlineArguments pairs up a flat "--key value" token sequence.
//
// Tokens are consumed two at a time. A pair is kept only when its first token
// starts with "--"; the marker is stripped to form the key and the second
// token is used verbatim as the value. Pairs whose first token is not a flag
// are skipped, and a trailing token without a partner is dropped.
//
// For example ["--warehouse", "WH1", "--role"] yields {"warehouse": "WH1"}.
func ParseInlineArguments(tokens []string) ConnectionConfig {
	cfg := make(ConnectionConfig, len(tokens)/2)

	for i := 0; i+1 < len(tokens); i += 2 {
		key, value := tokens[i], tokens[i+1]
		if !strings.HasPrefix(key, flagMarker) {
			continue
		}
		cfg[strings.TrimPrefix(key, flagMarker)] = value
	}

	return cfg
}
