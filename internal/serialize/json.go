// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serialize

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const indent = "  "

// ToJSON renders data as JSON with 2-space indentation after normalizing
// every leaf with [NormalizeScalar].
//
// Values the encoder still cannot represent (for example +Inf or channels)
// make ToJSON fail.
func ToJSON(data any) (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)

	if err := enc.Encode(normalize(data)); err != nil {
		return "", fmt.Errorf("error encoding json: %w", err)
	}

	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
