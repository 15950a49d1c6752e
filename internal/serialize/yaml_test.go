// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serialize

import (
	"math"
	"math/big"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestToYAML_BooleanAndInteger(t *testing.T) {
	out, err := ToYAML(map[string]any{"flag": true, "n": 3})
	require.NoError(t, err)

	assert.Equal(t, "flag: true\nn: 3\n", out)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, map[string]any{"flag": true, "n": 3}, parsed)
}

func TestToYAML_RecordKeepsInsertionOrder(t *testing.T) {
	rec := NewRecord(3).Set("zeta", 1).Set("alpha", "x").Set("mid", false)

	out, err := ToYAML(rec)
	require.NoError(t, err)

	assert.Equal(t, "zeta: 1\nalpha: x\nmid: false\n", out)
}

func TestToYAML_NormalizedScalars(t *testing.T) {
	rec := NewRecord(4).
		Set("day", civil.Date{Year: 2024, Month: time.March, Day: 5}).
		Set("amount", mustBigFloat(t, "3.14")).
		Set("missing", math.NaN()).
		Set("whole", 2.0)

	out, err := ToYAML(rec)
	require.NoError(t, err)

	assert.Equal(t, "day: \"2024-03-05\"\namount: 3.14\nmissing: null\nwhole: 2.0\n", out)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "2024-03-05", parsed["day"])
	assert.Equal(t, 3.14, parsed["amount"])
	assert.Nil(t, parsed["missing"])
	assert.Equal(t, 2.0, parsed["whole"])
}

func TestToYAML_StringsThatLookLikeOtherTypesAreQuoted(t *testing.T) {
	out, err := ToYAML(NewRecord(3).Set("a", "true").Set("b", "42").Set("c", "null"))
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, map[string]any{"a": "true", "b": "42", "c": "null"}, parsed)
}

func TestToYAML_BlockStyleWithTwoSpaceIndent(t *testing.T) {
	data := NewRecord(1).Set("rows", []any{
		NewRecord(2).Set("id", 1).Set("name", "a"),
	})

	out, err := ToYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "rows:\n  - id: 1\n    name: a\n", out)
}

func TestToYAML_NamedScalarKinds(t *testing.T) {
	type level string

	out, err := ToYAML(map[string]any{"level": level("on")})
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "on", parsed["level"])
}

func TestToYAML_Infinity(t *testing.T) {
	out, err := ToYAML(map[string]any{"x": math.Inf(-1)})
	require.NoError(t, err)

	assert.Equal(t, "x: -.inf\n", out)
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "1.0", formatFloat(1, 64))
	assert.Equal(t, "0.25", formatFloat(0.25, 64))
	assert.Equal(t, "1e+21", formatFloat(1e21, 64))
	assert.Equal(t, ".inf", formatFloat(math.Inf(1), 64))
}

func TestToYAML_BigNumberValues(t *testing.T) {
	out, err := ToYAML(*big.NewFloat(1.5))
	require.NoError(t, err)
	assert.Equal(t, "1.5\n", out)

	out, err = ToYAML(NewRecord(1).Set("n", *big.NewInt(3)))
	require.NoError(t, err)
	assert.Equal(t, "n: 3\n", out)
}
