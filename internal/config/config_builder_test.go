// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── builder ───────────────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and no sources.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned with a nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestWithSource_SkipsEmptySource verifies the fluent interface and that
// empty sources are not collected.
func TestWithSource_SkipsEmptySource(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withSource(nil))
	assert.Same(t, b, b.withSource(ConnectionConfig{}))
	assert.Empty(t, b.configs)
}

// TestWithFile_NilRequest verifies that a nil request is a no-op.
func TestWithFile_NilRequest(t *testing.T) {
	b := newConfigBuilder().withFile(nil)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── Resolve ───────────────────────────────────────────────────────────────────

func TestResolve_DisjointSourcesAreUnited(t *testing.T) {
	env := ConnectionConfig{"account": "acc", "database": "DB"}
	inline := ConnectionConfig{"schema": "PUBLIC", "warehouse": "WH"}

	got, err := Resolve(env, inline, nil)

	require.NoError(t, err)
	assert.Equal(t, ConnectionConfig{
		"account":   "acc",
		"database":  "DB",
		"schema":    "PUBLIC",
		"warehouse": "WH",
	}, got)
}

func TestResolve_InlineOverridesEnvironment(t *testing.T) {
	env := ConnectionConfig{"database": "ENV_DB", "schema": "ENV_SCHEMA", "role": "ENV_ROLE"}
	inline := ConnectionConfig{"database": "INLINE_DB"}

	got, err := Resolve(env, inline, nil)

	require.NoError(t, err)
	assert.Equal(t, "INLINE_DB", got["database"])
	assert.Equal(t, "ENV_SCHEMA", got["schema"])
	assert.Equal(t, "ENV_ROLE", got["role"])
}

func TestResolve_FileOverridesInlineAndEnvironment(t *testing.T) {
	path := writeTempFile(t, "connections.toml", `
[dev]
database = "FILE_DB"
warehouse = "FILE_WH"
`)
	env := ConnectionConfig{"database": "ENV_DB", "schema": "ENV_SCHEMA", "warehouse": "ENV_WH", "role": "ENV_ROLE"}
	inline := ConnectionConfig{"database": "INLINE_DB", "warehouse": "INLINE_WH", "schema": "INLINE_SCHEMA"}

	got, err := Resolve(env, inline, &FileRequest{Path: path, Section: "dev"})

	require.NoError(t, err)
	assert.Equal(t, "FILE_DB", got["database"])
	assert.Equal(t, "FILE_WH", got["warehouse"])
	assert.Equal(t, "INLINE_SCHEMA", got["schema"])
	assert.Equal(t, "ENV_ROLE", got["role"])
}

func TestResolve_DoesNotMutateSources(t *testing.T) {
	env := ConnectionConfig{"database": "ENV_DB", "schema": "S"}
	inline := ConnectionConfig{"database": "INLINE_DB"}

	_, err := Resolve(env, inline, nil)

	require.NoError(t, err)
	assert.Equal(t, ConnectionConfig{"database": "ENV_DB", "schema": "S"}, env)
	assert.Equal(t, ConnectionConfig{"database": "INLINE_DB"}, inline)
}

func TestResolve_PartialFileRequest(t *testing.T) {
	valid := ConnectionConfig{"database": "DB", "schema": "S"}

	tests := []struct {
		name    string
		request *FileRequest
		wantErr error
	}{
		{name: "path only", request: &FileRequest{Path: "connections.toml"}, wantErr: ErrConfiguration},
		{name: "section only", request: &FileRequest{Section: "dev"}, wantErr: ErrConfiguration},
		{name: "neither", request: &FileRequest{}},
		{name: "nil", request: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(valid, nil, tt.request)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "must be provided together")
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, valid, got)
		})
	}
}

func TestResolve_FileErrorsAreWrapped(t *testing.T) {
	valid := ConnectionConfig{"database": "DB", "schema": "S"}

	_, err := Resolve(valid, nil, &FileRequest{Path: filepath.Join(t.TempDir(), "none.toml"), Section: "dev"})
	assert.ErrorIs(t, err, ErrNotFound)

	path := writeTempFile(t, "connections.toml", connectionsTOML)
	_, err = Resolve(valid, nil, &FileRequest{Path: path, Section: "nope"})
	assert.ErrorIs(t, err, ErrMissingSection)
}

func TestResolve_FileSectionAndKeysMatchExactly(t *testing.T) {
	path := writeTempFile(t, "c.conf", "[prod]\ndatabase = \"F\"\nschema = \"s\"\n")

	_, err := Resolve(nil, nil, &FileRequest{Path: path, Section: "PROD"})
	assert.ErrorIs(t, err, ErrMissingSection)

	got, err := Resolve(nil, nil, &FileRequest{Path: path, Section: "prod"})
	require.NoError(t, err)
	assert.Equal(t, ConnectionConfig{"database": "F", "schema": "s"}, got)

	capitalized := writeTempFile(t, "caps.toml", "[prod]\nDatabase = \"F\"\nschema = \"s\"\n")
	_, err = Resolve(nil, nil, &FileRequest{Path: capitalized, Section: "prod"})
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestResolve_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		source  ConnectionConfig
		missing []string
	}{
		{name: "database missing", source: ConnectionConfig{"schema": "S"}, missing: []string{"database"}},
		{name: "schema missing", source: ConnectionConfig{"database": "DB"}, missing: []string{"schema"}},
		{name: "both missing", source: ConnectionConfig{"account": "acc"}, missing: []string{"database", "schema"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.source, nil, nil)

			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrMissingRequiredField)

			var missingErr *MissingFieldsError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tt.missing, missingErr.Fields)

			for _, field := range tt.missing {
				assert.Contains(t, err.Error(), `"--`+field+`"`)
				assert.Contains(t, err.Error(), EnvVarName(field))
			}
			assert.Contains(t, err.Error(), "connections file")
		})
	}
}

func TestResolve_RequiredFieldsOnly(t *testing.T) {
	got, err := Resolve(nil, ConnectionConfig{"database": "DB", "schema": "S"}, nil)

	require.NoError(t, err)
	assert.Equal(t, ConnectionConfig{"database": "DB", "schema": "S"}, got)
}
