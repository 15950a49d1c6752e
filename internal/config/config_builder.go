// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []ConnectionConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]ConnectionConfig, 0, 3),
	}
}

// build merges the collected sources in order (later keys win) and validates
// the result. No partial config is returned on error.
func (b *configBuilder) build() (ConnectionConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during resolving connection config: %w", b.err)
	}

	merged := make(ConnectionConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(&merged, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging connection configs: %w", err)
		}
	}

	if err := merged.validate(); err != nil {
		return nil, err
	}

	return merged, nil
}

func (b *configBuilder) withSource(source ConnectionConfig) *configBuilder {
	if len(source) > 0 {
		b.configs = append(b.configs, source)
	}

	return b
}

func (b *configBuilder) withFile(req *FileRequest) *configBuilder {
	if req == nil {
		return b
	}

	switch {
	case req.Path == "" && req.Section == "":
		return b
	case req.Path == "" || req.Section == "":
		b.err = errors.Join(b.err, fmt.Errorf(
			"%w: both --%s and --%s must be provided together",
			ErrConfiguration, flagConnectionsFile, flagConnectionName,
		))
		return b
	}

	section, err := LoadSection(req.Path, req.Section)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("failed to load connections file: %w", err))
		return b
	}

	b.configs = append(b.configs, section)
	return b
}

// Resolve merges the environment, inline and (optionally) file sources into
// one validated [ConnectionConfig].
//
// Precedence is file > inline > environment when file names both a path and a
// section; inline > environment when file is nil or empty. Exactly one of
// path and section yields an error wrapping [ErrConfiguration]. A result
// missing "database" or "schema" yields a [*MissingFieldsError].
func Resolve(env, inline ConnectionConfig, file *FileRequest) (ConnectionConfig, error) {
	return newConfigBuilder().
		withSource(env).
		withSource(inline).
		withFile(file).
		build()
}
