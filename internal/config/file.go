// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// defaultFileType is assumed for connections files without a recognized
// extension.
const defaultFileType = "toml"

// FileRequest names a connection section inside a connections file.
type FileRequest struct {
	Path    string
	Section string
}

// LoadSection reads the connections file at path and returns the top-level
// section named section.
//
// The file format follows the extension (.toml, .yaml, .yml, .json) and
// defaults to TOML. Section names and keys are matched exactly as written.
//
// Errors wrap [ErrNotFound] when path does not exist, [ErrMalformed] when the
// content cannot be parsed and [ErrMissingSection] when the section is absent
// or is not a table.
func LoadSection(path, section string) (ConnectionConfig, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	// section names may contain dots, so viper's default delimiter is avoided
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(path)
	v.SetConfigType(fileType(path))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	// viper folds keys to lower case, so the exact names come from a second
	// decode of the same content
	sections, err := decodeSections(path, v.ConfigFileUsed())
	if err != nil {
		return nil, err
	}

	raw, ok := sections[section]
	if !ok {
		return nil, fmt.Errorf("%w: connection '%s' not found in %s", ErrMissingSection, section, path)
	}

	table, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' in %s is not a table", ErrMissingSection, section, path)
	}

	return ConnectionConfig(table), nil
}

func decodeSections(path, used string) (map[string]any, error) {
	content, err := os.ReadFile(used)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	sections := make(map[string]any)
	switch fileType(path) {
	case "yaml", "yml":
		err = yaml.Unmarshal(content, &sections)
	case "json":
		err = json.Unmarshal(content, &sections)
	default:
		err = toml.Unmarshal(content, &sections)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return sections, nil
}

func fileType(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "toml", "yaml", "yml", "json":
		return ext
	default:
		return defaultFileType
	}
}
