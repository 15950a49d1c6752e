// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/mcp-snowflake-server/models"
)

const (
	FieldSQL  = "sql"
	FieldMode = "mode"
)

// createTablePattern matches the head of a CREATE TABLE statement including
// Snowflake's optional OR REPLACE and table kind modifiers.
var createTablePattern = regexp.MustCompile(`(?i)^CREATE\s+(?:OR\s+REPLACE\s+)?(?:(?:LOCAL|GLOBAL)\s+)?(?:(?:TEMP|TEMPORARY|VOLATILE|TRANSIENT)\s+)?TABLE\b`)

type QueryValidator struct {
}

func NewQueryValidator() Validator {
	return &QueryValidator{}
}

// Validate accepts models.Query, *models.Query or a bare SQL string, which is
// validated as a read query.
func (v *QueryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Query:
		return v.validateQuery(ctx, value, fields...)
	case *models.Query:
		return v.validateQuery(ctx, *value, fields...)
	case string:
		return v.validateQuery(ctx, models.Query{SQL: value, Mode: models.ReadQuery}, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *QueryValidator) validateQuery(ctx context.Context, query models.Query, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSQL, FieldMode}
	}

	for _, f := range fields {
		switch f {
		case FieldSQL:
			if strings.TrimSpace(query.SQL) == "" {
				return ErrEmptyQuery
			}
		case FieldMode:
			if err := v.validateMode(query); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QueryValidator) validateMode(query models.Query) error {
	switch query.Mode {
	case models.ReadQuery:
		analysis := AnalyzeQuery(query.SQL)
		if analysis.ContainsWrite {
			return fmt.Errorf("%w: found %s", ErrWriteNotAllowed, strings.Join(analysis.Operations, ", "))
		}
	case models.WriteQuery:
		if strings.HasPrefix(strings.ToUpper(statementHead(query.SQL)), "SELECT") {
			return ErrSelectNotAllowed
		}
	case models.CreateTableQuery:
		if !createTablePattern.MatchString(statementHead(query.SQL)) {
			return ErrNotCreateTable
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownQueryMode, query.Mode)
	}

	return nil
}

// statementHead strips leading whitespace and comments.
func statementHead(sql string) string {
	src := []rune(sql)
	i := 0
	for i < len(src) {
		switch {
		case src[i] == ' ' || src[i] == '\t' || src[i] == '\n' || src[i] == '\r':
			i++
		case src[i] == '-' && peek(src, i+1) == '-', src[i] == '/' && peek(src, i+1) == '/':
			i = skipLine(src, i)
		case src[i] == '/' && peek(src, i+1) == '*':
			i = skipBlockComment(src, i)
		default:
			return string(src[i:])
		}
	}
	return ""
}
