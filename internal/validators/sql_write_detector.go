// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"
	"unicode"

	"github.com/MKhiriev/mcp-snowflake-server/models"
	"github.com/blastrain/vitess-sqlparser/sqlparser"
)

// writeKeywords are statement keywords that change data, schema or grants.
var writeKeywords = map[string]struct{}{
	"INSERT": {}, "UPDATE": {}, "DELETE": {}, "MERGE": {}, "UPSERT": {}, "REPLACE": {},
	"CREATE": {}, "ALTER": {}, "DROP": {}, "TRUNCATE": {}, "RENAME": {}, "UNDROP": {},
	"GRANT": {}, "REVOKE": {},
	"COPY": {}, "PUT": {}, "REMOVE": {},
}

// AnalyzeQuery reports the write operations found in query.
//
// A single statement is first handed to the MySQL-dialect parser and a known
// statement type settles the answer. Anything else falls back to a keyword
// scan that ignores comments, literals, qualified names and function calls.
func AnalyzeQuery(query string) models.WriteAnalysis {
	words, statements := scanKeywords(query)

	var (
		operations []string
		op         string
		parsed     bool
	)
	if statements <= 1 {
		op, parsed = classifyStatement(query)
	}
	switch {
	case parsed && op != "":
		operations = []string{op}
	case !parsed:
		operations = writeOperations(words)
	}

	analysis := models.WriteAnalysis{
		ContainsWrite: len(operations) > 0,
		Operations:    operations,
	}
	if analysis.ContainsWrite && len(words) > 0 && words[0] == "WITH" {
		analysis.CTEWrite = true
	}

	return analysis
}

// classifyStatement returns the write operation of a single parsed statement,
// or "" for a read. parsed is false when the parser could not decide.
func classifyStatement(query string) (op string, parsed bool) {
	stmt, err := sqlparser.Parse(query)
	if err != nil {
		return "", false
	}

	switch s := stmt.(type) {
	case sqlparser.SelectStatement, *sqlparser.Show, *sqlparser.OtherRead, *sqlparser.Use, *sqlparser.Set:
		return "", true
	case *sqlparser.Insert:
		if strings.EqualFold(s.Action, "replace") {
			return "REPLACE", true
		}
		return "INSERT", true
	case *sqlparser.Update:
		return "UPDATE", true
	case *sqlparser.Delete:
		return "DELETE", true
	case *sqlparser.DDL:
		if s.Action == "" {
			return "", false
		}
		return strings.ToUpper(s.Action), true
	default:
		return "", false
	}
}

func writeOperations(words []string) []string {
	var ops []string
	seen := make(map[string]struct{})
	for _, w := range words {
		if _, ok := writeKeywords[w]; !ok {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		ops = append(ops, w)
	}
	return ops
}

// scanKeywords returns the upper-cased bare words of query that could be
// statement keywords, in order of appearance, and the number of non-empty
// statements separated by semicolons.
func scanKeywords(query string) (words []string, statements int) {
	var (
		prev    rune // last significant character outside words
		newStmt = true
	)
	src := []rune(query)

	for i := 0; i < len(src); {
		c := src[i]
		if newStmt && c != ';' && !unicode.IsSpace(c) && !isCommentStart(src, i) {
			statements++
			newStmt = false
		}

		switch {
		case unicode.IsSpace(c):
			i++
		case c == '-' && peek(src, i+1) == '-', c == '/' && peek(src, i+1) == '/':
			i = skipLine(src, i)
		case c == '/' && peek(src, i+1) == '*':
			i = skipBlockComment(src, i)
		case c == '\'':
			i = skipQuoted(src, i, '\'')
			prev = c
		case c == '"' || c == '`':
			i = skipQuoted(src, i, c)
			prev = c
		case c == '$' && peek(src, i+1) == '$':
			i = skipDollarQuoted(src, i)
			prev = c
		case isWordStart(c):
			start := i
			for i < len(src) && isWordPart(src[i]) {
				i++
			}
			word := strings.ToUpper(string(src[start:i]))
			qualified := prev == '.'
			call := nextSignificant(src, i) == '('
			if !qualified && !call {
				words = append(words, word)
			}
			prev = 'a'
		case c == ';':
			newStmt = true
			prev = c
			i++
		default:
			prev = c
			i++
		}
	}

	return words, statements
}

func isCommentStart(src []rune, i int) bool {
	switch src[i] {
	case '-':
		return peek(src, i+1) == '-'
	case '/':
		return peek(src, i+1) == '/' || peek(src, i+1) == '*'
	}
	return false
}

func peek(src []rune, i int) rune {
	if i < len(src) {
		return src[i]
	}
	return 0
}

func nextSignificant(src []rune, i int) rune {
	for i < len(src) && unicode.IsSpace(src[i]) {
		i++
	}
	return peek(src, i)
}

func skipLine(src []rune, i int) int {
	for i < len(src) && src[i] != '\n' {
		i++
	}
	return i
}

func skipBlockComment(src []rune, i int) int {
	for i += 2; i < len(src); i++ {
		if src[i] == '*' && peek(src, i+1) == '/' {
			return i + 2
		}
	}
	return len(src)
}

// skipQuoted skips a literal opened by quote. A doubled quote or a backslash
// escapes the next character.
func skipQuoted(src []rune, i int, quote rune) int {
	for i++; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case quote:
			if peek(src, i+1) == quote {
				i++
				continue
			}
			return i + 1
		}
	}
	return len(src)
}

func skipDollarQuoted(src []rune, i int) int {
	for i += 2; i < len(src); i++ {
		if src[i] == '$' && peek(src, i+1) == '$' {
			return i + 2
		}
	}
	return len(src)
}

func isWordStart(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isWordPart(c rune) bool {
	return c == '_' || c == '$' || unicode.IsLetter(c) || unicode.IsDigit(c)
}
