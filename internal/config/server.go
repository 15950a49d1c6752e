// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Server flag names.
const (
	flagAllowWrite      = "allow_write"
	flagLogDir          = "log_dir"
	flagLogLevel        = "log_level"
	flagPrefetch        = "prefetch"
	flagNoPrefetch      = "no-prefetch"
	flagExcludeTools    = "exclude_tools"
	flagConnectionName  = "connection-name"
	flagConnectionsFile = "connections-file"
)

// DefaultLogLevel is used when --log_level is not given.
const DefaultLogLevel = "INFO"

// ServerConfig holds the settings of the MCP server itself. Everything that
// is not a server flag is treated as an inline connection parameter.
type ServerConfig struct {
	// AllowWrite enables the write_query and create_table tools.
	AllowWrite bool

	// LogDir is the directory of the log file. Empty means stderr.
	LogDir string

	// LogLevel is one of DEBUG, INFO, WARNING, ERROR, CRITICAL.
	LogLevel string

	// Prefetch loads the table descriptions of the configured schema at
	// startup and serves them as resources. When enabled, list_tables and
	// describe_table are not exposed.
	Prefetch bool

	// ExcludeTools lists tool names that must not be exposed.
	ExcludeTools []string

	// ConnectionName is the section of ConnectionsFile to use.
	ConnectionName string

	// ConnectionsFile is the path of the connections file.
	ConnectionsFile string
}

// NewServerConfig returns a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{LogLevel: DefaultLogLevel}
}

// RegisterFlags binds the server settings to fs.
func (c *ServerConfig) RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.AllowWrite, flagAllowWrite, false, "Allow write operations on the database")
	fs.StringVar(&c.LogDir, flagLogDir, "", "Directory to log to")
	fs.StringVar(&c.LogLevel, flagLogLevel, DefaultLogLevel, "Logging level")
	fs.BoolVar(&c.Prefetch, flagPrefetch, false,
		"Prefetch table descriptions (when enabled, list_tables and describe_table are disabled)")
	noPrefetch := fs.VarPF(invertedBool{&c.Prefetch}, flagNoPrefetch, "", "Don't prefetch table descriptions")
	noPrefetch.NoOptDefVal = "true"
	fs.StringSliceVar(&c.ExcludeTools, flagExcludeTools, nil, "List of tools to exclude")
	fs.StringVar(&c.ConnectionName, flagConnectionName, "",
		"Name of the connection to use from the connections file")
	fs.StringVar(&c.ConnectionsFile, flagConnectionsFile, "",
		"Path to the TOML file containing connection configurations")
}

// PrefetchEnabled reports whether table descriptions should be prefetched.
// --prefetch and --no-prefetch write the same setting, the last one given
// wins.
func (c *ServerConfig) PrefetchEnabled() bool {
	return c.Prefetch
}

// invertedBool is a boolean flag value that stores its negation in target.
type invertedBool struct {
	target *bool
}

func (b invertedBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*b.target = !v
	return nil
}

func (b invertedBool) String() string {
	if b.target == nil {
		return "false"
	}
	return strconv.FormatBool(!*b.target)
}

func (b invertedBool) Type() string {
	return "bool"
}

// FileRequest returns the connections file request, or nil when neither the
// file nor the connection name was given.
func (c *ServerConfig) FileRequest() *FileRequest {
	if c.ConnectionsFile == "" && c.ConnectionName == "" {
		return nil
	}

	return &FileRequest{Path: c.ConnectionsFile, Section: c.ConnectionName}
}

// SplitArguments separates the tokens of flags registered in fs from the rest.
//
// Known flags keep their value (the next token, unless given as --flag=value
// or the flag is boolean). Slice flags greedily take every following token
// that does not start with "-", and are rewritten as repeated --flag=value
// tokens so fs can parse them. Everything else, in order, is returned as
// unknown and is meant for [ParseInlineArguments].
func SplitArguments(fs *pflag.FlagSet, args []string) (known, unknown []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]

		f, inlineValue := lookupFlag(fs, arg)
		if f == nil {
			unknown = append(unknown, arg)
			continue
		}

		switch {
		case inlineValue:
			known = append(known, arg)
		case f.NoOptDefVal != "":
			known = append(known, arg)
		case strings.HasSuffix(f.Value.Type(), "Slice"):
			taken := false
			for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
				known = append(known, flagMarker+f.Name+"="+args[i])
				taken = true
			}
			if !taken {
				// let fs report the missing argument
				known = append(known, arg)
			}
		default:
			known = append(known, arg)
			if i+1 < len(args) {
				i++
				known = append(known, args[i])
			}
		}
	}

	return known, unknown
}

// lookupFlag resolves "--name", "--name=value" and "-x" tokens against fs.
func lookupFlag(fs *pflag.FlagSet, arg string) (*pflag.Flag, bool) {
	switch {
	case strings.HasPrefix(arg, flagMarker):
		name, _, hasValue := strings.Cut(strings.TrimPrefix(arg, flagMarker), "=")
		if name == "" {
			return nil, false
		}
		return fs.Lookup(name), hasValue
	case strings.HasPrefix(arg, "-") && len(arg) == 2:
		return fs.ShorthandLookup(arg[1:]), false
	default:
		return nil, false
	}
}
