// Package config builds the configuration for a single search invocation
// from command-line arguments and one environment variable.
package config

import (
	"fmt"
)

// Config holds the settings for one invocation. It is built once from the
// argument list and never mutated afterwards.
type Config struct {
	// Query is the substring searched for within each line.
	Query string
	// FilePath is the path of the file to search.
	FilePath string
	// IgnoreCase selects case-insensitive matching. It is true iff the
	// IGNORE_CASE environment variable is set, to any value.
	IgnoreCase bool
}

// EnvLookup reports the value of an environment variable and whether it is
// set. It matches the signature of os.LookupEnv, which the CLI passes in;
// tests inject their own lookup so they never touch process state.
type EnvLookup func(key string) (string, bool)

// MissingArgumentError reports a required positional argument that was
// absent from the invocation.
type MissingArgumentError struct {
	// Field names the missing argument, e.g. "query string".
	Field string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing argument: %s", e.Field)
}

// Build creates a Config from the raw argument list (args[0] being the
// program name, which is skipped) and an environment lookup.
// args[1] becomes the query and args[2] the file path; if either is absent
// Build fails with a MissingArgumentError naming the missing field.
func Build(args []string, lookupEnv EnvLookup) (Config, error) {
	if len(args) < 2 {
		return Config{}, &MissingArgumentError{Field: "query string"}
	}
	if len(args) < 3 {
		return Config{}, &MissingArgumentError{Field: "file path"}
	}

	// Presence alone enables case folding; an empty value still counts.
	_, ignoreCase := lookupEnv("IGNORE_CASE")

	return Config{
		Query:      args[1],
		FilePath:   args[2],
		IgnoreCase: ignoreCase,
	}, nil
}
