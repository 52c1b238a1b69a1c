// Package runner executes a configured search: it reads the target file
// into memory, runs the search engine, and writes matching lines in order.
package runner

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/f4ah6o/linegrep-go/internal/config"
	"github.com/f4ah6o/linegrep-go/internal/search"
)

// Runner runs search invocations and writes matches to its writer.
type Runner struct {
	out io.Writer
}

// New creates a new Runner writing matches to out.
func New(out io.Writer) *Runner {
	return &Runner{out: out}
}

// Run reads the file named by cfg.FilePath fully into memory, searches it
// with cfg.Query (case-insensitively when cfg.IgnoreCase is set), and writes
// each matching line to the Runner's writer, one per line, in file order,
// with no decoration. A file that cannot be read or that is not valid UTF-8
// text fails the run; no match is not an error.
func (r *Runner) Run(cfg config.Config) error {
	contents, err := readTextFile(cfg.FilePath)
	if err != nil {
		return err
	}

	var results []string
	if cfg.IgnoreCase {
		results = search.SearchCaseInsensitive(cfg.Query, contents)
	} else {
		results = search.Search(cfg.Query, contents)
	}

	for _, line := range results {
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	return nil
}

// readTextFile loads a whole file into memory as a string.
// Content that is not valid UTF-8 is rejected, so binary files surface as a
// read failure rather than producing garbage matches.
func readTextFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	contents, _, err := transform.String(encoding.UTF8Validator, string(raw))
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return contents, nil
}
