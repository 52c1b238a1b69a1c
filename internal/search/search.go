// Package search provides the line-search engine.
// It filters the lines of an in-memory text by substring containment,
// with exact and case-insensitive variants.
package search

import (
	"strings"
)

// Lines splits contents into lines on newline boundaries.
// A trailing newline terminates the last line instead of opening an empty
// one, and a trailing carriage return is stripped from each line so CRLF
// input behaves like LF input. Empty contents yield no lines.
func Lines(contents string) []string {
	if contents == "" {
		return nil
	}

	contents = strings.TrimSuffix(contents, "\n")
	lines := strings.Split(contents, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// Search returns the lines of contents that contain query as an exact
// contiguous substring, in their original order.
// An empty query matches every line. No match yields an empty result.
// contents is never mutated; the returned lines are substrings of it.
func Search(query, contents string) []string {
	var results []string

	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}

	return results
}

// SearchCaseInsensitive returns the lines of contents that contain query
// when both are lowercased, in their original order.
// The lowercased copies exist only for the comparison: the returned lines
// keep their original text.
func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)
	var results []string

	for _, line := range Lines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			results = append(results, line)
		}
	}

	return results
}
