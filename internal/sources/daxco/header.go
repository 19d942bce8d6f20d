// Package daxco transforms Daxco payroll exports into canonical payroll
// records. Exports are comma-delimited UTF-8 text with an unpredictable
// preamble block before the real header row, so the header is located by
// approximate label matching rather than by position.
package daxco

import (
	"strings"

	"github.com/agentstation/paybridge/pkg/errors"
	"github.com/agentstation/paybridge/pkg/fuzzy"
)

const (
	departmentLabel = "department"
	headerLabel     = "staff first name"
)

// firstField returns the first comma-delimited field of a raw line with
// surrounding whitespace and double quotes stripped.
func firstField(line string) string {
	field, _, _ := strings.Cut(line, ",")
	return strings.Trim(strings.TrimSpace(field), `"`)
}

// splitLines splits decoded file text into lines, tolerating both LF and
// CRLF endings.
func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// Department scans the file top-to-bottom for a metadata line whose first
// field approximately matches "department" (trailing colon ignored) and
// returns the second field of that line. Absence is not an error: exports
// are not required to carry a department block.
func Department(data []byte) (string, bool) {
	for _, line := range splitLines(string(data)) {
		label := strings.TrimSuffix(firstField(line), ":")
		if !fuzzy.Match(label, departmentLabel) {
			continue
		}
		_, rest, ok := strings.Cut(line, ",")
		if !ok {
			return "", true
		}
		value, _, _ := strings.Cut(rest, ",")
		return strings.Trim(strings.TrimSpace(value), `"`), true
	}
	return "", false
}

// HeaderIndex returns the zero-based line index of the header row, found by
// approximately matching the first field of each line against "staff first
// name". All matches are collected and the last one wins: preamble blocks may
// repeat the header labels before the real data begins.
func HeaderIndex(data []byte) (int, error) {
	last := -1
	for i, line := range splitLines(string(data)) {
		if fuzzy.Match(firstField(line), headerLabel) {
			last = i
		}
	}
	if last < 0 {
		return 0, errors.NewSourceError("daxco", "no header row with a staff first name column", errors.ErrHeaderNotFound)
	}
	return last, nil
}
