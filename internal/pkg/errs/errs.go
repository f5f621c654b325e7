// Package errs wraps cockroachdb/errors so every layer records stacks the
// same way, and defines the Kind taxonomy the HTTP layer maps to statuses.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Assigned rather than wrapped so captured stacks start at the caller.
var (
	New       = cr.New
	Wrap      = cr.Wrap
	Wrapf     = cr.Wrapf
	WithStack = cr.WithStack
	// Is understands both wrapping chains and marks.
	Is = cr.Is
	As = cr.As
)

// Mark makes err match ref under Is without changing its message. A nil
// err yields ref itself.
func Mark(err, ref error) error {
	if err == nil {
		return ref
	}
	return cr.Mark(err, ref)
}

// ExtractStackLines renders err with its stack and keeps the first
// maxLines non-blank lines, all of them when maxLines <= 0.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	var lines []string
	for line := range strings.SplitSeq(fmt.Sprintf("%+v", err), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if maxLines > 0 && len(lines) == maxLines {
			break
		}
	}
	return lines
}
