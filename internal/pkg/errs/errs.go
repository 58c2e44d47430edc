// Package errs is a thin seam over cockroachdb/errors so the rest of the
// codebase never imports the library directly.
package errs

import (
	"fmt"
	"strings"

	crdb "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return crdb.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return crdb.Wrap(err, msg)
}

// Mark makes err match markErr under errors.Is without losing err's message
// or stack.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return crdb.Mark(err, markErr)
}

// ExtractStackLines renders the verbose form of err and returns at most
// maxLines lines of it. maxLines <= 0 means no limit.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
