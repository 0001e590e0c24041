package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is understands both wrapped chains and marks added with Mark.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

// WithHint attaches a message meant for the API caller. Hints survive Wrap and Mark.
func WithHint(err error, hint string) error {
	if err == nil || hint == "" {
		return err
	}
	return cr.WithHint(err, hint)
}

// Hints returns every hint in the chain, outermost first, without duplicates.
func Hints(err error) []string {
	if err == nil {
		return nil
	}
	return cr.GetAllHints(err)
}

// CarryHints copies the hints of from onto to.
func CarryHints(to, from error) error {
	for _, h := range Hints(from) {
		to = WithHint(to, h)
	}
	return to
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
