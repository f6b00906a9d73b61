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

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches a reference error to err's chain without altering err's
// message. The result matches both err and markErr under errors.Is.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{cause: err, mark: markErr}
}

type marked struct {
	cause error
	mark  error
}

func (m *marked) Error() string { return m.cause.Error() }

func (m *marked) Unwrap() []error { return []error{m.cause, m.mark} }

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
