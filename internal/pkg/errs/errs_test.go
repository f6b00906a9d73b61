//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"pupperazi-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errors.New("sentinel")

func TestMark_MatchesSentinelWithErrorsIs(t *testing.T) {
	cause := errs.New("query failed")
	err := errs.Mark(cause, errSentinel)

	assert.ErrorIs(t, err, errSentinel)
	assert.ErrorIs(t, err, cause)
}

func TestMark_PreservesCauseMessage(t *testing.T) {
	cause := errs.New("query failed")
	err := errs.Mark(cause, errSentinel)

	assert.Equal(t, cause.Error(), err.Error())
}

func TestMark_SurvivesFurtherWrapping(t *testing.T) {
	err := errs.Wrap(errs.Mark(errs.New("query failed"), errSentinel), "change status")

	assert.ErrorIs(t, err, errSentinel)
	assert.Contains(t, err.Error(), "change status")
}

func TestMark_NilCauseReturnsMark(t *testing.T) {
	err := errs.Mark(nil, errSentinel)

	assert.Equal(t, errSentinel, err)
}
