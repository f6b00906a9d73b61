//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"pupperazi-api/internal/domain/appointment"
	"pupperazi-api/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() *clock.MockClock {
	return clock.NewMockClock(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
}

func newTestAppointment(t *testing.T, clk clock.Clock) *appointment.Appointment {
	t.Helper()
	appt, err := appointment.NewAppointment(
		clk,
		uuid.New(),
		uuid.New(),
		[]uuid.UUID{uuid.New()},
		clk.Now().Add(48*time.Hour),
		"first visit",
	)
	require.NoError(t, err)
	return appt
}

func TestNewAppointment(t *testing.T) {
	clk := fixedClock()

	t.Run("basic success case", func(t *testing.T) {
		appt := newTestAppointment(t, clk)

		assert.NotEqual(t, uuid.Nil, appt.ID())
		assert.Equal(t, appointment.StatusPending, appt.Status())
		assert.Equal(t, appt.CreatedAt(), appt.UpdatedAt())
	})

	t.Run("requires exactly one customer and one pet", func(t *testing.T) {
		_, err := appointment.NewAppointment(clk, uuid.Nil, uuid.New(), []uuid.UUID{uuid.New()}, clk.Now().Add(time.Hour), "")
		assert.ErrorIs(t, err, appointment.ErrMissingCustomer)

		_, err = appointment.NewAppointment(clk, uuid.New(), uuid.Nil, []uuid.UUID{uuid.New()}, clk.Now().Add(time.Hour), "")
		assert.ErrorIs(t, err, appointment.ErrMissingPet)
	})

	t.Run("requires at least one service", func(t *testing.T) {
		_, err := appointment.NewAppointment(clk, uuid.New(), uuid.New(), nil, clk.Now().Add(time.Hour), "")
		assert.ErrorIs(t, err, appointment.ErrNoServices)
	})

	t.Run("rejects duplicate services", func(t *testing.T) {
		svc := uuid.New()
		_, err := appointment.NewAppointment(clk, uuid.New(), uuid.New(), []uuid.UUID{svc, svc}, clk.Now().Add(time.Hour), "")
		assert.ErrorIs(t, err, appointment.ErrDuplicateServiceLine)
	})

	t.Run("rejects past start time", func(t *testing.T) {
		_, err := appointment.NewAppointment(clk, uuid.New(), uuid.New(), []uuid.UUID{uuid.New()}, clk.Now().Add(-time.Minute), "")
		assert.ErrorIs(t, err, appointment.ErrStartTimeInPast)
	})
}

func TestChangeStatus(t *testing.T) {
	cases := []struct {
		name  string
		path  []appointment.Status
		errIs error
	}{
		{name: "pending to confirmed", path: []appointment.Status{appointment.StatusConfirmed}},
		{name: "pending to cancelled", path: []appointment.Status{appointment.StatusCancelled}},
		{name: "confirmed to completed", path: []appointment.Status{appointment.StatusConfirmed, appointment.StatusCompleted}},
		{name: "confirmed to cancelled", path: []appointment.Status{appointment.StatusConfirmed, appointment.StatusCancelled}},
		{
			name:  "pending straight to completed",
			path:  []appointment.Status{appointment.StatusCompleted},
			errIs: appointment.ErrInvalidTransition,
		},
		{
			name:  "cancelled never moves again",
			path:  []appointment.Status{appointment.StatusCancelled, appointment.StatusConfirmed},
			errIs: appointment.ErrAlreadyTerminal,
		},
		{
			name:  "completed never moves again",
			path:  []appointment.Status{appointment.StatusConfirmed, appointment.StatusCompleted, appointment.StatusCancelled},
			errIs: appointment.ErrAlreadyTerminal,
		},
		{
			name:  "unknown status rejected",
			path:  []appointment.Status{appointment.Status("rescheduled")},
			errIs: appointment.ErrInvalidStatus,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clk := fixedClock()
			appt := newTestAppointment(t, clk)

			var err error
			for _, next := range tc.path {
				clk.Add(time.Minute)
				err = appt.ChangeStatus(clk, next)
				if err != nil {
					break
				}
			}

			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.path[len(tc.path)-1], appt.Status())
			assert.True(t, appt.UpdatedAt().After(appt.CreatedAt()))
		})
	}
}
