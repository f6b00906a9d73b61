//go:build unit

package analytics_test

import (
	"testing"
	"time"

	"pupperazi-api/internal/domain/analytics"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tuesday June 3 2025.
var tuesday = time.Date(2025, 6, 3, 9, 30, 0, 0, time.UTC)

func eventsOn(t time.Time, kind analytics.EventKind, n int) []analytics.Event {
	evs := make([]analytics.Event, n)
	for i := range evs {
		evs[i] = analytics.Event{Kind: kind, VisitorID: "v", OccurredAt: t}
	}
	return evs
}

func TestAggregateByDay(t *testing.T) {
	t.Run("computes rates per weekday", func(t *testing.T) {
		var events []analytics.Event
		events = append(events, eventsOn(tuesday, analytics.KindPageView, 10)...)
		events = append(events, eventsOn(tuesday, analytics.KindAppointmentClick, 2)...)
		events = append(events, eventsOn(tuesday, analytics.KindFormSubmit, 1)...)

		buckets := analytics.AggregateByDay(events)

		expected := analytics.Bucket{
			Visitors:       10,
			Clicks:         2,
			Submits:        1,
			ClickRate:      20.0,
			ConversionRate: 50.0,
		}
		if diff := cmp.Diff(expected, buckets[time.Tuesday]); diff != "" {
			t.Errorf("Bucket mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("zero denominators produce zero rates", func(t *testing.T) {
		buckets := analytics.AggregateByDay(nil)

		sun := buckets[time.Sunday]
		assert.Zero(t, sun.Visitors)
		assert.Zero(t, sun.ClickRate)
		assert.Zero(t, sun.ConversionRate)
	})

	t.Run("clicks without visitors still rate 0 click rate denominator", func(t *testing.T) {
		events := eventsOn(tuesday, analytics.KindAppointmentClick, 3)

		buckets := analytics.AggregateByDay(events)
		assert.Zero(t, buckets[time.Tuesday].ClickRate)
		assert.Equal(t, 3, buckets[time.Tuesday].Clicks)
	})

	t.Run("form lifecycle events do not count as visits", func(t *testing.T) {
		var events []analytics.Event
		events = append(events, eventsOn(tuesday, analytics.KindFormOpen, 4)...)
		events = append(events, eventsOn(tuesday, analytics.KindFormAbandon, 2)...)

		buckets := analytics.AggregateByDay(events)
		assert.Zero(t, buckets[time.Tuesday].Visitors)
	})
}

func TestAggregateByDayAndSlot(t *testing.T) {
	morning := time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC)
	lunch := time.Date(2025, 6, 3, 13, 59, 0, 0, time.UTC)
	afternoon := time.Date(2025, 6, 3, 17, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 3, 19, 0, 0, 0, time.UTC)

	var events []analytics.Event
	events = append(events, eventsOn(morning, analytics.KindPageView, 5)...)
	events = append(events, eventsOn(lunch, analytics.KindPageView, 3)...)
	events = append(events, eventsOn(afternoon, analytics.KindAppointmentClick, 1)...)
	events = append(events, eventsOn(evening, analytics.KindPageView, 9)...) // outside all slots

	grid := analytics.AggregateByDayAndSlot(events)

	assert.Equal(t, 5, grid[time.Tuesday][analytics.SlotMorning].Visitors)
	assert.Equal(t, 3, grid[time.Tuesday][analytics.SlotLunch].Visitors)
	assert.Equal(t, 1, grid[time.Tuesday][analytics.SlotAfternoon].Clicks)

	var total int
	for day := range grid {
		for slot := range grid[day] {
			total += grid[day][slot].Visitors
		}
	}
	assert.Equal(t, 8, total, "evening events must be ignored")
}

func TestSlotFor(t *testing.T) {
	cases := []struct {
		hour int
		slot analytics.Slot
		ok   bool
	}{
		{hour: 7, ok: false},
		{hour: 8, slot: analytics.SlotMorning, ok: true},
		{hour: 10, slot: analytics.SlotMorning, ok: true},
		{hour: 11, slot: analytics.SlotLunch, ok: true},
		{hour: 13, slot: analytics.SlotLunch, ok: true},
		{hour: 14, slot: analytics.SlotAfternoon, ok: true},
		{hour: 17, slot: analytics.SlotAfternoon, ok: true},
		{hour: 18, ok: false},
		{hour: 23, ok: false},
	}

	for _, tc := range cases {
		slot, ok := analytics.SlotFor(tc.hour)
		assert.Equal(t, tc.ok, ok, "hour %d", tc.hour)
		if tc.ok {
			assert.Equal(t, tc.slot, slot, "hour %d", tc.hour)
		}
	}
}

func TestMarkOpportunities(t *testing.T) {
	t.Run("flags buckets below half the mean of non-zero peers", func(t *testing.T) {
		buckets := []*analytics.Bucket{
			{Visitors: 100},
			{Visitors: 90},
			{Visitors: 110},
			{Visitors: 10},
		}
		// mean of non-zero = 77.5, threshold 38.75
		analytics.MarkOpportunities(buckets)

		assert.False(t, buckets[0].Opportunity)
		assert.False(t, buckets[1].Opportunity)
		assert.False(t, buckets[2].Opportunity)
		assert.True(t, buckets[3].Opportunity)
	})

	t.Run("all-zero buckets are left unflagged", func(t *testing.T) {
		buckets := []*analytics.Bucket{{}, {}, {}}
		analytics.MarkOpportunities(buckets)
		for _, b := range buckets {
			assert.False(t, b.Opportunity)
		}
	})
}

func TestDailyTrend(t *testing.T) {
	now := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)

	var events []analytics.Event
	events = append(events, eventsOn(now.AddDate(0, 0, -1), analytics.KindPageView, 4)...)
	events = append(events, eventsOn(now, analytics.KindFormSubmit, 2)...)
	events = append(events, eventsOn(now.AddDate(0, 0, -20), analytics.KindPageView, 99)...) // outside window

	points := analytics.DailyTrend(events, now, 14)
	require.Len(t, points, 14)

	assert.Equal(t, 4, points[12].Visitors)
	assert.Equal(t, 2, points[13].Submits)

	var total int
	for _, p := range points {
		total += p.Visitors
	}
	assert.Equal(t, 4, total)

	assert.True(t, points[0].Start.Before(points[13].Start))
	assert.Equal(t, now.AddDate(0, 0, -13).Day(), points[0].Start.Day())
}

func TestDailyTrendAcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// The window spans the 2025-03-09 spring-forward, a 23-hour local day.
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, loc)
	events := eventsOn(time.Date(2025, 3, 14, 9, 0, 0, 0, loc), analytics.KindPageView, 4)

	points := analytics.DailyTrend(events, now, 14)
	require.Len(t, points, 14)

	assert.Equal(t, 14, points[12].Start.Day())
	assert.Equal(t, 4, points[12].Visitors)

	// Same window, weekly granularity: the event belongs to the week of
	// March 9, not the one before it.
	weekly := analytics.WeeklyTrend(events, now, 2)
	require.Len(t, weekly, 2)
	assert.Equal(t, 4, weekly[1].Visitors)
	assert.Equal(t, 0, weekly[0].Visitors)
}

func TestWeeklyTrend(t *testing.T) {
	// Saturday, so the current week started Sunday June 8.
	now := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)

	var events []analytics.Event
	events = append(events, eventsOn(time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC), analytics.KindPageView, 3)...)  // this week
	events = append(events, eventsOn(time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC), analytics.KindPageView, 7)...)  // last week
	events = append(events, eventsOn(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), analytics.KindPageView, 50)...) // far outside

	points := analytics.WeeklyTrend(events, now, 8)
	require.Len(t, points, 8)

	assert.Equal(t, 3, points[7].Visitors)
	assert.Equal(t, 7, points[6].Visitors)
	assert.Equal(t, time.Sunday, points[0].Start.Weekday())
}

func TestMonthlyTrend(t *testing.T) {
	now := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)

	var events []analytics.Event
	events = append(events, eventsOn(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), analytics.KindPageView, 2)...)
	events = append(events, eventsOn(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), analytics.KindAppointmentClick, 5)...)
	events = append(events, eventsOn(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), analytics.KindPageView, 9)...) // outside

	points := analytics.MonthlyTrend(events, now, 6)
	require.Len(t, points, 6)

	assert.Equal(t, 2, points[5].Visitors)
	assert.Equal(t, 5, points[0].Clicks)
	assert.Equal(t, time.January, points[0].Start.Month())
}
