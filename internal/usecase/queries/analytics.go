package queries

import (
	"context"
	"time"

	"pupperazi-api/internal/domain/analytics"
	"pupperazi-api/internal/pkg/clock"
)

const (
	dashboardWindowDays = 30
	trendDays           = 14
	trendWeeks          = 8
	trendMonths         = 6
)

// DayBucketView is one dashboard heatmap cell.
type DayBucketView struct {
	Day            string
	Visitors       int
	Clicks         int
	Submits        int
	ClickRate      float64
	ConversionRate float64
	Opportunity    bool
}

type SlotBucketView struct {
	Day            string
	Slot           string
	Visitors       int
	Clicks         int
	Submits        int
	ClickRate      float64
	ConversionRate float64
	Opportunity    bool
}

type TrendPointView struct {
	Start    time.Time
	Visitors int
	Clicks   int
	Submits  int
}

// DashboardView is recomputed from raw event rows on every request; no
// aggregate is ever persisted.
type DashboardView struct {
	Days []DayBucketView
	Grid []SlotBucketView
}

type TrendsView struct {
	Daily   []TrendPointView
	Weekly  []TrendPointView
	Monthly []TrendPointView
}

type EventReadStore interface {
	// EventsSince returns raw events with OccurredAt >= since, oldest first.
	EventsSince(ctx context.Context, since time.Time) ([]analytics.Event, error)
}

type AnalyticsQueries interface {
	GetDashboard(ctx context.Context) (*DashboardView, error)
	GetTrends(ctx context.Context) (*TrendsView, error)
}

type analyticsQueriesImpl struct {
	readStore EventReadStore
	clock     clock.Clock
}

func NewAnalyticsQueries(readStore EventReadStore, clock clock.Clock) AnalyticsQueries {
	return &analyticsQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

func (q *analyticsQueriesImpl) GetDashboard(ctx context.Context) (*DashboardView, error) {
	now := q.clock.Now()
	events, err := q.readStore.EventsSince(ctx, now.AddDate(0, 0, -dashboardWindowDays))
	if err != nil {
		return nil, err
	}

	dayBuckets := analytics.AggregateByDay(events)
	grid := analytics.AggregateByDayAndSlot(events)

	markDayOpportunities(&dayBuckets)
	markGridOpportunities(&grid)

	view := &DashboardView{
		Days: make([]DayBucketView, 0, len(dayBuckets)),
		Grid: make([]SlotBucketView, 0, len(dayBuckets)*analytics.SlotCount),
	}
	for day := time.Sunday; day <= time.Saturday; day++ {
		b := dayBuckets[day]
		view.Days = append(view.Days, DayBucketView{
			Day:            day.String(),
			Visitors:       b.Visitors,
			Clicks:         b.Clicks,
			Submits:        b.Submits,
			ClickRate:      b.ClickRate,
			ConversionRate: b.ConversionRate,
			Opportunity:    b.Opportunity,
		})
		for slot := analytics.SlotMorning; slot < analytics.SlotCount; slot++ {
			g := grid[day][slot]
			view.Grid = append(view.Grid, SlotBucketView{
				Day:            day.String(),
				Slot:           slot.String(),
				Visitors:       g.Visitors,
				Clicks:         g.Clicks,
				Submits:        g.Submits,
				ClickRate:      g.ClickRate,
				ConversionRate: g.ConversionRate,
				Opportunity:    g.Opportunity,
			})
		}
	}
	return view, nil
}

func (q *analyticsQueriesImpl) GetTrends(ctx context.Context) (*TrendsView, error) {
	now := q.clock.Now()
	// Months is the widest trailing window, so one load covers all three series.
	events, err := q.readStore.EventsSince(ctx, now.AddDate(0, -trendMonths, 0))
	if err != nil {
		return nil, err
	}

	return &TrendsView{
		Daily:   toTrendViews(analytics.DailyTrend(events, now, trendDays)),
		Weekly:  toTrendViews(analytics.WeeklyTrend(events, now, trendWeeks)),
		Monthly: toTrendViews(analytics.MonthlyTrend(events, now, trendMonths)),
	}, nil
}

func markDayOpportunities(buckets *[7]analytics.Bucket) {
	refs := make([]*analytics.Bucket, len(buckets))
	for i := range buckets {
		refs[i] = &buckets[i]
	}
	analytics.MarkOpportunities(refs)
}

func markGridOpportunities(grid *[7][analytics.SlotCount]analytics.Bucket) {
	refs := make([]*analytics.Bucket, 0, len(grid)*analytics.SlotCount)
	for day := range grid {
		for slot := range grid[day] {
			refs = append(refs, &grid[day][slot])
		}
	}
	analytics.MarkOpportunities(refs)
}

func toTrendViews(points []analytics.TrendPoint) []TrendPointView {
	views := make([]TrendPointView, len(points))
	for i, p := range points {
		views[i] = TrendPointView{
			Start:    p.Start,
			Visitors: p.Visitors,
			Clicks:   p.Clicks,
			Submits:  p.Submits,
		}
	}
	return views
}
