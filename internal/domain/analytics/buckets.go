// Package analytics turns raw tracking events into the day-of-week and
// time-of-day summaries shown on the admin dashboard. Everything here is a
// pure function over an already-filtered event window; nothing is persisted.
package analytics

import "time"

// Bucket is one aggregation cell with summed counts and derived rates.
// Rates are percentages and are 0 (never NaN) when the denominator is 0.
type Bucket struct {
	Visitors       int
	Clicks         int
	Submits        int
	ClickRate      float64
	ConversionRate float64
	Opportunity    bool
}

func (b *Bucket) observe(kind EventKind) {
	switch kind {
	case KindPageView:
		b.Visitors++
	case KindAppointmentClick:
		b.Clicks++
	case KindFormSubmit:
		b.Submits++
	}
}

func (b *Bucket) deriveRates() {
	b.ClickRate = percentage(b.Clicks, b.Visitors)
	b.ConversionRate = percentage(b.Submits, b.Clicks)
}

func percentage(num, denom int) float64 {
	if denom == 0 {
		return 0
	}
	return float64(num) / float64(denom) * 100
}

// AggregateByDay groups events into 7 day-of-week buckets indexed by
// time.Weekday (Sunday = 0).
func AggregateByDay(events []Event) [7]Bucket {
	var buckets [7]Bucket
	for _, ev := range events {
		buckets[ev.OccurredAt.Weekday()].observe(ev.Kind)
	}
	for i := range buckets {
		buckets[i].deriveRates()
	}
	return buckets
}

// AggregateByDayAndSlot builds the 7x3 day-of-week by time-of-day grid.
// Events outside the morning/lunch/afternoon ranges are skipped.
func AggregateByDayAndSlot(events []Event) [7][SlotCount]Bucket {
	var grid [7][SlotCount]Bucket
	for _, ev := range events {
		slot, ok := SlotFor(ev.OccurredAt.Hour())
		if !ok {
			continue
		}
		grid[ev.OccurredAt.Weekday()][slot].observe(ev.Kind)
	}
	for day := range grid {
		for slot := range grid[day] {
			grid[day][slot].deriveRates()
		}
	}
	return grid
}

// MarkOpportunities flags low-traffic buckets for promotional display
// emphasis. A bucket is an opportunity when its visitor count falls below
// half the mean of its non-zero peers. Display-only; nothing acts on it.
func MarkOpportunities(buckets []*Bucket) {
	var total, nonZero int
	for _, b := range buckets {
		if b.Visitors > 0 {
			total += b.Visitors
			nonZero++
		}
	}
	if nonZero == 0 {
		return
	}
	threshold := float64(total) / float64(nonZero) / 2

	for _, b := range buckets {
		b.Opportunity = float64(b.Visitors) < threshold
	}
}

// TrendPoint is one cell of a daily/weekly/monthly trend chart.
type TrendPoint struct {
	Start    time.Time
	Visitors int
	Clicks   int
	Submits  int
}

// DailyTrend buckets the trailing `days` calendar days ending at `now` into
// per-day counts. Points are ordered oldest first and include empty days.
func DailyTrend(events []Event, now time.Time, days int) []TrendPoint {
	if days <= 0 {
		return nil
	}
	start := truncateDay(now).AddDate(0, 0, -(days - 1))

	points := make([]TrendPoint, days)
	for i := range points {
		points[i].Start = start.AddDate(0, 0, i)
	}

	for _, ev := range events {
		idx := daysBetween(start, truncateDay(ev.OccurredAt))
		if idx < 0 || idx >= days {
			continue
		}
		observePoint(&points[idx], ev.Kind)
	}
	return points
}

// WeeklyTrend buckets the trailing `weeks` weeks into per-week counts.
// Weeks start on Sunday, matching the day-of-week heatmap.
func WeeklyTrend(events []Event, now time.Time, weeks int) []TrendPoint {
	if weeks <= 0 {
		return nil
	}
	start := startOfWeek(now).AddDate(0, 0, -7*(weeks-1))

	points := make([]TrendPoint, weeks)
	for i := range points {
		points[i].Start = start.AddDate(0, 0, 7*i)
	}

	for _, ev := range events {
		idx := daysBetween(start, startOfWeek(ev.OccurredAt)) / 7
		if idx < 0 || idx >= weeks {
			continue
		}
		observePoint(&points[idx], ev.Kind)
	}
	return points
}

// MonthlyTrend buckets the trailing `months` calendar months into per-month
// counts.
func MonthlyTrend(events []Event, now time.Time, months int) []TrendPoint {
	if months <= 0 {
		return nil
	}
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)

	points := make([]TrendPoint, months)
	for i := range points {
		points[i].Start = start.AddDate(0, i, 0)
	}

	for _, ev := range events {
		t := ev.OccurredAt.In(now.Location())
		idx := monthsBetween(start, t)
		if idx < 0 || idx >= months {
			continue
		}
		observePoint(&points[idx], ev.Kind)
	}
	return points
}

func observePoint(p *TrendPoint, kind EventKind) {
	switch kind {
	case KindPageView:
		p.Visitors++
	case KindAppointmentClick:
		p.Clicks++
	case KindFormSubmit:
		p.Submits++
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfWeek(t time.Time) time.Time {
	d := truncateDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// daysBetween counts calendar days from a to b. Comparing UTC-rebuilt dates
// keeps the count exact across DST transitions, where a local day is not 24h.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua) / (24 * time.Hour))
}

func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
