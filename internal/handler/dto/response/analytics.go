package response

import (
	"time"

	"pupperazi-api/internal/usecase/queries"
)

type DayBucketResponse struct {
	Day            string  `json:"day"`
	Visitors       int     `json:"visitors"`
	Clicks         int     `json:"clicks"`
	Submits        int     `json:"submits"`
	ClickRate      float64 `json:"clickRate"`
	ConversionRate float64 `json:"conversionRate"`
	Opportunity    bool    `json:"opportunity"`
}

type SlotBucketResponse struct {
	Day            string  `json:"day"`
	Slot           string  `json:"slot"`
	Visitors       int     `json:"visitors"`
	Clicks         int     `json:"clicks"`
	Submits        int     `json:"submits"`
	ClickRate      float64 `json:"clickRate"`
	ConversionRate float64 `json:"conversionRate"`
	Opportunity    bool    `json:"opportunity"`
}

type DashboardResponse struct {
	Days []DayBucketResponse  `json:"days"`
	Grid []SlotBucketResponse `json:"grid"`
}

func FromDashboardView(view *queries.DashboardView) *DashboardResponse {
	resp := &DashboardResponse{
		Days: make([]DayBucketResponse, len(view.Days)),
		Grid: make([]SlotBucketResponse, len(view.Grid)),
	}
	for i, d := range view.Days {
		resp.Days[i] = DayBucketResponse{
			Day:            d.Day,
			Visitors:       d.Visitors,
			Clicks:         d.Clicks,
			Submits:        d.Submits,
			ClickRate:      d.ClickRate,
			ConversionRate: d.ConversionRate,
			Opportunity:    d.Opportunity,
		}
	}
	for i, g := range view.Grid {
		resp.Grid[i] = SlotBucketResponse{
			Day:            g.Day,
			Slot:           g.Slot,
			Visitors:       g.Visitors,
			Clicks:         g.Clicks,
			Submits:        g.Submits,
			ClickRate:      g.ClickRate,
			ConversionRate: g.ConversionRate,
			Opportunity:    g.Opportunity,
		}
	}
	return resp
}

type TrendPointResponse struct {
	Start    time.Time `json:"start"`
	Visitors int       `json:"visitors"`
	Clicks   int       `json:"clicks"`
	Submits  int       `json:"submits"`
}

type TrendsResponse struct {
	Daily   []TrendPointResponse `json:"daily"`
	Weekly  []TrendPointResponse `json:"weekly"`
	Monthly []TrendPointResponse `json:"monthly"`
}

func FromTrendsView(view *queries.TrendsView) *TrendsResponse {
	return &TrendsResponse{
		Daily:   trendPoints(view.Daily),
		Weekly:  trendPoints(view.Weekly),
		Monthly: trendPoints(view.Monthly),
	}
}

func trendPoints(points []queries.TrendPointView) []TrendPointResponse {
	out := make([]TrendPointResponse, len(points))
	for i, p := range points {
		out[i] = TrendPointResponse{
			Start:    p.Start,
			Visitors: p.Visitors,
			Clicks:   p.Clicks,
			Submits:  p.Submits,
		}
	}
	return out
}
