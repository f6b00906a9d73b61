package analytics

import "time"

type EventKind string

const (
	KindPageView         EventKind = "page_view"
	KindAppointmentClick EventKind = "appointment_click"
	KindFormOpen         EventKind = "form_open"
	KindFormStart        EventKind = "form_start"
	KindFormSubmit       EventKind = "form_submit"
	KindFormAbandon      EventKind = "form_abandon"
)

func (k EventKind) IsValid() bool {
	switch k {
	case KindPageView, KindAppointmentClick, KindFormOpen, KindFormStart, KindFormSubmit, KindFormAbandon:
		return true
	default:
		return false
	}
}

// Event is one raw tracking row. VisitorID is an opaque browser identifier
// set by the frontend beacon.
type Event struct {
	Kind       EventKind
	VisitorID  string
	Page       string
	OccurredAt time.Time
}

// Slot is a fixed time-of-day range used by the dashboard heatmap. Events
// outside all three ranges are ignored for slot grids.
type Slot int

const (
	SlotMorning   Slot = iota // 8-11
	SlotLunch                 // 11-14
	SlotAfternoon             // 14-18

	SlotCount = 3
)

func (s Slot) String() string {
	switch s {
	case SlotMorning:
		return "morning"
	case SlotLunch:
		return "lunch"
	case SlotAfternoon:
		return "afternoon"
	default:
		return "unknown"
	}
}

// SlotFor maps an hour of day to its slot. ok is false outside business-relevant
// hours.
func SlotFor(hour int) (Slot, bool) {
	switch {
	case hour >= 8 && hour < 11:
		return SlotMorning, true
	case hour >= 11 && hour < 14:
		return SlotLunch, true
	case hour >= 14 && hour < 18:
		return SlotAfternoon, true
	default:
		return 0, false
	}
}
