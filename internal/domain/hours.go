package domain

import (
	"fmt"
	"sort"
	"time"
)

// WorkingHoursStatus is the computed live open/closed state of a place.
type WorkingHoursStatus struct {
	IsOpenNow      bool    `json:"is_open_now"`
	StatusText     string  `json:"status_text"`
	NextChangeTime *string `json:"next_change_time"`
}

const (
	statusOpen   = "Open"
	statusClosed = "Closed"
)

// WorkingHoursStatus evaluates the place's opening hours against the given
// wall-clock time. Every entry for today is considered, in open-time order:
// the place is open if any span contains now; otherwise the next upcoming
// open time today yields an "Opens at HH:MM" status; otherwise it is closed
// with no next-change time.
func (p *Place) WorkingHoursStatus(now time.Time) WorkingHoursStatus {
	status := WorkingHoursStatus{
		IsOpenNow:  false,
		StatusText: statusClosed,
	}

	// time.Weekday counts from Sunday, opening hours from Monday.
	today := (int(now.Weekday()) + 6) % 7
	clock := now.Format("15:04")

	todays := make([]OpeningHour, 0, 2)
	for _, h := range p.OpenTimes {
		if h.DayOfWeek == today {
			todays = append(todays, h)
		}
	}
	if len(todays) == 0 {
		return status
	}
	sort.Slice(todays, func(i, j int) bool { return todays[i].Open < todays[j].Open })

	for _, h := range todays {
		if h.Contains(clock) {
			closeAt := h.Close
			status.IsOpenNow = true
			status.StatusText = statusOpen
			status.NextChangeTime = &closeAt
			return status
		}
	}

	for _, h := range todays {
		if clock < h.Open {
			openAt := h.Open
			status.StatusText = fmt.Sprintf("Opens at %s", openAt)
			status.NextChangeTime = &openAt
			return status
		}
	}

	return status
}
