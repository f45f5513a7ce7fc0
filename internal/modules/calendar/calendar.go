// README: Month-grid projection of rentals into per-vehicle day spans.
package calendar

import (
	"time"

	"vanrent/internal/modules/fleet"
	"vanrent/internal/modules/rental"
)

// Month identifies a displayed calendar page. Navigation is a pure state
// transition over already-loaded data.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Contains reports whether t falls inside the displayed month, used to
// highlight today's column.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// DaysIn returns the number of days in the month (handles leap years).
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Span places one rental on the grid: inclusive 1-based day-of-month
// columns after clipping the rental to the month.
type Span struct {
	Rental   rental.Rental `json:"rental"`
	StartDay int           `json:"start_day"`
	EndDay   int           `json:"end_day"`
}

// Row is the grid line of one vehicle. Spans never collide because rentals
// of one vehicle cannot overlap.
type Row struct {
	Vehicle fleet.Vehicle `json:"vehicle"`
	Spans   []Span        `json:"spans"`
}

// Project clips every rental to the month window [first of month, last
// instant of month] and emits per-vehicle day spans. Rentals outside the
// month, and rentals referencing a vehicle missing from the snapshot, are
// omitted rather than failing the projection.
func Project(vehicles []fleet.Vehicle, rentals []rental.Rental, year int, month time.Month, loc *time.Location) []Row {
	if loc == nil {
		loc = time.Local
	}
	startOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	endOfMonth := time.Date(year, month, DaysIn(year, month), 23, 59, 59, 0, loc)

	rows := make([]Row, 0, len(vehicles))
	for _, v := range vehicles {
		row := Row{Vehicle: v, Spans: []Span{}}
		for _, r := range rentals {
			if r.VehicleID != v.ID {
				continue
			}
			if r.EndAt.Before(startOfMonth) || r.StartAt.After(endOfMonth) {
				continue
			}
			effectiveStart := r.StartAt
			if effectiveStart.Before(startOfMonth) {
				effectiveStart = startOfMonth
			}
			effectiveEnd := r.EndAt
			if effectiveEnd.After(endOfMonth) {
				effectiveEnd = endOfMonth
			}
			row.Spans = append(row.Spans, Span{
				Rental:   r,
				StartDay: effectiveStart.In(loc).Day(),
				EndDay:   effectiveEnd.In(loc).Day(),
			})
		}
		rows = append(rows, row)
	}
	return rows
}
