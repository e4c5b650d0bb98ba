// Package calendar builds the month grids used by the diary and the todo
// reschedule pages. It has no dependencies beyond time and is deterministic.
package calendar

import "time"

// Rows is the fixed number of week rows in a rendered month.
const Rows = 6

// Grid is a Sunday-first month layout. Cells hold the day of month, or 0 for
// cells outside the month. Prev/Next identify the adjacent months for
// navigation links.
type Grid struct {
	Year  int
	Month time.Month
	Weeks [Rows][7]int

	PrevYear  int
	PrevMonth time.Month
	NextYear  int
	NextMonth time.Month
}

// MonthGrid lays out the given month. The caller is responsible for
// validating the year range; any month value is normalized by time.Date.
func MonthGrid(year int, month time.Month) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	prev := first.AddDate(0, 0, -1)
	next := first.AddDate(0, 1, 0)

	g := Grid{
		Year:      first.Year(),
		Month:     first.Month(),
		PrevYear:  prev.Year(),
		PrevMonth: prev.Month(),
		NextYear:  next.Year(),
		NextMonth: next.Month(),
	}

	// Sunday == 0, so Weekday is directly the leading blank count.
	offset := int(first.Weekday())
	daysInMonth := next.AddDate(0, 0, -1).Day()

	for day := 1; day <= daysInMonth; day++ {
		cell := offset + day - 1
		g.Weeks[cell/7][cell%7] = day
	}
	return g
}
