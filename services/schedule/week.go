// File: services/schedule/week.go
package schedule

import (
	"fmt"
	"time"

	"shiftmanager/models"
)

const dayKeyLayout = "2006-01-02"

// WeekBoundsFor computes the Monday..Sunday window containing the reference
// date, normalised to midnight UTC. ISO semantics: a Sunday reference belongs
// to the week that started the previous Monday.
func WeekBoundsFor(reference time.Time) models.WeekWindow {
	day := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, time.UTC)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset = 6
	}
	start := day.AddDate(0, 0, -offset)
	return models.WeekWindow{Start: start, End: start.AddDate(0, 0, 6)}
}

// DaysOf expands the window into its 7 calendar dates, ascending.
func DaysOf(window models.WeekWindow) []time.Time {
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = window.Start.AddDate(0, 0, i)
	}
	return days
}

// DayKey formats a date as the YYYY-MM-DD key used by the board and the
// backend wire format.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// FormatWeekRange renders the window header line, e.g.
// "Monday, 2 June, 2025 - Sunday, 8 June, 2025".
func FormatWeekRange(window models.WeekWindow) string {
	const layout = "Monday, 2 January, 2006"
	return fmt.Sprintf("%s - %s", window.Start.Format(layout), window.End.Format(layout))
}
