// Package pricing classifies calendar dates into fare-display price
// categories. Dates within the holiday buffer are expensive, weekends
// are normal, plain weekdays are cheap.
package pricing

import "time"

type Category string

const (
	Cheap     Category = "cheap"
	Normal    Category = "normal"
	Expensive Category = "expensive"
)

// U.S. federal holidays for the covered years.
var usHolidays = []string{
	"2025-01-01", // New Year's Day
	"2025-01-20", // Martin Luther King Jr. Day
	"2025-02-17", // Presidents' Day
	"2025-05-26", // Memorial Day
	"2025-07-04", // Independence Day
	"2025-09-01", // Labor Day
	"2025-10-13", // Columbus Day
	"2025-11-11", // Veterans Day
	"2025-11-27", // Thanksgiving
	"2025-12-25", // Christmas Day
	"2026-01-01", // New Year's Day
	"2026-01-19", // Martin Luther King Jr. Day
	"2026-02-16", // Presidents' Day
	"2026-05-25", // Memorial Day
	"2026-07-04", // Independence Day
	"2026-09-07", // Labor Day
	"2026-10-12", // Columbus Day
	"2026-11-11", // Veterans Day
	"2026-11-26", // Thanksgiving
	"2026-12-25", // Christmas Day
}

// Days on each side of a holiday that still count as expensive.
const holidayBufferDays = 4

var holidayDates = func() []time.Time {
	dates := make([]time.Time, len(usHolidays))
	for i, s := range usHolidays {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			panic("pricing: bad holiday date " + s)
		}
		dates[i] = t
	}
	return dates
}()

// midnight truncates a timestamp to its calendar date in UTC so that
// distances between days come out in whole days regardless of
// time-of-day or zone offset on the input.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isNearHoliday(t time.Time) bool {
	day := midnight(t)
	for _, holiday := range holidayDates {
		diff := day.Sub(holiday)
		if diff < 0 {
			diff = -diff
		}
		if diff <= holidayBufferDays*24*time.Hour {
			return true
		}
	}
	return false
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Classify returns the price category for a calendar date. First match
// wins: near-holiday, then weekend, then weekday.
func Classify(t time.Time) Category {
	if isNearHoliday(t) {
		return Expensive
	}
	if isWeekend(t) {
		return Normal
	}
	return Cheap
}

// ClassifyDates classifies a batch of dates, keyed by ISO date string.
func ClassifyDates(dates []time.Time) map[string]Category {
	result := make(map[string]Category, len(dates))
	for _, d := range dates {
		result[d.Format("2006-01-02")] = Classify(d)
	}
	return result
}

// ClassifyRange classifies every date from start to end inclusive.
func ClassifyRange(start, end time.Time) map[string]Category {
	var dates []time.Time
	for d := midnight(start); !d.After(midnight(end)); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return ClassifyDates(dates)
}
