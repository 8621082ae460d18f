package pkg

import "time"

// StartOfISOWeek returns the Monday 00:00 of the week the given date falls in.
// All weekly keys (summaries, weight entries) must be normalized through this
// before storage or lookup, otherwise the (user, week) uniqueness breaks.
func StartOfISOWeek(t time.Time) time.Time {
	t = DateOnly(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		// time.Sunday is 0, but our weeks end with Sunday
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// EndOfISOWeek returns the Sunday 00:00 of the week the given date falls in.
func EndOfISOWeek(t time.Time) time.Time {
	return StartOfISOWeek(t).AddDate(0, 0, 6)
}

// DateOnly truncates a timestamp to midnight UTC of the same calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func StartOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func EndOfMonth(year int, month time.Month) time.Time {
	return StartOfMonth(year, month).AddDate(0, 1, -1)
}

// ISOWeeksInRange returns the Mondays of all weeks overlapping [from, to].
func ISOWeeksInRange(from, to time.Time) []time.Time {
	var mondays []time.Time
	for monday := StartOfISOWeek(from); !monday.After(to); monday = monday.AddDate(0, 0, 7) {
		mondays = append(mondays, monday)
	}
	return mondays
}
