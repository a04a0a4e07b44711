// Package analytics implements the ingestion recorder, the dashboard
// aggregator and the alert generator.
package analytics

import "time"

// isoWeek returns the ISO-8601 week number and ISO year for t, computed from
// UTC date components. Dates near a year transition are attributed to the
// correct ISO year: Dec 31 falling in week 1 belongs to the following year.
func isoWeek(t time.Time) (week, year int) {
	year, week = t.UTC().ISOWeek()
	return week, year
}

// trendWindow returns the inclusive ISO-week range covering the current week
// and the three prior, clamped at week 1. The window never reaches into the
// previous ISO year; early-January weeks therefore see a shortened window.
func trendWindow(now time.Time) (fromWeek, toWeek, year int) {
	toWeek, year = isoWeek(now)
	fromWeek = toWeek - 3
	if fromWeek < 1 {
		fromWeek = 1
	}
	return fromWeek, toWeek, year
}
