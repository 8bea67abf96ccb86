// Package timeline groups services into calendar-day and month buckets for the
// calendar view and the dashboard charts.
//
// Bucket keys are calendar dates at midnight in the caller's location, so a
// service's date matches its bucket regardless of any time-of-day component.
package timeline

import (
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/finance"

	"github.com/shopspring/decimal"
)

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

const (
	// CalendarSlots is a 6 week x 7 day display grid.
	CalendarSlots = 42
	// MaxDayBuckets caps the daily series to the most recent week.
	MaxDayBuckets = 7
	// MaxMonthBuckets caps the monthly series to the most recent year.
	MaxMonthBuckets = 12
)

func ParseGranularity(v string) (Granularity, error) {
	switch Granularity(v) {
	case "", GranularityDay:
		return GranularityDay, nil
	case GranularityMonth:
		return GranularityMonth, nil
	default:
		return "", entities.ErrValidation
	}
}

// Day returns the calendar date of t at midnight in loc. The year, month and
// day of t are taken as-is, without converting t into loc.
func Day(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Today returns the current calendar date in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	return Day(now.In(loc), loc)
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b, ignoring DST offsets.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

func dayKey(t time.Time) string {
	return t.Format(entities.DateLayout)
}

func monthKey(t time.Time) string {
	return t.Format(entities.MonthLayout)
}

func round(v decimal.Decimal) decimal.Decimal {
	return finance.Round2(v)
}
