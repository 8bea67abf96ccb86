package timeline

import (
	"time"

	"gestao_servicos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Bucket is one point of a chart series.
type Bucket struct {
	Key          string          `json:"key"`
	Start        time.Time       `json:"start"`
	Count        int             `json:"count"`
	GrossRevenue decimal.Decimal `json:"gross_revenue"`
	Costs        decimal.Decimal `json:"costs"`
	Taxes        decimal.Decimal `json:"taxes"`
	NetProfit    decimal.Decimal `json:"net_profit"`
}

// TimeSeries buckets services from the earliest service date up to today.
//
// The series never has gaps: every day (or month) in the range is emitted, empty
// ones as zero buckets. Longer spans keep only the most recent MaxDayBuckets days
// (MaxMonthBuckets months); older services are left out. No services, or only
// future ones, yield a single zero bucket for today.
func TimeSeries(services []entities.Service, now time.Time, loc *time.Location, g Granularity) []Bucket {
	if g == GranularityMonth {
		return monthSeries(services, now, loc)
	}
	return daySeries(services, now, loc)
}

func daySeries(services []entities.Service, now time.Time, loc *time.Location) []Bucket {
	today := Today(now, loc)
	start := today
	if earliest, ok := earliestDay(services, loc); ok && earliest.Before(today) {
		start = earliest
	}
	if daysBetween(start, today)+1 > MaxDayBuckets {
		start = today.AddDate(0, 0, -(MaxDayBuckets - 1))
	}

	n := daysBetween(start, today) + 1
	buckets := make([]Bucket, n)
	index := make(map[string]int, n)
	for i := 0; i < n; i++ {
		d := start.AddDate(0, 0, i)
		buckets[i] = Bucket{Key: dayKey(d), Start: d}
		index[buckets[i].Key] = i
	}

	for _, s := range services {
		if s.Date.IsZero() {
			continue
		}
		if i, ok := index[dayKey(Day(s.Date, loc))]; ok {
			add(&buckets[i], s)
		}
	}
	return finish(buckets)
}

func monthSeries(services []entities.Service, now time.Time, loc *time.Location) []Bucket {
	current := monthOf(Today(now, loc))
	start := current
	if earliest, ok := earliestDay(services, loc); ok && monthOf(earliest).Before(current) {
		start = monthOf(earliest)
	}
	if monthsBetween(start, current)+1 > MaxMonthBuckets {
		start = current.AddDate(0, -(MaxMonthBuckets - 1), 0)
	}

	n := monthsBetween(start, current) + 1
	buckets := make([]Bucket, n)
	index := make(map[string]int, n)
	for i := 0; i < n; i++ {
		m := start.AddDate(0, i, 0)
		buckets[i] = Bucket{Key: monthKey(m), Start: m}
		index[buckets[i].Key] = i
	}

	for _, s := range services {
		if s.Date.IsZero() {
			continue
		}
		if i, ok := index[monthKey(Day(s.Date, loc))]; ok {
			add(&buckets[i], s)
		}
	}
	return finish(buckets)
}

func earliestDay(services []entities.Service, loc *time.Location) (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, s := range services {
		if s.Date.IsZero() {
			continue
		}
		d := Day(s.Date, loc)
		if !found || d.Before(earliest) {
			earliest = d
			found = true
		}
	}
	return earliest, found
}

func add(b *Bucket, s entities.Service) {
	b.Count++
	b.GrossRevenue = b.GrossRevenue.Add(s.GrossValue)
	b.Costs = b.Costs.Add(s.OperationalCost)
	b.Taxes = b.Taxes.Add(s.TaxAmount)
}

func finish(buckets []Bucket) []Bucket {
	for i := range buckets {
		b := &buckets[i]
		b.NetProfit = round(b.GrossRevenue.Sub(b.Costs).Sub(b.Taxes))
		b.GrossRevenue = round(b.GrossRevenue)
		b.Costs = round(b.Costs)
		b.Taxes = round(b.Taxes)
	}
	return buckets
}
