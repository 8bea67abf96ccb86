package timeline

import (
	"time"

	"gestao_servicos/internal/domain/entities"
)

// DateRange is an inclusive window of calendar dates. A zero bound is open.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Contains compares calendar dates only.
func (r DateRange) Contains(t time.Time) bool {
	d := Day(t, time.UTC)
	if !r.From.IsZero() && d.Before(Day(r.From, time.UTC)) {
		return false
	}
	if !r.To.IsZero() && d.After(Day(r.To, time.UTC)) {
		return false
	}
	return true
}

// Filter keeps the services dated inside the range. Undated services only pass
// an open range.
func (r DateRange) Filter(services []entities.Service) []entities.Service {
	if r.IsZero() {
		return services
	}
	out := make([]entities.Service, 0, len(services))
	for _, s := range services {
		if !s.Date.IsZero() && r.Contains(s.Date) {
			out = append(out, s)
		}
	}
	return out
}
