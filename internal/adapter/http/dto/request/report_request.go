package request

import (
	"strings"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/timeline"
)

// PeriodQuery is the query string shared by listings and reports.
type PeriodQuery struct {
	OrganizationID string `form:"organization_id"`
	From           string `form:"from"`
	To             string `form:"to"`
	Granularity    string `form:"granularity"`
}

func (q PeriodQuery) Range(loc *time.Location) (timeline.DateRange, error) {
	from, err := ParseDate(q.From, loc)
	if err != nil {
		return timeline.DateRange{}, err
	}
	to, err := ParseDate(q.To, loc)
	if err != nil {
		return timeline.DateRange{}, err
	}
	return timeline.DateRange{From: from, To: to}, nil
}

// CalendarRequestQuery selects the month of the calendar grid (YYYY-MM). An
// empty month means the current one.
type CalendarRequestQuery struct {
	OrganizationID string `form:"organization_id"`
	Month          string `form:"month"`
}

func (q CalendarRequestQuery) YearMonth(now time.Time) (int, time.Month, error) {
	m := strings.TrimSpace(q.Month)
	if m == "" {
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse(entities.MonthLayout, m)
	if err != nil {
		return 0, 0, ErrInvalidDate
	}
	return t.Year(), t.Month(), nil
}
