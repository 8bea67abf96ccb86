package timeline

import (
	"time"

	"gestao_servicos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CalendarDay is one slot of the month grid. Slots borrowed from the previous
// or next month are never aggregated.
type CalendarDay struct {
	Date       string          `json:"date"`
	InMonth    bool            `json:"in_month"`
	Count      int             `json:"count"`
	GrossValue decimal.Decimal `json:"gross_value"`
	HasInvoice bool            `json:"has_invoice"`
	HasPaid    bool            `json:"has_paid"`
	HasPending bool            `json:"has_pending"`
	ServiceIDs []string        `json:"service_ids"`
}

// CalendarGrid lays the given month out in CalendarSlots days, weeks starting
// on Sunday: leading days of the previous month, the whole month, then days of
// the next month up to the last slot.
func CalendarGrid(year int, month time.Month, services []entities.Service, loc *time.Location) []CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))

	byDay := make(map[string][]entities.Service)
	for _, s := range services {
		if s.Date.IsZero() {
			continue
		}
		d := Day(s.Date, loc)
		if d.Year() != year || d.Month() != month {
			continue
		}
		key := dayKey(d)
		byDay[key] = append(byDay[key], s)
	}

	grid := make([]CalendarDay, 0, CalendarSlots)
	for i := 0; i < CalendarSlots; i++ {
		d := gridStart.AddDate(0, 0, i)
		slot := CalendarDay{
			Date:       dayKey(d),
			InMonth:    d.Month() == month,
			ServiceIDs: []string{},
		}
		if slot.InMonth {
			fillCalendarDay(&slot, byDay[slot.Date])
		}
		grid = append(grid, slot)
	}
	return grid
}

func fillCalendarDay(slot *CalendarDay, services []entities.Service) {
	gross := decimal.Zero
	for _, s := range services {
		slot.Count++
		gross = gross.Add(s.GrossValue)
		slot.ServiceIDs = append(slot.ServiceIDs, s.ID)
		if s.HasInvoice {
			slot.HasInvoice = true
		}
		switch s.PaymentStatus {
		case entities.ServicePaymentPago:
			slot.HasPaid = true
		case entities.ServicePaymentPendente:
			slot.HasPending = true
		}
	}
	slot.GrossValue = round(gross)
}
