package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gestao_servicos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var brt = time.FixedZone("BRT", -3*60*60)

func TestServiceCreateRequest_ToEntity(t *testing.T) {
	r := ServiceCreateRequest{
		OrganizationID: " org-1 ",
		Date:           "2025-03-10",
		ClientID:       "c-1",
		TechnicianID:   "t-1",
		GrossValue:     decimal.RequireFromString("100"),
		HasInvoice:     true,
	}
	s, err := r.ToEntity(brt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.OrganizationID != "org-1" || s.Date.Day() != 10 || s.Date.Location() != brt {
		t.Fatalf("unexpected entity: %+v", s)
	}

	r.Date = "10/03/2025"
	if _, err := r.ToEntity(brt); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestServiceUpdateRequest_ToPatch(t *testing.T) {
	var r ServiceUpdateRequest
	body := `{"start_date":"2025-03-10T09:00:00-03:00","completed_date":null,"date":"","status":" concluido ","notes":null,"gross_value":"10.5","tax_amount":99}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	p, err := r.ToPatch(brt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	start, ok := p.StartDate.Value()
	if !ok || start.Hour() != 9 {
		t.Fatalf("unexpected start date %v", start)
	}
	if !p.CompletedDate.IsClear() || !p.Notes.IsClear() {
		t.Fatalf("expected cleared fields")
	}
	if d, ok := p.Date.Value(); !ok || !d.IsZero() {
		t.Fatalf("expected zero date placeholder, got %v", d)
	}
	if v, _ := p.Status.Value(); v != entities.ServiceStatusConcluido {
		t.Fatalf("unexpected status %q", v)
	}
	if g, _ := p.GrossValue.Value(); !g.Equal(decimal.RequireFromString("10.5")) {
		t.Fatalf("unexpected gross %s", g)
	}
	if !p.TaxAmount.IsUnset() || !p.Location.IsUnset() {
		t.Fatalf("expected untouched fields")
	}
}

func TestServiceUpdateRequest_ToPatchErrors(t *testing.T) {
	var r ServiceUpdateRequest
	_ = json.Unmarshal([]byte(`{"start_date":"tomorrow"}`), &r)
	if _, err := r.ToPatch(brt); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}

	var r2 ServiceUpdateRequest
	_ = json.Unmarshal([]byte(`{"payment_status":"parcial"}`), &r2)
	if _, err := r2.ToPatch(brt); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestPeriodQuery_Range(t *testing.T) {
	r, err := PeriodQuery{From: "2025-03-01"}.Range(brt)
	if err != nil || r.From.Day() != 1 || !r.To.IsZero() {
		t.Fatalf("unexpected range %+v err=%v", r, err)
	}
	if _, err := (PeriodQuery{To: "x"}).Range(brt); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCalendarRequestQuery_YearMonth(t *testing.T) {
	now := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	y, m, err := CalendarRequestQuery{}.YearMonth(now)
	if err != nil || y != 2025 || m != time.March {
		t.Fatalf("unexpected default month %d-%d err=%v", y, m, err)
	}
	y, m, err = CalendarRequestQuery{Month: "2026-02"}.YearMonth(now)
	if err != nil || y != 2026 || m != time.February {
		t.Fatalf("unexpected month %d-%d err=%v", y, m, err)
	}
	if _, _, err := (CalendarRequestQuery{Month: "2026-13"}).YearMonth(now); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
