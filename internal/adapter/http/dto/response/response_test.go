package response

import (
	"encoding/json"
	"testing"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/finance"
	"gestao_servicos/internal/domain/timeline"
	"gestao_servicos/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromService(t *testing.T) {
	now := time.Now().UTC()
	s := entities.Service{
		ID:              "svc-1",
		Date:            time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ClientID:        "c-1",
		GrossValue:      decimal.RequireFromString("500"),
		OperationalCost: decimal.RequireFromString("100"),
		TaxAmount:       decimal.RequireFromString("75"),
		HasInvoice:      true,
		Status:          entities.ServiceStatusEmAndamento,
		PaymentStatus:   entities.ServicePaymentPendente,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	res := FromService(s)
	if res.ID != "svc-1" || res.Date != "2025-03-10" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.GrossValue != 500 || res.TaxAmount != 75 || res.NetRevenue != 400 || res.NetProfit != 325 {
		t.Fatalf("unexpected amounts: %+v", res)
	}
	if res.Status != "em_andamento" || res.PaymentStatus != "pendente" {
		t.Fatalf("unexpected statuses: %+v", res)
	}
	if res.StartDate != nil || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}

	b, _ := json.Marshal(res)
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if v, ok := body["start_date"]; !ok || v != nil {
		t.Fatalf("expected explicit null start_date, got %s", string(b))
	}

	if got := FromServices(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestFromServicePayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.ServicePayment{
		ID:                 "pay-1",
		ServiceID:          "svc-1",
		Amount:             decimal.RequireFromString("99.9"),
		Date:               now,
		ProviderStatus:     "approved",
		ProviderPayloadRaw: json.RawMessage(`{"id":1}`),
		ProviderPayload:    map[string]interface{}{"id": float64(1)},
	}

	res := FromServicePayment(p)
	if res.PaymentID != "pay-1" || res.ServiceID != "svc-1" || res.Amount != 99.9 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.ProviderPayloadRaw != `{"id":1}` || res.ProviderPayload["id"] != float64(1) {
		t.Fatalf("unexpected payload fields: %+v", res)
	}
	if !res.PaymentDate.Equal(now) || res.ProviderStatus != "approved" {
		t.Fatalf("unexpected status/date: %+v", res)
	}
}

func TestFromDashboard(t *testing.T) {
	d := usecase.Dashboard{
		ServiceCount: 2,
		Summary:      finance.Summary{GrossRevenue: decimal.RequireFromString("1500"), NetProfit: decimal.RequireFromString("1225")},
		Wallet:       finance.Wallet{Realized: decimal.RequireFromString("800"), Pending: decimal.RequireFromString("500")},
		Granularity:  timeline.GranularityDay,
		Series: []timeline.Bucket{
			{Key: "2025-03-09", Count: 1, GrossRevenue: decimal.RequireFromString("1000")},
		},
	}

	res := FromDashboard(d)
	if res.ServiceCount != 2 || res.Summary.GrossRevenue != 1500 || res.Summary.NetProfit != 1225 {
		t.Fatalf("unexpected summary: %+v", res)
	}
	if res.Wallet.Realized != 800 || res.Wallet.Pending != 500 {
		t.Fatalf("unexpected wallet: %+v", res.Wallet)
	}
	if res.Granularity != "day" || len(res.Series) != 1 || res.Series[0].GrossRevenue != 1000 {
		t.Fatalf("unexpected series: %+v", res.Series)
	}
}

func TestFromCalendar(t *testing.T) {
	c := usecase.Calendar{
		Year:  2025,
		Month: time.March,
		Days:  []timeline.CalendarDay{{Date: "2025-03-01", InMonth: true, Count: 1, GrossValue: decimal.RequireFromString("10.5"), ServiceIDs: []string{"a"}}},
	}

	res := FromCalendar(c)
	if res.Month != "2025-03" || len(res.Days) != 1 || res.Days[0].GrossValue != 10.5 || res.Days[0].ServiceIDs[0] != "a" {
		t.Fatalf("unexpected calendar: %+v", res)
	}
}

func TestFromTaxRate(t *testing.T) {
	res := FromTaxRate(decimal.RequireFromString("0.155"))
	if res.TaxRate != 0.155 || res.Percent != 15.5 {
		t.Fatalf("unexpected tax rate: %+v", res)
	}
}
