package response

import (
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/finance"
	"gestao_servicos/internal/domain/timeline"
	"gestao_servicos/internal/usecase"

	"github.com/shopspring/decimal"
)

type SummaryResponse struct {
	GrossRevenue        float64 `json:"gross_revenue"`
	NetRevenueBeforeTax float64 `json:"net_revenue_before_tax"`
	Costs               float64 `json:"costs"`
	Taxes               float64 `json:"taxes"`
	NetProfit           float64 `json:"net_profit"`
	InvoicedBase        float64 `json:"invoiced_base"`
}

type WalletResponse struct {
	Realized float64 `json:"realized"`
	Pending  float64 `json:"pending"`
}

type BucketResponse struct {
	Key          string  `json:"key"`
	Count        int     `json:"count"`
	GrossRevenue float64 `json:"gross_revenue"`
	Costs        float64 `json:"costs"`
	Taxes        float64 `json:"taxes"`
	NetProfit    float64 `json:"net_profit"`
}

type DashboardResponse struct {
	ServiceCount int              `json:"service_count"`
	Summary      SummaryResponse  `json:"summary"`
	Wallet       WalletResponse   `json:"wallet"`
	Granularity  string           `json:"granularity"`
	Series       []BucketResponse `json:"series"`
}

type CalendarDayResponse struct {
	Date       string   `json:"date"`
	InMonth    bool     `json:"in_month"`
	Count      int      `json:"count"`
	GrossValue float64  `json:"gross_value"`
	HasInvoice bool     `json:"has_invoice"`
	HasPaid    bool     `json:"has_paid"`
	HasPending bool     `json:"has_pending"`
	ServiceIDs []string `json:"service_ids"`
}

type CalendarResponse struct {
	Month string                `json:"month"`
	Days  []CalendarDayResponse `json:"days"`
}

type TaxRateResponse struct {
	TaxRate float64 `json:"tax_rate"`
	Percent float64 `json:"percent"`
}

func FromSummary(s finance.Summary) SummaryResponse {
	return SummaryResponse{
		GrossRevenue:        s.GrossRevenue.InexactFloat64(),
		NetRevenueBeforeTax: s.NetRevenueBeforeTax.InexactFloat64(),
		Costs:               s.Costs.InexactFloat64(),
		Taxes:               s.Taxes.InexactFloat64(),
		NetProfit:           s.NetProfit.InexactFloat64(),
		InvoicedBase:        s.InvoicedBase.InexactFloat64(),
	}
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	series := make([]BucketResponse, 0, len(d.Series))
	for _, b := range d.Series {
		series = append(series, fromBucket(b))
	}
	return DashboardResponse{
		ServiceCount: d.ServiceCount,
		Summary:      FromSummary(d.Summary),
		Wallet: WalletResponse{
			Realized: d.Wallet.Realized.InexactFloat64(),
			Pending:  d.Wallet.Pending.InexactFloat64(),
		},
		Granularity: string(d.Granularity),
		Series:      series,
	}
}

func fromBucket(b timeline.Bucket) BucketResponse {
	return BucketResponse{
		Key:          b.Key,
		Count:        b.Count,
		GrossRevenue: b.GrossRevenue.InexactFloat64(),
		Costs:        b.Costs.InexactFloat64(),
		Taxes:        b.Taxes.InexactFloat64(),
		NetProfit:    b.NetProfit.InexactFloat64(),
	}
}

func FromCalendar(c usecase.Calendar) CalendarResponse {
	days := make([]CalendarDayResponse, 0, len(c.Days))
	for _, d := range c.Days {
		days = append(days, CalendarDayResponse{
			Date:       d.Date,
			InMonth:    d.InMonth,
			Count:      d.Count,
			GrossValue: d.GrossValue.InexactFloat64(),
			HasInvoice: d.HasInvoice,
			HasPaid:    d.HasPaid,
			HasPending: d.HasPending,
			ServiceIDs: d.ServiceIDs,
		})
	}
	return CalendarResponse{
		Month: time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC).Format(entities.MonthLayout),
		Days:  days,
	}
}

func FromTaxRate(rate decimal.Decimal) TaxRateResponse {
	return TaxRateResponse{
		TaxRate: rate.InexactFloat64(),
		Percent: finance.Round2(rate.Mul(decimal.NewFromInt(100))).InexactFloat64(),
	}
}
