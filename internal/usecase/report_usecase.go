package usecase

import (
	"context"
	"errors"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/finance"
	"gestao_servicos/internal/domain/timeline"
	"gestao_servicos/internal/infrastructure/logging"
	"gestao_servicos/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

//go:generate mockgen -source=report_usecase.go -destination=../adapter/http/handlers/mocks/mock_report_usecase.go -package=mocks

const (
	exportServicesSheet = "servicos"
	exportSummarySheet  = "resumo"
)

var ErrInvalidMonth = errors.New("invalid month")

// DashboardQuery selects what the dashboard aggregates. An empty Range covers
// every service.
type DashboardQuery struct {
	OrganizationID string
	Range          timeline.DateRange
	Granularity    timeline.Granularity
}

type Dashboard struct {
	Summary      finance.Summary
	Wallet       finance.Wallet
	Granularity  timeline.Granularity
	Series       []timeline.Bucket
	ServiceCount int
}

type CalendarQuery struct {
	OrganizationID string
	Year           int
	Month          time.Month
}

type Calendar struct {
	Year  int
	Month time.Month
	Days  []timeline.CalendarDay
}

// IReportUseCase builds the reporting views over stored services.
type IReportUseCase interface {
	Dashboard(ctx context.Context, q DashboardQuery) (Dashboard, error)
	Calendar(ctx context.Context, q CalendarQuery) (Calendar, error)
	ExportServices(ctx context.Context, q DashboardQuery) ([]byte, error)
}

// ReportUseCase buckets dates in loc, the business "local time".
type ReportUseCase struct {
	repo interfaces.IServiceRepository
	loc  *time.Location
	now  func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(repo interfaces.IServiceRepository, loc *time.Location) *ReportUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &ReportUseCase{repo: repo, loc: loc, now: time.Now}
}

// Dashboard computes KPIs and the chart series over the services in q.Range.
// The wallet's pending amount is computed over every service of the
// organization, ignoring q.Range.
func (u *ReportUseCase) Dashboard(ctx context.Context, q DashboardQuery) (Dashboard, error) {
	all, visible, err := u.load(ctx, q)
	if err != nil {
		return Dashboard{}, err
	}

	g := q.Granularity
	if g == "" {
		g = timeline.GranularityDay
	}
	return Dashboard{
		Summary:      finance.Aggregate(visible),
		Wallet:       finance.ComputeWallet(visible, all),
		Granularity:  g,
		Series:       timeline.TimeSeries(visible, u.now(), u.loc, g),
		ServiceCount: len(visible),
	}, nil
}

func (u *ReportUseCase) Calendar(ctx context.Context, q CalendarQuery) (Calendar, error) {
	if q.Month < time.January || q.Month > time.December || q.Year <= 0 {
		return Calendar{}, ErrInvalidMonth
	}

	first := time.Date(q.Year, q.Month, 1, 0, 0, 0, 0, time.UTC)
	services, err := u.repo.List(ctx, interfaces.ServiceFilter{
		OrganizationID: q.OrganizationID,
		From:           first,
		To:             first.AddDate(0, 1, -1),
	})
	if err != nil {
		logging.For("report", "usecase").WithError(err).Error("failed to list services for calendar")
		return Calendar{}, err
	}

	return Calendar{
		Year:  q.Year,
		Month: q.Month,
		Days:  timeline.CalendarGrid(q.Year, q.Month, services, u.loc),
	}, nil
}

// ExportServices renders the services in q.Range as an XLSX workbook with one
// row per service and a KPI summary sheet.
func (u *ReportUseCase) ExportServices(ctx context.Context, q DashboardQuery) ([]byte, error) {
	all, visible, err := u.load(ctx, q)
	if err != nil {
		return nil, err
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	if err := xl.SetSheetName(xl.GetSheetName(0), exportServicesSheet); err != nil {
		return nil, err
	}
	header := []string{"id", "date", "client", "technician", "status", "payment_status",
		"gross_value", "operational_cost", "has_invoice", "invoice_number", "tax_amount", "net_profit"}
	if err := xl.SetSheetRow(exportServicesSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, s := range visible {
		record := []interface{}{
			s.ID,
			s.Date.Format(entities.DateLayout),
			displayName(s.ClientName, s.ClientID),
			displayName(s.TechnicianName, s.TechnicianID),
			string(s.Status),
			string(s.PaymentStatus),
			s.GrossValue.InexactFloat64(),
			s.OperationalCost.InexactFloat64(),
			s.HasInvoice,
			s.InvoiceNumber,
			s.TaxAmount.InexactFloat64(),
			finance.Round2(s.GrossValue.Sub(s.OperationalCost).Sub(s.TaxAmount)).InexactFloat64(),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := xl.SetSheetRow(exportServicesSheet, cell, &record); err != nil {
			return nil, err
		}
	}

	if _, err := xl.NewSheet(exportSummarySheet); err != nil {
		return nil, err
	}
	sum := finance.Aggregate(visible)
	wallet := finance.ComputeWallet(visible, all)
	rows := [][]interface{}{
		{"metric", "value"},
		{"services", len(visible)},
		{"gross_revenue", sum.GrossRevenue.InexactFloat64()},
		{"net_revenue_before_tax", sum.NetRevenueBeforeTax.InexactFloat64()},
		{"costs", sum.Costs.InexactFloat64()},
		{"taxes", sum.Taxes.InexactFloat64()},
		{"net_profit", sum.NetProfit.InexactFloat64()},
		{"invoiced_base", sum.InvoicedBase.InexactFloat64()},
		{"wallet_realized", wallet.Realized.InexactFloat64()},
		{"wallet_pending", wallet.Pending.InexactFloat64()},
	}
	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := xl.SetSheetRow(exportSummarySheet, cell, &rows[i]); err != nil {
			return nil, err
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		logging.For("report", "usecase").WithError(err).Error("failed to write export workbook")
		return nil, err
	}
	return buf.Bytes(), nil
}

// load returns every service of the organization and the subset inside q.Range.
func (u *ReportUseCase) load(ctx context.Context, q DashboardQuery) ([]entities.Service, []entities.Service, error) {
	r := q.Range
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return nil, nil, ErrInvalidDateRange
	}

	all, err := u.repo.List(ctx, interfaces.ServiceFilter{OrganizationID: q.OrganizationID})
	if err != nil {
		logging.For("report", "usecase").WithError(err).Error("failed to list services")
		return nil, nil, err
	}
	return all, r.Filter(all), nil
}

func displayName(name, id string) string {
	if name != "" {
		return name
	}
	return id
}
