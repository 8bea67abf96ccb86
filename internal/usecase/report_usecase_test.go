package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/timeline"
	"gestao_servicos/internal/usecase/interfaces"
	mock_interfaces "gestao_servicos/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

var reportNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func reportServices() []entities.Service {
	return []entities.Service{
		{
			ID:              "paid",
			Date:            time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC),
			GrossValue:      decimal.RequireFromString("1000"),
			OperationalCost: decimal.RequireFromString("200"),
			PaymentStatus:   entities.ServicePaymentPago,
		},
		{
			ID:            "pending",
			Date:          time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
			GrossValue:    decimal.RequireFromString("500"),
			TaxAmount:     decimal.RequireFromString("75"),
			HasInvoice:    true,
			PaymentStatus: entities.ServicePaymentPendente,
		},
		{
			ID:            "old-pending",
			Date:          time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
			GrossValue:    decimal.RequireFromString("300"),
			PaymentStatus: entities.ServicePaymentPendente,
		},
	}
}

func newReportUseCase(repo interfaces.IServiceRepository) *ReportUseCase {
	uc := NewReportUseCase(repo, time.UTC)
	uc.now = func() time.Time { return reportNow }
	return uc
}

func TestReportUseCase_Dashboard(t *testing.T) {
	t.Run("inverted range", func(t *testing.T) {
		uc := newReportUseCase(nil)
		_, err := uc.Dashboard(context.Background(), DashboardQuery{Range: timeline.DateRange{
			From: reportNow, To: reportNow.AddDate(0, 0, -1),
		}})
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := newReportUseCase(repo)

		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.Dashboard(context.Background(), DashboardQuery{}); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("pending ignores the date filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := newReportUseCase(repo)

		repo.EXPECT().List(gomock.Any(), interfaces.ServiceFilter{OrganizationID: "org-1"}).Return(reportServices(), nil)

		d, err := uc.Dashboard(context.Background(), DashboardQuery{
			OrganizationID: "org-1",
			Range: timeline.DateRange{
				From: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ServiceCount != 2 || !d.Summary.GrossRevenue.Equal(decimal.RequireFromString("1500")) {
			t.Fatalf("unexpected summary: count=%d gross=%s", d.ServiceCount, d.Summary.GrossRevenue)
		}
		if !d.Summary.NetProfit.Equal(decimal.RequireFromString("1225")) {
			t.Fatalf("unexpected net profit %s", d.Summary.NetProfit)
		}
		if !d.Wallet.Realized.Equal(decimal.RequireFromString("800")) {
			t.Fatalf("unexpected realized %s", d.Wallet.Realized)
		}
		if !d.Wallet.Pending.Equal(decimal.RequireFromString("800")) {
			t.Fatalf("expected pending over the whole backlog (800), got %s", d.Wallet.Pending)
		}
		if d.Granularity != timeline.GranularityDay || len(d.Series) != 2 {
			t.Fatalf("unexpected series: %s %+v", d.Granularity, d.Series)
		}
		if d.Series[0].Key != "2025-03-09" || d.Series[1].Key != "2025-03-10" {
			t.Fatalf("unexpected keys %s %s", d.Series[0].Key, d.Series[1].Key)
		}
	})

	t.Run("month granularity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := newReportUseCase(repo)

		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(reportServices(), nil)

		d, err := uc.Dashboard(context.Background(), DashboardQuery{Granularity: timeline.GranularityMonth})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(d.Series) != 3 || d.Series[0].Key != "2025-01" || d.Series[1].Count != 0 || d.Series[2].Count != 2 {
			t.Fatalf("unexpected month series %+v", d.Series)
		}
	})
}

func TestReportUseCase_Calendar(t *testing.T) {
	t.Run("invalid month", func(t *testing.T) {
		uc := newReportUseCase(nil)
		if _, err := uc.Calendar(context.Background(), CalendarQuery{Year: 2025, Month: 13}); !errors.Is(err, ErrInvalidMonth) {
			t.Fatalf("expected ErrInvalidMonth, got %v", err)
		}
	})

	t.Run("lists the month and builds the grid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := newReportUseCase(repo)

		repo.EXPECT().List(gomock.Any(), interfaces.ServiceFilter{
			From: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
		}).Return(reportServices()[:2], nil)

		cal, err := uc.Calendar(context.Background(), CalendarQuery{Year: 2025, Month: time.March})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cal.Days) != timeline.CalendarSlots {
			t.Fatalf("expected %d slots, got %d", timeline.CalendarSlots, len(cal.Days))
		}
		// March 2025 starts on a Saturday: six leading February days.
		if cal.Days[0].Date != "2025-02-23" || cal.Days[6].Date != "2025-03-01" {
			t.Fatalf("unexpected grid start %s %s", cal.Days[0].Date, cal.Days[6].Date)
		}
		day9 := cal.Days[14]
		if day9.Date != "2025-03-09" || day9.Count != 1 || !day9.HasPaid {
			t.Fatalf("unexpected slot %+v", day9)
		}
	})
}

func TestReportUseCase_ExportServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIServiceRepository(ctrl)
	uc := newReportUseCase(repo)

	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(reportServices(), nil)

	data, err := uc.ExportServices(context.Background(), DashboardQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	xl, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid workbook: %v", err)
	}
	defer func() { _ = xl.Close() }()

	rows, err := xl.GetRows(exportServicesSheet)
	if err != nil {
		t.Fatalf("missing services sheet: %v", err)
	}
	if len(rows) != 4 || rows[0][0] != "id" || rows[1][0] != "paid" {
		t.Fatalf("unexpected services rows %v", rows)
	}

	summary, err := xl.GetRows(exportSummarySheet)
	if err != nil {
		t.Fatalf("missing summary sheet: %v", err)
	}
	if summary[2][0] != "gross_revenue" || summary[2][1] != "1800" {
		t.Fatalf("unexpected summary %v", summary)
	}
}
