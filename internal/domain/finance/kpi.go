package finance

import (
	"gestao_servicos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Summary is the portfolio-level financial view of a set of services.
type Summary struct {
	GrossRevenue        decimal.Decimal `json:"gross_revenue"`
	NetRevenueBeforeTax decimal.Decimal `json:"net_revenue_before_tax"`
	Costs               decimal.Decimal `json:"costs"`
	Taxes               decimal.Decimal `json:"taxes"`
	NetProfit           decimal.Decimal `json:"net_profit"`
	InvoicedBase        decimal.Decimal `json:"invoiced_base"`
}

// Aggregate sums the given services in a single pass. Empty input yields zeros.
func Aggregate(services []entities.Service) Summary {
	var gross, costs, taxes, invoiced decimal.Decimal
	for _, s := range services {
		gross = gross.Add(s.GrossValue)
		costs = costs.Add(s.OperationalCost)
		taxes = taxes.Add(s.TaxAmount)
		if s.HasInvoice {
			invoiced = invoiced.Add(s.GrossValue)
		}
	}

	net := gross.Sub(costs)
	return Summary{
		GrossRevenue:        Round2(gross),
		NetRevenueBeforeTax: Round2(net),
		Costs:               Round2(costs),
		Taxes:               Round2(taxes),
		NetProfit:           Round2(net.Sub(taxes)),
		InvoicedBase:        Round2(invoiced),
	}
}

// ForService is the Summary of a single service: its net revenue and profit.
func ForService(s entities.Service) Summary {
	return Aggregate([]entities.Service{s})
}

// Wallet splits money already received from money still owed.
type Wallet struct {
	Realized decimal.Decimal `json:"realized"`
	Pending  decimal.Decimal `json:"pending"`
}

// ComputeWallet sums the realized balance (gross - cost - tax of paid services)
// over visible, and the pending gross value over all.
//
// visible is normally a date-filtered subset of all. Pending always covers the
// whole backlog so outstanding amounts are never truncated by a viewing window.
func ComputeWallet(visible, all []entities.Service) Wallet {
	var realized, pending decimal.Decimal
	for _, s := range visible {
		if s.PaymentStatus == entities.ServicePaymentPago {
			realized = realized.Add(s.GrossValue).Sub(s.OperationalCost).Sub(s.TaxAmount)
		}
	}
	for _, s := range all {
		if s.PaymentStatus == entities.ServicePaymentPendente {
			pending = pending.Add(s.GrossValue)
		}
	}
	return Wallet{Realized: Round2(realized), Pending: Round2(pending)}
}
