package finance

import (
	"context"

	"github.com/shopspring/decimal"
)

// TaxRateProvider supplies the current tax rate (fraction, 0.15 = 15%).
// Callers read it once per operation and pass the snapshot to ComputeTax.
type TaxRateProvider interface {
	TaxRate(ctx context.Context) (decimal.Decimal, error)
}

// StaticTaxRate is a fixed TaxRateProvider.
type StaticTaxRate decimal.Decimal

func (r StaticTaxRate) TaxRate(context.Context) (decimal.Decimal, error) {
	return decimal.Decimal(r), nil
}

// ComputeTax returns the tax owed on a service.
//
// Zero when there is no invoice or the gross value is not positive. A negative
// rate is treated as zero.
func ComputeTax(grossValue decimal.Decimal, hasInvoice bool, taxRate decimal.Decimal) decimal.Decimal {
	if !hasInvoice || !grossValue.IsPositive() {
		return decimal.Zero
	}
	return Round2(grossValue.Mul(NonNegative(taxRate)))
}
