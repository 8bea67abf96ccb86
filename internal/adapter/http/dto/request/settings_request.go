package request

import "github.com/shopspring/decimal"

// TaxRateRequest sets the tax rate as a fraction (0.15 = 15%).
type TaxRateRequest struct {
	TaxRate *decimal.Decimal `json:"tax_rate" binding:"required"`
}
