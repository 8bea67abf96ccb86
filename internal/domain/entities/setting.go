package entities

import "time"

// SettingTaxRate is the key of the tax rate setting (decimal fraction in [0,1]).
const SettingTaxRate = "tax_rate"

// Setting is a generic key-value configuration entry.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
