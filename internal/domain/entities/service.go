package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date wire format used for Service.Date.
const DateLayout = "2006-01-02"

// MonthLayout identifies a calendar month (e.g. calendar grid requests).
const MonthLayout = "2006-01"

var ErrValidation = errors.New("validation failed")

// ServiceStatus is the job progress lifecycle of a service.
//
// Lifecycle:
//   - pendente -> em_andamento when a start date is set
//   - any -> concluido when a completion date is set
//   - em_andamento -> pendente when the start date is removed
type ServiceStatus string

const (
	ServiceStatusPendente    ServiceStatus = "pendente"
	ServiceStatusEmAndamento ServiceStatus = "em_andamento"
	ServiceStatusConcluido   ServiceStatus = "concluido"
)

func (s ServiceStatus) Valid() bool {
	switch s {
	case ServiceStatusPendente, ServiceStatusEmAndamento, ServiceStatusConcluido:
		return true
	}
	return false
}

// ServicePaymentStatus is tracked independently of ServiceStatus.
type ServicePaymentStatus string

const (
	ServicePaymentPendente ServicePaymentStatus = "pendente"
	ServicePaymentPago     ServicePaymentStatus = "pago"
)

func (s ServicePaymentStatus) Valid() bool {
	return s == ServicePaymentPendente || s == ServicePaymentPago
}

// Service is one scheduled job for a client, executed by a technician.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - GrossValue and OperationalCost are user supplied and non-negative.
//   - TaxAmount is derived from GrossValue, HasInvoice and the configured tax rate.
//
// Date only carries calendar components (year, month, day); its location is
// irrelevant for bucketing.
type Service struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`

	Date          time.Time  `json:"date"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`

	ClientID       string `json:"client_id"`
	ClientName     string `json:"client_name,omitempty"`
	TechnicianID   string `json:"technician_id"`
	TechnicianName string `json:"technician_name,omitempty"`

	GrossValue      decimal.Decimal `json:"gross_value"`
	OperationalCost decimal.Decimal `json:"operational_cost"`
	HasInvoice      bool            `json:"has_invoice"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	InvoiceNumber   string          `json:"invoice_number,omitempty"`

	Status        ServiceStatus        `json:"status"`
	PaymentStatus ServicePaymentStatus `json:"payment_status"`

	Description string `json:"description"`
	Notes       string `json:"notes"`
	Location    string `json:"location"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
