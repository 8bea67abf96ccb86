package request

import (
	"errors"
	"strings"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/lifecycle"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidStatus = errors.New("invalid status")
)

// ServiceCreateRequest is the payload of POST /services. Status, payment status
// and tax are decided by the server.
type ServiceCreateRequest struct {
	OrganizationID  string          `json:"organization_id"`
	Date            string          `json:"date" binding:"required"`
	ClientID        string          `json:"client_id" binding:"required"`
	ClientName      string          `json:"client_name"`
	TechnicianID    string          `json:"technician_id" binding:"required"`
	TechnicianName  string          `json:"technician_name"`
	GrossValue      decimal.Decimal `json:"gross_value"`
	OperationalCost decimal.Decimal `json:"operational_cost"`
	HasInvoice      bool            `json:"has_invoice"`
	InvoiceNumber   string          `json:"invoice_number"`
	Description     string          `json:"description"`
	Notes           string          `json:"notes"`
	Location        string          `json:"location"`
}

func (r ServiceCreateRequest) ToEntity(loc *time.Location) (entities.Service, error) {
	date, err := ParseDate(r.Date, loc)
	if err != nil || date.IsZero() {
		return entities.Service{}, ErrInvalidDate
	}
	return entities.Service{
		OrganizationID:  strings.TrimSpace(r.OrganizationID),
		Date:            date,
		ClientID:        r.ClientID,
		ClientName:      r.ClientName,
		TechnicianID:    r.TechnicianID,
		TechnicianName:  r.TechnicianName,
		GrossValue:      r.GrossValue,
		OperationalCost: r.OperationalCost,
		HasInvoice:      r.HasInvoice,
		InvoiceNumber:   r.InvoiceNumber,
		Description:     r.Description,
		Notes:           r.Notes,
		Location:        r.Location,
	}, nil
}

// ServiceUpdateRequest is the payload of PATCH /services/:id.
//
// An absent key leaves the attribute untouched, null clears it. tax_amount is
// not accepted.
type ServiceUpdateRequest struct {
	Date          lifecycle.Field[string] `json:"date"`
	StartDate     lifecycle.Field[string] `json:"start_date"`
	CompletedDate lifecycle.Field[string] `json:"completed_date"`

	ClientID       lifecycle.Field[string] `json:"client_id"`
	ClientName     lifecycle.Field[string] `json:"client_name"`
	TechnicianID   lifecycle.Field[string] `json:"technician_id"`
	TechnicianName lifecycle.Field[string] `json:"technician_name"`

	GrossValue      lifecycle.Field[decimal.Decimal] `json:"gross_value"`
	OperationalCost lifecycle.Field[decimal.Decimal] `json:"operational_cost"`
	HasInvoice      lifecycle.Field[bool]            `json:"has_invoice"`
	InvoiceNumber   lifecycle.Field[string]          `json:"invoice_number"`

	Status        lifecycle.Field[string] `json:"status"`
	PaymentStatus lifecycle.Field[string] `json:"payment_status"`

	Description lifecycle.Field[string] `json:"description"`
	Notes       lifecycle.Field[string] `json:"notes"`
	Location    lifecycle.Field[string] `json:"location"`
}

// ToPatch parses dates in loc. An empty date string is kept as a zero time and
// later dropped by lifecycle.Sanitize.
func (r ServiceUpdateRequest) ToPatch(loc *time.Location) (lifecycle.ServicePatch, error) {
	parse := func(v string) (time.Time, error) { return ParseDate(v, loc) }

	date, err := lifecycle.Map(r.Date, parse)
	if err != nil {
		return lifecycle.ServicePatch{}, err
	}
	start, err := lifecycle.Map(r.StartDate, parse)
	if err != nil {
		return lifecycle.ServicePatch{}, err
	}
	completed, err := lifecycle.Map(r.CompletedDate, parse)
	if err != nil {
		return lifecycle.ServicePatch{}, err
	}

	status, _ := lifecycle.Map(r.Status, func(v string) (entities.ServiceStatus, error) {
		return entities.ServiceStatus(strings.TrimSpace(v)), nil
	})
	paymentStatus, err := lifecycle.Map(r.PaymentStatus, func(v string) (entities.ServicePaymentStatus, error) {
		ps := entities.ServicePaymentStatus(strings.TrimSpace(v))
		if ps != "" && !ps.Valid() {
			return "", ErrInvalidStatus
		}
		return ps, nil
	})
	if err != nil {
		return lifecycle.ServicePatch{}, err
	}

	return lifecycle.ServicePatch{
		Date:            date,
		StartDate:       start,
		CompletedDate:   completed,
		ClientID:        r.ClientID,
		ClientName:      r.ClientName,
		TechnicianID:    r.TechnicianID,
		TechnicianName:  r.TechnicianName,
		GrossValue:      r.GrossValue,
		OperationalCost: r.OperationalCost,
		HasInvoice:      r.HasInvoice,
		InvoiceNumber:   r.InvoiceNumber,
		Status:          status,
		PaymentStatus:   paymentStatus,
		Description:     r.Description,
		Notes:           r.Notes,
		Location:        r.Location,
	}, nil
}

// ParseDate accepts a calendar date (2006-01-02, taken in loc) or an RFC3339
// timestamp. The empty string yields a zero time.
func ParseDate(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(entities.DateLayout, v, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}
