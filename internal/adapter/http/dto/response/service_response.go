package response

import (
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/finance"
)

type ServiceResponse struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id,omitempty"`
	Date           string     `json:"date"`
	StartDate      *time.Time `json:"start_date"`
	CompletedDate  *time.Time `json:"completed_date"`

	ClientID       string `json:"client_id"`
	ClientName     string `json:"client_name,omitempty"`
	TechnicianID   string `json:"technician_id"`
	TechnicianName string `json:"technician_name,omitempty"`

	GrossValue      float64 `json:"gross_value"`
	OperationalCost float64 `json:"operational_cost"`
	HasInvoice      bool    `json:"has_invoice"`
	TaxAmount       float64 `json:"tax_amount"`
	InvoiceNumber   string  `json:"invoice_number"`
	NetRevenue      float64 `json:"net_revenue"`
	NetProfit       float64 `json:"net_profit"`

	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`

	Description string `json:"description"`
	Notes       string `json:"notes"`
	Location    string `json:"location"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	sum := finance.ForService(s)
	return ServiceResponse{
		ID:              s.ID,
		OrganizationID:  s.OrganizationID,
		Date:            s.Date.Format(entities.DateLayout),
		StartDate:       s.StartDate,
		CompletedDate:   s.CompletedDate,
		ClientID:        s.ClientID,
		ClientName:      s.ClientName,
		TechnicianID:    s.TechnicianID,
		TechnicianName:  s.TechnicianName,
		GrossValue:      s.GrossValue.InexactFloat64(),
		OperationalCost: s.OperationalCost.InexactFloat64(),
		HasInvoice:      s.HasInvoice,
		TaxAmount:       s.TaxAmount.InexactFloat64(),
		InvoiceNumber:   s.InvoiceNumber,
		NetRevenue:      sum.NetRevenueBeforeTax.InexactFloat64(),
		NetProfit:       sum.NetProfit.InexactFloat64(),
		Status:          string(s.Status),
		PaymentStatus:   string(s.PaymentStatus),
		Description:     s.Description,
		Notes:           s.Notes,
		Location:        s.Location,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}
