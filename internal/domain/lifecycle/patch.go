package lifecycle

import (
	"time"

	"gestao_servicos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ServicePatch is a partial update of a Service.
type ServicePatch struct {
	Date          Field[time.Time]
	StartDate     Field[time.Time]
	CompletedDate Field[time.Time]

	ClientID       Field[string]
	ClientName     Field[string]
	TechnicianID   Field[string]
	TechnicianName Field[string]

	GrossValue      Field[decimal.Decimal]
	OperationalCost Field[decimal.Decimal]
	HasInvoice      Field[bool]
	TaxAmount       Field[decimal.Decimal]
	InvoiceNumber   Field[string]

	Status        Field[entities.ServiceStatus]
	PaymentStatus Field[entities.ServicePaymentStatus]

	Description Field[string]
	Notes       Field[string]
	Location    Field[string]
}

// IsEmpty reports whether the patch touches no field.
func (p ServicePatch) IsEmpty() bool {
	return !(p.Date.Present() || p.StartDate.Present() || p.CompletedDate.Present() ||
		p.ClientID.Present() || p.ClientName.Present() ||
		p.TechnicianID.Present() || p.TechnicianName.Present() ||
		p.GrossValue.Present() || p.OperationalCost.Present() || p.HasInvoice.Present() ||
		p.TaxAmount.Present() || p.InvoiceNumber.Present() ||
		p.Status.Present() || p.PaymentStatus.Present() ||
		p.Description.Present() || p.Notes.Present() || p.Location.Present())
}

// Apply returns s with the patch applied. Clear resets a field to its zero value.
func (p ServicePatch) Apply(s entities.Service) entities.Service {
	s.Date = applyValue(p.Date, s.Date)
	s.StartDate = applyTime(p.StartDate, s.StartDate)
	s.CompletedDate = applyTime(p.CompletedDate, s.CompletedDate)
	s.ClientID = applyValue(p.ClientID, s.ClientID)
	s.ClientName = applyValue(p.ClientName, s.ClientName)
	s.TechnicianID = applyValue(p.TechnicianID, s.TechnicianID)
	s.TechnicianName = applyValue(p.TechnicianName, s.TechnicianName)
	s.GrossValue = applyValue(p.GrossValue, s.GrossValue)
	s.OperationalCost = applyValue(p.OperationalCost, s.OperationalCost)
	s.HasInvoice = applyValue(p.HasInvoice, s.HasInvoice)
	s.TaxAmount = applyValue(p.TaxAmount, s.TaxAmount)
	s.InvoiceNumber = applyValue(p.InvoiceNumber, s.InvoiceNumber)
	s.Status = applyValue(p.Status, s.Status)
	s.PaymentStatus = applyValue(p.PaymentStatus, s.PaymentStatus)
	s.Description = applyValue(p.Description, s.Description)
	s.Notes = applyValue(p.Notes, s.Notes)
	s.Location = applyValue(p.Location, s.Location)
	return s
}

func applyValue[T any](f Field[T], current T) T {
	switch f.state {
	case stateSet:
		return f.value
	case stateCleared:
		var zero T
		return zero
	default:
		return current
	}
}

func applyTime(f Field[time.Time], current *time.Time) *time.Time {
	switch f.state {
	case stateSet:
		v := f.value
		return &v
	case stateCleared:
		return nil
	default:
		return current
	}
}
