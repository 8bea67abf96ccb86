package repository

import (
	"strings"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/domain/lifecycle"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// updateExpression accumulates SET and REMOVE clauses of an UpdateItem call.
type updateExpression struct {
	sets    []string
	removes []string
	names   map[string]string
	values  map[string]types.AttributeValue
}

func newUpdateExpression() *updateExpression {
	return &updateExpression{
		names:  map[string]string{},
		values: map[string]types.AttributeValue{},
	}
}

func (u *updateExpression) set(attr string, v types.AttributeValue) {
	u.names["#"+attr] = attr
	u.values[":"+attr] = v
	u.sets = append(u.sets, "#"+attr+" = :"+attr)
}

func (u *updateExpression) remove(attr string) {
	u.names["#"+attr] = attr
	u.removes = append(u.removes, "#"+attr)
}

func (u *updateExpression) String() string {
	var b strings.Builder
	if len(u.sets) > 0 {
		b.WriteString("SET ")
		b.WriteString(strings.Join(u.sets, ", "))
	}
	if len(u.removes) > 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString("REMOVE ")
		b.WriteString(strings.Join(u.removes, ", "))
	}
	return b.String()
}

func stringField[T ~string](u *updateExpression, attr string, f lifecycle.Field[T]) {
	if v, ok := f.Value(); ok {
		u.set(attr, stringValue(string(v)))
	} else if f.IsClear() {
		u.remove(attr)
	}
}

func amountField(u *updateExpression, attr string, f lifecycle.Field[decimal.Decimal]) {
	if v, ok := f.Value(); ok {
		u.set(attr, stringValue(formatAmount(v)))
	} else if f.IsClear() {
		u.remove(attr)
	}
}

func timeField(u *updateExpression, attr string, f lifecycle.Field[time.Time]) {
	if v, ok := f.Value(); ok {
		u.set(attr, stringValue(formatTime(v)))
	} else if f.IsClear() {
		u.remove(attr)
	}
}

// buildServiceUpdate translates a sanitized patch: SetTo becomes SET, Clear
// becomes REMOVE. updated_at is always written.
func buildServiceUpdate(p lifecycle.ServicePatch, now time.Time) *updateExpression {
	u := newUpdateExpression()

	if v, ok := p.Date.Value(); ok {
		u.set("date", stringValue(v.Format(entities.DateLayout)))
	}
	timeField(u, "start_date", p.StartDate)
	timeField(u, "completed_date", p.CompletedDate)

	stringField(u, "client_id", p.ClientID)
	stringField(u, "client_name", p.ClientName)
	stringField(u, "technician_id", p.TechnicianID)
	stringField(u, "technician_name", p.TechnicianName)

	amountField(u, "gross_value", p.GrossValue)
	amountField(u, "operational_cost", p.OperationalCost)
	if v, ok := p.HasInvoice.Value(); ok {
		u.set("has_invoice", &types.AttributeValueMemberBOOL{Value: v})
	}
	amountField(u, "tax_amount", p.TaxAmount)
	stringField(u, "invoice_number", p.InvoiceNumber)

	stringField(u, "status", p.Status)
	stringField(u, "payment_status", p.PaymentStatus)

	stringField(u, "description", p.Description)
	stringField(u, "notes", p.Notes)
	stringField(u, "location", p.Location)

	u.set("updated_at", stringValue(formatTime(now)))
	return u
}
