package lifecycle

import "time"

// Sanitize drops fields that carry no meaningful value before persistence.
//
// Free-text fields (description, notes, location, invoice_number) keep an empty
// string and a Clear becomes an empty string. On every other field an empty
// string, a zero date or a Clear means "don't touch it" and is dropped, except
// that start_date and completed_date may be cleared. Numeric zero is a real
// value and always survives. Unset fields stay unset.
//
// Run it after tax and status have been injected into the patch.
func Sanitize(p ServicePatch) ServicePatch {
	return ServicePatch{
		Date:          dropBlankTime(p.Date, false),
		StartDate:     dropBlankTime(p.StartDate, true),
		CompletedDate: dropBlankTime(p.CompletedDate, true),

		ClientID:       dropBlankString(p.ClientID),
		ClientName:     dropBlankString(p.ClientName),
		TechnicianID:   dropBlankString(p.TechnicianID),
		TechnicianName: dropBlankString(p.TechnicianName),

		GrossValue:      dropClear(p.GrossValue),
		OperationalCost: dropClear(p.OperationalCost),
		HasInvoice:      dropClear(p.HasInvoice),
		TaxAmount:       dropClear(p.TaxAmount),
		InvoiceNumber:   keepText(p.InvoiceNumber),

		Status:        dropBlankString(p.Status),
		PaymentStatus: dropBlankString(p.PaymentStatus),

		Description: keepText(p.Description),
		Notes:       keepText(p.Notes),
		Location:    keepText(p.Location),
	}
}

func dropClear[T any](f Field[T]) Field[T] {
	if f.IsClear() {
		return Unset[T]()
	}
	return f
}

func dropBlankString[T ~string](f Field[T]) Field[T] {
	if f.IsClear() || (f.IsSet() && f.value == "") {
		return Unset[T]()
	}
	return f
}

func dropBlankTime(f Field[time.Time], clearable bool) Field[time.Time] {
	if f.IsSet() && f.value.IsZero() {
		return Unset[time.Time]()
	}
	if f.IsClear() && !clearable {
		return Unset[time.Time]()
	}
	return f
}

func keepText(f Field[string]) Field[string] {
	if f.IsClear() {
		return SetTo("")
	}
	return f
}
