package enum

// QuotationStatus represents the lifecycle state of a quotation. The wire
// values are the backend's Spanish status strings.
type QuotationStatus string

const (
	QuotationPending   QuotationStatus = "pendiente"
	QuotationCompleted QuotationStatus = "completada"
	QuotationDeleted   QuotationStatus = "eliminado"
)

// ParseQuotationStatus maps a raw wire value to a status. Unknown values
// coerce to QuotationPending; ok is false so the caller can log the fallback.
func ParseQuotationStatus(raw string) (QuotationStatus, bool) {
	switch QuotationStatus(raw) {
	case QuotationPending, QuotationCompleted, QuotationDeleted:
		return QuotationStatus(raw), true
	}
	return QuotationPending, false
}

// IsDeleted reports whether the quotation has been soft deleted.
func (s QuotationStatus) IsDeleted() bool {
	return s == QuotationDeleted
}

func (s QuotationStatus) String() string {
	return string(s)
}
