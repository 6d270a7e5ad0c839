package enum

// PaymentMethod represents how a payment was settled.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "Efectivo"
	PaymentQR    PaymentMethod = "QR"
	PaymentMixed PaymentMethod = "Mixto"
)

// ParsePaymentMethod maps a raw wire value to a method. Unknown values coerce
// to PaymentCash; ok is false so the caller can log the fallback.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	switch PaymentMethod(raw) {
	case PaymentCash, PaymentQR, PaymentMixed:
		return PaymentMethod(raw), true
	}
	return PaymentCash, false
}

func (m PaymentMethod) String() string {
	return string(m)
}
