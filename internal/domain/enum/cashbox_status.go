package enum

// CashBoxStatus represents whether a cash box is open. The backend encodes it
// as a short integer flag (1 open, 0 closed).
type CashBoxStatus int

const (
	CashBoxClosed CashBoxStatus = 0
	CashBoxOpen   CashBoxStatus = 1
)

// ParseCashBoxStatus maps the raw wire flag to a status. Unknown values coerce
// to CashBoxClosed; ok is false so the caller can log the fallback.
func ParseCashBoxStatus(raw int) (CashBoxStatus, bool) {
	switch CashBoxStatus(raw) {
	case CashBoxClosed, CashBoxOpen:
		return CashBoxStatus(raw), true
	}
	return CashBoxClosed, false
}

func (s CashBoxStatus) String() string {
	if s == CashBoxOpen {
		return "abierta"
	}
	return "cerrada"
}
