package enum

// MovementKind represents the direction of a cash-box ledger entry.
type MovementKind string

const (
	MovementIncome  MovementKind = "ingreso"
	MovementExpense MovementKind = "egreso"
)

// ParseMovementKind maps a raw wire value to a kind. Unknown values coerce to
// MovementIncome; ok is false so the caller can log the fallback.
func ParseMovementKind(raw string) (MovementKind, bool) {
	switch MovementKind(raw) {
	case MovementIncome, MovementExpense:
		return MovementKind(raw), true
	}
	return MovementIncome, false
}

func (k MovementKind) String() string {
	return string(k)
}
