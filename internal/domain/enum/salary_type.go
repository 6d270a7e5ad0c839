package enum

// SalaryType represents how a doctor is compensated: per-service commission or
// a fixed salary.
type SalaryType string

const (
	SalaryCommission SalaryType = "Comision"
	SalarySalaried   SalaryType = "Sueldo"
)

// ParseSalaryType maps a raw wire value to a salary type. Unknown values
// coerce to SalarySalaried; ok is false so the caller can log the fallback.
func ParseSalaryType(raw string) (SalaryType, bool) {
	switch SalaryType(raw) {
	case SalaryCommission, SalarySalaried:
		return SalaryType(raw), true
	}
	return SalarySalaried, false
}

func (t SalaryType) String() string {
	return string(t)
}
