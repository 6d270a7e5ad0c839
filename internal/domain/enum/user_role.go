package enum

// UserRole represents a back-office user's role.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleAssistant UserRole = "asistente"
)

// ParseUserRole maps a raw wire value to a role. Unknown values coerce to
// RoleAssistant, the least-privileged role; ok is false so the caller can log
// the fallback.
func ParseUserRole(raw string) (UserRole, bool) {
	switch UserRole(raw) {
	case RoleAdmin, RoleAssistant:
		return UserRole(raw), true
	}
	return RoleAssistant, false
}

func (r UserRole) String() string {
	return string(r)
}
