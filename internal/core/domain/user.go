package domain

// UserRole controls which operations a user may perform.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleFinance UserRole = "FINANCE"
)

// User represents an application user of the finance department.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	Name         string   `json:"name"` // display name stamped on vouchers
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
	AuditFields
}
