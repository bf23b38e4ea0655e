package models

// UserRole controls which operations a user may perform.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleFinance UserRole = "FINANCE"
)

// User mirrors the users table.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
	AuditFields
}
