package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Role         string // admin, operator, viewer
	Status       string // active, inactive
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// IsOperator indica si el usuario puede ejecutar operaciones de planta (admin incluido).
func (u *User) IsOperator() bool {
	return u.Role == RoleAdmin || u.Role == RoleOperator
}
