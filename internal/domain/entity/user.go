package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// ValidRole true si el rol es uno de los conocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleVendedor
}

// User representa un usuario del back-office de la tienda.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, vendedor
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
