package entity

import "time"

// Roles válidos para User. ADMIN es el único rol sin perfil asociado.
const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
	RoleEmployee = "EMPLOYEE"
	RoleSupplier = "SUPPLIER"
)

// ValidRole indica si el rol pertenece al conjunto soportado.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCustomer, RoleEmployee, RoleSupplier:
		return true
	}
	return false
}

// User representa la identidad base autenticable (email + hash + rol).
// GoogleID es opcional (registro vía OAuth); puede repetirse vacío sin violar unicidad.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	GoogleID     string
	Role         string // ADMIN, CUSTOMER, EMPLOYEE, SUPPLIER
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
