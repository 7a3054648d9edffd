package dto

import "time"

// RegisterRequest entrada de registro: identidad base + campos del perfil
// según el rol (se ignoran los que no apliquen al rol elegido).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN CUSTOMER EMPLOYEE SUPPLIER"`

	// Perfil CUSTOMER / EMPLOYEE
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	// Perfil EMPLOYEE
	Department string `json:"department" validate:"omitempty,oneof=PRODUCTION ADMINISTRATION LOGISTICS"`
	// Perfil SUPPLIER
	CompanyName string `json:"company_name"`
	Contact     string `json:"contact"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest registro/acceso con identidad verificada por Google.
// El email llega ya verificado por el proveedor externo.
type GoogleLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	GoogleID string `json:"google_id" validate:"required"`
	Name     string `json:"name"`
}

// LoginResponse token firmado + resumen del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProfileResponse variante de perfil aplanada; solo los campos del rol vienen poblados.
type ProfileResponse struct {
	Role        string `json:"role"`
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Department  string `json:"department,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	Contact     string `json:"contact,omitempty"`
}

// UserResponse usuario sin hash de password.
type UserResponse struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	Role      string           `json:"role"`
	Profile   *ProfileResponse `json:"profile,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
