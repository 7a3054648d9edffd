package dto

// CreateUserRequest creación de usuario por un actor autenticado.
// Mismo contrato que RegisterRequest; el gate de rol se aplica en el use case.
type CreateUserRequest = RegisterRequest

// UpdateUserRequest patch de identidad + upsert del perfil de su rol.
// Strings vacíos significan "sin cambio". Role, si viene, debe coincidir con
// el rol almacenado (el rol no es mutable por esta vía).
type UpdateUserRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Role  string `json:"role" validate:"omitempty,oneof=ADMIN CUSTOMER EMPLOYEE SUPPLIER"`

	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Department  string `json:"department" validate:"omitempty,oneof=PRODUCTION ADMINISTRATION LOGISTICS"`
	CompanyName string `json:"company_name"`
	Contact     string `json:"contact"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
