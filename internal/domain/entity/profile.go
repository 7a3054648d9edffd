package entity

import "time"

// Departamentos válidos para EmployeeProfile.
const (
	DeptProduction     = "PRODUCTION"
	DeptAdministration = "ADMINISTRATION"
	DeptLogistics      = "LOGISTICS"
)

// ValidDepartment indica si el departamento pertenece al conjunto soportado.
func ValidDepartment(dept string) bool {
	switch dept {
	case DeptProduction, DeptAdministration, DeptLogistics:
		return true
	}
	return false
}

// CustomerProfile datos de cliente, ligado 1:1 a un User con rol CUSTOMER.
type CustomerProfile struct {
	ID        string
	UserID    string
	Name      string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeProfile datos de empleado, ligado 1:1 a un User con rol EMPLOYEE.
type EmployeeProfile struct {
	ID         string
	UserID     string
	Name       string
	Department string // PRODUCTION, ADMINISTRATION, LOGISTICS
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SupplierProfile datos de proveedor, ligado 1:1 a un User con rol SUPPLIER.
type SupplierProfile struct {
	ID          string
	UserID      string
	CompanyName string
	Contact     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Profile unión etiquetada por rol: exactamente uno de los punteros es no-nil.
// Evita ramificar sobre strings de rol en cada operación.
type Profile struct {
	Role     string
	Customer *CustomerProfile
	Employee *EmployeeProfile
	Supplier *SupplierProfile
}

// ProfileFields campos planos de entrada para crear/actualizar cualquier variante.
// Cada store toma solo los campos que le corresponden.
type ProfileFields struct {
	Name        string
	Phone       string
	Address     string
	Department  string
	CompanyName string
	Contact     string
}
