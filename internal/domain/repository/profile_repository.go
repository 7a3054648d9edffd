package repository

import "github.com/jhoicas/bakeapp-api/internal/domain/entity"

// ProfileStore puerto común de las tres variantes de perfil, indexadas por el
// usuario dueño. Cada implementación persiste una sola variante; el rol actúa
// como etiqueta de la unión.
type ProfileStore interface {
	// Role devuelve el rol cuya variante maneja este store.
	Role() string
	// Upsert crea o actualiza la variante del usuario con los campos que le aplican.
	Upsert(userID string, fields entity.ProfileFields) error
	// GetByUser devuelve la variante como unión etiquetada, o nil si no existe.
	GetByUser(userID string) (*entity.Profile, error)
	// DeleteByUser elimina la variante si existe (no-op en caso contrario).
	DeleteByUser(userID string) error
}

// CustomerRepository store de perfiles de cliente más las consultas por ID
// que necesitan pedidos y facturas.
type CustomerRepository interface {
	ProfileStore
	GetByID(id string) (*entity.CustomerProfile, error)
}

// EmployeeRepository store de perfiles de empleado.
type EmployeeRepository interface {
	ProfileStore
	GetByID(id string) (*entity.EmployeeProfile, error)
}

// SupplierRepository store de perfiles de proveedor.
type SupplierRepository interface {
	ProfileStore
	GetByID(id string) (*entity.SupplierProfile, error)
}

// ProfileStores registro de las tres variantes. Permite despachar por rol y
// recorrerlas todas (borrado en cascada best-effort).
type ProfileStores struct {
	Customer CustomerRepository
	Employee EmployeeRepository
	Supplier SupplierRepository
}

// ByRole devuelve el store de la variante del rol, o nil para ADMIN y roles desconocidos.
func (s ProfileStores) ByRole(role string) ProfileStore {
	switch role {
	case entity.RoleCustomer:
		return s.Customer
	case entity.RoleEmployee:
		return s.Employee
	case entity.RoleSupplier:
		return s.Supplier
	}
	return nil
}

// All devuelve los tres stores, para operaciones que deben intentarse contra todos.
func (s ProfileStores) All() []ProfileStore {
	return []ProfileStore{s.Customer, s.Employee, s.Supplier}
}
