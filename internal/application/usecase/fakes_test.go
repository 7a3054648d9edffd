package usecase_test

import (
	"context"

	"github.com/jhoicas/bakeapp-api/internal/domain"
	"github.com/jhoicas/bakeapp-api/internal/domain/entity"
	"github.com/jhoicas/bakeapp-api/internal/domain/repository"
)

// Fakes en memoria compartidos por los tests del paquete. Los perfiles usan el
// id del usuario como id propio: los tests pueden referenciar el perfil con el
// mismo UUID con el que lo sembraron.

// ── users ─────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

// ── perfiles ──────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	byID map[string]*entity.CustomerProfile
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byID: make(map[string]*entity.CustomerProfile)}
}

func (r *fakeCustomerRepo) Role() string { return entity.RoleCustomer }

func (r *fakeCustomerRepo) Upsert(userID string, f entity.ProfileFields) error {
	for _, c := range r.byID {
		if c.UserID == userID {
			c.Name, c.Phone, c.Address = f.Name, f.Phone, f.Address
			return nil
		}
	}
	r.byID[userID] = &entity.CustomerProfile{ID: userID, UserID: userID, Name: f.Name, Phone: f.Phone, Address: f.Address}
	return nil
}

func (r *fakeCustomerRepo) GetByUser(userID string) (*entity.Profile, error) {
	for _, c := range r.byID {
		if c.UserID == userID {
			cp := *c
			return &entity.Profile{Role: entity.RoleCustomer, Customer: &cp}, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.CustomerProfile, error) {
	if c, ok := r.byID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCustomerRepo) DeleteByUser(userID string) error {
	for id, c := range r.byID {
		if c.UserID == userID {
			delete(r.byID, id)
		}
	}
	return nil
}

type fakeEmployeeRepo struct {
	byID map[string]*entity.EmployeeProfile
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: make(map[string]*entity.EmployeeProfile)}
}

func (r *fakeEmployeeRepo) Role() string { return entity.RoleEmployee }

func (r *fakeEmployeeRepo) Upsert(userID string, f entity.ProfileFields) error {
	for _, e := range r.byID {
		if e.UserID == userID {
			e.Name, e.Department = f.Name, f.Department
			return nil
		}
	}
	r.byID[userID] = &entity.EmployeeProfile{ID: userID, UserID: userID, Name: f.Name, Department: f.Department}
	return nil
}

func (r *fakeEmployeeRepo) GetByUser(userID string) (*entity.Profile, error) {
	for _, e := range r.byID {
		if e.UserID == userID {
			cp := *e
			return &entity.Profile{Role: entity.RoleEmployee, Employee: &cp}, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) GetByID(id string) (*entity.EmployeeProfile, error) {
	if e, ok := r.byID[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) DeleteByUser(userID string) error {
	for id, e := range r.byID {
		if e.UserID == userID {
			delete(r.byID, id)
		}
	}
	return nil
}

type fakeSupplierRepo struct {
	byID map[string]*entity.SupplierProfile
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{byID: make(map[string]*entity.SupplierProfile)}
}

func (r *fakeSupplierRepo) Role() string { return entity.RoleSupplier }

func (r *fakeSupplierRepo) Upsert(userID string, f entity.ProfileFields) error {
	for _, s := range r.byID {
		if s.UserID == userID {
			s.CompanyName, s.Contact = f.CompanyName, f.Contact
			return nil
		}
	}
	r.byID[userID] = &entity.SupplierProfile{ID: userID, UserID: userID, CompanyName: f.CompanyName, Contact: f.Contact}
	return nil
}

func (r *fakeSupplierRepo) GetByUser(userID string) (*entity.Profile, error) {
	for _, s := range r.byID {
		if s.UserID == userID {
			cp := *s
			return &entity.Profile{Role: entity.RoleSupplier, Supplier: &cp}, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.SupplierProfile, error) {
	if s, ok := r.byID[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeSupplierRepo) DeleteByUser(userID string) error {
	for id, s := range r.byID {
		if s.UserID == userID {
			delete(r.byID, id)
		}
	}
	return nil
}

// ── productos ─────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListBySupplier(supplierID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.SupplierID == supplierID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id string) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

// ── pedidos ───────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	byID map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{byID: make(map[string]*entity.Order)}
}

func cloneOrder(o *entity.Order) *entity.Order {
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), o.Items...)
	return &cp
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	r.byID[o.ID] = cloneOrder(o)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	if o, ok := r.byID[id]; ok {
		return cloneOrder(o), nil
	}
	return nil, nil
}

func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.byID {
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByCustomer(customerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.byID {
		if o.CustomerID == customerID {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByEmployee(employeeID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.byID {
		if o.HandledBy == employeeID {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(o *entity.Order) error {
	stored, ok := r.byID[o.ID]
	if !ok {
		return domain.ErrNotFound
	}
	items := stored.Items
	r.byID[o.ID] = cloneOrder(o)
	r.byID[o.ID].Items = items // Update solo toca la cabecera
	return nil
}

func (r *fakeOrderRepo) ReplaceItems(orderID string, items []entity.OrderItem) error {
	stored, ok := r.byID[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Items = append([]entity.OrderItem(nil), items...)
	return nil
}

// ── tx runners ────────────────────────────────────────────────────────────────

// fakeOrderTx entrega el mismo repo al callback; sin semántica de rollback.
type fakeOrderTx struct {
	orders repository.OrderRepository
}

func (tr *fakeOrderTx) RunOrder(_ context.Context, fn func(repository.OrderRepository) error) error {
	return fn(tr.orders)
}

// fakeRegisterTx para el AuthUseCase embebido en UserUseCase.
type fakeRegisterTx struct {
	users    repository.UserRepository
	profiles repository.ProfileStores
}

func (tr *fakeRegisterTx) RunRegister(_ context.Context, fn func(repository.UserRepository, repository.ProfileStores) error) error {
	return fn(tr.users, tr.profiles)
}
