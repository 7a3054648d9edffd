package billing_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bakeapp-api/internal/application/billing"
	"github.com/jhoicas/bakeapp-api/internal/application/dto"
	"github.com/jhoicas/bakeapp-api/internal/domain"
	"github.com/jhoicas/bakeapp-api/internal/domain/entity"
	"github.com/jhoicas/bakeapp-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	byID      map[string]*entity.Invoice
	sequences map[int]int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{byID: make(map[string]*entity.Invoice), sequences: make(map[int]int)}
}

func (r *fakeInvoiceRepo) NextNumber(year int) (int, error) {
	r.sequences[year]++
	return r.sequences[year], nil
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	for _, existing := range r.byID {
		if existing.Number == inv.Number {
			return domain.ErrDuplicate
		}
	}
	cp := *inv
	r.byID[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	if inv, ok := r.byID[id]; ok {
		cp := *inv
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.byID {
		cp := *inv
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	cp := *inv
	r.byID[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) Delete(id string) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

type fakeCustomerRepo struct {
	byID map[string]*entity.CustomerProfile
}

func (r *fakeCustomerRepo) Role() string                                   { return entity.RoleCustomer }
func (r *fakeCustomerRepo) Upsert(string, entity.ProfileFields) error      { return nil }
func (r *fakeCustomerRepo) GetByUser(string) (*entity.Profile, error)      { return nil, nil }
func (r *fakeCustomerRepo) DeleteByUser(string) error                      { return nil }
func (r *fakeCustomerRepo) GetByID(id string) (*entity.CustomerProfile, error) {
	return r.byID[id], nil
}

type fakeEmployeeRepo struct {
	byID map[string]*entity.EmployeeProfile
}

func (r *fakeEmployeeRepo) Role() string                              { return entity.RoleEmployee }
func (r *fakeEmployeeRepo) Upsert(string, entity.ProfileFields) error { return nil }
func (r *fakeEmployeeRepo) GetByUser(string) (*entity.Profile, error) { return nil, nil }
func (r *fakeEmployeeRepo) DeleteByUser(string) error                 { return nil }
func (r *fakeEmployeeRepo) GetByID(id string) (*entity.EmployeeProfile, error) {
	return r.byID[id], nil
}

type fakeOrderRepo struct {
	byID map[string]*entity.Order
}

func (r *fakeOrderRepo) Create(*entity.Order) error { return nil }
func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	if o, ok := r.byID[id]; ok {
		cp := *o
		cp.Items = append([]entity.OrderItem(nil), o.Items...)
		return &cp, nil
	}
	return nil, nil
}
func (r *fakeOrderRepo) List(int, int) ([]*entity.Order, error)            { return nil, nil }
func (r *fakeOrderRepo) ListByCustomer(string) ([]*entity.Order, error)    { return nil, nil }
func (r *fakeOrderRepo) ListByEmployee(string) ([]*entity.Order, error)    { return nil, nil }
func (r *fakeOrderRepo) Update(*entity.Order) error                        { return nil }
func (r *fakeOrderRepo) ReplaceItems(string, []entity.OrderItem) error     { return nil }

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func (r *fakeProductRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.byID[id], nil
}
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error)         { return nil, nil }
func (r *fakeProductRepo) ListBySupplier(string) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error                     { return nil }
func (r *fakeProductRepo) Delete(string) (bool, error)                      { return false, nil }

type fakeBillingTx struct {
	invoices repository.InvoiceRepository
}

func (tr *fakeBillingTx) RunInvoice(_ context.Context, fn func(repository.InvoiceRepository) error) error {
	return fn(tr.invoices)
}

// fakePDFGenerator captura los datos recibidos y devuelve bytes fijos.
type fakePDFGenerator struct {
	lastData billing.InvoicePDFData
}

func (g *fakePDFGenerator) GenerateInvoicePDF(_ context.Context, data billing.InvoicePDFData) ([]byte, error) {
	g.lastData = data
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

type billingFixture struct {
	uc       *billing.InvoiceUseCase
	invoices *fakeInvoiceRepo
	orders   *fakeOrderRepo
	products *fakeProductRepo
	cust     *fakeCustomerRepo
	emp      *fakeEmployeeRepo

	customerID string
	employeeID string
	orderID    string
}

// newBillingFixture arma un cliente, un empleado y un pedido de total 26.
func newBillingFixture() *billingFixture {
	f := &billingFixture{
		invoices:   newFakeInvoiceRepo(),
		customerID: uuid.NewString(),
		employeeID: uuid.NewString(),
		orderID:    uuid.NewString(),
	}
	panID, tortaID := uuid.NewString(), uuid.NewString()

	f.cust = &fakeCustomerRepo{byID: map[string]*entity.CustomerProfile{
		f.customerID: {ID: f.customerID, UserID: uuid.NewString(), Name: "Ana"},
	}}
	f.emp = &fakeEmployeeRepo{byID: map[string]*entity.EmployeeProfile{
		f.employeeID: {ID: f.employeeID, UserID: uuid.NewString(), Name: "Beto", Department: entity.DeptAdministration},
	}}
	f.orders = &fakeOrderRepo{byID: map[string]*entity.Order{
		f.orderID: {
			ID: f.orderID, CustomerID: f.customerID, Status: entity.OrderStatusConfirmed,
			Items: []entity.OrderItem{
				{ID: uuid.NewString(), OrderID: f.orderID, ProductID: panID, Quantity: 2, UnitPrice: decimal.NewFromInt(3)},
				{ID: uuid.NewString(), OrderID: f.orderID, ProductID: tortaID, Quantity: 1, UnitPrice: decimal.NewFromInt(20)},
			},
		},
	}}
	f.products = &fakeProductRepo{byID: map[string]*entity.Product{
		panID:   {ID: panID, Name: "Pan campesino", Price: decimal.NewFromInt(3), Type: entity.ProductTypeFinished},
		tortaID: {ID: tortaID, Name: "Torta de vainilla", Price: decimal.NewFromInt(20), Type: entity.ProductTypeFinished},
	}}

	f.uc = billing.NewInvoiceUseCase(&fakeBillingTx{invoices: f.invoices}, f.invoices, f.cust, f.emp, f.orders)
	return f
}

func (f *billingFixture) createRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{CustomerID: f.customerID, OrderID: f.orderID, EmployeeID: f.employeeID}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceCreate_NumeroConsecutivoDelAnio(t *testing.T) {
	f := newBillingFixture()
	year := time.Now().Year()

	first, err := f.uc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)
	second, err := f.uc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("INV-%d-001", year), first.Number)
	assert.Equal(t, fmt.Sprintf("INV-%d-002", year), second.Number)
	assert.NotEqual(t, first.Number, second.Number, "dos facturas nunca comparten número")
}

func TestInvoiceCreate_CongelaTotalDelPedido(t *testing.T) {
	f := newBillingFixture()

	created, err := f.uc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)
	require.True(t, created.Total.Equal(decimal.NewFromInt(26)), "total = 2×3 + 1×20")
	assert.Equal(t, entity.InvoiceStatusDraft, created.Status)

	// Mutar el pedido después de facturar no cambia el total congelado
	f.orders.byID[f.orderID].Items[0].Quantity = 100

	stored, err := f.uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Total.Equal(decimal.NewFromInt(26)), "el total es una instantánea, no se recalcula")
}

func TestInvoiceCreate_ReferenciasInexistentes(t *testing.T) {
	f := newBillingFixture()
	missing := uuid.NewString()

	cases := []struct {
		name string
		in   dto.CreateInvoiceRequest
	}{
		{"cliente", dto.CreateInvoiceRequest{CustomerID: missing, OrderID: f.orderID, EmployeeID: f.employeeID}},
		{"empleado", dto.CreateInvoiceRequest{CustomerID: f.customerID, OrderID: f.orderID, EmployeeID: missing}},
		{"pedido", dto.CreateInvoiceRequest{CustomerID: f.customerID, OrderID: missing, EmployeeID: f.employeeID}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Create(context.Background(), tc.in)
			require.ErrorIs(t, err, domain.ErrNotFound)
			assert.Contains(t, err.Error(), missing, "el error nombra la referencia faltante")
		})
	}
	assert.Empty(t, f.invoices.byID, "ninguna factura debe quedar creada")
	assert.Empty(t, f.invoices.sequences, "no se consumen consecutivos en intentos fallidos")
}

func TestInvoiceCreate_ReferenciaMalformada_EsValidation(t *testing.T) {
	f := newBillingFixture()

	// Un id sin forma de UUID se rechaza antes de cualquier lectura
	in := f.createRequest()
	in.OrderID = "pedido-1"
	_, err := f.uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.invoices.sequences, "tampoco aquí se consume consecutivo")

	_, err = f.uc.GetByID("factura-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Remove
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceUpdate_EstadoYTotal(t *testing.T) {
	f := newBillingFixture()
	created, err := f.uc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)

	status := entity.InvoiceStatusPaid
	total := decimal.NewFromInt(30)
	out, err := f.uc.Update(created.ID, dto.UpdateInvoiceRequest{Status: &status, Total: &total})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, out.Status)
	assert.True(t, out.Total.Equal(total))
	assert.Equal(t, created.Number, out.Number, "el número nunca cambia")
}

func TestInvoiceUpdate_EstadoInvalido(t *testing.T) {
	f := newBillingFixture()
	created, err := f.uc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)

	bad := "ARCHIVED"
	_, err = f.uc.Update(created.ID, dto.UpdateInvoiceRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvoiceRemove_NoTocaElPedido(t *testing.T) {
	f := newBillingFixture()
	created, err := f.uc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)

	require.NoError(t, f.uc.Remove(created.ID))
	assert.ErrorIs(t, f.uc.Remove(created.ID), domain.ErrNotFound)

	order, err := f.orders.GetByID(f.orderID)
	require.NoError(t, err)
	assert.NotNil(t, order, "el pedido facturado sobrevive al borrado de la factura")
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestDownloadInvoicePDF_ArmaLasLineasConNombres(t *testing.T) {
	f := newBillingFixture()
	created, err := f.uc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)

	gen := &fakePDFGenerator{}
	pdfUC := billing.NewPDFUseCase(f.invoices, f.cust, f.emp, f.orders, f.products, gen)

	pdfBytes, filename, err := pdfUC.DownloadInvoicePDF(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake"), pdfBytes)
	assert.Equal(t, fmt.Sprintf("factura_%s.pdf", created.Number), filename)

	require.Len(t, gen.lastData.Lines, 2)
	assert.Equal(t, "Pan campesino", gen.lastData.Lines[0].ProductName)
	assert.True(t, gen.lastData.Lines[0].Subtotal.Equal(decimal.NewFromInt(6)), "subtotal = 2×3")
	assert.Equal(t, "Ana", gen.lastData.Customer.Name)
	assert.Equal(t, "Beto", gen.lastData.Employee.Name)
}

func TestDownloadInvoicePDF_FacturaInexistente(t *testing.T) {
	f := newBillingFixture()
	gen := &fakePDFGenerator{}
	pdfUC := billing.NewPDFUseCase(f.invoices, f.cust, f.emp, f.orders, f.products, gen)

	_, _, err := pdfUC.DownloadInvoicePDF(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, _, err = pdfUC.DownloadInvoicePDF(context.Background(), "factura-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
