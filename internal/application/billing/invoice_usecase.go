package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bakeapp-api/internal/application/dto"
	"github.com/jhoicas/bakeapp-api/internal/domain"
	"github.com/jhoicas/bakeapp-api/internal/domain/entity"
	"github.com/jhoicas/bakeapp-api/internal/domain/repository"
)

// InvoiceUseCase facturación: creación con instantánea del total del pedido y
// consecutivo anual atómico; update/delete sin efectos sobre el pedido.
type InvoiceUseCase struct {
	txRunner     BillingTxRunner
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
	orderRepo    repository.OrderRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	txRunner BillingTxRunner,
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	employeeRepo repository.EmployeeRepository,
	orderRepo repository.OrderRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:     txRunner,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		orderRepo:    orderRepo,
	}
}

// Create valida las tres referencias, congela el total del pedido y asigna el
// número INV-<año>-<seq3> desde el consecutivo anual, todo dentro de una tx.
// Mutaciones posteriores del pedido no cambian el total ya facturado.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	for _, ref := range []string{in.CustomerID, in.EmployeeID, in.OrderID} {
		if !entity.ValidID(ref) {
			return nil, fmt.Errorf("%w: referencia malformada %q", domain.ErrInvalidInput, ref)
		}
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.CustomerID)
	}
	employee, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: empleado %s", domain.ErrNotFound, in.EmployeeID)
	}
	order, err := uc.orderRepo.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, in.OrderID)
	}

	now := time.Now()
	invoice := &entity.Invoice{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		EmployeeID: in.EmployeeID,
		OrderID:    in.OrderID,
		Date:       now,
		Total:      order.Total(), // instantánea: no se recalcula después
		Status:     entity.InvoiceStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.txRunner.RunInvoice(ctx, func(invoices repository.InvoiceRepository) error {
		seq, err := invoices.NextNumber(now.Year())
		if err != nil {
			return err
		}
		invoice.Number = entity.FormatInvoiceNumber(now.Year(), seq)
		return invoices.Create(invoice)
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// GetByID devuelve la factura o ErrNotFound.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	if !entity.ValidID(id) {
		return nil, fmt.Errorf("%w: id de factura malformado %q", domain.ErrInvalidInput, id)
	}
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(invoice), nil
}

// List devuelve facturas paginadas, las más recientes primero.
func (uc *InvoiceUseCase) List(limit, offset int) (*dto.InvoiceListResponse, error) {
	invoices, err := uc.invoiceRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, *toInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update parchea referencias (validadas), estado y total. No tiene efecto en
// cascada sobre el pedido, el cliente ni el empleado referenciados.
func (uc *InvoiceUseCase) Update(id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if !entity.ValidID(id) {
		return nil, fmt.Errorf("%w: id de factura malformado %q", domain.ErrInvalidInput, id)
	}
	for _, ref := range []*string{in.CustomerID, in.EmployeeID, in.OrderID} {
		if ref != nil && !entity.ValidID(*ref) {
			return nil, fmt.Errorf("%w: referencia malformada %q", domain.ErrInvalidInput, *ref)
		}
	}
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}

	if in.CustomerID != nil {
		customer, err := uc.customerRepo.GetByID(*in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, *in.CustomerID)
		}
		invoice.CustomerID = *in.CustomerID
	}
	if in.EmployeeID != nil {
		employee, err := uc.employeeRepo.GetByID(*in.EmployeeID)
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, fmt.Errorf("%w: empleado %s", domain.ErrNotFound, *in.EmployeeID)
		}
		invoice.EmployeeID = *in.EmployeeID
	}
	if in.OrderID != nil {
		order, err := uc.orderRepo.GetByID(*in.OrderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, *in.OrderID)
		}
		invoice.OrderID = *in.OrderID
	}
	if in.Status != nil {
		if !entity.ValidInvoiceStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		invoice.Status = *in.Status
	}
	if in.Total != nil {
		invoice.Total = *in.Total
	}
	invoice.UpdatedAt = time.Now()

	if err := uc.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// Remove elimina la factura sin tocar el pedido referenciado.
func (uc *InvoiceUseCase) Remove(id string) error {
	if !entity.ValidID(id) {
		return fmt.Errorf("%w: id de factura malformado %q", domain.ErrInvalidInput, id)
	}
	existed, err := uc.invoiceRepo.Delete(id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrNotFound
	}
	return nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		EmployeeID: inv.EmployeeID,
		OrderID:    inv.OrderID,
		Number:     inv.Number,
		Date:       inv.Date,
		Total:      inv.Total,
		Status:     inv.Status,
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
}
