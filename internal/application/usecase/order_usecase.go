package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bakeapp-api/internal/application/dto"
	"github.com/jhoicas/bakeapp-api/internal/domain"
	"github.com/jhoicas/bakeapp-api/internal/domain/entity"
	"github.com/jhoicas/bakeapp-api/internal/domain/repository"
)

// OrderUseCase pedidos: creación validada y mutación en sitio.
// No existe borrado de pedidos.
type OrderUseCase struct {
	txRunner     OrderTxRunner
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
	productRepo  repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner OrderTxRunner,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	employeeRepo repository.EmployeeRepository,
	productRepo repository.ProductRepository,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		productRepo:  productRepo,
	}
}

// Create valida cliente y productos, congela precios y persiste cabecera +
// líneas en una transacción. Estado inicial: PENDING.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if !entity.ValidID(in.CustomerID) {
		return nil, fmt.Errorf("%w: id de cliente malformado %q", domain.ErrInvalidInput, in.CustomerID)
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.CustomerID)
	}

	items, err := uc.buildItems(in.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Items:      items,
		Status:     entity.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}

	err = uc.txRunner.RunOrder(ctx, func(orders repository.OrderRepository) error {
		return orders.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID devuelve el pedido con sus líneas, o ErrNotFound.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	if !entity.ValidID(id) {
		return nil, fmt.Errorf("%w: id de pedido malformado %q", domain.ErrInvalidInput, id)
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// List devuelve pedidos paginados; con customerID o employeeID filtra por el
// cliente dueño o el empleado asignado.
func (uc *OrderUseCase) List(customerID, employeeID string, limit, offset int) (*dto.OrderListResponse, error) {
	if customerID != "" && !entity.ValidID(customerID) {
		return nil, fmt.Errorf("%w: id de cliente malformado %q", domain.ErrInvalidInput, customerID)
	}
	if employeeID != "" && !entity.ValidID(employeeID) {
		return nil, fmt.Errorf("%w: id de empleado malformado %q", domain.ErrInvalidInput, employeeID)
	}
	var orders []*entity.Order
	var err error
	switch {
	case customerID != "":
		orders, err = uc.orderRepo.ListByCustomer(customerID)
	case employeeID != "":
		orders, err = uc.orderRepo.ListByEmployee(employeeID)
	default:
		orders, err = uc.orderRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update muta el pedido en sitio. El estado se sobrescribe sin validar la
// transición (cualquier estado es alcanzable); una lista de líneas no vacía
// reemplaza la colección completa tras validar cada producto.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if !entity.ValidID(id) {
		return nil, fmt.Errorf("%w: id de pedido malformado %q", domain.ErrInvalidInput, id)
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	if in.Status != nil {
		if !entity.ValidOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		order.Status = *in.Status
	}
	if in.HandledBy != nil {
		if *in.HandledBy != "" {
			if !entity.ValidID(*in.HandledBy) {
				return nil, fmt.Errorf("%w: id de empleado malformado %q", domain.ErrInvalidInput, *in.HandledBy)
			}
			employee, err := uc.employeeRepo.GetByID(*in.HandledBy)
			if err != nil {
				return nil, err
			}
			if employee == nil {
				return nil, fmt.Errorf("%w: empleado %s", domain.ErrNotFound, *in.HandledBy)
			}
		}
		order.HandledBy = *in.HandledBy
	}
	if in.DeliveryDate != nil {
		order.DeliveryDate = in.DeliveryDate
	}

	var newItems []entity.OrderItem
	if len(in.Items) > 0 {
		newItems, err = uc.buildItems(in.Items)
		if err != nil {
			return nil, err
		}
		for i := range newItems {
			newItems[i].OrderID = order.ID
		}
	}
	order.UpdatedAt = time.Now()

	err = uc.txRunner.RunOrder(ctx, func(orders repository.OrderRepository) error {
		if err := orders.Update(order); err != nil {
			return err
		}
		if newItems != nil {
			return orders.ReplaceItems(order.ID, newItems)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if newItems != nil {
		order.Items = newItems
	}
	return toOrderResponse(order), nil
}

// buildItems valida cada producto referenciado (nombrando el primero que
// falte) y congela el precio unitario: el enviado, o el de catálogo.
func (uc *OrderUseCase) buildItems(in []dto.OrderItemRequest) ([]entity.OrderItem, error) {
	items := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		if !entity.ValidID(it.ProductID) || it.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, it.ProductID)
		}
		price := product.Price
		if it.UnitPrice != nil && it.UnitPrice.GreaterThan(decimal.Zero) {
			price = *it.UnitPrice
		}
		items = append(items, entity.OrderItem{
			ID:        uuid.New().String(),
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: price,
		})
	}
	return items, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return &dto.OrderResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		Items:        items,
		Status:       o.Status,
		HandledBy:    o.HandledBy,
		DeliveryDate: o.DeliveryDate,
		Total:        o.Total(),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
