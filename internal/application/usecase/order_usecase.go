package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/store-api/internal/application/dto"
	"github.com/tu-usuario/store-api/internal/domain"
	"github.com/tu-usuario/store-api/internal/domain/entity"
	"github.com/tu-usuario/store-api/internal/domain/repository"
	"github.com/tu-usuario/store-api/pkg/validate"
)

// OrderTxRunner ejecuta fn con repos atados a una misma transacción: la creación
// de la orden (chequeo de stock + cabecera + líneas) es todo-o-nada.
type OrderTxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		shipperRepo repository.ShipperRepository,
	) error) error
}

// ReceiptGenerator puerto de salida para el recibo PDF de una orden.
type ReceiptGenerator interface {
	OrderReceipt(order *entity.Order, user *entity.User, shipper *entity.Shipper, products map[int64]entity.Product) ([]byte, error)
}

// OrderUseCase casos de uso para órdenes: creación transaccional, consulta con
// control de dueño, actualización según rol y recibo PDF.
type OrderUseCase struct {
	repo        repository.OrderRepository
	shipperRepo repository.ShipperRepository
	productRepo repository.ProductRepository
	txRunner    OrderTxRunner
	receipts    ReceiptGenerator
	validator   *validate.Validator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	repo repository.OrderRepository,
	shipperRepo repository.ShipperRepository,
	productRepo repository.ProductRepository,
	txRunner OrderTxRunner,
	receipts ReceiptGenerator,
	validator *validate.Validator,
) *OrderUseCase {
	return &OrderUseCase{
		repo:        repo,
		shipperRepo: shipperRepo,
		productRepo: productRepo,
		txRunner:    txRunner,
		receipts:    receipts,
		validator:   validator,
	}
}

// Create crea una orden con sus líneas dentro de una transacción. Verifica que la
// transportadora exista (NotFoundError que la nombra) y que cada producto exista con
// stock suficiente (ValidationError nombrando el producto). El stock no se descuenta aquí.
func (uc *OrderUseCase) Create(ctx context.Context, user *entity.User, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusInProcess
	}
	orderDate := time.Now()
	if in.OrderDate != nil {
		if in.OrderDate.After(time.Now()) {
			return nil, domain.NewValidationError("orderDate no puede estar en el futuro")
		}
		orderDate = *in.OrderDate
	}

	var created *entity.Order
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		shipperRepo repository.ShipperRepository,
	) error {
		shipper, err := shipperRepo.GetByID(in.ShipperID)
		if err != nil {
			return err
		}
		if shipper == nil {
			return domain.NewNotFoundError("la transportadora %d no existe", in.ShipperID)
		}
		details := make([]entity.OrderDetail, 0, len(in.OrderDetail))
		for _, line := range in.OrderDetail {
			product, err := productRepo.GetByID(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.NewValidationError(fmt.Sprintf("Product %d not found", line.ProductID))
			}
			if product.QuantityInStock < line.QuantityOrdered {
				return domain.NewValidationError(fmt.Sprintf("Product %d not enough in stock", line.ProductID))
			}
			details = append(details, entity.OrderDetail{
				ProductID:       line.ProductID,
				QuantityOrdered: line.QuantityOrdered,
				PriceEach:       line.PriceEach,
			})
		}
		created, err = orderRepo.Create(&entity.Order{
			Username:      user.Username,
			ShipperID:     in.ShipperID,
			Status:        status,
			ShippingPrice: in.ShippingPrice,
			OrderDate:     orderDate,
			RequiredDate:  in.RequiredDate,
			ShippedDate:   in.ShippedDate,
			Comment:       in.Comment,
			Details:       details,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(created), nil
}

// GetByID obtiene una orden. Solo el dueño o un admin la ven; para el resto la
// orden no existe ((nil, nil), no se revela su existencia).
func (uc *OrderUseCase) GetByID(user *entity.User, id int64) (*dto.OrderResponse, error) {
	order, err := uc.loadOwned(user, id)
	if err != nil || order == nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista órdenes paginadas: un admin ve todas, un usuario solo las propias.
func (uc *OrderUseCase) List(user *entity.User, in dto.PageRequest) (*dto.PagedResponse, error) {
	if err := uc.validator.Struct(&in); err != nil {
		return nil, err
	}
	in.DefaultPage()
	var (
		list  []entity.Order
		total int64
		err   error
	)
	if user.IsAdmin() {
		if total, err = uc.repo.Count(); err != nil {
			return nil, err
		}
		list, err = uc.repo.List(in.Limit(), in.Offset())
	} else {
		if total, err = uc.repo.CountByUsername(user.Username); err != nil {
			return nil, err
		}
		list, err = uc.repo.ListByUsername(user.Username, in.Limit(), in.Offset())
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for i := range list {
		items = append(items, *toOrderResponse(&list[i]))
	}
	return &dto.PagedResponse{Data: items, Paging: dto.NewPaging(in.Page, in.Size, total)}, nil
}

// Update actualiza una orden según el rol: un usuario solo puede cambiar comment
// (status/shippedDate → ErrForbidden); un admin puede cambiar los tres campos.
// Devuelve (nil, nil) si la orden no existe o no es visible para el usuario.
func (uc *OrderUseCase) Update(user *entity.User, id int64, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	order, err := uc.loadOwned(user, id)
	if err != nil || order == nil {
		return nil, err
	}
	if !user.IsAdmin() && (in.Status != nil || in.ShippedDate != nil) {
		return nil, domain.ErrForbidden
	}
	if in.Status != nil {
		order.Status = *in.Status
	}
	if in.ShippedDate != nil {
		order.ShippedDate = in.ShippedDate
	}
	if in.Comment != nil {
		order.Comment = in.Comment
	}
	updated, err := uc.repo.Update(order)
	if err != nil || updated == nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}

// Receipt genera el recibo PDF de una orden visible para el usuario.
// Devuelve (nil, nil) si la orden no existe o no le pertenece.
func (uc *OrderUseCase) Receipt(user *entity.User, id int64) ([]byte, error) {
	order, err := uc.loadOwned(user, id)
	if err != nil || order == nil {
		return nil, err
	}
	shipper, err := uc.shipperRepo.GetByID(order.ShipperID)
	if err != nil {
		return nil, err
	}
	products := make(map[int64]entity.Product, len(order.Details))
	for _, d := range order.Details {
		product, err := uc.productRepo.GetByID(d.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			products[d.ProductID] = *product
		}
	}
	return uc.receipts.OrderReceipt(order, user, shipper, products)
}

// loadOwned carga la orden y aplica visibilidad: dueño o admin.
func (uc *OrderUseCase) loadOwned(user *entity.User, id int64) (*entity.Order, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil || order == nil {
		return nil, err
	}
	if !user.IsAdmin() && order.Username != user.Username {
		return nil, nil
	}
	return order, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	details := make([]dto.OrderDetailResponse, 0, len(o.Details))
	for _, d := range o.Details {
		details = append(details, dto.OrderDetailResponse{
			ID:              d.ID,
			ProductID:       d.ProductID,
			QuantityOrdered: d.QuantityOrdered,
			PriceEach:       d.PriceEach,
		})
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		Username:      o.Username,
		ShipperID:     o.ShipperID,
		Status:        o.Status,
		ShippingPrice: o.ShippingPrice,
		OrderDate:     o.OrderDate,
		RequiredDate:  o.RequiredDate,
		ShippedDate:   o.ShippedDate,
		Comment:       o.Comment,
		OrderDetail:   details,
	}
}
