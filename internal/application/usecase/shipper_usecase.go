package usecase

import (
	"github.com/tu-usuario/store-api/internal/application/dto"
	"github.com/tu-usuario/store-api/internal/domain"
	"github.com/tu-usuario/store-api/internal/domain/entity"
	"github.com/tu-usuario/store-api/internal/domain/repository"
	"github.com/tu-usuario/store-api/pkg/validate"
)

// ShipperUseCase casos de uso CRUD para transportadoras.
type ShipperUseCase struct {
	repo      repository.ShipperRepository
	orderRepo repository.OrderRepository
	validator *validate.Validator
}

// NewShipperUseCase construye el caso de uso.
func NewShipperUseCase(repo repository.ShipperRepository, orderRepo repository.OrderRepository, validator *validate.Validator) *ShipperUseCase {
	return &ShipperUseCase{repo: repo, orderRepo: orderRepo, validator: validator}
}

// Create crea una transportadora. Nombre duplicado → ErrDuplicate.
func (uc *ShipperUseCase) Create(in dto.CreateShipperRequest) (*dto.ShipperResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	in.Name = validate.NFC(in.Name)
	if existing, err := uc.repo.GetByName(in.Name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	created, err := uc.repo.Create(&entity.Shipper{Name: in.Name, Phone: in.Phone})
	if err != nil {
		return nil, err
	}
	return toShipperResponse(created), nil
}

// GetByID obtiene una transportadora. Devuelve (nil, nil) si no existe.
func (uc *ShipperUseCase) GetByID(id int64) (*dto.ShipperResponse, error) {
	shipper, err := uc.repo.GetByID(id)
	if err != nil || shipper == nil {
		return nil, err
	}
	return toShipperResponse(shipper), nil
}

// GetWithOrders obtiene una transportadora con sus órdenes (carga ansiosa, sin paginar).
func (uc *ShipperUseCase) GetWithOrders(id int64) (*dto.ShipperWithOrdersResponse, error) {
	shipper, err := uc.repo.GetByID(id)
	if err != nil || shipper == nil {
		return nil, err
	}
	total, err := uc.orderRepo.CountByShipper(id)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.ListByShipper(id, int(total), 0)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, *toOrderResponse(&orders[i]))
	}
	return &dto.ShipperWithOrdersResponse{
		ShipperResponse: *toShipperResponse(shipper),
		Orders:          items,
	}, nil
}

// List lista transportadoras paginadas; con q filtra por subcadena (case-insensitive).
func (uc *ShipperUseCase) List(in dto.ListRequest) (*dto.PagedResponse, error) {
	if err := uc.validator.Struct(&in); err != nil {
		return nil, err
	}
	in.DefaultPage()
	var (
		list  []entity.Shipper
		total int64
		err   error
	)
	if q := validate.NFC(in.Q); q != "" {
		if total, err = uc.repo.CountSearch(q); err != nil {
			return nil, err
		}
		list, err = uc.repo.Search(q, in.Limit(), in.Offset())
	} else {
		if total, err = uc.repo.Count(); err != nil {
			return nil, err
		}
		list, err = uc.repo.List(in.Limit(), in.Offset())
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShipperResponse, 0, len(list))
	for i := range list {
		items = append(items, *toShipperResponse(&list[i]))
	}
	return &dto.PagedResponse{Data: items, Paging: dto.NewPaging(in.Page, in.Size, total)}, nil
}

// Update actualiza parcialmente; si cambia el nombre re-verifica unicidad excluyendo la propia fila.
// Devuelve (nil, nil) si la transportadora no existe.
func (uc *ShipperUseCase) Update(id int64, in dto.UpdateShipperRequest) (*dto.ShipperResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	shipper, err := uc.repo.GetByID(id)
	if err != nil || shipper == nil {
		return nil, err
	}
	if in.Name != nil {
		name := validate.NFC(*in.Name)
		if existing, err := uc.repo.GetByName(name); err != nil {
			return nil, err
		} else if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		shipper.Name = name
	}
	if in.Phone != nil {
		shipper.Phone = *in.Phone
	}
	updated, err := uc.repo.Update(shipper)
	if err != nil || updated == nil {
		return nil, err
	}
	return toShipperResponse(updated), nil
}

// Delete elimina y devuelve la proyección previa al borrado. (nil, nil) si no existe.
func (uc *ShipperUseCase) Delete(id int64) (*dto.ShipperResponse, error) {
	shipper, err := uc.repo.GetByID(id)
	if err != nil || shipper == nil {
		return nil, err
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toShipperResponse(shipper), nil
}

func toShipperResponse(s *entity.Shipper) *dto.ShipperResponse {
	if s == nil {
		return nil
	}
	return &dto.ShipperResponse{ID: s.ID, Name: s.Name, Phone: s.Phone}
}
