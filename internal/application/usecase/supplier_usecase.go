package usecase

import (
	"github.com/tu-usuario/store-api/internal/application/dto"
	"github.com/tu-usuario/store-api/internal/domain"
	"github.com/tu-usuario/store-api/internal/domain/entity"
	"github.com/tu-usuario/store-api/internal/domain/repository"
	"github.com/tu-usuario/store-api/pkg/validate"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo        repository.SupplierRepository
	productRepo repository.ProductRepository
	validator   *validate.Validator
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, productRepo repository.ProductRepository, validator *validate.Validator) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, productRepo: productRepo, validator: validator}
}

// Create crea un proveedor. Nombre duplicado → ErrDuplicate.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	in.Name = validate.NFC(in.Name)
	if existing, err := uc.repo.GetByName(in.Name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	created, err := uc.repo.Create(&entity.Supplier{Name: in.Name, Phone: in.Phone, Address: in.Address})
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(created), nil
}

// GetByID obtiene un proveedor. Devuelve (nil, nil) si no existe.
func (uc *SupplierUseCase) GetByID(id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil || supplier == nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetWithProducts obtiene un proveedor con sus productos (carga ansiosa, sin paginar).
func (uc *SupplierUseCase) GetWithProducts(id int64) (*dto.SupplierWithProductsResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil || supplier == nil {
		return nil, err
	}
	total, err := uc.productRepo.CountBySupplier(id)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListBySupplier(id, int(total), 0)
	if err != nil {
		return nil, err
	}
	return &dto.SupplierWithProductsResponse{
		SupplierResponse: *toSupplierResponse(supplier),
		Products:         toProductResponses(products),
	}, nil
}

// List lista proveedores paginados; con q filtra por subcadena (case-insensitive).
func (uc *SupplierUseCase) List(in dto.ListRequest) (*dto.PagedResponse, error) {
	if err := uc.validator.Struct(&in); err != nil {
		return nil, err
	}
	in.DefaultPage()
	var (
		list  []entity.Supplier
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
	items := make([]dto.SupplierResponse, 0, len(list))
	for i := range list {
		items = append(items, *toSupplierResponse(&list[i]))
	}
	return &dto.PagedResponse{Data: items, Paging: dto.NewPaging(in.Page, in.Size, total)}, nil
}

// Update actualiza parcialmente; si cambia el nombre re-verifica unicidad excluyendo la propia fila.
// Devuelve (nil, nil) si el proveedor no existe.
func (uc *SupplierUseCase) Update(id int64, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	supplier, err := uc.repo.GetByID(id)
	if err != nil || supplier == nil {
		return nil, err
	}
	if in.Name != nil {
		name := validate.NFC(*in.Name)
		if existing, err := uc.repo.GetByName(name); err != nil {
			return nil, err
		} else if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		supplier.Name = name
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Address != nil {
		supplier.Address = in.Address
	}
	updated, err := uc.repo.Update(supplier)
	if err != nil || updated == nil {
		return nil, err
	}
	return toSupplierResponse(updated), nil
}

// Delete elimina y devuelve la proyección previa al borrado. (nil, nil) si no existe.
func (uc *SupplierUseCase) Delete(id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil || supplier == nil {
		return nil, err
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{ID: s.ID, Name: s.Name, Phone: s.Phone, Address: s.Address}
}
