package usecase

import (
	"github.com/tu-usuario/store-api/internal/application/dto"
	"github.com/tu-usuario/store-api/internal/domain"
	"github.com/tu-usuario/store-api/internal/domain/entity"
	"github.com/tu-usuario/store-api/internal/domain/repository"
	"github.com/tu-usuario/store-api/pkg/validate"
)

// ProductUseCase casos de uso CRUD, filtrado y búsqueda para productos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	validator    *validate.Validator
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	validator *validate.Validator,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, supplierRepo: supplierRepo, validator: validator}
}

// Create crea un producto: código y nombre únicos, categoría y proveedor deben existir.
// Duplicado → ErrDuplicate; FK ausente → NotFoundError que nombra la referencia.
// Nada se persiste si falla una precondición.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	in.Code = validate.NFC(in.Code)
	in.Name = validate.NFC(in.Name)

	if existing, err := uc.repo.GetByCode(in.Code); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, err := uc.repo.GetByName(in.Name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if category, err := uc.categoryRepo.GetByID(in.CategoryID); err != nil {
		return nil, err
	} else if category == nil {
		return nil, domain.NewNotFoundError("la categoría %d no existe", in.CategoryID)
	}
	if supplier, err := uc.supplierRepo.GetByID(in.SupplierID); err != nil {
		return nil, err
	} else if supplier == nil {
		return nil, domain.NewNotFoundError("el proveedor %d no existe", in.SupplierID)
	}

	created, err := uc.repo.Create(&entity.Product{
		Code:            in.Code,
		Name:            in.Name,
		Price:           in.Price,
		Description:     in.Description,
		QuantityInStock: in.QuantityInStock,
		CategoryID:      in.CategoryID,
		SupplierID:      in.SupplierID,
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(created), nil
}

// GetByID obtiene un producto. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Filter lista productos con filtros AND por subcadena sobre code/name/description,
// paginados. Los filtros ausentes no restringen.
func (uc *ProductUseCase) Filter(in dto.FilterProductsRequest) (*dto.PagedResponse, error) {
	if err := uc.validator.Struct(&in); err != nil {
		return nil, err
	}
	in.DefaultPage()
	code := validate.NFC(in.Code)
	name := validate.NFC(in.Name)
	description := validate.NFC(in.Description)

	total, err := uc.repo.CountFilter(code, name, description)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.Filter(code, name, description, in.Limit(), in.Offset())
	if err != nil {
		return nil, err
	}
	return &dto.PagedResponse{Data: toProductResponses(list), Paging: dto.NewPaging(in.Page, in.Size, total)}, nil
}

// Search búsqueda simple: q por subcadena OR sobre code, name y description.
func (uc *ProductUseCase) Search(in dto.SearchRequest) (*dto.PagedResponse, error) {
	if err := uc.validator.Struct(&in); err != nil {
		return nil, err
	}
	in.DefaultPage()
	q := validate.NFC(in.Q)
	total, err := uc.repo.CountSearch(q)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.Search(q, in.Limit(), in.Offset())
	if err != nil {
		return nil, err
	}
	return &dto.PagedResponse{Data: toProductResponses(list), Paging: dto.NewPaging(in.Page, in.Size, total)}, nil
}

// Update actualiza parcialmente. Re-verifica unicidad de code/name excluyendo la propia
// fila y existencia de FKs si vienen en el payload. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}
	if in.Code != nil {
		code := validate.NFC(*in.Code)
		if existing, err := uc.repo.GetByCode(code); err != nil {
			return nil, err
		} else if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		product.Code = code
	}
	if in.Name != nil {
		name := validate.NFC(*in.Name)
		if existing, err := uc.repo.GetByName(name); err != nil {
			return nil, err
		} else if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		product.Name = name
	}
	if in.CategoryID != nil {
		if category, err := uc.categoryRepo.GetByID(*in.CategoryID); err != nil {
			return nil, err
		} else if category == nil {
			return nil, domain.NewNotFoundError("la categoría %d no existe", *in.CategoryID)
		}
		product.CategoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		if supplier, err := uc.supplierRepo.GetByID(*in.SupplierID); err != nil {
			return nil, err
		} else if supplier == nil {
			return nil, domain.NewNotFoundError("el proveedor %d no existe", *in.SupplierID)
		}
		product.SupplierID = *in.SupplierID
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.QuantityInStock != nil {
		product.QuantityInStock = *in.QuantityInStock
	}
	updated, err := uc.repo.Update(product)
	if err != nil || updated == nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// Delete elimina y devuelve la proyección previa al borrado. (nil, nil) si no existe.
func (uc *ProductUseCase) Delete(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		Code:            p.Code,
		Name:            p.Name,
		Price:           p.Price,
		Description:     p.Description,
		QuantityInStock: p.QuantityInStock,
		CategoryID:      p.CategoryID,
		SupplierID:      p.SupplierID,
	}
}

func toProductResponses(list []entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for i := range list {
		items = append(items, *toProductResponse(&list[i]))
	}
	return items
}
