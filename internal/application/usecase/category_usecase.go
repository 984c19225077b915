package usecase

import (
	"github.com/tu-usuario/store-api/internal/application/dto"
	"github.com/tu-usuario/store-api/internal/domain"
	"github.com/tu-usuario/store-api/internal/domain/entity"
	"github.com/tu-usuario/store-api/internal/domain/repository"
	"github.com/tu-usuario/store-api/pkg/validate"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo        repository.CategoryRepository
	productRepo repository.ProductRepository
	validator   *validate.Validator
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, productRepo repository.ProductRepository, validator *validate.Validator) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, productRepo: productRepo, validator: validator}
}

// Create crea una categoría. Nombre duplicado → ErrDuplicate.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	in.Name = validate.NFC(in.Name)
	if existing, err := uc.repo.GetByName(in.Name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	created, err := uc.repo.Create(&entity.Category{Name: in.Name, Description: in.Description})
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(created), nil
}

// GetByID obtiene una categoría. Devuelve (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil || category == nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetWithProducts obtiene una categoría con sus productos (carga ansiosa, sin paginar).
func (uc *CategoryUseCase) GetWithProducts(id int64) (*dto.CategoryWithProductsResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil || category == nil {
		return nil, err
	}
	total, err := uc.productRepo.CountByCategory(id)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListByCategory(id, int(total), 0)
	if err != nil {
		return nil, err
	}
	resp := &dto.CategoryWithProductsResponse{
		CategoryResponse: *toCategoryResponse(category),
		Products:         toProductResponses(products),
	}
	return resp, nil
}

// List lista categorías paginadas; con q filtra por subcadena (case-insensitive).
func (uc *CategoryUseCase) List(in dto.ListRequest) (*dto.PagedResponse, error) {
	if err := uc.validator.Struct(&in); err != nil {
		return nil, err
	}
	in.DefaultPage()
	var (
		list  []entity.Category
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
	items := make([]dto.CategoryResponse, 0, len(list))
	for i := range list {
		items = append(items, *toCategoryResponse(&list[i]))
	}
	return &dto.PagedResponse{Data: items, Paging: dto.NewPaging(in.Page, in.Size, total)}, nil
}

// Update actualiza parcialmente; si cambia el nombre re-verifica unicidad excluyendo la propia fila.
// Devuelve (nil, nil) si la categoría no existe.
func (uc *CategoryUseCase) Update(id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	category, err := uc.repo.GetByID(id)
	if err != nil || category == nil {
		return nil, err
	}
	if in.Name != nil {
		name := validate.NFC(*in.Name)
		if existing, err := uc.repo.GetByName(name); err != nil {
			return nil, err
		} else if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		category.Name = name
	}
	if in.Description != nil {
		category.Description = in.Description
	}
	updated, err := uc.repo.Update(category)
	if err != nil || updated == nil {
		return nil, err
	}
	return toCategoryResponse(updated), nil
}

// Delete elimina y devuelve la proyección previa al borrado. (nil, nil) si no existe.
func (uc *CategoryUseCase) Delete(id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil || category == nil {
		return nil, err
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}
