package repository

import "github.com/tu-usuario/store-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) (*entity.Product, error)
	GetByID(id int64) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Filter(code, name, description string, limit, offset int) ([]entity.Product, error)
	CountFilter(code, name, description string) (int64, error)
	ListByCategory(categoryID int64, limit, offset int) ([]entity.Product, error)
	CountByCategory(categoryID int64) (int64, error)
	ListBySupplier(supplierID int64, limit, offset int) ([]entity.Product, error)
	CountBySupplier(supplierID int64) (int64, error)
	Search(term string, limit, offset int) ([]entity.Product, error)
	CountSearch(term string) (int64, error)
	Update(product *entity.Product) (*entity.Product, error)
	Delete(id int64) error
}
