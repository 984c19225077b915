package repository

import "github.com/tu-usuario/store-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) (*entity.Supplier, error)
	GetByID(id int64) (*entity.Supplier, error)
	GetByName(name string) (*entity.Supplier, error)
	List(limit, offset int) ([]entity.Supplier, error)
	Count() (int64, error)
	Search(term string, limit, offset int) ([]entity.Supplier, error)
	CountSearch(term string) (int64, error)
	Update(supplier *entity.Supplier) (*entity.Supplier, error)
	Delete(id int64) error
}
