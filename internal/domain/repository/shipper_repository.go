package repository

import "github.com/tu-usuario/store-api/internal/domain/entity"

// ShipperRepository define el puerto de persistencia para Shipper (DIP).
type ShipperRepository interface {
	Create(shipper *entity.Shipper) (*entity.Shipper, error)
	GetByID(id int64) (*entity.Shipper, error)
	GetByName(name string) (*entity.Shipper, error)
	List(limit, offset int) ([]entity.Shipper, error)
	Count() (int64, error)
	Search(term string, limit, offset int) ([]entity.Shipper, error)
	CountSearch(term string) (int64, error)
	Update(shipper *entity.Shipper) (*entity.Shipper, error)
	Delete(id int64) error
}
