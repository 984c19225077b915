package repository

import "github.com/tu-usuario/store-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas (DIP).
// Create persiste cabecera y detalles; el caso de uso decide la transacción.
type OrderRepository interface {
	Create(order *entity.Order) (*entity.Order, error)
	GetByID(id int64) (*entity.Order, error)
	List(limit, offset int) ([]entity.Order, error)
	Count() (int64, error)
	ListByUsername(username string, limit, offset int) ([]entity.Order, error)
	CountByUsername(username string) (int64, error)
	ListByShipper(shipperID int64, limit, offset int) ([]entity.Order, error)
	CountByShipper(shipperID int64) (int64, error)
	Update(order *entity.Order) (*entity.Order, error)
	Delete(id int64) error
}
