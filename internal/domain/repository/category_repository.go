package repository

import "github.com/tu-usuario/store-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) (*entity.Category, error)
	GetByID(id int64) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	List(limit, offset int) ([]entity.Category, error)
	Count() (int64, error)
	Search(term string, limit, offset int) ([]entity.Category, error)
	CountSearch(term string) (int64, error)
	Update(category *entity.Category) (*entity.Category, error)
	Delete(id int64) error
}
