package repository

import "github.com/tu-usuario/store-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByToken(token string) (*entity.User, error)
	Update(user *entity.User) error
	UpdateToken(username string, token *string) error
	UpdatePassword(username, hash string) error
}
