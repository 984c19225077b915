package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/store-api/internal/domain"
	"github.com/tu-usuario/store-api/internal/domain/entity"
	"github.com/tu-usuario/store-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `username, password, name, email, phone, address, token, role`

// Create persiste un nuevo usuario. La contraseña llega ya hasheada.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (username, password, name, email, phone, address, token, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		user.Username, user.Password, user.Name, user.Email,
		user.Phone, user.Address, user.Token, user.Role,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByUsername obtiene un usuario por username. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.getOne(query, username)
}

// GetByEmail obtiene un usuario por email. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(query, email)
}

// GetByToken obtiene el usuario dueño de un token de sesión. Devuelve (nil, nil) si no hay sesión con ese token.
func (r *UserRepo) GetByToken(token string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE token = $1`
	return r.getOne(query, token)
}

func (r *UserRepo) getOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.Username, &u.Password, &u.Name, &u.Email,
		&u.Phone, &u.Address, &u.Token, &u.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update actualiza los datos de perfil. No toca password ni token (tienen sus propios métodos).
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, email = $3, phone = $4, address = $5
		WHERE username = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		user.Username, user.Name, user.Email, user.Phone, user.Address,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateToken fija o limpia el token de sesión (nil = cerrar sesión).
func (r *UserRepo) UpdateToken(username string, token *string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE users SET token = $2 WHERE username = $1`,
		username, token,
	)
	if err != nil {
		return fmt.Errorf("update token: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdatePassword reemplaza el hash de la contraseña.
func (r *UserRepo) UpdatePassword(username, hash string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE users SET password = $2 WHERE username = $1`,
		username, hash,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
