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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría y devuelve la fila con el ID asignado.
func (r *CategoryRepo) Create(category *entity.Category) (*entity.Category, error) {
	query := `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, category.Name, category.Description).
		Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return &c, nil
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	query := `SELECT id, name, description FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// GetByName obtiene una categoría por nombre exacto. Devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	query := `SELECT id, name, description FROM categories WHERE name = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, name).Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return &c, nil
}

// List lista categorías con paginación, ordenadas por ID.
func (r *CategoryRepo) List(limit, offset int) ([]entity.Category, error) {
	query := `SELECT id, name, description FROM categories ORDER BY id LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// Count devuelve el total de categorías.
func (r *CategoryRepo) Count() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM categories`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

// Search busca por subcadena (case-insensitive) en nombre y descripción.
func (r *CategoryRepo) Search(term string, limit, offset int) ([]entity.Category, error) {
	query := `
		SELECT id, name, description FROM categories
		WHERE name ILIKE $1 OR description ILIKE $1
		ORDER BY id LIMIT $2 OFFSET $3`
	return r.list(query, "%"+term+"%", limit, offset)
}

// CountSearch cuenta las coincidencias de Search (mismo filtro).
func (r *CategoryRepo) CountSearch(term string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM categories WHERE name ILIKE $1 OR description ILIKE $1`,
		"%"+term+"%",
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count categories search: %w", err)
	}
	return n, nil
}

func (r *CategoryRepo) list(query string, args ...any) ([]entity.Category, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	list := []entity.Category{}
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría y devuelve la fila resultante. Devuelve (nil, nil) si no existe.
func (r *CategoryRepo) Update(category *entity.Category) (*entity.Category, error) {
	query := `
		UPDATE categories SET name = $2, description = $3
		WHERE id = $1
		RETURNING id, name, description`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, category.ID, category.Name, category.Description).
		Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return &c, nil
}

// Delete elimina una categoría por ID. Devuelve ErrConflict si tiene productos asociados.
func (r *CategoryRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
