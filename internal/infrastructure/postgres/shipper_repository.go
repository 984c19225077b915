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

var _ repository.ShipperRepository = (*ShipperRepo)(nil)

// ShipperRepo implementación del puerto ShipperRepository sobre PostgreSQL (usable con pool o tx).
type ShipperRepo struct {
	q Querier
}

// NewShipperRepository construye el adaptador de persistencia para transportadoras. Pasar pool o tx (Querier).
func NewShipperRepository(q Querier) *ShipperRepo {
	return &ShipperRepo{q: q}
}

// Create persiste una nueva transportadora y devuelve la fila con el ID asignado.
func (r *ShipperRepo) Create(shipper *entity.Shipper) (*entity.Shipper, error) {
	query := `
		INSERT INTO shippers (name, phone)
		VALUES ($1, $2)
		RETURNING id, name, phone`
	var s entity.Shipper
	err := r.q.QueryRow(context.Background(), query, shipper.Name, shipper.Phone).
		Scan(&s.ID, &s.Name, &s.Phone)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert shipper: %w", err)
	}
	return &s, nil
}

// GetByID obtiene una transportadora por ID. Devuelve (nil, nil) si no existe.
func (r *ShipperRepo) GetByID(id int64) (*entity.Shipper, error) {
	query := `SELECT id, name, phone FROM shippers WHERE id = $1`
	var s entity.Shipper
	err := r.q.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.Name, &s.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipper: %w", err)
	}
	return &s, nil
}

// GetByName obtiene una transportadora por nombre exacto. Devuelve (nil, nil) si no existe.
func (r *ShipperRepo) GetByName(name string) (*entity.Shipper, error) {
	query := `SELECT id, name, phone FROM shippers WHERE name = $1`
	var s entity.Shipper
	err := r.q.QueryRow(context.Background(), query, name).Scan(&s.ID, &s.Name, &s.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipper by name: %w", err)
	}
	return &s, nil
}

// List lista transportadoras con paginación, ordenadas por ID.
func (r *ShipperRepo) List(limit, offset int) ([]entity.Shipper, error) {
	query := `SELECT id, name, phone FROM shippers ORDER BY id LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// Count devuelve el total de transportadoras.
func (r *ShipperRepo) Count() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM shippers`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count shippers: %w", err)
	}
	return n, nil
}

// Search busca por subcadena (case-insensitive) en nombre y teléfono.
func (r *ShipperRepo) Search(term string, limit, offset int) ([]entity.Shipper, error) {
	query := `
		SELECT id, name, phone FROM shippers
		WHERE name ILIKE $1 OR phone ILIKE $1
		ORDER BY id LIMIT $2 OFFSET $3`
	return r.list(query, "%"+term+"%", limit, offset)
}

// CountSearch cuenta las coincidencias de Search (mismo filtro).
func (r *ShipperRepo) CountSearch(term string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM shippers WHERE name ILIKE $1 OR phone ILIKE $1`,
		"%"+term+"%",
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count shippers search: %w", err)
	}
	return n, nil
}

func (r *ShipperRepo) list(query string, args ...any) ([]entity.Shipper, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shippers: %w", err)
	}
	defer rows.Close()
	list := []entity.Shipper{}
	for rows.Next() {
		var s entity.Shipper
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone); err != nil {
			return nil, fmt.Errorf("scan shipper: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update actualiza una transportadora y devuelve la fila resultante. Devuelve (nil, nil) si no existe.
func (r *ShipperRepo) Update(shipper *entity.Shipper) (*entity.Shipper, error) {
	query := `
		UPDATE shippers SET name = $2, phone = $3
		WHERE id = $1
		RETURNING id, name, phone`
	var s entity.Shipper
	err := r.q.QueryRow(context.Background(), query, shipper.ID, shipper.Name, shipper.Phone).
		Scan(&s.ID, &s.Name, &s.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update shipper: %w", err)
	}
	return &s, nil
}

// Delete elimina una transportadora por ID. Devuelve ErrConflict si tiene órdenes asociadas.
func (r *ShipperRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM shippers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete shipper: %w", err)
	}
	return nil
}
