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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor y devuelve la fila con el ID asignado.
func (r *SupplierRepo) Create(supplier *entity.Supplier) (*entity.Supplier, error) {
	query := `
		INSERT INTO suppliers (name, phone, address)
		VALUES ($1, $2, $3)
		RETURNING id, name, phone, address`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, supplier.Name, supplier.Phone, supplier.Address).
		Scan(&s.ID, &s.Name, &s.Phone, &s.Address)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert supplier: %w", err)
	}
	return &s, nil
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	query := `SELECT id, name, phone, address FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.Name, &s.Phone, &s.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// GetByName obtiene un proveedor por nombre exacto. Devuelve (nil, nil) si no existe.
func (r *SupplierRepo) GetByName(name string) (*entity.Supplier, error) {
	query := `SELECT id, name, phone, address FROM suppliers WHERE name = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, name).Scan(&s.ID, &s.Name, &s.Phone, &s.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier by name: %w", err)
	}
	return &s, nil
}

// List lista proveedores con paginación, ordenados por ID.
func (r *SupplierRepo) List(limit, offset int) ([]entity.Supplier, error) {
	query := `SELECT id, name, phone, address FROM suppliers ORDER BY id LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// Count devuelve el total de proveedores.
func (r *SupplierRepo) Count() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM suppliers`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count suppliers: %w", err)
	}
	return n, nil
}

// Search busca por subcadena (case-insensitive) en nombre, teléfono y dirección.
func (r *SupplierRepo) Search(term string, limit, offset int) ([]entity.Supplier, error) {
	query := `
		SELECT id, name, phone, address FROM suppliers
		WHERE name ILIKE $1 OR phone ILIKE $1 OR address ILIKE $1
		ORDER BY id LIMIT $2 OFFSET $3`
	return r.list(query, "%"+term+"%", limit, offset)
}

// CountSearch cuenta las coincidencias de Search (mismo filtro).
func (r *SupplierRepo) CountSearch(term string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM suppliers WHERE name ILIKE $1 OR phone ILIKE $1 OR address ILIKE $1`,
		"%"+term+"%",
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count suppliers search: %w", err)
	}
	return n, nil
}

func (r *SupplierRepo) list(query string, args ...any) ([]entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	list := []entity.Supplier{}
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.Address); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor y devuelve la fila resultante. Devuelve (nil, nil) si no existe.
func (r *SupplierRepo) Update(supplier *entity.Supplier) (*entity.Supplier, error) {
	query := `
		UPDATE suppliers SET name = $2, phone = $3, address = $4
		WHERE id = $1
		RETURNING id, name, phone, address`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query,
		supplier.ID, supplier.Name, supplier.Phone, supplier.Address,
	).Scan(&s.ID, &s.Name, &s.Phone, &s.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update supplier: %w", err)
	}
	return &s, nil
}

// Delete elimina un proveedor por ID. Devuelve ErrConflict si tiene productos asociados.
func (r *SupplierRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
