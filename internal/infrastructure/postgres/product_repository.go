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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, code, name, price, description, quantity_in_stock, category_id, supplier_id`

// Create persiste un nuevo producto y devuelve la fila con el ID asignado.
func (r *ProductRepo) Create(product *entity.Product) (*entity.Product, error) {
	query := `
		INSERT INTO products (code, name, price, description, quantity_in_stock, category_id, supplier_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + productColumns
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query,
		product.Code, product.Name, product.Price, product.Description,
		product.QuantityInStock, product.CategoryID, product.SupplierID,
	).Scan(&p.ID, &p.Code, &p.Name, &p.Price, &p.Description, &p.QuantityInStock, &p.CategoryID, &p.SupplierID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return &p, nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.getOne(query, id)
}

// GetByCode obtiene un producto por código único. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1`
	return r.getOne(query, code)
}

// GetByName obtiene un producto por nombre exacto. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1`
	return r.getOne(query, name)
}

func (r *ProductRepo) getOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Code, &p.Name, &p.Price, &p.Description,
		&p.QuantityInStock, &p.CategoryID, &p.SupplierID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Filter lista productos aplicando filtros AND por subcadena (case-insensitive)
// sobre code, name y description; los filtros vacíos no restringen.
func (r *ProductRepo) Filter(code, name, description string, limit, offset int) ([]entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE code ILIKE $1 AND name ILIKE $2 AND description ILIKE $3
		ORDER BY id LIMIT $4 OFFSET $5`
	return r.list(query, "%"+code+"%", "%"+name+"%", "%"+description+"%", limit, offset)
}

// CountFilter cuenta las coincidencias de Filter (mismos filtros AND).
func (r *ProductRepo) CountFilter(code, name, description string) (int64, error) {
	return r.count(
		`SELECT count(*) FROM products WHERE code ILIKE $1 AND name ILIKE $2 AND description ILIKE $3`,
		"%"+code+"%", "%"+name+"%", "%"+description+"%",
	)
}

// ListByCategory lista productos de una categoría con paginación.
func (r *ProductRepo) ListByCategory(categoryID int64, limit, offset int) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	return r.list(query, categoryID, limit, offset)
}

// CountByCategory cuenta los productos de una categoría.
func (r *ProductRepo) CountByCategory(categoryID int64) (int64, error) {
	return r.count(`SELECT count(*) FROM products WHERE category_id = $1`, categoryID)
}

// ListBySupplier lista productos de un proveedor con paginación.
func (r *ProductRepo) ListBySupplier(supplierID int64, limit, offset int) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE supplier_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	return r.list(query, supplierID, limit, offset)
}

// CountBySupplier cuenta los productos de un proveedor.
func (r *ProductRepo) CountBySupplier(supplierID int64) (int64, error) {
	return r.count(`SELECT count(*) FROM products WHERE supplier_id = $1`, supplierID)
}

// Search busca por subcadena (case-insensitive) en código, nombre y descripción.
func (r *ProductRepo) Search(term string, limit, offset int) ([]entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE code ILIKE $1 OR name ILIKE $1 OR description ILIKE $1
		ORDER BY id LIMIT $2 OFFSET $3`
	return r.list(query, "%"+term+"%", limit, offset)
}

// CountSearch cuenta las coincidencias de Search (mismo filtro).
func (r *ProductRepo) CountSearch(term string) (int64, error) {
	return r.count(
		`SELECT count(*) FROM products WHERE code ILIKE $1 OR name ILIKE $1 OR description ILIKE $1`,
		"%"+term+"%",
	)
}

func (r *ProductRepo) count(query string, args ...any) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), query, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r *ProductRepo) list(query string, args ...any) ([]entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := []entity.Product{}
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Price, &p.Description,
			&p.QuantityInStock, &p.CategoryID, &p.SupplierID); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un producto y devuelve la fila resultante. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) Update(product *entity.Product) (*entity.Product, error) {
	query := `
		UPDATE products SET code = $2, name = $3, price = $4, description = $5,
			quantity_in_stock = $6, category_id = $7, supplier_id = $8
		WHERE id = $1
		RETURNING ` + productColumns
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query,
		product.ID, product.Code, product.Name, product.Price, product.Description,
		product.QuantityInStock, product.CategoryID, product.SupplierID,
	).Scan(&p.ID, &p.Code, &p.Name, &p.Price, &p.Description, &p.QuantityInStock, &p.CategoryID, &p.SupplierID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &p, nil
}

// Delete elimina un producto por ID. Devuelve ErrConflict si tiene líneas de orden asociadas.
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
