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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
// Las órdenes siempre se devuelven con sus líneas cargadas.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, username, shipper_id, status, shipping_price, order_date, required_date, shipped_date, comment`

// Create persiste la cabecera y todas sus líneas. Para atomicidad, construir el repo sobre una tx.
func (r *OrderRepo) Create(order *entity.Order) (*entity.Order, error) {
	query := `
		INSERT INTO orders (username, shipper_id, status, shipping_price, order_date, required_date, shipped_date, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + orderColumns
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query,
		order.Username, order.ShipperID, order.Status, order.ShippingPrice,
		order.OrderDate, order.RequiredDate, order.ShippedDate, order.Comment,
	).Scan(&o.ID, &o.Username, &o.ShipperID, &o.Status, &o.ShippingPrice,
		&o.OrderDate, &o.RequiredDate, &o.ShippedDate, &o.Comment)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("insert order: %w", err)
	}

	for _, d := range order.Details {
		var det entity.OrderDetail
		err := r.q.QueryRow(context.Background(), `
			INSERT INTO order_details (order_id, product_id, quantity_ordered, price_each)
			VALUES ($1, $2, $3, $4)
			RETURNING id, order_id, product_id, quantity_ordered, price_each`,
			o.ID, d.ProductID, d.QuantityOrdered, d.PriceEach,
		).Scan(&det.ID, &det.OrderID, &det.ProductID, &det.QuantityOrdered, &det.PriceEach)
		if err != nil {
			if isForeignKeyViolation(err) {
				return nil, domain.ErrNotFound
			}
			return nil, fmt.Errorf("insert order detail: %w", err)
		}
		o.Details = append(o.Details, det)
	}
	return &o, nil
}

// GetByID obtiene una orden por ID con sus líneas. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Username, &o.ShipperID, &o.Status, &o.ShippingPrice,
		&o.OrderDate, &o.RequiredDate, &o.ShippedDate, &o.Comment,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadDetails(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

// List lista órdenes con paginación, ordenadas por ID.
func (r *OrderRepo) List(limit, offset int) ([]entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY id LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// Count devuelve el total de órdenes.
func (r *OrderRepo) Count() (int64, error) {
	return r.count(`SELECT count(*) FROM orders`)
}

// ListByUsername lista las órdenes de un usuario con paginación.
func (r *OrderRepo) ListByUsername(username string, limit, offset int) ([]entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE username = $1 ORDER BY id LIMIT $2 OFFSET $3`
	return r.list(query, username, limit, offset)
}

// CountByUsername cuenta las órdenes de un usuario.
func (r *OrderRepo) CountByUsername(username string) (int64, error) {
	return r.count(`SELECT count(*) FROM orders WHERE username = $1`, username)
}

// ListByShipper lista las órdenes despachadas por una transportadora con paginación.
func (r *OrderRepo) ListByShipper(shipperID int64, limit, offset int) ([]entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE shipper_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	return r.list(query, shipperID, limit, offset)
}

// CountByShipper cuenta las órdenes de una transportadora.
func (r *OrderRepo) CountByShipper(shipperID int64) (int64, error) {
	return r.count(`SELECT count(*) FROM orders WHERE shipper_id = $1`, shipperID)
}

func (r *OrderRepo) count(query string, args ...any) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), query, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func (r *OrderRepo) list(query string, args ...any) ([]entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	list := []entity.Order{}
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.Username, &o.ShipperID, &o.Status, &o.ShippingPrice,
			&o.OrderDate, &o.RequiredDate, &o.ShippedDate, &o.Comment); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range list {
		if err := r.loadDetails(&list[i]); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *OrderRepo) loadDetails(o *entity.Order) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, order_id, product_id, quantity_ordered, price_each
		FROM order_details WHERE order_id = $1 ORDER BY id`, o.ID)
	if err != nil {
		return fmt.Errorf("list order details: %w", err)
	}
	defer rows.Close()
	o.Details = []entity.OrderDetail{}
	for rows.Next() {
		var d entity.OrderDetail
		if err := rows.Scan(&d.ID, &d.OrderID, &d.ProductID, &d.QuantityOrdered, &d.PriceEach); err != nil {
			return fmt.Errorf("scan order detail: %w", err)
		}
		o.Details = append(o.Details, d)
	}
	return rows.Err()
}

// Update actualiza los campos mutables de la cabecera (status, shipped_date, comment).
// Devuelve (nil, nil) si la orden no existe.
func (r *OrderRepo) Update(order *entity.Order) (*entity.Order, error) {
	query := `
		UPDATE orders SET status = $2, shipped_date = $3, comment = $4
		WHERE id = $1
		RETURNING ` + orderColumns
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query,
		order.ID, order.Status, order.ShippedDate, order.Comment,
	).Scan(&o.ID, &o.Username, &o.ShipperID, &o.Status, &o.ShippingPrice,
		&o.OrderDate, &o.RequiredDate, &o.ShippedDate, &o.Comment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update order: %w", err)
	}
	if err := r.loadDetails(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Delete elimina una orden y sus líneas (las líneas caen por ON DELETE CASCADE).
func (r *OrderRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
