package usecase_test

import (
	"context"
	"strings"

	"github.com/tu-usuario/store-api/internal/domain/entity"
	"github.com/tu-usuario/store-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Cada uno asigna IDs
// secuenciales y devuelve copias para que los tests no muten el "almacén".

// ──────────────────────────────────────────────────────────────────────────────
// Category
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	seq   int64
	items []entity.Category
}

func (r *fakeCategoryRepo) Create(c *entity.Category) (*entity.Category, error) {
	r.seq++
	cp := *c
	cp.ID = r.seq
	r.items = append(r.items, cp)
	out := cp
	return &out, nil
}

func (r *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			cp := r.items[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for i := range r.items {
		if r.items[i].Name == name {
			cp := r.items[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List(limit, offset int) ([]entity.Category, error) {
	return pageOf(r.items, limit, offset), nil
}

func (r *fakeCategoryRepo) Count() (int64, error) { return int64(len(r.items)), nil }

func (r *fakeCategoryRepo) Search(term string, limit, offset int) ([]entity.Category, error) {
	var hits []entity.Category
	for _, c := range r.items {
		if containsFold(c.Name, term) {
			hits = append(hits, c)
		}
	}
	return pageOf(hits, limit, offset), nil
}

func (r *fakeCategoryRepo) CountSearch(term string) (int64, error) {
	hits, _ := r.Search(term, len(r.items), 0)
	return int64(len(hits)), nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) (*entity.Category, error) {
	for i := range r.items {
		if r.items[i].ID == c.ID {
			r.items[i] = *c
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Delete(id int64) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Supplier
// ──────────────────────────────────────────────────────────────────────────────

type fakeSupplierRepo struct {
	seq   int64
	items []entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) (*entity.Supplier, error) {
	r.seq++
	cp := *s
	cp.ID = r.seq
	r.items = append(r.items, cp)
	out := cp
	return &out, nil
}

func (r *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			cp := r.items[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) GetByName(name string) (*entity.Supplier, error) {
	for i := range r.items {
		if r.items[i].Name == name {
			cp := r.items[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) List(limit, offset int) ([]entity.Supplier, error) {
	return pageOf(r.items, limit, offset), nil
}

func (r *fakeSupplierRepo) Count() (int64, error) { return int64(len(r.items)), nil }

func (r *fakeSupplierRepo) Search(term string, limit, offset int) ([]entity.Supplier, error) {
	var hits []entity.Supplier
	for _, s := range r.items {
		if containsFold(s.Name, term) {
			hits = append(hits, s)
		}
	}
	return pageOf(hits, limit, offset), nil
}

func (r *fakeSupplierRepo) CountSearch(term string) (int64, error) {
	hits, _ := r.Search(term, len(r.items), 0)
	return int64(len(hits)), nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) (*entity.Supplier, error) {
	for i := range r.items {
		if r.items[i].ID == s.ID {
			r.items[i] = *s
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) Delete(id int64) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Shipper
// ──────────────────────────────────────────────────────────────────────────────

type fakeShipperRepo struct {
	seq   int64
	items []entity.Shipper
}

func (r *fakeShipperRepo) Create(s *entity.Shipper) (*entity.Shipper, error) {
	r.seq++
	cp := *s
	cp.ID = r.seq
	r.items = append(r.items, cp)
	out := cp
	return &out, nil
}

func (r *fakeShipperRepo) GetByID(id int64) (*entity.Shipper, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			cp := r.items[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeShipperRepo) GetByName(name string) (*entity.Shipper, error) {
	for i := range r.items {
		if r.items[i].Name == name {
			cp := r.items[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeShipperRepo) List(limit, offset int) ([]entity.Shipper, error) {
	return pageOf(r.items, limit, offset), nil
}

func (r *fakeShipperRepo) Count() (int64, error) { return int64(len(r.items)), nil }

func (r *fakeShipperRepo) Search(term string, limit, offset int) ([]entity.Shipper, error) {
	var hits []entity.Shipper
	for _, s := range r.items {
		if containsFold(s.Name, term) {
			hits = append(hits, s)
		}
	}
	return pageOf(hits, limit, offset), nil
}

func (r *fakeShipperRepo) CountSearch(term string) (int64, error) {
	hits, _ := r.Search(term, len(r.items), 0)
	return int64(len(hits)), nil
}

func (r *fakeShipperRepo) Update(s *entity.Shipper) (*entity.Shipper, error) {
	for i := range r.items {
		if r.items[i].ID == s.ID {
			r.items[i] = *s
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeShipperRepo) Delete(id int64) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Product
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	seq   int64
	items []entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) (*entity.Product, error) {
	r.seq++
	cp := *p
	cp.ID = r.seq
	r.items = append(r.items, cp)
	out := cp
	return &out, nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			cp := r.items[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for i := range r.items {
		if r.items[i].Code == code {
			cp := r.items[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for i := range r.items {
		if r.items[i].Name == name {
			cp := r.items[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Filter(code, name, description string, limit, offset int) ([]entity.Product, error) {
	var hits []entity.Product
	for _, p := range r.items {
		if containsFold(p.Code, code) && containsFold(p.Name, name) && containsFold(p.Description, description) {
			hits = append(hits, p)
		}
	}
	return pageOf(hits, limit, offset), nil
}

func (r *fakeProductRepo) CountFilter(code, name, description string) (int64, error) {
	hits, _ := r.Filter(code, name, description, len(r.items), 0)
	return int64(len(hits)), nil
}

func (r *fakeProductRepo) ListByCategory(categoryID int64, limit, offset int) ([]entity.Product, error) {
	var hits []entity.Product
	for _, p := range r.items {
		if p.CategoryID == categoryID {
			hits = append(hits, p)
		}
	}
	return pageOf(hits, limit, offset), nil
}

func (r *fakeProductRepo) CountByCategory(categoryID int64) (int64, error) {
	hits, _ := r.ListByCategory(categoryID, len(r.items), 0)
	return int64(len(hits)), nil
}

func (r *fakeProductRepo) ListBySupplier(supplierID int64, limit, offset int) ([]entity.Product, error) {
	var hits []entity.Product
	for _, p := range r.items {
		if p.SupplierID == supplierID {
			hits = append(hits, p)
		}
	}
	return pageOf(hits, limit, offset), nil
}

func (r *fakeProductRepo) CountBySupplier(supplierID int64) (int64, error) {
	hits, _ := r.ListBySupplier(supplierID, len(r.items), 0)
	return int64(len(hits)), nil
}

func (r *fakeProductRepo) Search(term string, limit, offset int) ([]entity.Product, error) {
	var hits []entity.Product
	for _, p := range r.items {
		if containsFold(p.Code, term) || containsFold(p.Name, term) || containsFold(p.Description, term) {
			hits = append(hits, p)
		}
	}
	return pageOf(hits, limit, offset), nil
}

func (r *fakeProductRepo) CountSearch(term string) (int64, error) {
	hits, _ := r.Search(term, len(r.items), 0)
	return int64(len(hits)), nil
}

func (r *fakeProductRepo) Update(p *entity.Product) (*entity.Product, error) {
	for i := range r.items {
		if r.items[i].ID == p.ID {
			r.items[i] = *p
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Order
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	seq    int64
	detSeq int64
	items  []entity.Order
}

func (r *fakeOrderRepo) Create(o *entity.Order) (*entity.Order, error) {
	r.seq++
	cp := *o
	cp.ID = r.seq
	cp.Details = make([]entity.OrderDetail, len(o.Details))
	for i, d := range o.Details {
		r.detSeq++
		d.ID = r.detSeq
		d.OrderID = cp.ID
		cp.Details[i] = d
	}
	r.items = append(r.items, cp)
	out := cp
	return &out, nil
}

func (r *fakeOrderRepo) GetByID(id int64) (*entity.Order, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			cp := r.items[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) List(limit, offset int) ([]entity.Order, error) {
	return pageOf(r.items, limit, offset), nil
}

func (r *fakeOrderRepo) Count() (int64, error) { return int64(len(r.items)), nil }

func (r *fakeOrderRepo) ListByUsername(username string, limit, offset int) ([]entity.Order, error) {
	var hits []entity.Order
	for _, o := range r.items {
		if o.Username == username {
			hits = append(hits, o)
		}
	}
	return pageOf(hits, limit, offset), nil
}

func (r *fakeOrderRepo) CountByUsername(username string) (int64, error) {
	hits, _ := r.ListByUsername(username, len(r.items), 0)
	return int64(len(hits)), nil
}

func (r *fakeOrderRepo) ListByShipper(shipperID int64, limit, offset int) ([]entity.Order, error) {
	var hits []entity.Order
	for _, o := range r.items {
		if o.ShipperID == shipperID {
			hits = append(hits, o)
		}
	}
	return pageOf(hits, limit, offset), nil
}

func (r *fakeOrderRepo) CountByShipper(shipperID int64) (int64, error) {
	hits, _ := r.ListByShipper(shipperID, len(r.items), 0)
	return int64(len(hits)), nil
}

func (r *fakeOrderRepo) Update(o *entity.Order) (*entity.Order, error) {
	for i := range r.items {
		if r.items[i].ID == o.ID {
			r.items[i] = *o
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) Delete(id int64) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeTxRunner ejecuta fn sobre los fakes y simula el rollback: si fn falla,
// restaura las órdenes al estado previo.
type fakeTxRunner struct {
	orders   *fakeOrderRepo
	products *fakeProductRepo
	shippers *fakeShipperRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	shipperRepo repository.ShipperRepository,
) error) error {
	snapshot := make([]entity.Order, len(tx.orders.items))
	copy(snapshot, tx.orders.items)
	seq, detSeq := tx.orders.seq, tx.orders.detSeq

	if err := fn(tx.orders, tx.products, tx.shippers); err != nil {
		tx.orders.items = snapshot
		tx.orders.seq, tx.orders.detSeq = seq, detSeq
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Utilidades
// ──────────────────────────────────────────────────────────────────────────────

// pageOf recorta una página [offset, offset+limit) de un slice.
func pageOf[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// containsFold emula ILIKE '%term%': subcadena case-insensitive; término vacío no restringe.
func containsFold(s, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}
