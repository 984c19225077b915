package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/store-api/internal/application/dto"
	"github.com/tu-usuario/store-api/internal/application/usecase"
	"github.com/tu-usuario/store-api/internal/domain"
	"github.com/tu-usuario/store-api/internal/domain/entity"
	"github.com/tu-usuario/store-api/pkg/validate"
)

// fakeReceipts evita depender del motor PDF en los tests del caso de uso.
type fakeReceipts struct{}

func (fakeReceipts) OrderReceipt(*entity.Order, *entity.User, *entity.Shipper, map[int64]entity.Product) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

type orderFixture struct {
	uc        *usecase.OrderUseCase
	orders    *fakeOrderRepo
	products  *fakeProductRepo
	shippers  *fakeShipperRepo
	shipperID int64
	productID int64
	cliente   *entity.User
	admin     *entity.User
}

// newOrderFixture arma el caso de uso con una transportadora y un producto
// con 10 unidades en stock.
func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	orders := &fakeOrderRepo{}
	products := &fakeProductRepo{}
	shippers := &fakeShipperRepo{}

	sh, err := shippers.Create(&entity.Shipper{Name: "Envíos Rápidos", Phone: "3000000000"})
	require.NoError(t, err)
	p, err := products.Create(&entity.Product{
		Code:            "TEC-001",
		Name:            "Teclado",
		Price:           decimal.NewFromInt(2500),
		QuantityInStock: 10,
		CategoryID:      1,
		SupplierID:      1,
	})
	require.NoError(t, err)

	tx := &fakeTxRunner{orders: orders, products: products, shippers: shippers}
	return &orderFixture{
		uc:        usecase.NewOrderUseCase(orders, shippers, products, tx, fakeReceipts{}, validate.New()),
		orders:    orders,
		products:  products,
		shippers:  shippers,
		shipperID: sh.ID,
		productID: p.ID,
		cliente:   &entity.User{Username: "cliente", Role: entity.RoleUser},
		admin:     &entity.User{Username: "admin", Role: entity.RoleAdmin},
	}
}

func (f *orderFixture) createRequest(qty int) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		ShipperID:     f.shipperID,
		ShippingPrice: decimal.NewFromInt(300),
		RequiredDate:  time.Now().Add(72 * time.Hour),
		OrderDetail: []dto.OrderDetailRequest{
			{ProductID: f.productID, QuantityOrdered: qty, PriceEach: decimal.NewFromInt(2500)},
		},
	}
}

// crearOrden da de alta una orden del cliente para los tests de consulta/actualización.
func crearOrden(t *testing.T, f *orderFixture) *dto.OrderResponse {
	t.Helper()
	resp, err := f.uc.Create(context.Background(), f.cliente, f.createRequest(2))
	require.NoError(t, err)
	require.NotNil(t, resp)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — transaccional, con chequeo de stock
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Alta feliz — estado por defecto "In Process" y dueño tomado del principal.
func TestOrderCreate_Exitoso(t *testing.T) {
	f := newOrderFixture(t)
	resp := crearOrden(t, f)

	assert.Equal(t, entity.OrderStatusInProcess, resp.Status)
	assert.Equal(t, "cliente", resp.Username, "el dueño sale del principal, no del payload")
	require.Len(t, resp.OrderDetail, 1)
	assert.Equal(t, f.productID, resp.OrderDetail[0].ProductID)

	// El stock no se descuenta al crear la orden.
	p, err := f.products.GetByID(f.productID)
	require.NoError(t, err)
	assert.Equal(t, 10, p.QuantityInStock)
}

// Caso 2: Transportadora inexistente → ErrNotFound y no queda orden a medias.
func TestOrderCreate_TransportadoraInexistente_Retorna404(t *testing.T) {
	f := newOrderFixture(t)
	in := f.createRequest(2)
	in.ShipperID = 99

	_, err := f.uc.Create(context.Background(), f.cliente, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "transportadora 99")
	assert.Empty(t, f.orders.items)
}

// Caso 3: Producto inexistente → 400 con el mensaje que lo nombra; rollback total.
func TestOrderCreate_ProductoInexistente_Retorna400(t *testing.T) {
	f := newOrderFixture(t)
	in := f.createRequest(2)
	in.OrderDetail = append(in.OrderDetail, dto.OrderDetailRequest{
		ProductID: 99, QuantityOrdered: 1, PriceEach: decimal.NewFromInt(100),
	})

	_, err := f.uc.Create(context.Background(), f.cliente, in)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages, "Product 99 not found")
	assert.Empty(t, f.orders.items, "ninguna línea debe persistirse si una falla")
}

// Caso 4: Stock insuficiente → 400 nombrando el producto; el stock queda intacto.
func TestOrderCreate_StockInsuficiente_Retorna400(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.uc.Create(context.Background(), f.cliente, f.createRequest(11))

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages, "Product 1 not enough in stock")
	assert.Empty(t, f.orders.items)

	p, _ := f.products.GetByID(f.productID)
	assert.Equal(t, 10, p.QuantityInStock)
}

// Caso 5: orderDate en el futuro → 400.
func TestOrderCreate_FechaFutura_Retorna400(t *testing.T) {
	f := newOrderFixture(t)
	in := f.createRequest(2)
	futura := time.Now().Add(24 * time.Hour)
	in.OrderDate = &futura

	_, err := f.uc.Create(context.Background(), f.cliente, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 5b: Orden sin líneas → 400 (min=1 sobre orderDetail).
func TestOrderCreate_SinLineas_Retorna400(t *testing.T) {
	f := newOrderFixture(t)
	in := f.createRequest(2)
	in.OrderDetail = nil

	_, err := f.uc.Create(context.Background(), f.cliente, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Visibilidad — dueño o admin
// ──────────────────────────────────────────────────────────────────────────────

// Caso 6: El dueño y un admin ven la orden; otro usuario recibe (nil, nil),
// indistinguible de una orden inexistente.
func TestOrderGetByID_VisibilidadPorDueno(t *testing.T) {
	f := newOrderFixture(t)
	creada := crearOrden(t, f)

	resp, err := f.uc.GetByID(f.cliente, creada.ID)
	require.NoError(t, err)
	assert.NotNil(t, resp, "el dueño ve su orden")

	resp, err = f.uc.GetByID(f.admin, creada.ID)
	require.NoError(t, err)
	assert.NotNil(t, resp, "un admin ve cualquier orden")

	intruso := &entity.User{Username: "intruso", Role: entity.RoleUser}
	resp, err = f.uc.GetByID(intruso, creada.ID)
	assert.NoError(t, err)
	assert.Nil(t, resp, "para terceros la orden no existe")
}

// Caso 7: List — un admin ve todas las órdenes, un usuario solo las propias.
func TestOrderList_AdminVeTodo_UsuarioSoloLoSuyo(t *testing.T) {
	f := newOrderFixture(t)
	crearOrden(t, f)

	otro := &entity.User{Username: "vecino", Role: entity.RoleUser}
	_, err := f.uc.Create(context.Background(), otro, f.createRequest(1))
	require.NoError(t, err)

	resp, err := f.uc.List(f.admin, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Data.([]dto.OrderResponse), 2)

	resp, err = f.uc.List(f.cliente, dto.PageRequest{})
	require.NoError(t, err)
	items := resp.Data.([]dto.OrderResponse)
	require.Len(t, items, 1)
	assert.Equal(t, "cliente", items[0].Username)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — campos según rol
// ──────────────────────────────────────────────────────────────────────────────

// Caso 8: Un usuario puede cambiar el comment de su orden.
func TestOrderUpdate_UsuarioCambiaComment(t *testing.T) {
	f := newOrderFixture(t)
	creada := crearOrden(t, f)

	comment := "entregar en portería"
	resp, err := f.uc.Update(f.cliente, creada.ID, dto.UpdateOrderRequest{Comment: &comment})
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotNil(t, resp.Comment)
	assert.Equal(t, comment, *resp.Comment)
}

// Caso 8b: Un usuario tocando status o shippedDate → ErrForbidden, sin cambios.
func TestOrderUpdate_UsuarioTocaStatus_Retorna403(t *testing.T) {
	f := newOrderFixture(t)
	creada := crearOrden(t, f)

	status := entity.OrderStatusShipped
	_, err := f.uc.Update(f.cliente, creada.ID, dto.UpdateOrderRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	guardada, _ := f.orders.GetByID(creada.ID)
	assert.Equal(t, entity.OrderStatusInProcess, guardada.Status)
}

// Caso 9: Un admin cambia status y shippedDate de cualquier orden.
func TestOrderUpdate_AdminCambiaStatusYFecha(t *testing.T) {
	f := newOrderFixture(t)
	creada := crearOrden(t, f)

	status := entity.OrderStatusShipped
	enviada := time.Now()
	resp, err := f.uc.Update(f.admin, creada.ID, dto.UpdateOrderRequest{
		Status:      &status,
		ShippedDate: &enviada,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, entity.OrderStatusShipped, resp.Status)
	require.NotNil(t, resp.ShippedDate)
}

// Caso 9b: Status fuera del catálogo → 400 por validación.
func TestOrderUpdate_StatusInvalido_Retorna400(t *testing.T) {
	f := newOrderFixture(t)
	creada := crearOrden(t, f)

	status := "Perdida"
	_, err := f.uc.Update(f.admin, creada.ID, dto.UpdateOrderRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Receipt
// ──────────────────────────────────────────────────────────────────────────────

// Caso 10: El recibo respeta la misma visibilidad que GetByID.
func TestOrderReceipt_SoloParaElDuenoOAdmin(t *testing.T) {
	f := newOrderFixture(t)
	creada := crearOrden(t, f)

	pdf, err := f.uc.Receipt(f.cliente, creada.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	intruso := &entity.User{Username: "intruso", Role: entity.RoleUser}
	pdf, err = f.uc.Receipt(intruso, creada.ID)
	assert.NoError(t, err)
	assert.Nil(t, pdf, "para terceros la orden no existe, tampoco su recibo")
}
