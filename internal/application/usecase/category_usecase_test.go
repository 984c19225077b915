package usecase_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/store-api/internal/application/dto"
	"github.com/tu-usuario/store-api/internal/application/usecase"
	"github.com/tu-usuario/store-api/internal/domain"
	"github.com/tu-usuario/store-api/internal/domain/entity"
	"github.com/tu-usuario/store-api/pkg/validate"
)

func newCategoryUseCase() (*usecase.CategoryUseCase, *fakeCategoryRepo, *fakeProductRepo) {
	categories := &fakeCategoryRepo{}
	products := &fakeProductRepo{}
	return usecase.NewCategoryUseCase(categories, products, validate.New()), categories, products
}

// crearCategoria da de alta una categoría y devuelve su proyección.
func crearCategoria(t *testing.T, uc *usecase.CategoryUseCase, name string) *dto.CategoryResponse {
	t.Helper()
	resp, err := uc.Create(dto.CreateCategoryRequest{Name: name})
	require.NoError(t, err)
	require.NotNil(t, resp)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update — unicidad del nombre
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Nombre duplicado → ErrDuplicate y no se persiste la segunda fila.
func TestCategoryCreate_NombreDuplicado_RetornaConflicto(t *testing.T) {
	uc, repo, _ := newCategoryUseCase()
	crearCategoria(t, uc, "Electrónica")

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Electrónica"})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, repo.items, 1)
}

// Caso 1b: El nombre se normaliza (NFC + trim) antes del chequeo de unicidad.
func TestCategoryCreate_NombreNormalizado_Colisiona(t *testing.T) {
	uc, _, _ := newCategoryUseCase()
	crearCategoria(t, uc, "Electrónica") // forma descompuesta

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "  Electrónica  "})

	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"ambas formas Unicode deben colisionar tras normalizar")
}

// Caso 2: Cambiar el nombre al de otra categoría → conflicto; re-enviar el propio → ok.
func TestCategoryUpdate_ExcluyeLaPropiaFila(t *testing.T) {
	uc, _, _ := newCategoryUseCase()
	a := crearCategoria(t, uc, "Electrónica")
	crearCategoria(t, uc, "Hogar")

	otro := "Hogar"
	_, err := uc.Update(a.ID, dto.UpdateCategoryRequest{Name: &otro})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	propio := "Electrónica"
	resp, err := uc.Update(a.ID, dto.UpdateCategoryRequest{Name: &propio})
	require.NoError(t, err)
	require.NotNil(t, resp, "actualizar al propio nombre no es conflicto")
	assert.Equal(t, "Electrónica", resp.Name)
}

// Caso 3: Actualizar una categoría inexistente → (nil, nil), el handler responde 404.
func TestCategoryUpdate_Inexistente_RetornaNil(t *testing.T) {
	uc, _, _ := newCategoryUseCase()
	nombre := "Hogar"
	resp, err := uc.Update(99, dto.UpdateCategoryRequest{Name: &nombre})
	assert.NoError(t, err)
	assert.Nil(t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete — snapshot previo al borrado
// ──────────────────────────────────────────────────────────────────────────────

// Caso 4: Delete devuelve la proyección previa y la fila desaparece.
func TestCategoryDelete_DevuelveSnapshot(t *testing.T) {
	uc, repo, _ := newCategoryUseCase()
	creada := crearCategoria(t, uc, "Electrónica")

	resp, err := uc.Delete(creada.ID)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Electrónica", resp.Name, "la respuesta es el estado previo al borrado")
	assert.Empty(t, repo.items)

	// Segundo borrado: ya no existe → (nil, nil).
	resp, err = uc.Delete(creada.ID)
	assert.NoError(t, err)
	assert.Nil(t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// List — paginación y búsqueda
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: total_page = ceil(total/size) y una página más allá del rango viene vacía.
func TestCategoryList_Paginacion(t *testing.T) {
	uc, _, _ := newCategoryUseCase()
	for _, n := range []string{"Hogar", "Cocina", "Jardín", "Oficina", "Deportes"} {
		crearCategoria(t, uc, n)
	}

	resp, err := uc.List(dto.ListRequest{PageRequest: dto.PageRequest{Page: 1, Size: 2}})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Paging.CurrentPage)
	assert.Equal(t, 2, resp.Paging.Size)
	assert.Equal(t, int64(3), resp.Paging.TotalPage, "5 filas con size=2 son 3 páginas")
	assert.Len(t, resp.Data.([]dto.CategoryResponse), 2)

	// Última página parcial.
	resp, err = uc.List(dto.ListRequest{PageRequest: dto.PageRequest{Page: 3, Size: 2}})
	require.NoError(t, err)
	assert.Len(t, resp.Data.([]dto.CategoryResponse), 1)

	// Más allá del rango: vacía pero con el mismo paging.
	resp, err = uc.List(dto.ListRequest{PageRequest: dto.PageRequest{Page: 9, Size: 2}})
	require.NoError(t, err)
	assert.Empty(t, resp.Data.([]dto.CategoryResponse))
	assert.Equal(t, int64(3), resp.Paging.TotalPage)
}

// Caso 5b: Sin page/size aplican los valores por defecto (1, 10).
func TestCategoryList_DefaultsDePagina(t *testing.T) {
	uc, _, _ := newCategoryUseCase()
	crearCategoria(t, uc, "Hogar")

	resp, err := uc.List(dto.ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Paging.CurrentPage)
	assert.Equal(t, 10, resp.Paging.Size)
}

// Caso 6: q filtra por subcadena case-insensitive (sin plegado de tildes:
// la comparación es ILIKE literal) y el total refleja los filtrados.
func TestCategoryList_BusquedaPorSubcadena(t *testing.T) {
	uc, _, _ := newCategoryUseCase()
	for _, n := range []string{"Electrónica", "Electrodomésticos", "Hogar"} {
		crearCategoria(t, uc, n)
	}

	resp, err := uc.List(dto.ListRequest{Q: "electr"})
	require.NoError(t, err)
	assert.Len(t, resp.Data.([]dto.CategoryResponse), 2)
	assert.Equal(t, int64(1), resp.Paging.TotalPage)

	// La subcadena respeta las tildes: "electro" no casa la "ó" de Electrónica.
	resp, err = uc.List(dto.ListRequest{Q: "electro"})
	require.NoError(t, err)
	assert.Len(t, resp.Data.([]dto.CategoryResponse), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetWithProducts — carga ansiosa
// ──────────────────────────────────────────────────────────────────────────────

// Caso 7: GetWithProducts incluye solo los productos de esa categoría, sin paginar.
func TestCategoryGetWithProducts_CargaAnsiosa(t *testing.T) {
	uc, _, products := newCategoryUseCase()
	cat := crearCategoria(t, uc, "Electrónica")
	otra := crearCategoria(t, uc, "Hogar")

	for i, name := range []string{"Teclado", "Mouse", "Monitor"} {
		_, err := products.Create(&entity.Product{
			Code:       fmt.Sprintf("TST-00%d", i+1),
			Name:       name,
			Price:      decimal.NewFromInt(1000),
			CategoryID: cat.ID,
			SupplierID: 1,
		})
		require.NoError(t, err)
	}
	_, err := products.Create(&entity.Product{
		Code: "TST-009", Name: "Sartén", Price: decimal.NewFromInt(500),
		CategoryID: otra.ID, SupplierID: 1,
	})
	require.NoError(t, err)

	resp, err := uc.GetWithProducts(cat.ID)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, cat.ID, resp.ID)
	assert.Len(t, resp.Products, 3, "solo los productos de la categoría pedida")

	// Categoría inexistente → (nil, nil).
	resp, err = uc.GetWithProducts(99)
	assert.NoError(t, err)
	assert.Nil(t, resp)
}
