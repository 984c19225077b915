package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/store-api/internal/application/auth"
	"github.com/tu-usuario/store-api/internal/application/usecase"
	"github.com/tu-usuario/store-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserRepo   repository.UserRepository
	AuthUC     *auth.UseCase
	CategoryUC *usecase.CategoryUseCase
	SupplierUC *usecase.SupplierUseCase
	ProductUC  *usecase.ProductUseCase
	ShipperUC  *usecase.ShipperUseCase
	OrderUC    *usecase.OrderUseCase
}

// Router registra las rutas de la API. El middleware de auth corre en todo /api y
// resuelve el principal una sola vez; RequireAuth/RequireAdmin cortan por ruta.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.UserRepo))

	// User (registro y login públicos; cuenta autenticada)
	users := api.Group("/user")
	userHandler := NewUserHandler(deps.AuthUC)
	users.Post("/register", userHandler.Register)
	users.Post("/login", userHandler.Login)
	users.Get("/current", RequireAuth, userHandler.Current)
	users.Patch("/current", RequireAuth, userHandler.UpdateProfile)
	users.Patch("/current/password", RequireAuth, userHandler.UpdatePassword)
	users.Delete("/current", RequireAuth, userHandler.Logout)

	// Categories (lectura pública, escritura admin)
	categories := api.Group("/category")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", RequireAdmin, categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Get("/:id/products", categoryHandler.GetProducts)
	categories.Patch("/:id", RequireAdmin, categoryHandler.Update)
	categories.Delete("/:id", RequireAdmin, categoryHandler.Delete)

	// Products (lectura pública, escritura admin). /search va antes de /:id.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Post("/", RequireAdmin, productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", RequireAdmin, productHandler.Update)
	products.Delete("/:id", RequireAdmin, productHandler.Delete)

	// Suppliers (superficie completa admin)
	suppliers := api.Group("/supplier", RequireAdmin)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Get("/:id/products", supplierHandler.GetProducts)
	suppliers.Patch("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Shippers (lectura pública, escritura y órdenes admin)
	shippers := api.Group("/shippers")
	shipperHandler := NewShipperHandler(deps.ShipperUC)
	shippers.Get("/", shipperHandler.List)
	shippers.Post("/", RequireAdmin, shipperHandler.Create)
	shippers.Get("/:id", shipperHandler.GetByID)
	shippers.Get("/:id/orders", RequireAdmin, shipperHandler.GetOrders)
	shippers.Patch("/:id", RequireAdmin, shipperHandler.Update)
	shippers.Delete("/:id", RequireAdmin, shipperHandler.Delete)

	// Orders (todas autenticadas)
	orders := api.Group("/orders", RequireAuth)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/receipt", orderHandler.Receipt)
	orders.Patch("/:id", orderHandler.Update)
}
