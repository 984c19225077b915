// seed puebla la base de datos de desarrollo: un usuario admin, un usuario de
// prueba, catálogo base (categorías, proveedores, transportadoras) y productos
// test0..test20 para ejercitar búsqueda y paginación.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que el API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/store-api/internal/domain"
	"github.com/tu-usuario/store-api/internal/domain/entity"
	"github.com/tu-usuario/store-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/store-api/pkg/config"
	"github.com/tu-usuario/store-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"}).Component("seed")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	shipperRepo := postgres.NewShipperRepository(pool)

	// Usuarios
	seedUser(log, userRepo, "admin", "Admin123!", "Administrador", "admin@store.local", entity.RoleAdmin)
	seedUser(log, userRepo, "cliente", "Cliente123!", "Cliente de Prueba", "cliente@store.local", entity.RoleUser)

	// Catálogo base
	description := "Categoría de prueba"
	category, err := categoryRepo.Create(&entity.Category{Name: "General", Description: &description})
	if err != nil && err != domain.ErrDuplicate {
		log.Fatal().Err(err).Msg("crear categoría")
	}
	if category == nil {
		category, _ = categoryRepo.GetByName("General")
	}

	supplier, err := supplierRepo.Create(&entity.Supplier{Name: "Proveedor Central", Phone: "6015550100"})
	if err != nil && err != domain.ErrDuplicate {
		log.Fatal().Err(err).Msg("crear proveedor")
	}
	if supplier == nil {
		supplier, _ = supplierRepo.GetByName("Proveedor Central")
	}

	if _, err := shipperRepo.Create(&entity.Shipper{Name: "Envíos Rápidos", Phone: "6015550200"}); err != nil && err != domain.ErrDuplicate {
		log.Fatal().Err(err).Msg("crear transportadora")
	}

	// Productos test0..test20
	for i := 0; i <= 20; i++ {
		name := fmt.Sprintf("test%d", i)
		_, err := productRepo.Create(&entity.Product{
			Code:            fmt.Sprintf("TST-%03d", i),
			Name:            name,
			Price:           decimal.NewFromInt(int64(1000 + i*100)),
			Description:     fmt.Sprintf("Producto de prueba %d", i),
			QuantityInStock: 50,
			CategoryID:      category.ID,
			SupplierID:      supplier.ID,
		})
		if err != nil && err != domain.ErrDuplicate {
			log.Fatal().Err(err).Str("product", name).Msg("crear producto")
		}
	}

	log.Info().Msg("seed completado")
}

func seedUser(log *logger.Logger, repo *postgres.UserRepo, username, password, name, email, role string) {
	existing, err := repo.GetByUsername(username)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar usuario")
	}
	if existing != nil {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}
	if err := repo.Create(&entity.User{
		Username: username,
		Password: string(hash),
		Name:     name,
		Email:    email,
		Phone:    "3000000000",
		Role:     role,
	}); err != nil {
		log.Fatal().Err(err).Str("username", username).Msg("crear usuario")
	}
	log.Info().Str("username", username).Str("role", role).Msg("usuario creado")
}
