// Seed inicial: usuario admin, configuración de producción y un catálogo
// de demostración (componentes + tipos de bocina con su BOM).
//
// Uso:
//
//	ADMIN_PASSWORD=... go run ./cmd/seed
//
// Es idempotente: los registros que ya existen se dejan como están.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/spra-api/internal/domain/entity"
	"github.com/jhoicas/spra-api/internal/infrastructure/postgres"
	"github.com/jhoicas/spra-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := seedAdmin(pool); err != nil {
		fmt.Fprintf(os.Stderr, "Seed admin: %v\n", err)
		os.Exit(1)
	}
	if err := seedProductionConfig(pool); err != nil {
		fmt.Fprintf(os.Stderr, "Seed configuración: %v\n", err)
		os.Exit(1)
	}
	if err := seedCatalog(pool); err != nil {
		fmt.Fprintf(os.Stderr, "Seed catálogo: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Seed completado.")
}

func seedAdmin(pool *pgxpool.Pool) error {
	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.FindByUsername("admin")
	if err != nil {
		return err
	}
	if existing != nil {
		fmt.Println("Usuario admin ya existe, se omite.")
		return nil
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123*"
		fmt.Println("ADMIN_PASSWORD no definido, usando el valor por defecto (cambiar en producción).")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return userRepo.Create(&entity.User{
		ID:           uuid.New().String(),
		Username:     "admin",
		Email:        "admin@spra.local",
		PasswordHash: string(hash),
		FullName:     "Administrador",
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    time.Now(),
	})
}

func seedProductionConfig(pool *pgxpool.Pool) error {
	configRepo := postgres.NewProductionConfigRepository(pool)
	existing, err := configRepo.Get()
	if err != nil {
		return err
	}
	if existing != nil {
		fmt.Println("Configuración de producción ya existe, se omite.")
		return nil
	}
	return configRepo.Save(&entity.ProductionConfig{
		ID:                      uuid.New().String(),
		DailyProductionCapacity: 4000,
		WorkingDaysPerWeek:      6,
		MaxInventoryDays:        30,
		SafetyStockDays:         3,
		UpdatedAt:               time.Now(),
	})
}

// seedCatalog crea dos componentes y un tipo de bocina estándar con su BOM.
func seedCatalog(pool *pgxpool.Pool) error {
	componentRepo := postgres.NewComponentRepository(pool)
	hornTypeRepo := postgres.NewHornTypeRepository(pool)
	now := time.Now()

	components := []*entity.Component{
		{
			ID: uuid.New().String(), Code: "DIAF-70", Name: "Diafragma 70mm",
			Unit: "pieces", CurrentInventory: decimal.NewFromInt(50000),
			MinStockLevel: decimal.NewFromInt(10000), MaxStockLevel: decimal.NewFromInt(200000),
			LeadTimeDays: 15, SupplierName: "Membranas del Norte",
			UnitCost:             decimal.NewFromFloat(2.50),
			MinimumOrderQuantity: decimal.NewFromInt(20000),
			CreatedAt:            now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Code: "TORN-M4", Name: "Tornillo M4x12",
			Unit: "pieces", CurrentInventory: decimal.NewFromInt(300000),
			MinStockLevel: decimal.NewFromInt(50000), MaxStockLevel: decimal.NewFromInt(1000000),
			LeadTimeDays: 7, SupplierName: "Ferretería Industrial SA",
			UnitCost:             decimal.NewFromFloat(0.05),
			MinimumOrderQuantity: decimal.NewFromInt(100000),
			CreatedAt:            now, UpdatedAt: now,
		},
	}
	for _, component := range components {
		existing, err := componentRepo.GetByCode(component.Code)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := componentRepo.Create(component); err != nil {
			return err
		}
	}

	if existing, err := hornTypeRepo.GetByCode("BOC-STD"); err != nil {
		return err
	} else if existing != nil {
		fmt.Println("Tipo de bocina BOC-STD ya existe, se omite.")
		return nil
	}

	hornType := &entity.HornType{
		ID: uuid.New().String(), Code: "BOC-STD", Name: "Bocina estándar 12V",
		Description: "Modelo base de línea", CreatedAt: now, UpdatedAt: now,
	}
	if err := hornTypeRepo.Create(hornType); err != nil {
		return err
	}

	bom := []struct {
		code string
		qty  decimal.Decimal
	}{
		{"DIAF-70", decimal.NewFromInt(1)},
		{"TORN-M4", decimal.NewFromInt(4)},
	}
	for _, line := range bom {
		component, err := componentRepo.GetByCode(line.code)
		if err != nil {
			return err
		}
		if component == nil {
			return fmt.Errorf("componente %s no encontrado", line.code)
		}
		if err := hornTypeRepo.AddBOMEntry(&entity.BOMEntry{
			ID:              uuid.New().String(),
			HornTypeID:      hornType.ID,
			ComponentID:     component.ID,
			QuantityPerHorn: line.qty,
			CreatedAt:       time.Now(),
		}); err != nil {
			return err
		}
	}
	return nil
}
