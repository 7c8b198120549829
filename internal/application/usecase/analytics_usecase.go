package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/spra-api/internal/application/dto"
	"github.com/jhoicas/spra-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// AnalyticsUseCase arma el resumen del dashboard a partir de las consultas
// de solo lectura del repositorio de analítica.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo}
}

// GetDashboardSummary consulta conteos, bajo stock y valor de inventario
// en paralelo (llamadas independientes) y arma el DTO.
func (uc *AnalyticsUseCase) GetDashboardSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type countsResult struct {
		counts repository.EntityCounts
		err    error
	}
	type lowStockResult struct {
		count int
		err   error
	}
	type valueResult struct {
		value decimal.Decimal
		err   error
	}

	countsChan := make(chan countsResult, 1)
	lowStockChan := make(chan lowStockResult, 1)
	valueChan := make(chan valueResult, 1)

	go func() {
		counts, err := uc.analyticsRepo.GetEntityCounts(ctx)
		countsChan <- countsResult{counts, err}
	}()
	go func() {
		count, err := uc.analyticsRepo.CountLowStock(ctx)
		lowStockChan <- lowStockResult{count, err}
	}()
	go func() {
		value, err := uc.analyticsRepo.GetInventoryValue(ctx)
		valueChan <- valueResult{value, err}
	}()

	countsRes := <-countsChan
	lowStockRes := <-lowStockChan
	valueRes := <-valueChan

	if countsRes.err != nil {
		return nil, fmt.Errorf("dashboard: conteos: %w", countsRes.err)
	}
	if lowStockRes.err != nil {
		return nil, fmt.Errorf("dashboard: bajo stock: %w", lowStockRes.err)
	}
	if valueRes.err != nil {
		return nil, fmt.Errorf("dashboard: valor de inventario: %w", valueRes.err)
	}

	return &dto.DashboardSummaryDTO{
		TotalComponents:     countsRes.counts.TotalComponents,
		TotalHornTypes:      countsRes.counts.TotalHornTypes,
		TotalOrders:         countsRes.counts.TotalOrders,
		ActiveOrders:        countsRes.counts.ActiveOrders,
		LowStockComponents:  lowStockRes.count,
		TotalInventoryValue: valueRes.value,
	}, nil
}
