package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stocktrail/internal/caching"
	"stocktrail/internal/common"
	"stocktrail/internal/models"
	"stocktrail/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const capacityCacheTTL = time.Minute

// WarehouseService manages warehouses and their capacity reports.
type WarehouseService interface {
	Create(ctx context.Context, warehouse *models.Warehouse) (*models.Warehouse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Warehouse, error)
	Update(ctx context.Context, id uuid.UUID, warehouse *models.Warehouse) (*models.Warehouse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Warehouse, error)
	GetCapacity(ctx context.Context, id uuid.UUID) (*models.WarehouseCapacity, error)
	GetAllCapacities(ctx context.Context) ([]*models.WarehouseCapacity, error)
}

type warehouseService struct {
	warehouseRepo      repositories.WarehouseRepository
	warehouseItemsRepo repositories.WarehouseItemsRepository
	employeeRepo       repositories.EmployeeRepository
	cacheService       caching.CacheService
}

func NewWarehouseService(
	warehouseRepo repositories.WarehouseRepository,
	warehouseItemsRepo repositories.WarehouseItemsRepository,
	employeeRepo repositories.EmployeeRepository,
	cacheService caching.CacheService,
) WarehouseService {
	return &warehouseService{
		warehouseRepo:      warehouseRepo,
		warehouseItemsRepo: warehouseItemsRepo,
		employeeRepo:       employeeRepo,
		cacheService:       cacheService,
	}
}

func (s *warehouseService) validate(ctx context.Context, warehouse *models.Warehouse) error {
	if err := common.ValidateRequiredString(warehouse.Name, "name"); err != nil {
		return err
	}
	if warehouse.MaximumCapacityCubicFeet.Valid && warehouse.MaximumCapacityCubicFeet.Decimal.IsNegative() {
		return common.NewInvalidOperation("maximum capacity cannot be negative")
	}
	if warehouse.ManagerEmployeeID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *warehouse.ManagerEmployeeID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return common.NewNotFound("employee", warehouse.ManagerEmployeeID.String())
			}
			return err
		}
	}
	return nil
}

func (s *warehouseService) Create(ctx context.Context, warehouse *models.Warehouse) (*models.Warehouse, error) {
	if err := s.validate(ctx, warehouse); err != nil {
		return nil, err
	}
	warehouse.ID = uuid.New()
	if err := s.warehouseRepo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	slog.Info("created warehouse", "id", warehouse.ID, "name", warehouse.Name)
	return warehouse, nil
}

func (s *warehouseService) GetByID(ctx context.Context, id uuid.UUID) (*models.Warehouse, error) {
	warehouse, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFound("warehouse", id.String())
		}
		return nil, err
	}
	return warehouse, nil
}

func (s *warehouseService) Update(ctx context.Context, id uuid.UUID, warehouse *models.Warehouse) (*models.Warehouse, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, warehouse); err != nil {
		return nil, err
	}

	existing.Name = warehouse.Name
	existing.Address = warehouse.Address
	existing.City = warehouse.City
	existing.State = warehouse.State
	existing.Zip = warehouse.Zip
	existing.ManagerEmployeeID = warehouse.ManagerEmployeeID
	existing.MaximumCapacityCubicFeet = warehouse.MaximumCapacityCubicFeet

	if err := s.warehouseRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	if err := s.cacheService.DeleteCapacity(ctx, id); err != nil {
		slog.Warn("failed to invalidate capacity cache", "warehouse_id", id, "error", err)
	}
	slog.Info("updated warehouse", "id", id)
	return existing, nil
}

// Delete refuses to remove a warehouse that still holds stock or has
// employees assigned to it.
func (s *warehouseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	hasStock, err := s.warehouseItemsRepo.ExistsByWarehouse(ctx, id)
	if err != nil {
		return err
	}
	if hasStock {
		return common.NewConflict("warehouse still holds inventory")
	}

	hasEmployees, err := s.employeeRepo.ExistsByAssignedWarehouse(ctx, id)
	if err != nil {
		return err
	}
	if hasEmployees {
		return common.NewConflict("warehouse still has employees assigned to it")
	}

	if err := s.warehouseRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cacheService.DeleteCapacity(ctx, id); err != nil {
		slog.Warn("failed to invalidate capacity cache", "warehouse_id", id, "error", err)
	}
	slog.Info("deleted warehouse", "id", id)
	return nil
}

func (s *warehouseService) List(ctx context.Context, limit, offset int) ([]*models.Warehouse, error) {
	limit, offset = common.NormalizePagination(limit, offset)
	return s.warehouseRepo.List(ctx, limit, offset)
}

func (s *warehouseService) GetCapacity(ctx context.Context, id uuid.UUID) (*models.WarehouseCapacity, error) {
	if cached, err := s.cacheService.GetCapacity(ctx, id); cached != nil {
		return cached, nil
	} else if err != nil {
		slog.Warn("capacity cache read failed", "warehouse_id", id, "error", err)
	}

	warehouse, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	capacity, err := s.buildCapacity(ctx, warehouse)
	if err != nil {
		return nil, err
	}
	if cacheErr := s.cacheService.SetCapacity(ctx, capacity, capacityCacheTTL); cacheErr != nil {
		slog.Warn("capacity cache write failed", "warehouse_id", id, "error", cacheErr)
	}
	return capacity, nil
}

// GetAllCapacities reports occupancy for the entire fleet, unpaginated.
func (s *warehouseService) GetAllCapacities(ctx context.Context) ([]*models.WarehouseCapacity, error) {
	warehouses, err := s.warehouseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	capacities := make([]*models.WarehouseCapacity, 0, len(warehouses))
	for _, warehouse := range warehouses {
		capacity, err := s.buildCapacity(ctx, warehouse)
		if err != nil {
			return nil, err
		}
		capacities = append(capacities, capacity)
	}
	return capacities, nil
}

// buildCapacity computes the occupancy report. Utilization is a percentage
// rounded to one decimal place; a warehouse without a configured maximum
// reports zero utilization and zero available space.
func (s *warehouseService) buildCapacity(ctx context.Context, warehouse *models.Warehouse) (*models.WarehouseCapacity, error) {
	used, err := s.warehouseItemsRepo.SumOccupiedVolume(ctx, warehouse.ID)
	if err != nil {
		return nil, err
	}

	capacity := &models.WarehouseCapacity{
		WarehouseID:              warehouse.ID,
		MaximumCapacityCubicFeet: warehouse.MaximumCapacityCubicFeet,
		UsedCapacityCubicFeet:    used,
	}
	if warehouse.MaximumCapacityCubicFeet.Valid && warehouse.MaximumCapacityCubicFeet.Decimal.IsPositive() {
		maxCapacity := warehouse.MaximumCapacityCubicFeet.Decimal
		capacity.AvailableCubicFeet = maxCapacity.Sub(used)
		capacity.UtilizationPercent = used.Div(maxCapacity).Mul(decimal.NewFromInt(100)).Round(1)
	}
	return capacity, nil
}
