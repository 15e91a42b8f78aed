package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"stocktrail/internal/caching"
	"stocktrail/internal/common"
	"stocktrail/internal/models"
	"stocktrail/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const pairCacheTTL = 5 * time.Minute

// WarehouseItemsService owns the derived (warehouse, item) quantities. All
// quantity mutation funnels through ApplyQuantityChange/ApplyQuantityChangeTx,
// which enforce the non-negativity and capacity invariants; nothing else
// writes the quantity store.
type WarehouseItemsService interface {
	// ApplyQuantityChange applies a signed delta to one pair inside its own
	// transaction and returns the updated pair.
	ApplyQuantityChange(ctx context.Context, warehouseID, itemID uuid.UUID, delta int) (*models.WarehouseItem, error)
	// ApplyQuantityChangeTx is the same operation bound to a caller-owned
	// transaction; the caller commits, rolls back, and invalidates caches.
	ApplyQuantityChangeTx(ctx context.Context, q repositories.DBTX, warehouseID, itemID uuid.UUID, delta int) (*models.WarehouseItem, error)

	Get(ctx context.Context, warehouseID, itemID uuid.UUID) (*models.WarehouseItem, error)
	List(ctx context.Context, limit, offset int) ([]*models.WarehouseItem, error)
	SearchInventoryByItem(ctx context.Context, q string) ([]*models.ItemInventorySummary, error)
	InvalidatePair(ctx context.Context, warehouseID, itemID uuid.UUID)
}

type warehouseItemsService struct {
	db                 repositories.DBTX
	warehouseItemsRepo repositories.WarehouseItemsRepository
	warehouseRepo      repositories.WarehouseRepository
	itemRepo           repositories.ItemRepository
	cacheService       caching.CacheService
}

func NewWarehouseItemsService(
	db repositories.DBTX,
	warehouseItemsRepo repositories.WarehouseItemsRepository,
	warehouseRepo repositories.WarehouseRepository,
	itemRepo repositories.ItemRepository,
	cacheService caching.CacheService,
) WarehouseItemsService {
	return &warehouseItemsService{
		db:                 db,
		warehouseItemsRepo: warehouseItemsRepo,
		warehouseRepo:      warehouseRepo,
		itemRepo:           itemRepo,
		cacheService:       cacheService,
	}
}

// checkCapacity rejects increases that would push the warehouse past its
// volume limit. Only additions are checked; removals never need one. The
// aggregate is read through q so it sees the surrounding transaction's
// snapshot. A warehouse without a configured maximum is treated as unlimited
// for legacy data tolerance.
func (s *warehouseItemsService) checkCapacity(ctx context.Context, q repositories.DBTX, warehouse *models.Warehouse, item *models.Item, delta int) error {
	if delta <= 0 {
		return nil
	}

	if !warehouse.MaximumCapacityCubicFeet.Valid {
		slog.Warn("warehouse has no maximum capacity, skipping capacity check", "warehouse_id", warehouse.ID)
		return nil
	}
	maxCapacity := warehouse.MaximumCapacityCubicFeet.Decimal

	used, err := repositories.NewWarehouseItemsRepo(q).SumOccupiedVolume(ctx, warehouse.ID)
	if err != nil {
		return err
	}

	needed := item.CubicFeet.Mul(decimal.NewFromInt(int64(delta)))
	if used.Add(needed).GreaterThan(maxCapacity) {
		slog.Warn("attempted to exceed warehouse capacity",
			"warehouse_id", warehouse.ID, "item_id", item.ID,
			"used", used, "max", maxCapacity, "needed", needed)
		return &common.CapacityExceededError{
			Available: maxCapacity.Sub(used),
			Needed:    needed,
		}
	}
	return nil
}

func (s *warehouseItemsService) ApplyQuantityChange(ctx context.Context, warehouseID, itemID uuid.UUID, delta int) (*models.WarehouseItem, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	wi, err := s.ApplyQuantityChangeTx(ctx, tx, warehouseID, itemID, delta)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.InvalidatePair(ctx, warehouseID, itemID)
	return wi, nil
}

func (s *warehouseItemsService) ApplyQuantityChangeTx(ctx context.Context, q repositories.DBTX, warehouseID, itemID uuid.UUID, delta int) (*models.WarehouseItem, error) {
	warehouse, err := repositories.NewWarehouseRepository(q).GetByID(ctx, warehouseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFound("warehouse", warehouseID.String())
		}
		return nil, err
	}
	item, err := repositories.NewItemRepo(q).GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFound("item", itemID.String())
		}
		return nil, err
	}

	pairRepo := repositories.NewWarehouseItemsRepo(q)

	// Row lock: concurrent adjustments to the same pair serialize here for
	// the rest of the transaction.
	wi, err := pairRepo.GetForUpdate(ctx, warehouseID, itemID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if wi == nil {
		if delta < 0 {
			slog.Warn("attempted to reduce quantity for non-existent pair",
				"warehouse_id", warehouseID, "item_id", itemID, "delta", delta)
			return nil, common.NewInvalidOperation("cannot reduce quantity below zero for a non-existent item")
		}
		if delta == 0 {
			// Nothing to do; no row is created for a zero change.
			return &models.WarehouseItem{WarehouseID: warehouseID, ItemID: itemID}, nil
		}
		wi = &models.WarehouseItem{WarehouseID: warehouseID, ItemID: itemID}
	}

	newQty := wi.Quantity + delta
	if newQty < 0 {
		slog.Warn("attempted to reduce quantity below zero",
			"warehouse_id", warehouseID, "item_id", itemID, "current", wi.Quantity, "delta", delta)
		return nil, common.NewInvalidOperation("resulting quantity would be negative")
	}

	if err := s.checkCapacity(ctx, q, warehouse, item, delta); err != nil {
		return nil, err
	}

	wi.Quantity = newQty
	if err := pairRepo.Upsert(ctx, wi); err != nil {
		return nil, err
	}

	slog.Info("adjusted warehouse item quantity",
		"warehouse_id", warehouseID, "item_id", itemID, "delta", delta, "quantity", newQty)
	return wi, nil
}

func (s *warehouseItemsService) Get(ctx context.Context, warehouseID, itemID uuid.UUID) (*models.WarehouseItem, error) {
	if cached, err := s.cacheService.GetWarehouseItem(ctx, warehouseID, itemID); cached != nil {
		return cached, nil
	} else if err != nil {
		slog.Warn("warehouse item cache read failed", "warehouse_id", warehouseID, "item_id", itemID, "error", err)
	}

	wi, err := s.warehouseItemsRepo.Get(ctx, warehouseID, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFound("warehouse item", "")
		}
		return nil, err
	}

	if cacheErr := s.cacheService.SetWarehouseItem(ctx, wi, pairCacheTTL); cacheErr != nil {
		slog.Warn("warehouse item cache write failed", "warehouse_id", warehouseID, "item_id", itemID, "error", cacheErr)
	}
	return wi, nil
}

func (s *warehouseItemsService) List(ctx context.Context, limit, offset int) ([]*models.WarehouseItem, error) {
	limit, offset = common.NormalizePagination(limit, offset)
	return s.warehouseItemsRepo.List(ctx, limit, offset)
}

// SearchInventoryByItem searches items by name or SKU and aggregates their
// stock across warehouses, one summary per matching item.
func (s *warehouseItemsService) SearchInventoryByItem(ctx context.Context, q string) ([]*models.ItemInventorySummary, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, common.NewInvalidOperation("search query q is required")
	}

	rows, err := s.warehouseItemsRepo.SearchByItem(ctx, q)
	if err != nil {
		return nil, err
	}

	var summaries []*models.ItemInventorySummary
	byItem := make(map[uuid.UUID]*models.ItemInventorySummary)
	for _, row := range rows {
		summary, ok := byItem[row.ItemID]
		if !ok {
			summary = &models.ItemInventorySummary{
				ItemID: row.ItemID,
				SKU:    row.SKU,
				Name:   row.ItemName,
			}
			byItem[row.ItemID] = summary
			summaries = append(summaries, summary)
		}
		summary.TotalQuantity += row.Quantity
		summary.Locations = append(summary.Locations, models.ItemWarehouseQuantity{
			WarehouseID:   row.WarehouseID,
			WarehouseName: row.WarehouseName,
			Quantity:      row.Quantity,
		})
	}
	return summaries, nil
}

// InvalidatePair drops the cached quantity for a pair and the cached
// capacity report of its warehouse. Failures are logged, never propagated.
func (s *warehouseItemsService) InvalidatePair(ctx context.Context, warehouseID, itemID uuid.UUID) {
	if err := s.cacheService.DeleteWarehouseItem(ctx, warehouseID, itemID); err != nil {
		slog.Warn("failed to invalidate warehouse item cache", "warehouse_id", warehouseID, "item_id", itemID, "error", err)
	}
	if err := s.cacheService.DeleteCapacity(ctx, warehouseID); err != nil {
		slog.Warn("failed to invalidate capacity cache", "warehouse_id", warehouseID, "error", err)
	}
}
