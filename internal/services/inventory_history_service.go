package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stocktrail/internal/common"
	"stocktrail/internal/models"
	"stocktrail/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const recentActivityLimit = 10

// InventoryHistoryService owns the inventory ledger. Creating, updating or
// deleting an entry adjusts the derived warehouse-item quantities through the
// quantity adjuster, inside one transaction per operation: the entry write
// and every quantity effect commit together or not at all. Updates reverse
// the old entry's effect before applying the new one; deletes only reverse.
type InventoryHistoryService interface {
	Create(ctx context.Context, entry *models.InventoryHistory) (*models.InventoryHistory, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryHistory, error)
	Update(ctx context.Context, id uuid.UUID, entry *models.InventoryHistory) (*models.InventoryHistory, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.InventoryHistory, error)
	FindByWarehouseAndDateRange(ctx context.Context, warehouseID uuid.UUID, start, end *time.Time) ([]*models.InventoryHistory, error)
	FindRecentActivities(ctx context.Context) ([]*models.InventoryHistory, error)
}

type inventoryHistoryService struct {
	db             repositories.DBTX
	historyRepo    repositories.InventoryHistoryRepository
	warehouseItems WarehouseItemsService
}

func NewInventoryHistoryService(
	db repositories.DBTX,
	historyRepo repositories.InventoryHistoryRepository,
	warehouseItems WarehouseItemsService,
) InventoryHistoryService {
	return &inventoryHistoryService{
		db:             db,
		historyRepo:    historyRepo,
		warehouseItems: warehouseItems,
	}
}

// validateEntry enforces the boundary convention: quantity change is a
// strictly positive magnitude and direction comes from which warehouses are
// set; the transaction type must agree with them.
func validateEntry(entry *models.InventoryHistory) error {
	if entry.ItemID == uuid.Nil {
		return common.NewInvalidOperation("item is required")
	}
	if entry.QuantityChange <= 0 {
		return common.NewInvalidOperation("quantity change must be positive")
	}
	if !models.ValidTransactionType(entry.TransactionType) {
		return common.NewInvalidOperation("unknown transaction type")
	}

	from, to := entry.FromWarehouseID != nil, entry.ToWarehouseID != nil
	if from && to && *entry.FromWarehouseID == *entry.ToWarehouseID {
		return common.NewInvalidOperation("source and destination warehouse must differ")
	}
	switch entry.TransactionType {
	case models.TransactionInbound:
		if from || !to {
			return common.NewInvalidOperation("an inbound transaction needs a destination warehouse only")
		}
	case models.TransactionOutbound:
		if !from || to {
			return common.NewInvalidOperation("an outbound transaction needs a source warehouse only")
		}
	case models.TransactionTransfer:
		if !from || !to {
			return common.NewInvalidOperation("a transfer needs both a source and a destination warehouse")
		}
	case models.TransactionAdjustment:
		if !from && !to {
			return common.NewInvalidOperation("an adjustment needs at least one warehouse")
		}
	}
	return nil
}

// resolveReferences checks every referenced entity inside the transaction so
// a dangling reference aborts before any mutation.
func (s *inventoryHistoryService) resolveReferences(ctx context.Context, q repositories.DBTX, entry *models.InventoryHistory) error {
	if _, err := repositories.NewItemRepo(q).GetByID(ctx, entry.ItemID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.NewNotFound("item", entry.ItemID.String())
		}
		return err
	}

	warehouseRepo := repositories.NewWarehouseRepository(q)
	if entry.FromWarehouseID != nil {
		if _, err := warehouseRepo.GetByID(ctx, *entry.FromWarehouseID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return common.NewNotFound("from warehouse", entry.FromWarehouseID.String())
			}
			return err
		}
	}
	if entry.ToWarehouseID != nil {
		if _, err := warehouseRepo.GetByID(ctx, *entry.ToWarehouseID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return common.NewNotFound("to warehouse", entry.ToWarehouseID.String())
			}
			return err
		}
	}

	if entry.PerformedByEmployeeID != nil {
		if _, err := repositories.NewEmployeeRepo(q).GetByID(ctx, *entry.PerformedByEmployeeID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return common.NewNotFound("employee", entry.PerformedByEmployeeID.String())
			}
			return err
		}
	}
	return nil
}

// applyEffect applies (direction +1) or reverses (direction -1) an entry's
// quantity impact. Dispatch is data-driven: a set source warehouse loses
// stock, a set destination gains it. Applying and then reversing an entry is
// a no-op on every touched pair.
func (s *inventoryHistoryService) applyEffect(ctx context.Context, q repositories.DBTX, entry *models.InventoryHistory, direction int) error {
	if entry.QuantityChange == 0 {
		return nil
	}
	signed := entry.QuantityChange * direction

	if entry.FromWarehouseID != nil {
		if _, err := s.warehouseItems.ApplyQuantityChangeTx(ctx, q, *entry.FromWarehouseID, entry.ItemID, -signed); err != nil {
			return err
		}
	}
	if entry.ToWarehouseID != nil {
		if _, err := s.warehouseItems.ApplyQuantityChangeTx(ctx, q, *entry.ToWarehouseID, entry.ItemID, signed); err != nil {
			return err
		}
	}
	return nil
}

// invalidateEffect drops cached quantities and capacity for every pair an
// entry touches. Called only after a successful commit.
func (s *inventoryHistoryService) invalidateEffect(ctx context.Context, entries ...*models.InventoryHistory) {
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		if entry.FromWarehouseID != nil {
			s.warehouseItems.InvalidatePair(ctx, *entry.FromWarehouseID, entry.ItemID)
		}
		if entry.ToWarehouseID != nil {
			s.warehouseItems.InvalidatePair(ctx, *entry.ToWarehouseID, entry.ItemID)
		}
	}
}

func (s *inventoryHistoryService) Create(ctx context.Context, entry *models.InventoryHistory) (*models.InventoryHistory, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	entry.ID = uuid.New()
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().UTC()
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := s.resolveReferences(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err := repositories.NewInventoryHistoryRepo(tx).Create(ctx, entry); err != nil {
		return nil, err
	}
	if err := s.applyEffect(ctx, tx, entry, +1); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.invalidateEffect(ctx, entry)
	slog.Info("created inventory history entry",
		"id", entry.ID, "item_id", entry.ItemID, "type", entry.TransactionType, "quantity", entry.QuantityChange)
	return entry, nil
}

func (s *inventoryHistoryService) GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryHistory, error) {
	entry, err := s.historyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFound("inventory history entry", id.String())
		}
		return nil, err
	}
	return entry, nil
}

func (s *inventoryHistoryService) Update(ctx context.Context, id uuid.UUID, entry *models.InventoryHistory) (*models.InventoryHistory, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	txRepo := repositories.NewInventoryHistoryRepo(tx)
	existing, err := txRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFound("inventory history entry", id.String())
		}
		return nil, err
	}

	// Neutralize the old entry's quantity impact before the edit; arbitrary
	// edits cannot be expressed as one delta otherwise.
	if err := s.applyEffect(ctx, tx, existing, -1); err != nil {
		return nil, err
	}

	if err := s.resolveReferences(ctx, tx, entry); err != nil {
		return nil, err
	}

	updated := *existing
	updated.ItemID = entry.ItemID
	updated.FromWarehouseID = entry.FromWarehouseID
	updated.ToWarehouseID = entry.ToWarehouseID
	updated.QuantityChange = entry.QuantityChange
	updated.TransactionType = entry.TransactionType
	updated.Reason = entry.Reason
	updated.PerformedByEmployeeID = entry.PerformedByEmployeeID
	if !entry.OccurredAt.IsZero() {
		updated.OccurredAt = entry.OccurredAt
	}

	if err := txRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	if err := s.applyEffect(ctx, tx, &updated, +1); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.invalidateEffect(ctx, existing, &updated)
	slog.Info("updated inventory history entry", "id", id)
	return &updated, nil
}

func (s *inventoryHistoryService) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	txRepo := repositories.NewInventoryHistoryRepo(tx)
	existing, err := txRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.NewNotFound("inventory history entry", id.String())
		}
		return err
	}

	if err := s.applyEffect(ctx, tx, existing, -1); err != nil {
		return err
	}
	if err := txRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	s.invalidateEffect(ctx, existing)
	slog.Info("deleted inventory history entry", "id", id)
	return nil
}

func (s *inventoryHistoryService) List(ctx context.Context, limit, offset int) ([]*models.InventoryHistory, error) {
	limit, offset = common.NormalizePagination(limit, offset)
	return s.historyRepo.List(ctx, limit, offset)
}

func (s *inventoryHistoryService) FindByWarehouseAndDateRange(ctx context.Context, warehouseID uuid.UUID, start, end *time.Time) ([]*models.InventoryHistory, error) {
	if start != nil && end != nil && end.Before(*start) {
		return nil, common.NewInvalidOperation("end date cannot be before start date")
	}
	return s.historyRepo.FindByWarehouseAndDateRange(ctx, warehouseID, start, end)
}

func (s *inventoryHistoryService) FindRecentActivities(ctx context.Context) ([]*models.InventoryHistory, error) {
	return s.historyRepo.FindRecent(ctx, recentActivityLimit)
}
