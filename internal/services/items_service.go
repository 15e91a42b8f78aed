package services

import (
	"context"
	"errors"
	"log/slog"

	"stocktrail/internal/common"
	"stocktrail/internal/models"
	"stocktrail/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ItemService manages the item catalog. SKUs are unique across the catalog;
// volume and weight must be non-negative since the capacity math depends on
// them.
type ItemService interface {
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	GetBySKU(ctx context.Context, sku string) (*models.Item, error)
	Update(ctx context.Context, id uuid.UUID, item *models.Item) (*models.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Item, error)
}

type itemService struct {
	itemRepo           repositories.ItemRepository
	categoryRepo       repositories.CategoryRepository
	companyRepo        repositories.CompanyRepository
	warehouseItemsRepo repositories.WarehouseItemsRepository
	historyRepo        repositories.InventoryHistoryRepository
}

func NewItemService(
	itemRepo repositories.ItemRepository,
	categoryRepo repositories.CategoryRepository,
	companyRepo repositories.CompanyRepository,
	warehouseItemsRepo repositories.WarehouseItemsRepository,
	historyRepo repositories.InventoryHistoryRepository,
) ItemService {
	return &itemService{
		itemRepo:           itemRepo,
		categoryRepo:       categoryRepo,
		companyRepo:        companyRepo,
		warehouseItemsRepo: warehouseItemsRepo,
		historyRepo:        historyRepo,
	}
}

func (s *itemService) validate(ctx context.Context, item *models.Item) error {
	if err := common.ValidateRequiredString(item.SKU, "sku"); err != nil {
		return err
	}
	if err := common.ValidateRequiredString(item.Name, "name"); err != nil {
		return err
	}
	if item.WeightLbs.IsNegative() {
		return common.NewInvalidOperation("weight cannot be negative")
	}
	if item.CubicFeet.IsNegative() {
		return common.NewInvalidOperation("cubic feet cannot be negative")
	}
	if item.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *item.CategoryID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return common.NewNotFound("category", item.CategoryID.String())
			}
			return err
		}
	}
	if item.CompanyID != nil {
		if _, err := s.companyRepo.GetByID(ctx, *item.CompanyID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return common.NewNotFound("company", item.CompanyID.String())
			}
			return err
		}
	}
	return nil
}

// checkSKUConflict rejects a SKU already taken by a different item.
func (s *itemService) checkSKUConflict(ctx context.Context, sku string, selfID uuid.UUID) error {
	existing, err := s.itemRepo.GetBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return common.NewConflict("an item with this sku already exists")
	}
	return nil
}

func (s *itemService) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	if err := s.validate(ctx, item); err != nil {
		return nil, err
	}
	if err := s.checkSKUConflict(ctx, item.SKU, uuid.Nil); err != nil {
		return nil, err
	}

	item.ID = uuid.New()
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	slog.Info("created item", "id", item.ID, "sku", item.SKU)
	return item, nil
}

func (s *itemService) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFound("item", id.String())
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) GetBySKU(ctx context.Context, sku string) (*models.Item, error) {
	if err := common.ValidateRequiredString(sku, "sku"); err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFound("item", sku)
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) Update(ctx context.Context, id uuid.UUID, item *models.Item) (*models.Item, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, item); err != nil {
		return nil, err
	}
	if err := s.checkSKUConflict(ctx, item.SKU, id); err != nil {
		return nil, err
	}

	existing.SKU = item.SKU
	existing.Name = item.Name
	existing.CategoryID = item.CategoryID
	existing.CompanyID = item.CompanyID
	existing.WeightLbs = item.WeightLbs
	existing.CubicFeet = item.CubicFeet

	if err := s.itemRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	slog.Info("updated item", "id", id)
	return existing, nil
}

// Delete refuses to remove an item that is still stocked somewhere or still
// referenced by the ledger; deleting it would orphan history.
func (s *itemService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	stocked, err := s.warehouseItemsRepo.ExistsByItem(ctx, id)
	if err != nil {
		return err
	}
	if stocked {
		return common.NewConflict("item is still stocked in one or more warehouses")
	}

	referenced, err := s.historyRepo.ExistsByItem(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return common.NewConflict("item is still referenced by inventory history")
	}

	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("deleted item", "id", id)
	return nil
}

func (s *itemService) List(ctx context.Context, limit, offset int) ([]*models.Item, error) {
	limit, offset = common.NormalizePagination(limit, offset)
	return s.itemRepo.List(ctx, limit, offset)
}
