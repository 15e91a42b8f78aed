package services

import (
	"context"
	"time"

	"stocktrail/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetWarehouseItem(ctx context.Context, warehouseID, itemID uuid.UUID) (*models.WarehouseItem, error) {
	args := m.Called(ctx, warehouseID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WarehouseItem), args.Error(1)
}

func (m *MockCacheService) SetWarehouseItem(ctx context.Context, wi *models.WarehouseItem, ttl time.Duration) error {
	args := m.Called(ctx, wi, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteWarehouseItem(ctx context.Context, warehouseID, itemID uuid.UUID) error {
	args := m.Called(ctx, warehouseID, itemID)
	return args.Error(0)
}

func (m *MockCacheService) GetCapacity(ctx context.Context, warehouseID uuid.UUID) (*models.WarehouseCapacity, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WarehouseCapacity), args.Error(1)
}

func (m *MockCacheService) SetCapacity(ctx context.Context, capacity *models.WarehouseCapacity, ttl time.Duration) error {
	args := m.Called(ctx, capacity, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteCapacity(ctx context.Context, warehouseID uuid.UUID) error {
	args := m.Called(ctx, warehouseID)
	return args.Error(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) Create(ctx context.Context, warehouse *models.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Update(ctx context.Context, warehouse *models.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWarehouseRepository) List(ctx context.Context, limit, offset int) ([]*models.Warehouse, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) ListAll(ctx context.Context) ([]*models.Warehouse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Warehouse), args.Error(1)
}

type MockWarehouseItemsRepository struct {
	mock.Mock
}

func (m *MockWarehouseItemsRepository) Get(ctx context.Context, warehouseID, itemID uuid.UUID) (*models.WarehouseItem, error) {
	args := m.Called(ctx, warehouseID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WarehouseItem), args.Error(1)
}

func (m *MockWarehouseItemsRepository) GetForUpdate(ctx context.Context, warehouseID, itemID uuid.UUID) (*models.WarehouseItem, error) {
	args := m.Called(ctx, warehouseID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WarehouseItem), args.Error(1)
}

func (m *MockWarehouseItemsRepository) Upsert(ctx context.Context, wi *models.WarehouseItem) error {
	args := m.Called(ctx, wi)
	return args.Error(0)
}

func (m *MockWarehouseItemsRepository) Delete(ctx context.Context, warehouseID, itemID uuid.UUID) error {
	args := m.Called(ctx, warehouseID, itemID)
	return args.Error(0)
}

func (m *MockWarehouseItemsRepository) List(ctx context.Context, limit, offset int) ([]*models.WarehouseItem, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.WarehouseItem), args.Error(1)
}

func (m *MockWarehouseItemsRepository) SumOccupiedVolume(ctx context.Context, warehouseID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, warehouseID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockWarehouseItemsRepository) ExistsByWarehouse(ctx context.Context, warehouseID uuid.UUID) (bool, error) {
	args := m.Called(ctx, warehouseID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWarehouseItemsRepository) ExistsByItem(ctx context.Context, itemID uuid.UUID) (bool, error) {
	args := m.Called(ctx, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWarehouseItemsRepository) SearchByItem(ctx context.Context, q string) ([]*models.ItemStockRow, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]*models.ItemStockRow), args.Error(1)
}

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) List(ctx context.Context, limit, offset int) ([]*models.Employee, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ExistsByAssignedWarehouse(ctx context.Context, warehouseID uuid.UUID) (bool, error) {
	args := m.Called(ctx, warehouseID)
	return args.Bool(0), args.Error(1)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) GetBySKU(ctx context.Context, sku string) (*models.Item, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepository) List(ctx context.Context, limit, offset int) ([]*models.Item, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Item), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) List(ctx context.Context, limit, offset int) ([]*models.Category, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Category), args.Error(1)
}

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, company *models.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCompanyRepository) List(ctx context.Context, limit, offset int) ([]*models.Company, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Company), args.Error(1)
}

type MockInventoryHistoryRepository struct {
	mock.Mock
}

func (m *MockInventoryHistoryRepository) Create(ctx context.Context, entry *models.InventoryHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockInventoryHistoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryHistory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryHistory), args.Error(1)
}

func (m *MockInventoryHistoryRepository) Update(ctx context.Context, entry *models.InventoryHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockInventoryHistoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInventoryHistoryRepository) List(ctx context.Context, limit, offset int) ([]*models.InventoryHistory, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.InventoryHistory), args.Error(1)
}

func (m *MockInventoryHistoryRepository) FindByWarehouseAndDateRange(ctx context.Context, warehouseID uuid.UUID, start, end *time.Time) ([]*models.InventoryHistory, error) {
	args := m.Called(ctx, warehouseID, start, end)
	return args.Get(0).([]*models.InventoryHistory), args.Error(1)
}

func (m *MockInventoryHistoryRepository) FindRecent(ctx context.Context, limit int) ([]*models.InventoryHistory, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*models.InventoryHistory), args.Error(1)
}

func (m *MockInventoryHistoryRepository) ExistsByItem(ctx context.Context, itemID uuid.UUID) (bool, error) {
	args := m.Called(ctx, itemID)
	return args.Bool(0), args.Error(1)
}
