package services

import (
	"context"
	"testing"
	"time"

	"stocktrail/internal/common"
	"stocktrail/internal/models"
	"stocktrail/internal/repositories"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WarehouseItemsServiceTestSuite struct {
	suite.Suite
	mock      pgxmock.PgxPoolIface
	mockCache *MockCacheService
	service   WarehouseItemsService
	warehouse *models.Warehouse
	item      *models.Item
	context   context.Context
}

func (suite *WarehouseItemsServiceTestSuite) SetupTest() {
	mockPool, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mockPool
	suite.mockCache = &MockCacheService{}
	suite.mockCache.Test(suite.T())

	suite.service = NewWarehouseItemsService(
		mockPool,
		repositories.NewWarehouseItemsRepo(mockPool),
		repositories.NewWarehouseRepository(mockPool),
		repositories.NewItemRepo(mockPool),
		suite.mockCache,
	)

	suite.warehouse = &models.Warehouse{
		ID:   uuid.New(),
		Name: "East",
		MaximumCapacityCubicFeet: decimal.NullDecimal{
			Decimal: decimal.NewFromInt(100),
			Valid:   true,
		},
	}
	suite.item = &models.Item{
		ID:        uuid.New(),
		SKU:       "SKU-100",
		Name:      "Catan",
		WeightLbs: decimal.NewFromFloat(2.5),
		CubicFeet: decimal.NewFromInt(2),
	}
	suite.context = context.Background()
}

func (suite *WarehouseItemsServiceTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mockCache.AssertExpectations(suite.T())
	suite.mock.Close()
}

func TestWarehouseItemsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WarehouseItemsServiceTestSuite))
}

func (suite *WarehouseItemsServiceTestSuite) expectWarehouseFetch(w *models.Warehouse) {
	rows := pgxmock.NewRows([]string{
		"id", "name", "address", "city", "state", "zip",
		"manager_employee_id", "maximum_capacity_cubic_feet", "created_at", "updated_at",
	}).AddRow(w.ID, w.Name, w.Address, w.City, w.State, w.Zip,
		w.ManagerEmployeeID, w.MaximumCapacityCubicFeet, time.Now(), time.Now())

	suite.mock.ExpectQuery(`FROM warehouses WHERE id = \$1`).
		WithArgs(w.ID).
		WillReturnRows(rows)
}

func (suite *WarehouseItemsServiceTestSuite) expectItemFetch(i *models.Item) {
	rows := pgxmock.NewRows([]string{
		"id", "sku", "name", "category_id", "company_id",
		"weight_lbs", "cubic_feet", "created_at", "updated_at",
	}).AddRow(i.ID, i.SKU, i.Name, i.CategoryID, i.CompanyID,
		i.WeightLbs, i.CubicFeet, time.Now(), time.Now())

	suite.mock.ExpectQuery(`FROM items WHERE id = \$1`).
		WithArgs(i.ID).
		WillReturnRows(rows)
}

func (suite *WarehouseItemsServiceTestSuite) expectPairLock(quantity int) {
	rows := pgxmock.NewRows([]string{"warehouse_id", "item_id", "quantity", "last_updated"}).
		AddRow(suite.warehouse.ID, suite.item.ID, quantity, time.Now())

	suite.mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(suite.warehouse.ID, suite.item.ID).
		WillReturnRows(rows)
}

func (suite *WarehouseItemsServiceTestSuite) expectPairLockMissing() {
	suite.mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(suite.warehouse.ID, suite.item.ID).
		WillReturnError(pgx.ErrNoRows)
}

func (suite *WarehouseItemsServiceTestSuite) expectOccupiedVolume(used decimal.Decimal) {
	suite.mock.ExpectQuery(`SELECT COALESCE\(SUM`).
		WithArgs(suite.warehouse.ID).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(used))
}

func (suite *WarehouseItemsServiceTestSuite) expectUpsert(quantity int) {
	suite.mock.ExpectExec(`INSERT INTO warehouse_items`).
		WithArgs(suite.warehouse.ID, suite.item.ID, quantity).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
}

func (suite *WarehouseItemsServiceTestSuite) expectCacheInvalidation() {
	suite.mockCache.On("DeleteWarehouseItem", mock.Anything, suite.warehouse.ID, suite.item.ID).Return(nil)
	suite.mockCache.On("DeleteCapacity", mock.Anything, suite.warehouse.ID).Return(nil)
}

func (suite *WarehouseItemsServiceTestSuite) TestApplyQuantityChange_CreatesPairOnFirstInbound() {
	suite.mock.ExpectBegin()
	suite.expectWarehouseFetch(suite.warehouse)
	suite.expectItemFetch(suite.item)
	suite.expectPairLockMissing()
	suite.expectOccupiedVolume(decimal.Zero)
	suite.expectUpsert(5)
	suite.mock.ExpectCommit()
	suite.expectCacheInvalidation()

	wi, err := suite.service.ApplyQuantityChange(suite.context, suite.warehouse.ID, suite.item.ID, 5)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, wi.Quantity)
}

func (suite *WarehouseItemsServiceTestSuite) TestApplyQuantityChange_IncrementsExistingPair() {
	suite.mock.ExpectBegin()
	suite.expectWarehouseFetch(suite.warehouse)
	suite.expectItemFetch(suite.item)
	suite.expectPairLock(10)
	suite.expectOccupiedVolume(decimal.NewFromInt(20))
	suite.expectUpsert(13)
	suite.mock.ExpectCommit()
	suite.expectCacheInvalidation()

	wi, err := suite.service.ApplyQuantityChange(suite.context, suite.warehouse.ID, suite.item.ID, 3)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 13, wi.Quantity)
}

func (suite *WarehouseItemsServiceTestSuite) TestApplyQuantityChange_DecrementSkipsCapacityCheck() {
	suite.mock.ExpectBegin()
	suite.expectWarehouseFetch(suite.warehouse)
	suite.expectItemFetch(suite.item)
	suite.expectPairLock(10)
	suite.expectUpsert(6)
	suite.mock.ExpectCommit()
	suite.expectCacheInvalidation()

	wi, err := suite.service.ApplyQuantityChange(suite.context, suite.warehouse.ID, suite.item.ID, -4)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 6, wi.Quantity)
}

func (suite *WarehouseItemsServiceTestSuite) TestApplyQuantityChange_ReduceMissingPairFails() {
	suite.mock.ExpectBegin()
	suite.expectWarehouseFetch(suite.warehouse)
	suite.expectItemFetch(suite.item)
	suite.expectPairLockMissing()
	suite.mock.ExpectRollback()

	wi, err := suite.service.ApplyQuantityChange(suite.context, suite.warehouse.ID, suite.item.ID, -1)
	assert.Nil(suite.T(), wi)
	var invalid *common.InvalidOperationError
	assert.ErrorAs(suite.T(), err, &invalid)
	assert.Contains(suite.T(), err.Error(), "non-existent item")
}

func (suite *WarehouseItemsServiceTestSuite) TestApplyQuantityChange_ReduceBelowZeroFails() {
	suite.mock.ExpectBegin()
	suite.expectWarehouseFetch(suite.warehouse)
	suite.expectItemFetch(suite.item)
	suite.expectPairLock(3)
	suite.mock.ExpectRollback()

	wi, err := suite.service.ApplyQuantityChange(suite.context, suite.warehouse.ID, suite.item.ID, -5)
	assert.Nil(suite.T(), wi)
	var invalid *common.InvalidOperationError
	assert.ErrorAs(suite.T(), err, &invalid)
	assert.Contains(suite.T(), err.Error(), "negative")
}

func (suite *WarehouseItemsServiceTestSuite) TestApplyQuantityChange_ExactlyAtCapacitySucceeds() {
	// used 90 + needed 10 == max 100
	suite.mock.ExpectBegin()
	suite.expectWarehouseFetch(suite.warehouse)
	suite.expectItemFetch(suite.item)
	suite.expectPairLock(45)
	suite.expectOccupiedVolume(decimal.NewFromInt(90))
	suite.expectUpsert(50)
	suite.mock.ExpectCommit()
	suite.expectCacheInvalidation()

	wi, err := suite.service.ApplyQuantityChange(suite.context, suite.warehouse.ID, suite.item.ID, 5)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 50, wi.Quantity)
}

func (suite *WarehouseItemsServiceTestSuite) TestApplyQuantityChange_OneOverCapacityFails() {
	// used 90 + needed 12 > max 100
	suite.mock.ExpectBegin()
	suite.expectWarehouseFetch(suite.warehouse)
	suite.expectItemFetch(suite.item)
	suite.expectPairLock(45)
	suite.expectOccupiedVolume(decimal.NewFromInt(90))
	suite.mock.ExpectRollback()

	wi, err := suite.service.ApplyQuantityChange(suite.context, suite.warehouse.ID, suite.item.ID, 6)
	assert.Nil(suite.T(), wi)
	var capacity *common.CapacityExceededError
	assert.ErrorAs(suite.T(), err, &capacity)
	assert.True(suite.T(), capacity.Available.Equal(decimal.NewFromInt(10)))
	assert.True(suite.T(), capacity.Needed.Equal(decimal.NewFromInt(12)))
}

func (suite *WarehouseItemsServiceTestSuite) TestApplyQuantityChange_NoMaxCapacitySkipsCheck() {
	suite.warehouse.MaximumCapacityCubicFeet = decimal.NullDecimal{}

	suite.mock.ExpectBegin()
	suite.expectWarehouseFetch(suite.warehouse)
	suite.expectItemFetch(suite.item)
	suite.expectPairLockMissing()
	suite.expectUpsert(1000)
	suite.mock.ExpectCommit()
	suite.expectCacheInvalidation()

	wi, err := suite.service.ApplyQuantityChange(suite.context, suite.warehouse.ID, suite.item.ID, 1000)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1000, wi.Quantity)
}

func (suite *WarehouseItemsServiceTestSuite) TestApplyQuantityChange_ZeroDeltaWithoutPairIsNoOp() {
	suite.mock.ExpectBegin()
	suite.expectWarehouseFetch(suite.warehouse)
	suite.expectItemFetch(suite.item)
	suite.expectPairLockMissing()
	// no upsert: a zero change never creates a row
	suite.mock.ExpectCommit()
	suite.expectCacheInvalidation()

	wi, err := suite.service.ApplyQuantityChange(suite.context, suite.warehouse.ID, suite.item.ID, 0)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, wi.Quantity)
	assert.Equal(suite.T(), suite.warehouse.ID, wi.WarehouseID)
	assert.Equal(suite.T(), suite.item.ID, wi.ItemID)
}

func (suite *WarehouseItemsServiceTestSuite) TestApplyQuantityChange_WarehouseNotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`FROM warehouses WHERE id = \$1`).
		WithArgs(suite.warehouse.ID).
		WillReturnError(pgx.ErrNoRows)
	suite.mock.ExpectRollback()

	wi, err := suite.service.ApplyQuantityChange(suite.context, suite.warehouse.ID, suite.item.ID, 5)
	assert.Nil(suite.T(), wi)
	var notFound *common.NotFoundError
	assert.ErrorAs(suite.T(), err, &notFound)
	assert.Equal(suite.T(), "warehouse", notFound.Resource)
}

func (suite *WarehouseItemsServiceTestSuite) TestApplyQuantityChange_ItemNotFound() {
	suite.mock.ExpectBegin()
	suite.expectWarehouseFetch(suite.warehouse)
	suite.mock.ExpectQuery(`FROM items WHERE id = \$1`).
		WithArgs(suite.item.ID).
		WillReturnError(pgx.ErrNoRows)
	suite.mock.ExpectRollback()

	wi, err := suite.service.ApplyQuantityChange(suite.context, suite.warehouse.ID, suite.item.ID, 5)
	assert.Nil(suite.T(), wi)
	var notFound *common.NotFoundError
	assert.ErrorAs(suite.T(), err, &notFound)
	assert.Equal(suite.T(), "item", notFound.Resource)
}

func (suite *WarehouseItemsServiceTestSuite) TestGet_CacheHitSkipsDatabase() {
	cached := &models.WarehouseItem{
		WarehouseID: suite.warehouse.ID,
		ItemID:      suite.item.ID,
		Quantity:    9,
	}
	suite.mockCache.On("GetWarehouseItem", mock.Anything, suite.warehouse.ID, suite.item.ID).Return(cached, nil)

	wi, err := suite.service.Get(suite.context, suite.warehouse.ID, suite.item.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 9, wi.Quantity)
}

func (suite *WarehouseItemsServiceTestSuite) TestGet_CacheMissFallsThroughAndBackfills() {
	suite.mockCache.On("GetWarehouseItem", mock.Anything, suite.warehouse.ID, suite.item.ID).Return(nil, nil)
	suite.mockCache.On("SetWarehouseItem", mock.Anything, mock.Anything, pairCacheTTL).Return(nil)

	rows := pgxmock.NewRows([]string{"warehouse_id", "item_id", "quantity", "last_updated"}).
		AddRow(suite.warehouse.ID, suite.item.ID, 4, time.Now())
	suite.mock.ExpectQuery(`FROM warehouse_items\s+WHERE warehouse_id = \$1 AND item_id = \$2`).
		WithArgs(suite.warehouse.ID, suite.item.ID).
		WillReturnRows(rows)

	wi, err := suite.service.Get(suite.context, suite.warehouse.ID, suite.item.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4, wi.Quantity)
}

func (suite *WarehouseItemsServiceTestSuite) TestSearchInventoryByItem_GroupsByItem() {
	otherWarehouse := uuid.New()
	rows := pgxmock.NewRows([]string{"id", "sku", "name", "id", "name", "quantity"}).
		AddRow(suite.item.ID, "SKU-100", "Catan", suite.warehouse.ID, "East", 4).
		AddRow(suite.item.ID, "SKU-100", "Catan", otherWarehouse, "West", 6)

	suite.mock.ExpectQuery(`ILIKE`).
		WithArgs("%catan%").
		WillReturnRows(rows)

	summaries, err := suite.service.SearchInventoryByItem(suite.context, "catan")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), summaries, 1)
	assert.Equal(suite.T(), 10, summaries[0].TotalQuantity)
	assert.Len(suite.T(), summaries[0].Locations, 2)
}

func (suite *WarehouseItemsServiceTestSuite) TestSearchInventoryByItem_EmptyQueryRejected() {
	summaries, err := suite.service.SearchInventoryByItem(suite.context, "   ")
	assert.Nil(suite.T(), summaries)
	var invalid *common.InvalidOperationError
	assert.ErrorAs(suite.T(), err, &invalid)
}
