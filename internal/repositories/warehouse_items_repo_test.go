package repositories

import (
	"context"
	"testing"
	"time"

	"stocktrail/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type WarehouseItemsRepoTestSuite struct {
	suite.Suite
	mock        pgxmock.PgxPoolIface
	repo        WarehouseItemsRepository
	warehouseID uuid.UUID
	itemID      uuid.UUID
	context     context.Context
}

func (suite *WarehouseItemsRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewWarehouseItemsRepo(mock)
	suite.warehouseID = uuid.New()
	suite.itemID = uuid.New()
	suite.context = context.Background()
}

func (suite *WarehouseItemsRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestWarehouseItemsRepoTestSuite(t *testing.T) {
	suite.Run(t, new(WarehouseItemsRepoTestSuite))
}

func (suite *WarehouseItemsRepoTestSuite) pairRows(quantity int) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"warehouse_id", "item_id", "quantity", "last_updated"}).
		AddRow(suite.warehouseID, suite.itemID, quantity, time.Now())
}

func (suite *WarehouseItemsRepoTestSuite) TestGet_Success() {
	suite.mock.ExpectQuery(`SELECT warehouse_id, item_id, quantity, last_updated\s+FROM warehouse_items\s+WHERE warehouse_id = \$1 AND item_id = \$2`).
		WithArgs(suite.warehouseID, suite.itemID).
		WillReturnRows(suite.pairRows(12))

	wi, err := suite.repo.Get(suite.context, suite.warehouseID, suite.itemID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 12, wi.Quantity)
	assert.Equal(suite.T(), suite.warehouseID, wi.WarehouseID)
}

func (suite *WarehouseItemsRepoTestSuite) TestGet_NoRows() {
	suite.mock.ExpectQuery(`FROM warehouse_items`).
		WithArgs(suite.warehouseID, suite.itemID).
		WillReturnError(pgx.ErrNoRows)

	wi, err := suite.repo.Get(suite.context, suite.warehouseID, suite.itemID)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
	assert.Nil(suite.T(), wi)
}

func (suite *WarehouseItemsRepoTestSuite) TestGetForUpdate_LocksRow() {
	suite.mock.ExpectQuery(`FROM warehouse_items\s+WHERE warehouse_id = \$1 AND item_id = \$2\s+FOR UPDATE`).
		WithArgs(suite.warehouseID, suite.itemID).
		WillReturnRows(suite.pairRows(3))

	wi, err := suite.repo.GetForUpdate(suite.context, suite.warehouseID, suite.itemID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, wi.Quantity)
}

func (suite *WarehouseItemsRepoTestSuite) TestUpsert_InsertsOrReplacesQuantity() {
	wi := &models.WarehouseItem{
		WarehouseID: suite.warehouseID,
		ItemID:      suite.itemID,
		Quantity:    7,
	}

	suite.mock.ExpectExec(`INSERT INTO warehouse_items \(warehouse_id, item_id, quantity, last_updated\)\s+VALUES \(\$1, \$2, \$3, NOW\(\)\)\s+ON CONFLICT \(warehouse_id, item_id\) DO UPDATE SET quantity = EXCLUDED\.quantity, last_updated = NOW\(\)`).
		WithArgs(wi.WarehouseID, wi.ItemID, wi.Quantity).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Upsert(suite.context, wi)
	assert.NoError(suite.T(), err)
}

func (suite *WarehouseItemsRepoTestSuite) TestSumOccupiedVolume() {
	suite.mock.ExpectQuery(`SELECT COALESCE\(SUM\(wi\.quantity \* i\.cubic_feet\), 0\)\s+FROM warehouse_items wi\s+JOIN items i ON i\.id = wi\.item_id\s+WHERE wi\.warehouse_id = \$1`).
		WithArgs(suite.warehouseID).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(decimal.NewFromFloat(123.45)))

	used, err := suite.repo.SumOccupiedVolume(suite.context, suite.warehouseID)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), used.Equal(decimal.NewFromFloat(123.45)))
}

func (suite *WarehouseItemsRepoTestSuite) TestSumOccupiedVolume_EmptyWarehouseIsZero() {
	suite.mock.ExpectQuery(`SELECT COALESCE`).
		WithArgs(suite.warehouseID).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(decimal.Zero))

	used, err := suite.repo.SumOccupiedVolume(suite.context, suite.warehouseID)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), used.IsZero())
}

func (suite *WarehouseItemsRepoTestSuite) TestExistsByWarehouse() {
	suite.mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM warehouse_items WHERE warehouse_id = \$1\)`).
		WithArgs(suite.warehouseID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := suite.repo.ExistsByWarehouse(suite.context, suite.warehouseID)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), exists)
}

func (suite *WarehouseItemsRepoTestSuite) TestSearchByItem_MatchesNameOrSKU() {
	otherWarehouse := uuid.New()
	rows := pgxmock.NewRows([]string{"id", "sku", "name", "id", "name", "quantity"}).
		AddRow(suite.itemID, "SKU-1", "Catan", suite.warehouseID, "East", 4).
		AddRow(suite.itemID, "SKU-1", "Catan", otherWarehouse, "West", 6)

	suite.mock.ExpectQuery(`WHERE i\.name ILIKE \$1 OR i\.sku ILIKE \$1\s+ORDER BY i\.name, w\.name`).
		WithArgs("%catan%").
		WillReturnRows(rows)

	results, err := suite.repo.SearchByItem(suite.context, "catan")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 2)
	assert.Equal(suite.T(), "SKU-1", results[0].SKU)
	assert.Equal(suite.T(), "West", results[1].WarehouseName)
}
