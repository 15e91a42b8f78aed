package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Item struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	SKU        string          `json:"sku" db:"sku"`
	Name       string          `json:"name" db:"name"`
	CategoryID *uuid.UUID      `json:"category_id" db:"category_id"`
	CompanyID  *uuid.UUID      `json:"company_id" db:"company_id"`
	WeightLbs  decimal.Decimal `json:"weight_lbs" db:"weight_lbs"`
	CubicFeet  decimal.Decimal `json:"cubic_feet" db:"cubic_feet"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
}
