package models

import (
	"time"

	"gorm.io/gorm"

	"wine-api/idgen"
	"wine-api/types"
)

// Stock is the current on-hand balance of a SKU at a location/lot. One row
// per (sku, lot, location) combination; lot is optional for loose storage.
type Stock struct {
	ID         types.SnowflakeID  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	SkuID      types.SnowflakeID  `json:"sku_id" gorm:"not null;uniqueIndex:idx_sku_lot_location"`
	LotID      *types.SnowflakeID `json:"lot_id" gorm:"uniqueIndex:idx_sku_lot_location"`
	LocationID types.SnowflakeID  `json:"location_id" gorm:"not null;uniqueIndex:idx_sku_lot_location"`
	Quantity   int                `json:"quantity" gorm:"not null"`
	UpdatedAt  time.Time          `json:"updated_at"`

	Sku      *WineSKU    `json:"-" gorm:"foreignKey:SkuID"`
	Lot      *StorageLot `json:"-" gorm:"foreignKey:LotID"`
	Location *Location   `json:"-" gorm:"foreignKey:LocationID"`
}

func (s *Stock) BeforeCreate(tx *gorm.DB) error {
	if s.ID == 0 {
		s.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return nil
}
