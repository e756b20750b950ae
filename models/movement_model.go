package models

import (
	"time"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"

	"wine-api/idgen"
	"wine-api/types"
)

type MovementType string

const (
	MovementInbound    MovementType = "Inbound"
	MovementOutbound   MovementType = "Outbound"
	MovementTransfer   MovementType = "Transfer"
	MovementDepletion  MovementType = "Depletion"
	MovementAdjustment MovementType = "Adjustment"
)

var movementTypes = []MovementType{
	MovementInbound,
	MovementOutbound,
	MovementTransfer,
	MovementDepletion,
	MovementAdjustment,
}

func (t MovementType) Valid() bool {
	return slices.Contains(movementTypes, t)
}

// Movement is an append-only audit record of stock changing state. Rows are
// never updated or deleted; a correction is a new Movement.
type Movement struct {
	ID             types.SnowflakeID  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	BatchRef       string             `json:"batch_ref" gorm:"not null"`
	SkuID          types.SnowflakeID  `json:"sku_id" gorm:"not null"`
	Quantity       int                `json:"quantity" gorm:"not null"`
	FromLocationID *types.SnowflakeID `json:"from_location_id"`
	ToLocationID   *types.SnowflakeID `json:"to_location_id"`
	FromLotID      *types.SnowflakeID `json:"from_lot_id"`
	ToLotID        *types.SnowflakeID `json:"to_lot_id"`
	MovementType   MovementType       `json:"movement_type" gorm:"not null"`
	Reason         string             `json:"reason"`
	PerformedBy    types.SnowflakeID  `json:"performed_by" gorm:"not null"`
	ApprovedBy     *types.SnowflakeID `json:"approved_by"`
	IsHighValue    bool               `json:"is_high_value" gorm:"default:false"`
	CreatedAt      time.Time          `json:"created_at"`

	Sku          *WineSKU    `json:"-" gorm:"foreignKey:SkuID"`
	FromLocation *Location   `json:"-" gorm:"foreignKey:FromLocationID"`
	ToLocation   *Location   `json:"-" gorm:"foreignKey:ToLocationID"`
	FromLot      *StorageLot `json:"-" gorm:"foreignKey:FromLotID"`
	ToLot        *StorageLot `json:"-" gorm:"foreignKey:ToLotID"`
	Performer    *User       `json:"-" gorm:"foreignKey:PerformedBy"`
	Approver     *User       `json:"-" gorm:"foreignKey:ApprovedBy"`
}

func (m *Movement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == 0 {
		m.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return nil
}
