package models

import (
	"time"

	"gorm.io/gorm"

	"wine-api/idgen"
	"wine-api/types"
)

// StorageLot is a physical subdivision of a Location, e.g. a rack or bin.
// Lot names only need to be unique within their location.
type StorageLot struct {
	ID         types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	LocationID types.SnowflakeID `json:"location_id" gorm:"not null;uniqueIndex:idx_location_lot_name"`
	LotName    string            `json:"lot_name" gorm:"not null;uniqueIndex:idx_location_lot_name"`
	Capacity   int               `json:"capacity" gorm:"not null"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	Location *Location `json:"-" gorm:"foreignKey:LocationID"`
}

func (s *StorageLot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == 0 {
		s.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return nil
}
