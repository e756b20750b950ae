package models

import (
	"time"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"

	"wine-api/idgen"
	"wine-api/types"
)

type LocationType string

const (
	LocationCellar    LocationType = "Cellar"
	LocationOutlet    LocationType = "Outlet"
	LocationWarehouse LocationType = "Warehouse"
)

var locationTypes = []LocationType{LocationCellar, LocationOutlet, LocationWarehouse}

func (t LocationType) Valid() bool {
	return slices.Contains(locationTypes, t)
}

type Location struct {
	ID        types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name      string            `json:"name" gorm:"not null"`
	Address   string            `json:"address"`
	Type      LocationType      `json:"type" gorm:"not null"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.ID == 0 {
		l.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return nil
}
