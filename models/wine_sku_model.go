package models

import (
	"time"

	"gorm.io/gorm"

	"wine-api/idgen"
	"wine-api/types"
)

type WineSKU struct {
	ID             types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	ProductCode    string            `json:"product_code" gorm:"unique;not null"`
	Barcode        string            `json:"barcode"`
	WineName       string            `json:"wine_name" gorm:"not null"`
	Description    string            `json:"description"`
	VintageYear    int               `json:"vintage_year" gorm:"not null"`
	Producer       string            `json:"producer" gorm:"not null"`
	Country        string            `json:"country" gorm:"not null"`
	Region         string            `json:"region" gorm:"not null"`
	Appellation    string            `json:"appellation"`
	GrapeVarieties types.StringList  `json:"grape_varieties" gorm:"not null"`
	AlcoholContent float64           `json:"alcohol_content"`
	BottlingDate   string            `json:"bottling_date"`
	PriceBottle    float64           `json:"price_bottle"`
	PriceGlass     float64           `json:"price_glass"`
	CostPrice      float64           `json:"cost_price"`
	ConditionNotes types.StringList  `json:"condition_notes"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (w *WineSKU) BeforeCreate(tx *gorm.DB) error {
	if w.ID == 0 {
		w.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return nil
}
