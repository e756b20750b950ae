package controllers

import (
	"fmt"
	"time"

	"wine-api/models"
	"wine-api/repositories"
	"wine-api/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WineSKUController struct {
	DB *gorm.DB
}

func NewWineSKUController(DB *gorm.DB) *WineSKUController {
	return &WineSKUController{DB: DB}
}

type WineSKUInput struct {
	ProductCode    string   `json:"product_code" validate:"required"`
	Barcode        string   `json:"barcode"`
	WineName       string   `json:"wine_name" validate:"required"`
	Description    string   `json:"description"`
	VintageYear    int      `json:"vintage_year" validate:"required"`
	Producer       string   `json:"producer" validate:"required"`
	Country        string   `json:"country" validate:"required"`
	Region         string   `json:"region" validate:"required"`
	Appellation    string   `json:"appellation"`
	GrapeVarieties []string `json:"grape_varieties" validate:"required,min=1,dive,required"`
	AlcoholContent float64  `json:"alcohol_content" validate:"gte=0"`
	BottlingDate   string   `json:"bottling_date"`
	PriceBottle    float64  `json:"price_bottle" validate:"gte=0"`
	PriceGlass     float64  `json:"price_glass" validate:"gte=0"`
	CostPrice      float64  `json:"cost_price" validate:"gte=0"`
	ConditionNotes []string `json:"condition_notes"`
}

// Validate runs the declared tags plus the vintage bound, which has a moving
// upper limit and cannot live in a struct tag.
func (in *WineSKUInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return err
	}
	currentYear := time.Now().Year()
	if in.VintageYear < 1900 || in.VintageYear > currentYear {
		return fmt.Errorf("vintage_year must be between 1900 and %d", currentYear)
	}
	return nil
}

func (in *WineSKUInput) toModel() models.WineSKU {
	return models.WineSKU{
		ProductCode:    in.ProductCode,
		Barcode:        in.Barcode,
		WineName:       in.WineName,
		Description:    in.Description,
		VintageYear:    in.VintageYear,
		Producer:       in.Producer,
		Country:        in.Country,
		Region:         in.Region,
		Appellation:    in.Appellation,
		GrapeVarieties: types.StringList(in.GrapeVarieties),
		AlcoholContent: in.AlcoholContent,
		BottlingDate:   in.BottlingDate,
		PriceBottle:    in.PriceBottle,
		PriceGlass:     in.PriceGlass,
		CostPrice:      in.CostPrice,
		ConditionNotes: types.StringList(in.ConditionNotes),
	}
}

// CREATE
func (c *WineSKUController) CreateWineSKU(ctx *fiber.Ctx) error {
	var input WineSKUInput
	if err := ctx.BodyParser(&input); err != nil {
		return respondValidationError(ctx, "Invalid input")
	}

	if err := input.Validate(); err != nil {
		return respondValidationError(ctx, err.Error())
	}

	sku := input.toModel()

	repo := repositories.NewWineSKURepository(c.DB)
	if err := repo.Create(&sku); err != nil {
		return respondCreateError(ctx, err, "wine with this product code")
	}

	return respondCreated(ctx, sku)
}

// READ BY ID
func (c *WineSKUController) GetWineSKUByID(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return respondValidationError(ctx, "Invalid wine id")
	}

	repo := repositories.NewWineSKURepository(c.DB)
	sku, err := repo.GetByID(id)
	if err != nil {
		return respondFetchError(ctx, err, "Wine")
	}

	return respondOK(ctx, sku)
}
