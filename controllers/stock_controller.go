package controllers

import (
	"wine-api/models"
	"wine-api/repositories"
	"wine-api/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StockController struct {
	DB *gorm.DB
}

func NewStockController(DB *gorm.DB) *StockController {
	return &StockController{DB: DB}
}

type StockInput struct {
	SkuID      types.SnowflakeID  `json:"sku_id" validate:"required"`
	LotID      *types.SnowflakeID `json:"lot_id"`
	LocationID types.SnowflakeID  `json:"location_id" validate:"required"`
	Quantity   int                `json:"quantity" validate:"required,gt=0"`
}

// CREATE
func (c *StockController) CreateStock(ctx *fiber.Ctx) error {
	var input StockInput
	if err := ctx.BodyParser(&input); err != nil {
		return respondValidationError(ctx, "Invalid input")
	}

	if err := validate.Struct(input); err != nil {
		return respondValidationError(ctx, err.Error())
	}

	stock := models.Stock{
		SkuID:      input.SkuID,
		LotID:      input.LotID,
		LocationID: input.LocationID,
		Quantity:   input.Quantity,
	}

	repo := repositories.NewStockRepository(c.DB)
	if err := repo.Create(&stock); err != nil {
		return respondCreateError(ctx, err, "stock for this sku/lot/location")
	}

	return respondCreated(ctx, stock)
}

// READ BY ID
func (c *StockController) GetStockByID(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return respondValidationError(ctx, "Invalid stock id")
	}

	repo := repositories.NewStockRepository(c.DB)
	stock, err := repo.GetByID(id)
	if err != nil {
		return respondFetchError(ctx, err, "Stock")
	}

	return respondOK(ctx, stock)
}
