package controllers

import (
	"wine-api/models"
	"wine-api/repositories"
	"wine-api/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StorageLotController struct {
	DB *gorm.DB
}

func NewStorageLotController(DB *gorm.DB) *StorageLotController {
	return &StorageLotController{DB: DB}
}

type StorageLotInput struct {
	LocationID types.SnowflakeID `json:"location_id" validate:"required"`
	LotName    string            `json:"lot_name" validate:"required"`
	Capacity   int               `json:"capacity" validate:"required,gt=0"`
}

// CREATE
func (c *StorageLotController) CreateStorageLot(ctx *fiber.Ctx) error {
	var input StorageLotInput
	if err := ctx.BodyParser(&input); err != nil {
		return respondValidationError(ctx, "Invalid input")
	}

	if err := validate.Struct(input); err != nil {
		return respondValidationError(ctx, err.Error())
	}

	lot := models.StorageLot{
		LocationID: input.LocationID,
		LotName:    input.LotName,
		Capacity:   input.Capacity,
	}

	repo := repositories.NewStorageLotRepository(c.DB)
	if err := repo.Create(&lot); err != nil {
		return respondCreateError(ctx, err, "storage lot with this name")
	}

	return respondCreated(ctx, lot)
}

// READ BY ID
func (c *StorageLotController) GetStorageLotByID(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return respondValidationError(ctx, "Invalid storage lot id")
	}

	repo := repositories.NewStorageLotRepository(c.DB)
	lot, err := repo.GetByID(id)
	if err != nil {
		return respondFetchError(ctx, err, "Storage lot")
	}

	return respondOK(ctx, lot)
}
