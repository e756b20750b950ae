package controllers

import (
	"wine-api/models"
	"wine-api/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(DB *gorm.DB) *LocationController {
	return &LocationController{DB: DB}
}

type LocationInput struct {
	Name    string              `json:"name" validate:"required"`
	Address string              `json:"address"`
	Type    models.LocationType `json:"type" validate:"required"`
}

// CREATE
func (c *LocationController) CreateLocation(ctx *fiber.Ctx) error {
	var input LocationInput
	if err := ctx.BodyParser(&input); err != nil {
		return respondValidationError(ctx, "Invalid input")
	}

	if err := validate.Struct(input); err != nil {
		return respondValidationError(ctx, err.Error())
	}
	if !input.Type.Valid() {
		return respondValidationError(ctx, "type must be one of Cellar, Outlet, Warehouse")
	}

	location := models.Location{
		Name:    input.Name,
		Address: input.Address,
		Type:    input.Type,
	}

	repo := repositories.NewLocationRepository(c.DB)
	if err := repo.Create(&location); err != nil {
		return respondCreateError(ctx, err, "location")
	}

	return respondCreated(ctx, location)
}

// READ BY ID
func (c *LocationController) GetLocationByID(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return respondValidationError(ctx, "Invalid location id")
	}

	repo := repositories.NewLocationRepository(c.DB)
	location, err := repo.GetByID(id)
	if err != nil {
		return respondFetchError(ctx, err, "Location")
	}

	return respondOK(ctx, location)
}
