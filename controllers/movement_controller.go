package controllers

import (
	"wine-api/models"
	"wine-api/repositories"
	"wine-api/services"
	"wine-api/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MovementController struct {
	DB *gorm.DB
}

func NewMovementController(DB *gorm.DB) *MovementController {
	return &MovementController{DB: DB}
}

type MovementInput struct {
	BatchRef       string              `json:"batch_ref" validate:"required"`
	SkuID          types.SnowflakeID   `json:"sku_id" validate:"required"`
	Quantity       int                 `json:"quantity" validate:"required,gt=0"`
	FromLocationID *types.SnowflakeID  `json:"from_location_id"`
	ToLocationID   *types.SnowflakeID  `json:"to_location_id"`
	FromLotID      *types.SnowflakeID  `json:"from_lot_id"`
	ToLotID        *types.SnowflakeID  `json:"to_lot_id"`
	MovementType   models.MovementType `json:"movement_type" validate:"required"`
	Reason         string              `json:"reason"`
	PerformedBy    types.SnowflakeID   `json:"performed_by" validate:"required"`
	ApprovedBy     *types.SnowflakeID  `json:"approved_by"`
	IsHighValue    bool                `json:"is_high_value"`
}

// CREATE
func (c *MovementController) CreateMovement(ctx *fiber.Ctx) error {
	var input MovementInput
	if err := ctx.BodyParser(&input); err != nil {
		return respondValidationError(ctx, "Invalid input")
	}

	if err := validate.Struct(input); err != nil {
		return respondValidationError(ctx, err.Error())
	}
	if !input.MovementType.Valid() {
		return respondValidationError(ctx, "movement_type must be one of Inbound, Outbound, Transfer, Depletion, Adjustment")
	}

	movement := models.Movement{
		BatchRef:       input.BatchRef,
		SkuID:          input.SkuID,
		Quantity:       input.Quantity,
		FromLocationID: input.FromLocationID,
		ToLocationID:   input.ToLocationID,
		FromLotID:      input.FromLotID,
		ToLotID:        input.ToLotID,
		MovementType:   input.MovementType,
		Reason:         input.Reason,
		PerformedBy:    input.PerformedBy,
		ApprovedBy:     input.ApprovedBy,
		IsHighValue:    input.IsHighValue,
	}

	repo := repositories.NewMovementRepository(c.DB)
	if err := repo.Create(&movement); err != nil {
		return respondCreateError(ctx, err, "movement")
	}

	if movement.IsHighValue {
		// Fire and forget; a mail failure must not fail the movement.
		go services.NotifyHighValueMovement(movement)
	}

	return respondCreated(ctx, movement)
}

// READ BY ID
func (c *MovementController) GetMovementByID(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return respondValidationError(ctx, "Invalid movement id")
	}

	repo := repositories.NewMovementRepository(c.DB)
	movement, err := repo.GetByID(id)
	if err != nil {
		return respondFetchError(ctx, err, "Movement")
	}

	return respondOK(ctx, movement)
}
