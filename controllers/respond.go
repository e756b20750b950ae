package controllers

import (
	"errors"
	"strconv"

	"wine-api/repositories"
	"wine-api/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseIDParam reads the :id path parameter. IDs travel as decimal strings.
func parseIDParam(ctx *fiber.Ctx) (types.SnowflakeID, error) {
	raw := ctx.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return types.SnowflakeID(id), nil
}

// respondCreateError maps repository errors from a create attempt onto HTTP
// statuses: duplicate key 409, missing foreign key 422, anything else is a
// storage fault and stays a 500.
func respondCreateError(ctx *fiber.Ctx, err error, detail string) error {
	switch {
	case errors.Is(err, repositories.ErrDuplicate):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"error":   detail + " already exists",
		})
	case errors.Is(err, repositories.ErrForeignKey):
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"error":   "referenced record does not exist",
		})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
}

func respondValidationError(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// respondFetchError distinguishes absence (404) from a storage fault (500).
func respondFetchError(ctx *fiber.Ctx, err error, entity string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   entity + " not found",
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

func respondCreated(ctx *fiber.Ctx, data interface{}) error {
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func respondOK(ctx *fiber.Ctx, data interface{}) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}
