package controllers

import (
	"wine-api/models"
	"wine-api/repositories"
	"wine-api/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(DB *gorm.DB) *UserController {
	return &UserController{DB: DB}
}

type UserInput struct {
	FirstName string          `json:"first_name" validate:"required"`
	LastName  string          `json:"last_name" validate:"required"`
	Email     string          `json:"email" validate:"required,email"`
	Contact   string          `json:"contact"`
	Role      models.UserRole `json:"role" validate:"required"`
	Password  string          `json:"password" validate:"required,min=6"`
}

// CREATE
func (c *UserController) CreateUser(ctx *fiber.Ctx) error {
	var input UserInput
	if err := ctx.BodyParser(&input); err != nil {
		return respondValidationError(ctx, "Invalid input")
	}

	if err := validate.Struct(input); err != nil {
		return respondValidationError(ctx, err.Error())
	}
	if !input.Role.Valid() {
		return respondValidationError(ctx, "role must be one of Admin, Manager, Staff")
	}

	// Hashing is the collaborator's job; the plain password never persists.
	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to hash password",
		})
	}

	user := models.User{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Name:           input.FirstName + " " + input.LastName,
		Email:          input.Email,
		Contact:        input.Contact,
		Role:           input.Role,
		HashedPassword: hashedPassword,
		IsActive:       true,
	}

	repo := repositories.NewUserRepository(c.DB)
	if err := repo.Create(&user); err != nil {
		return respondCreateError(ctx, err, "user with this email")
	}

	return respondCreated(ctx, user)
}

// READ BY ID
func (c *UserController) GetUserByID(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return respondValidationError(ctx, "Invalid user id")
	}

	repo := repositories.NewUserRepository(c.DB)
	user, err := repo.GetByID(id)
	if err != nil {
		return respondFetchError(ctx, err, "User")
	}

	return respondOK(ctx, user)
}
