package controllers

import (
	"strconv"
	"time"

	"wine-api/config"
	"wine-api/repositories"
	"wine-api/types"
	"wine-api/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(DB *gorm.DB) *AuthController {
	return &AuthController{DB: DB}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and issues an HS256 token. The user id claim
// is a string: snowflake ids do not survive JSON number precision.
func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input LoginInput
	if err := ctx.BodyParser(&input); err != nil {
		return respondValidationError(ctx, "Invalid input")
	}
	if err := validate.Struct(input); err != nil {
		return respondValidationError(ctx, err.Error())
	}

	repo := repositories.NewUserRepository(c.DB)
	user, err := repo.GetByEmail(input.Email)
	if err != nil || !user.IsActive || !utils.VerifyPassword(user.HashedPassword, input.Password) {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "invalid email or password",
		})
	}

	claims := jwt.MapClaims{
		"userID":    user.ID.String(),
		"email":     user.Email,
		"role":      string(user.Role),
		"sessionID": uuid.New().String(),
		"exp":       time.Now().Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to sign token",
		})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"token": signed,
			"user":  user,
		},
	})
}

// Me returns the user behind the presented token.
func (c *AuthController) Me(ctx *fiber.Ctx) error {
	rawID, ok := ctx.Locals("userID").(string)
	if !ok || rawID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "invalid session",
		})
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "invalid session",
		})
	}

	repo := repositories.NewUserRepository(c.DB)
	user, err := repo.GetByID(types.SnowflakeID(id))
	if err != nil {
		return respondFetchError(ctx, err, "User")
	}

	return respondOK(ctx, user)
}
