package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sahils38/gripinvest-winter-internship/internal/auth/domain"
	"github.com/sahils38/gripinvest-winter-internship/internal/auth/dto"
	"github.com/sahils38/gripinvest-winter-internship/internal/auth/service"
	autherror "github.com/sahils38/gripinvest-winter-internship/internal/errors"
	"github.com/sahils38/gripinvest-winter-internship/pkg/constant"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := input.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	user, err := h.userService.Signup(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrEmailAlreadyRegistered) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Email already registered",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create user",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := input.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	token, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to log in",
		})
	}

	return c.Status(fiber.StatusOK).JSON(token)
}

// Me returns the identity projection of the user resolved by RequireUser.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := c.Locals(constant.CurrentUserKey).(*domain.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Missing bearer token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}
