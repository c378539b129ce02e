package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/sahils38/gripinvest-winter-internship/internal/errors"
	"github.com/sahils38/gripinvest-winter-internship/pkg/constant"
)

// RequireUser guards a route with bearer-token authentication. On success
// the resolved user is stored in the request locals under
// constant.CurrentUserKey.
func (h *AuthHandler) RequireUser(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, constant.BearerScheme+" ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Missing bearer token",
		})
	}

	tokenString := strings.TrimSpace(strings.TrimPrefix(header, constant.BearerScheme+" "))

	user, err := h.userService.CurrentUser(c.UserContext(), tokenString)
	if err != nil {
		if errors.Is(err, autherror.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid/expired token",
		})
	}

	c.Locals(constant.CurrentUserKey, user)

	return c.Next()
}
