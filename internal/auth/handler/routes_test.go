package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahils38/gripinvest-winter-internship/internal/auth/handler"
	"github.com/sahils38/gripinvest-winter-internship/internal/auth/service"
	"github.com/sahils38/gripinvest-winter-internship/internal/mocks"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(_ context.Context) error {
	return p.err
}

// TestRegisterRoutes verifies that every route is mounted.
func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)
	userService := service.NewUserService(mockRepo, mockTokenService)
	authHandler := handler.NewAuthHandler(userService)
	healthHandler := handler.NewHealthHandler(&stubPinger{})

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, healthHandler)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/auth/signup"},
		{http.MethodPost, "/auth/login"},
		{http.MethodGet, "/auth/me"},
		{http.MethodGet, "/health"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)

			// We only care that the route exists; the handlers themselves
			// return 400/401 without a body or token.
			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	t.Run("db reachable", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", handler.NewHealthHandler(&stubPinger{}).Check)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("db unreachable", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", handler.NewHealthHandler(&stubPinger{err: errors.New("connection refused")}).Check)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})
}
