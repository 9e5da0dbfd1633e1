package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	helper "github.com/Ariffin97/portal-mpa-sub002/internals/helpers"
)

func TestRequestContext(t *testing.T) {
	app := fiber.New()
	app.Use(RequestContext(2*time.Second, zaptest.NewLogger(t)))
	app.Get("/probe", func(c *fiber.Ctx) error {
		deadline, ok := c.UserContext().Deadline()
		if !ok || time.Until(deadline) > 2*time.Second {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.SendString(c.Locals("reqid").(string))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	generated := resp.Header.Get(HeaderRequestID)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, string(body))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(HeaderRequestID))
}

func TestRecoveryMiddleware(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	app.Use(RecoveryMiddleware())
	app.Get("/panic", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestCorsMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(CorsMiddleware([]string{"https://portal.example.my"}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://portal.example.my")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "https://portal.example.my", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))

	wildcard := fiber.New()
	wildcard.Use(CorsMiddleware(nil))
	wildcard.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })
	resp, err = wildcard.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func TestGlobalRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Use(GlobalRateLimiter())
	app.Get("/api/tournaments", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	var last *http.Response
	for i := 0; i < 101; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/tournaments", nil))
		require.NoError(t, err)
		last = resp
	}
	assert.Equal(t, http.StatusTooManyRequests, last.StatusCode)
	body, _ := io.ReadAll(last.Body)
	assert.Contains(t, string(body), "RATE_LIMITED")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
