package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"

	"github.com/Ariffin97/portal-mpa-sub002/internals/configs"
	"github.com/Ariffin97/portal-mpa-sub002/internals/middlewares/logger"
)

// SetupMiddlewares installs the global chain in order: recover, request context,
// access log, CORS, rate limit, gzip, etag.
func SetupMiddlewares(app *fiber.App, cfg configs.Config, log *zap.Logger) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext(cfg.RequestTimeout, log.Named("http")))
	app.Use(logger.LoggerMiddleware(cfg.Timezone))
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(GlobalRateLimiter())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
}
