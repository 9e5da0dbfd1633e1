// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	tournamentController "github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/controller"
	tournamentRoute "github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/route"
	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/scheduler"
)

type Deps struct {
	Tournaments tournamentController.TournamentReader
	Health      *scheduler.StoreHealth
	Log         *zap.Logger
	Environment string
	StartedAt   time.Time
}

func SetupRoutes(app *fiber.App, deps Deps) {
	if deps.StartedAt.IsZero() {
		deps.StartedAt = time.Now()
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}

	deps.Log.Info("setting up base routes")
	BaseRoutes(app, deps)

	// ===================== PUBLIC (legacy) =====================
	deps.Log.Info("mounting legacy tournament routes", zap.String("prefix", "/api/tournaments"))
	api := app.Group("/api")
	tournamentRoute.LegacyTournamentRoutes(api, deps.Tournaments, deps.Log.Named("tournaments"))
}
