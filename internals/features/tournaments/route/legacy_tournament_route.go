// file: internals/features/tournaments/route/legacy_tournament_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	ctl "github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/controller"
)

// =========================
// PUBLIC routes (read-only, legacy paths)
// /tournaments
// =========================
func LegacyTournamentRoutes(r fiber.Router, reader ctl.TournamentReader, log *zap.Logger) {
	h := ctl.NewLegacyTournamentController(reader, validator.New(), log)

	grp := r.Group("/tournaments")
	grp.Get("/", h.List)

	// static segments before /:id
	grp.Get("/upcoming", h.Upcoming)
	grp.Get("/search", h.Search)
	grp.Get("/stats", h.Stats)
	grp.Get("/types", h.Types)
	grp.Get("/type/:type", h.ByType)
	grp.Get("/name/:name", h.GetByName)

	grp.Get("/:id", h.GetByID)
}
