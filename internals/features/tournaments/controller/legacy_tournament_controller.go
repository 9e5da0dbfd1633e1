// file: internals/features/tournaments/controller/legacy_tournament_controller.go
package controller

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	d "github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/dto"
	m "github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/model"
	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/repository"
	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/service"
	helper "github.com/Ariffin97/portal-mpa-sub002/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

// TournamentReader is the facade surface the legacy endpoints need.
type TournamentReader interface {
	ListAll(ctx context.Context) ([]m.LegacyTournament, error)
	GetByID(ctx context.Context, id string) (m.LegacyTournament, bool, error)
	GetByName(ctx context.Context, name string) (m.LegacyTournament, bool, error)
	ListByType(ctx context.Context, token string) ([]m.LegacyTournament, error)
	ListUpcoming(ctx context.Context) ([]m.LegacyTournament, error)
	Search(ctx context.Context, term string) ([]m.LegacyTournament, error)
	Stats(ctx context.Context) (service.Stats, error)
	Types() []m.LegacyTypeInfo
}

type LegacyTournamentController struct {
	Reader   TournamentReader
	Validate *validator.Validate
	Log      *zap.Logger
}

func NewLegacyTournamentController(r TournamentReader, v *validator.Validate, log *zap.Logger) *LegacyTournamentController {
	if v == nil {
		v = validator.New()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LegacyTournamentController{Reader: r, Validate: v, Log: log}
}

/* =========================
   Small helpers
   ========================= */

// writeStoreError maps store failures: unreachable store -> 503, anything else -> 500.
func (ctl *LegacyTournamentController) writeStoreError(c *fiber.Ctx, err error) error {
	ctl.Log.Error("legacy tournament read failed",
		zap.String("path", c.Path()),
		zap.Any("reqid", c.Locals("reqid")),
		zap.Error(err),
	)
	if repository.IsUnavailable(err) {
		return helper.JsonError(c, http.StatusServiceUnavailable, "tournament store unavailable")
	}
	return helper.JsonError(c, http.StatusInternalServerError, "failed to read tournaments")
}

/* =========================
   Lists
   ========================= */

// GET /api/tournaments
func (ctl *LegacyTournamentController) List(c *fiber.Ctx) error {
	rows, err := ctl.Reader.ListAll(c.UserContext())
	if err != nil {
		return ctl.writeStoreError(c, err)
	}
	return c.JSON(rows)
}

// GET /api/tournaments/upcoming
func (ctl *LegacyTournamentController) Upcoming(c *fiber.Ctx) error {
	rows, err := ctl.Reader.ListUpcoming(c.UserContext())
	if err != nil {
		return ctl.writeStoreError(c, err)
	}
	return c.JSON(rows)
}

// GET /api/tournaments/search?q=
func (ctl *LegacyTournamentController) Search(c *fiber.Ctx) error {
	var q d.SearchTournamentsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	q.Normalize()
	if err := ctl.Validate.Struct(q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "q is required (max 100 characters)")
	}

	rows, err := ctl.Reader.Search(c.UserContext(), q.Q)
	if err != nil {
		return ctl.writeStoreError(c, err)
	}
	return c.JSON(rows)
}

// GET /api/tournaments/type/:type
func (ctl *LegacyTournamentController) ByType(c *fiber.Ctx) error {
	var p d.TournamentTypeParam
	if err := c.ParamsParser(&p); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	p.Normalize()
	if err := ctl.Validate.Struct(p); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid tournament type")
	}

	rows, err := ctl.Reader.ListByType(c.UserContext(), p.Type)
	if err != nil {
		return ctl.writeStoreError(c, err)
	}
	return c.JSON(rows)
}

/* =========================
   Single record
   ========================= */

// GET /api/tournaments/:id
func (ctl *LegacyTournamentController) GetByID(c *fiber.Ctx) error {
	var p d.TournamentIDParam
	if err := c.ParamsParser(&p); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	p.Normalize()
	if err := ctl.Validate.Struct(p); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid tournament id")
	}

	row, ok, err := ctl.Reader.GetByID(c.UserContext(), p.ID)
	if err != nil {
		return ctl.writeStoreError(c, err)
	}
	if !ok {
		return helper.JsonError(c, http.StatusNotFound, "Tournament not found")
	}
	return c.JSON(row)
}

// GET /api/tournaments/name/:name
func (ctl *LegacyTournamentController) GetByName(c *fiber.Ctx) error {
	var p d.TournamentNameParam
	if err := c.ParamsParser(&p); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	p.Normalize()
	if err := ctl.Validate.Struct(p); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid tournament name")
	}

	row, ok, err := ctl.Reader.GetByName(c.UserContext(), p.Name)
	if err != nil {
		return ctl.writeStoreError(c, err)
	}
	if !ok {
		return helper.JsonError(c, http.StatusNotFound, "Tournament not found")
	}
	return c.JSON(row)
}

/* =========================
   Summary
   ========================= */

// GET /api/tournaments/stats
func (ctl *LegacyTournamentController) Stats(c *fiber.Ctx) error {
	st, err := ctl.Reader.Stats(c.UserContext())
	if err != nil {
		return ctl.writeStoreError(c, err)
	}
	return c.JSON(st)
}

// GET /api/tournaments/types
func (ctl *LegacyTournamentController) Types(c *fiber.Ctx) error {
	return helper.JsonOK(c, "OK", ctl.Reader.Types())
}
