package controller_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/controller"
	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/model"
	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/repository/storetest"
	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/route"
	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/service"
	helper "github.com/Ariffin97/portal-mpa-sub002/internals/helpers"
)

func newApp(t *testing.T, reader controller.TournamentReader) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	route.LegacyTournamentRoutes(app.Group("/api"), reader, zaptest.NewLogger(t))
	return app
}

func get(t *testing.T, app *fiber.App, target string) (int, []byte) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func decodeList(t *testing.T, body []byte) []map[string]any {
	t.Helper()

	var out []map[string]any
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func field(rows []map[string]any, key string) []any {
	out := make([]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, r[key])
	}
	return out
}

func newFacadeApp(t *testing.T) (*fiber.App, map[string]string) {
	t.Helper()

	apps := []model.TournamentApplication{
		storetest.Application("Selangor Open", storetest.Date(2025, 3, 1), model.ClassificationState, model.StatusApproved),
		storetest.InState(storetest.Application("Kuching Open", storetest.Date(2025, 1, 10), model.ClassificationState, model.StatusApproved), "Sarawak"),
		storetest.Application("Hari Raya Cup", storetest.Date(2025, 2, 14), model.ClassificationDistrict, model.StatusApproved),
		storetest.Application("Hidden Open", storetest.Date(2025, 2, 20), model.ClassificationNational, model.StatusRejected),
	}
	store, ids := storetest.NewStore(t, apps...)

	byTitle := map[string]string{}
	for i, a := range apps {
		byTitle[a.EventTitle] = ids[i]
	}

	layer := service.NewCompatLayer(store,
		service.WithClock(func() time.Time { return storetest.Date(2025, 2, 1) }),
	)
	return newApp(t, layer), byTitle
}

func TestLegacyRoutes_Lists(t *testing.T) {
	app, _ := newFacadeApp(t)

	code, body := get(t, app, "/api/tournaments")
	require.Equal(t, http.StatusOK, code)
	rows := decodeList(t, body)
	assert.Equal(t, []any{"Kuching Open", "Hari Raya Cup", "Selangor Open"}, field(rows, "name"))
	assert.Equal(t, []any{"sarawak", "local", "state"}, field(rows, "type"))
	assert.Equal(t, []any{true, true, true}, field(rows, "registrationOpen"))
	assert.Equal(t, []any{}, rows[0]["registeredPlayers"])
	assert.EqualValues(t, 0, rows[0]["__v"])
	assert.Equal(t, model.LegacySource, rows[0]["source"])

	code, body = get(t, app, "/api/tournaments/upcoming")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"Hari Raya Cup", "Selangor Open"}, field(decodeList(t, body), "name"))

	code, body = get(t, app, "/api/tournaments/search?q=OPEN")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"Kuching Open", "Selangor Open"}, field(decodeList(t, body), "name"))

	code, body = get(t, app, "/api/tournaments/type/sarawak")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"Kuching Open"}, field(decodeList(t, body), "name"))

	code, body = get(t, app, "/api/tournaments/type/bogus")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(body))
}

func TestLegacyRoutes_SearchRequiresTerm(t *testing.T) {
	app, _ := newFacadeApp(t)

	code, body := get(t, app, "/api/tournaments/search")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(body), "BAD_REQUEST")

	code, _ = get(t, app, "/api/tournaments/search?q=%20%20")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestLegacyRoutes_Single(t *testing.T) {
	app, ids := newFacadeApp(t)

	code, body := get(t, app, "/api/tournaments/"+ids["Hari Raya Cup"])
	require.Equal(t, http.StatusOK, code)
	var one map[string]any
	require.NoError(t, json.Unmarshal(body, &one))
	assert.Equal(t, "Hari Raya Cup", one["name"])
	assert.Equal(t, ids["Hari Raya Cup"], one["_id"])

	code, body = get(t, app, "/api/tournaments/"+ids["Hidden Open"])
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, string(body), "NOT_FOUND")

	code, _ = get(t, app, "/api/tournaments/not-an-id")
	assert.Equal(t, http.StatusNotFound, code)

	code, body = get(t, app, "/api/tournaments/name/"+url.PathEscape("Hari Raya Cup"))
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &one))
	assert.Equal(t, "local", one["type"])

	code, _ = get(t, app, "/api/tournaments/name/"+url.PathEscape("Hidden Open"))
	assert.Equal(t, http.StatusNotFound, code)
}

func TestLegacyRoutes_NormalisesNames(t *testing.T) {
	store, _ := storetest.NewStore(t,
		storetest.Application("Caf\u00e9 Open", storetest.Date(2025, 4, 5), model.ClassificationNational, model.StatusApproved),
	)
	app := newApp(t, service.NewCompatLayer(store))

	code, body := get(t, app, "/api/tournaments/name/"+url.PathEscape("  Cafe\u0301 Open "))
	require.Equal(t, http.StatusOK, code, string(body))
	var one map[string]any
	require.NoError(t, json.Unmarshal(body, &one))
	assert.Equal(t, "Caf\u00e9 Open", one["name"])

	code, body = get(t, app, "/api/tournaments/search?q="+url.QueryEscape("cafe\u0301"))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"Caf\u00e9 Open"}, field(decodeList(t, body), "name"))
}

func TestLegacyRoutes_StatsAndTypes(t *testing.T) {
	app, _ := newFacadeApp(t)

	code, body := get(t, app, "/api/tournaments/stats")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"total":3,"upcoming":2,"thisMonth":1,"registrationOpen":2}`, string(body))

	code, body = get(t, app, "/api/tournaments/types")
	require.Equal(t, http.StatusOK, code)
	var env struct {
		Success bool                   `json:"success"`
		Data    []model.LegacyTypeInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	assert.True(t, env.Success)
	assert.Equal(t, model.LegacyTypes(), env.Data)
}

/* ===================== failures ===================== */

type brokenReader struct {
	controller.TournamentReader
	err error
}

func (b brokenReader) ListAll(context.Context) ([]model.LegacyTournament, error) { return nil, b.err }

func (b brokenReader) Stats(context.Context) (service.Stats, error) { return service.Stats{}, b.err }

func TestLegacyRoutes_StoreErrors(t *testing.T) {
	down := newApp(t, brokenReader{err: fmt.Errorf("list tournaments: %w", &pgconn.PgError{Code: "08006"})})
	code, body := get(t, down, "/api/tournaments")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, string(body), "UNAVAILABLE")

	broken := newApp(t, brokenReader{err: fmt.Errorf("tournament stats: %w", &pgconn.PgError{Code: "42P01"})})
	code, body = get(t, broken, "/api/tournaments/stats")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Contains(t, string(body), "INTERNAL_ERROR")
}
