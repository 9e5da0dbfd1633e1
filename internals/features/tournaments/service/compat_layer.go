// file: internals/features/tournaments/service/compat_layer.go
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/model"
	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/repository"
)

// Clock returns the current moment.
type Clock func() time.Time

// Stats is the legacy statistics summary.
type Stats struct {
	Total            int64 `json:"total"`
	Upcoming         int64 `json:"upcoming"`
	ThisMonth        int64 `json:"thisMonth"`
	RegistrationOpen int64 `json:"registrationOpen"`
}

// CompatLayer serves legacy tournament reads from tournament applications.
// It holds no state besides its collaborators and is safe for concurrent use.
type CompatLayer struct {
	store repository.Store
	now   Clock
	loc   *time.Location
	log   *zap.Logger
}

type Option func(*CompatLayer)

func WithClock(c Clock) Option {
	return func(l *CompatLayer) { l.now = c }
}

// WithLocation sets the calendar used for month boundaries.
func WithLocation(loc *time.Location) Option {
	return func(l *CompatLayer) { l.loc = loc }
}

func WithLogger(log *zap.Logger) Option {
	return func(l *CompatLayer) { l.log = log }
}

func NewCompatLayer(store repository.Store, opts ...Option) *CompatLayer {
	l := &CompatLayer{
		store: store,
		now:   time.Now,
		loc:   time.UTC,
		log:   zap.NewNop(),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *CompatLayer) list(ctx context.Context, op string, f repository.Filter) ([]model.LegacyTournament, error) {
	apps, err := l.store.Find(ctx, f, repository.ByStartAsc)
	if err != nil {
		l.log.Warn("store read failed", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return model.ToLegacyList(apps), nil
}

// ListAll returns every approved tournament by start date.
func (l *CompatLayer) ListAll(ctx context.Context) ([]model.LegacyTournament, error) {
	return l.list(ctx, "list tournaments", repository.Approved())
}

// GetByID returns false when the id is unknown, malformed, or not approved.
func (l *CompatLayer) GetByID(ctx context.Context, id string) (model.LegacyTournament, bool, error) {
	app, err := l.store.FindByID(ctx, id)
	if err != nil {
		l.log.Warn("store read failed", zap.String("op", "get by id"), zap.String("id", id), zap.Error(err))
		return model.LegacyTournament{}, false, fmt.Errorf("get tournament %q: %w", id, err)
	}
	if !app.IsApproved() {
		return model.LegacyTournament{}, false, nil
	}
	return model.ToLegacy(*app), true, nil
}

// GetByName matches the event title exactly.
func (l *CompatLayer) GetByName(ctx context.Context, name string) (model.LegacyTournament, bool, error) {
	if name == "" {
		return model.LegacyTournament{}, false, nil
	}
	f := repository.Approved()
	f.TitleEquals = name

	app, err := l.store.FindOne(ctx, f)
	if err != nil {
		l.log.Warn("store read failed", zap.String("op", "get by name"), zap.Error(err))
		return model.LegacyTournament{}, false, fmt.Errorf("get tournament by name: %w", err)
	}
	if !app.IsApproved() {
		return model.LegacyTournament{}, false, nil
	}
	return model.ToLegacy(*app), true, nil
}

// ListByType returns an empty list for tokens outside the legacy table.
func (l *CompatLayer) ListByType(ctx context.Context, token string) ([]model.LegacyTournament, error) {
	t, ok := model.ParseLegacyType(token)
	if !ok {
		l.log.Debug("unknown legacy type", zap.String("type", token))
		return []model.LegacyTournament{}, nil
	}

	f := repository.Approved()
	f.Classification = t.Classification()
	f.Region = t.RegionRule()
	return l.list(ctx, "list tournaments by type "+string(t), f)
}

// ListUpcoming returns approved tournaments starting at or after now.
func (l *CompatLayer) ListUpcoming(ctx context.Context) ([]model.LegacyTournament, error) {
	return l.list(ctx, "list upcoming tournaments", repository.Approved().WithStartFrom(l.now().UTC()))
}

// Search matches term anywhere in the title, ignoring case.
func (l *CompatLayer) Search(ctx context.Context, term string) ([]model.LegacyTournament, error) {
	if term == "" {
		return []model.LegacyTournament{}, nil
	}
	f := repository.Approved()
	f.TitleContains = term
	return l.list(ctx, "search tournaments", f)
}

// Stats counts approved tournaments. RegistrationOpen mirrors Upcoming.
func (l *CompatLayer) Stats(ctx context.Context) (Stats, error) {
	now := l.now()
	monthStart, nextMonth := monthBounds(now, l.loc)

	filters := [3]repository.Filter{
		repository.Approved(),
		repository.Approved().WithStartFrom(now.UTC()),
		repository.Approved().WithStartFrom(monthStart.UTC()).WithStartBefore(nextMonth.UTC()),
	}
	var counts [3]int64

	g, gctx := errgroup.WithContext(ctx)
	for i := range filters {
		i := i
		g.Go(func() error {
			n, err := l.store.Count(gctx, filters[i])
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		l.log.Warn("store count failed", zap.String("op", "stats"), zap.Error(err))
		return Stats{}, fmt.Errorf("tournament stats: %w", err)
	}

	return Stats{
		Total:            counts[0],
		Upcoming:         counts[1],
		ThisMonth:        counts[2],
		RegistrationOpen: counts[1],
	}, nil
}

// Types lists the legacy type table.
func (l *CompatLayer) Types() []model.LegacyTypeInfo {
	return model.LegacyTypes()
}

// monthBounds returns the first instant of the calendar month containing now in loc,
// and the first instant of the following month.
func monthBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}
