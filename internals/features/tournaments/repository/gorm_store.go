// file: internals/features/tournaments/repository/gorm_store.go
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/model"
)

const (
	colID             = "tournament_applications_id"
	colStatus         = "tournament_applications_status"
	colClassification = "tournament_applications_classification"
	colState          = "tournament_applications_state"
	colStartDate      = "tournament_applications_event_start_date"
	colTitle          = "tournament_applications_event_title"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GormStore reads tournament applications from a relational database.
type GormStore struct {
	DB *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// instantParam is the placeholder for a time bound. Under the simple protocol Postgres types an
// untyped literal after the column, which would truncate the bound to a date.
func (s *GormStore) instantParam() string {
	if s.DB.Dialector.Name() == "postgres" {
		return "?::timestamptz"
	}
	return "?"
}

func (s *GormStore) scoped(ctx context.Context, f Filter) *gorm.DB {
	tx := s.DB.WithContext(ctx).Model(&model.TournamentApplicationModel{})

	if f.Status != "" {
		tx = tx.Where(colStatus+" = ?", string(f.Status))
	}
	if f.Classification != "" {
		tx = tx.Where(colClassification+" = ?", string(f.Classification))
	}

	switch f.Region {
	case model.RegionSarawakOnly:
		tx = tx.Where(colState+" = ?", model.SarawakRegion)
	case model.RegionExceptSarawak:
		tx = tx.Where("("+colState+" IS NULL OR "+colState+" <> ?)", model.SarawakRegion)
	}

	if f.StartFrom != nil {
		tx = tx.Where(colStartDate+" >= "+s.instantParam(), *f.StartFrom)
	}
	if f.StartBefore != nil {
		tx = tx.Where(colStartDate+" < "+s.instantParam(), *f.StartBefore)
	}

	if f.TitleEquals != "" {
		tx = tx.Where(colTitle+" = ?", f.TitleEquals)
	}
	if f.TitleContains != "" {
		kw := "%" + likeEscaper.Replace(strings.ToLower(f.TitleContains)) + "%"
		tx = tx.Where("LOWER("+colTitle+`) LIKE ? ESCAPE '\'`, kw)
	}
	return tx
}

func ordered(tx *gorm.DB, opts FindOptions) *gorm.DB {
	tx = tx.Order(clause.OrderByColumn{
		Column: clause.Column{Name: colStartDate},
	}).Order(clause.OrderByColumn{Column: clause.Column{Name: colID}})
	if opts.Limit > 0 {
		tx = tx.Limit(opts.Limit)
	}
	return tx
}

func (s *GormStore) Find(ctx context.Context, f Filter, opts FindOptions) ([]model.TournamentApplication, error) {
	var rows []model.TournamentApplicationModel
	if err := ordered(s.scoped(ctx, f), opts).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find tournament applications: %w", err)
	}
	out := make([]model.TournamentApplication, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToDomain())
	}
	return out, nil
}

func (s *GormStore) FindOne(ctx context.Context, f Filter) (*model.TournamentApplication, error) {
	apps, err := s.Find(ctx, f, FindOptions{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, nil
	}
	return &apps[0], nil
}

func (s *GormStore) FindByID(ctx context.Context, id string) (*model.TournamentApplication, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, nil
	}

	var rows []model.TournamentApplicationModel
	if err := s.DB.WithContext(ctx).
		Where(colID+" = ?", parsed.String()).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find tournament application %s: %w", parsed, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	app := rows[0].ToDomain()
	return &app, nil
}

func (s *GormStore) Count(ctx context.Context, f Filter) (int64, error) {
	var n int64
	if err := s.scoped(ctx, f).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count tournament applications: %w", err)
	}
	return n, nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) Close(context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
