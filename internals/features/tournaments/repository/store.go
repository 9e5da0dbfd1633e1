// file: internals/features/tournaments/repository/store.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/model"
)

var ErrUnsupportedDriver = errors.New("unsupported store driver")

// Store is the read side of the tournament application collection.
type Store interface {
	Find(ctx context.Context, f Filter, opts FindOptions) ([]model.TournamentApplication, error)
	// FindOne returns nil, nil when nothing matches.
	FindOne(ctx context.Context, f Filter) (*model.TournamentApplication, error)
	// FindByID returns nil, nil when the id is unknown or not a valid id for the store.
	FindByID(ctx context.Context, id string) (*model.TournamentApplication, error)
	Count(ctx context.Context, f Filter) (int64, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

/* ===================== Filter ===================== */

// Filter is a conjunction; zero-valued fields do not constrain.
type Filter struct {
	Status         model.ApplicationStatus
	Classification model.Classification

	// Region applies to the state field. RegionExceptSarawak also matches a missing state.
	Region model.RegionRule

	StartFrom   *time.Time // inclusive
	StartBefore *time.Time // exclusive

	TitleEquals   string
	TitleContains string // case-insensitive, literal
}

// Approved is the base filter every legacy read starts from.
func Approved() Filter {
	return Filter{Status: model.StatusApproved}
}

func (f Filter) WithStartFrom(t time.Time) Filter {
	f.StartFrom = &t
	return f
}

func (f Filter) WithStartBefore(t time.Time) Filter {
	f.StartBefore = &t
	return f
}

/* ===================== Options ===================== */

// FindOptions bounds a Find. Results are always ordered by start date, then id.
type FindOptions struct {
	Limit int // 0 = no limit
}

// ByStartAsc is every matching row in start order.
var ByStartAsc = FindOptions{}
