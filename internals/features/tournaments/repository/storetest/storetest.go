// Package storetest builds SQLite-backed stores seeded with tournament applications.
package storetest

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/model"
	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/repository"
)

var dbSeq atomic.Int64

// NewDB opens a private in-memory SQLite database with the applications table.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:storetest_%d?mode=memory", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	// one connection keeps the in-memory database alive and serialises concurrent readers
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.TournamentApplicationModel{}))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// NewStore returns a GormStore over a fresh database seeded with apps.
// Applications without an ID get one; the IDs are returned in input order.
func NewStore(t testing.TB, apps ...model.TournamentApplication) (*repository.GormStore, []string) {
	t.Helper()

	db := NewDB(t)
	ids := Seed(t, db, apps...)
	return repository.NewGormStore(db), ids
}

func Seed(t testing.TB, db *gorm.DB, apps ...model.TournamentApplication) []string {
	t.Helper()

	ids := make([]string, 0, len(apps))
	for _, a := range apps {
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		row := model.FromDomain(a)
		require.NoError(t, db.Create(&row).Error)
		ids = append(ids, row.TournamentApplicationsID)
	}
	return ids
}

// Date is a UTC midnight.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Application returns a complete record with the given title, start date, classification and status.
func Application(title string, start time.Time, c model.Classification, st model.ApplicationStatus) model.TournamentApplication {
	return model.TournamentApplication{
		ApplicationCode:      "TA-" + start.Format("20060102"),
		OrganiserName:        "Persatuan Pickleball " + title,
		RegistrationNo:       "PPM-" + start.Format("0102"),
		TelContact:           "+60123456789",
		Email:                "organiser@example.my",
		PersonInCharge:       "Siti",
		EventTitle:           title,
		EventStartDate:       start,
		EventEndDate:         start.AddDate(0, 0, 1),
		State:                "Selangor",
		City:                 "Shah Alam",
		Venue:                "Dewan Komuniti",
		Classification:       c,
		ExpectedParticipants: 64,
		EventSummary:         "Open doubles and singles",
		ScoringFormat:        "rally",
		DataConsent:          true,
		TermsConsent:         true,
		Status:               st,
		SubmissionDate:       start.AddDate(0, -3, 0),
		LastUpdated:          start.AddDate(0, -2, 0),
	}
}

// InState moves an application to another state.
func InState(a model.TournamentApplication, state string) model.TournamentApplication {
	a.State = state
	return a
}
