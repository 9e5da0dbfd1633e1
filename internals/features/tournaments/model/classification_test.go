package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyTypeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		classification Classification
		region         string
		want           LegacyType
	}{
		{"district", ClassificationDistrict, "Johor", LegacyTypeLocal},
		{"divisional", ClassificationDivisional, "Sabah", LegacyTypeDivision},
		{"state in Sarawak", ClassificationState, "Sarawak", LegacyTypeSarawak},
		{"state in Selangor", ClassificationState, "Selangor", LegacyTypeState},
		{"state without region", ClassificationState, "", LegacyTypeState},
		{"state lower-case sarawak is not Sarawak", ClassificationState, "sarawak", LegacyTypeState},
		{"national", ClassificationNational, "Sarawak", LegacyTypeNational},
		{"international", ClassificationInternational, "", LegacyTypeInternational},
		{"unknown classification", Classification("Club"), "Perak", LegacyTypeLocal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, LegacyTypeFor(tt.classification, tt.region))
		})
	}
}

func TestLegacyTable_RoundTrip(t *testing.T) {
	t.Parallel()

	regionFor := map[RegionRule]string{
		RegionAny:           "Kedah",
		RegionSarawakOnly:   SarawakRegion,
		RegionExceptSarawak: "Selangor",
	}

	seen := map[LegacyType]bool{}
	for _, info := range LegacyTypes() {
		got, ok := ParseLegacyType(string(info.Type))
		require.True(t, ok, info.Type)
		require.Equal(t, info.Type, got)
		require.False(t, seen[got], "duplicate type %s", got)
		seen[got] = true

		c := got.Classification()
		assert.Equal(t, info.Classification, c)
		assert.Equal(t, got, LegacyTypeFor(c, regionFor[got.RegionRule()]))
	}
	assert.Len(t, seen, 6)
}

func TestParseLegacyType(t *testing.T) {
	t.Parallel()

	got, ok := ParseLegacyType("  Sarawak ")
	require.True(t, ok)
	assert.Equal(t, LegacyTypeSarawak, got)

	_, ok = ParseLegacyType("bogus")
	assert.False(t, ok)

	_, ok = ParseLegacyType("")
	assert.False(t, ok)

	assert.Equal(t, Classification(""), LegacyType("bogus").Classification())
	assert.Equal(t, RegionAny, LegacyType("bogus").RegionRule())
}

func TestToLegacy(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	app := TournamentApplication{
		ID:             "a1",
		OrganiserName:  "Kuching Pickleball Club",
		TelContact:     "+60123456789",
		PersonInCharge: "Aminah",
		EventTitle:     "Borneo Open",
		EventStartDate: start,
		EventEndDate:   start.AddDate(0, 0, 2),
		State:          "Sarawak",
		City:           "Kuching",
		Venue:          "Stadium Perpaduan",
		Classification: ClassificationState,
		Status:         StatusApproved,
		SubmissionDate: start.AddDate(0, -2, 0),
		LastUpdated:    start.AddDate(0, -1, 0),
	}

	got := ToLegacy(app)
	assert.Equal(t, "a1", got.ID)
	assert.Equal(t, "Borneo Open", got.Name)
	assert.Equal(t, LegacyTypeSarawak, got.Type)
	assert.Equal(t, "Kuching Pickleball Club", got.Organizer)
	assert.Equal(t, "+60123456789", got.PhoneNumber)
	assert.Equal(t, "Aminah", got.PersonInCharge)
	assert.True(t, got.RegistrationOpen)
	assert.Equal(t, app.SubmissionDate, got.CreatedAt)
	assert.Equal(t, app.LastUpdated, got.UpdatedAt)
	assert.NotNil(t, got.RegisteredPlayers)
	assert.Empty(t, got.RegisteredPlayers)
	assert.Zero(t, got.Version)
	assert.Equal(t, LegacySource, got.Source)

	assert.Equal(t, got, ToLegacy(app), "translation is deterministic")

	for _, st := range []ApplicationStatus{StatusPendingReview, StatusUnderReview, StatusRejected, StatusMoreInfoRequired} {
		app.Status = st
		assert.False(t, ToLegacy(app).RegistrationOpen, st)
	}
}

func TestToLegacyList_Empty(t *testing.T) {
	t.Parallel()

	got := ToLegacyList(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTournamentApplicationModel_RoundTrip(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	app := TournamentApplication{
		ID:             "3f2a4c1e-0000-4000-8000-000000000001",
		EventTitle:     "Penang Masters",
		EventStartDate: start,
		EventEndDate:   start,
		Classification: ClassificationNational,
		DataConsent:    true,
		Status:         StatusApproved,
	}

	row := FromDomain(app)
	assert.Nil(t, row.TournamentApplicationsState)
	assert.Equal(t, app, row.ToDomain())
}
