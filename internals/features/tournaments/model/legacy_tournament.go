// file: internals/features/tournaments/model/legacy_tournament.go
package model

import "time"

// LegacySource marks records that were translated from tournament applications.
const LegacySource = "tournament_application"

// LegacyTournament is the record shape of the retired tournament schema.
type LegacyTournament struct {
	ID               string     `json:"_id"`
	Name             string     `json:"name"`
	StartDate        time.Time  `json:"startDate"`
	EndDate          time.Time  `json:"endDate"`
	Type             LegacyType `json:"type"`
	Venue            string     `json:"venue"`
	City             string     `json:"city"`
	Organizer        string     `json:"organizer"`
	PersonInCharge   string     `json:"personInCharge"`
	PhoneNumber      string     `json:"phoneNumber"`
	RegistrationOpen bool       `json:"registrationOpen"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`

	// no modern equivalent
	RegisteredPlayers []string `json:"registeredPlayers"`
	Version           int      `json:"__v"`
	Source            string   `json:"source"`
}

// ToLegacy translates a modern record. It never fails.
func ToLegacy(a TournamentApplication) LegacyTournament {
	return LegacyTournament{
		ID:                a.ID,
		Name:              a.EventTitle,
		StartDate:         a.EventStartDate,
		EndDate:           a.EventEndDate,
		Type:              LegacyTypeFor(a.Classification, a.State),
		Venue:             a.Venue,
		City:              a.City,
		Organizer:         a.OrganiserName,
		PersonInCharge:    a.PersonInCharge,
		PhoneNumber:       a.TelContact,
		RegistrationOpen:  a.Status == StatusApproved,
		CreatedAt:         a.SubmissionDate,
		UpdatedAt:         a.LastUpdated,
		RegisteredPlayers: []string{},
		Version:           0,
		Source:            LegacySource,
	}
}

// ToLegacyList translates in order. A nil input yields an empty, non-nil slice.
func ToLegacyList(apps []TournamentApplication) []LegacyTournament {
	out := make([]LegacyTournament, 0, len(apps))
	for _, a := range apps {
		out = append(out, ToLegacy(a))
	}
	return out
}
