// file: internals/features/tournaments/model/tournament_application.go
package model

import "time"

// TournamentApplication is the modern record, independent of the store it was read from.
type TournamentApplication struct {
	ID              string `json:"id"`
	ApplicationCode string `json:"application_code"`

	// Organiser
	OrganiserName     string `json:"organiser_name"`
	RegistrationNo    string `json:"registration_no"`
	TelContact        string `json:"tel_contact"`
	Email             string `json:"email"`
	PersonInCharge    string `json:"person_in_charge"`
	OrganisingPartner string `json:"organising_partner,omitempty"`

	// Event
	EventTitle           string         `json:"event_title"`
	EventStartDate       time.Time      `json:"event_start_date"`
	EventEndDate         time.Time      `json:"event_end_date"`
	State                string         `json:"state"`
	City                 string         `json:"city"`
	Venue                string         `json:"venue"`
	Classification       Classification `json:"classification"`
	ExpectedParticipants int            `json:"expected_participants"`
	EventSummary         string         `json:"event_summary"`
	ScoringFormat        string         `json:"scoring_format"`

	DataConsent  bool `json:"data_consent"`
	TermsConsent bool `json:"terms_consent"`

	// Review
	Status         ApplicationStatus `json:"status"`
	SubmissionDate time.Time         `json:"submission_date"`
	LastUpdated    time.Time         `json:"last_updated"`
	Remarks        string            `json:"remarks,omitempty"`
}

// IsApproved reports whether the application may be shown to legacy callers.
func (a *TournamentApplication) IsApproved() bool {
	return a != nil && a.Status == StatusApproved
}
