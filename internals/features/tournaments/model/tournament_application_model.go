// file: internals/features/tournaments/model/tournament_application_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Keys inside TournamentApplicationsConsents.
const (
	ConsentData  = "data"
	ConsentTerms = "terms"
)

type TournamentApplicationModel struct {
	TournamentApplicationsID   string `gorm:"type:uuid;primaryKey;column:tournament_applications_id"                         json:"tournament_applications_id"`
	TournamentApplicationsCode string `gorm:"type:varchar(32);column:tournament_applications_code;index:idx_ta_code"         json:"tournament_applications_code"`

	// Organiser
	TournamentApplicationsOrganiserName     string  `gorm:"type:varchar(200);not null;column:tournament_applications_organiser_name" json:"tournament_applications_organiser_name"`
	TournamentApplicationsRegistrationNo    string  `gorm:"type:varchar(64);column:tournament_applications_registration_no"          json:"tournament_applications_registration_no"`
	TournamentApplicationsTelContact        string  `gorm:"type:varchar(32);column:tournament_applications_tel_contact"              json:"tournament_applications_tel_contact"`
	TournamentApplicationsEmail             string  `gorm:"type:varchar(160);column:tournament_applications_email"                   json:"tournament_applications_email"`
	TournamentApplicationsPersonInCharge    string  `gorm:"type:varchar(160);column:tournament_applications_person_in_charge"        json:"tournament_applications_person_in_charge"`
	TournamentApplicationsOrganisingPartner *string `gorm:"type:varchar(200);column:tournament_applications_organising_partner"      json:"tournament_applications_organising_partner,omitempty"`

	// Event
	TournamentApplicationsEventTitle           string    `gorm:"type:varchar(200);not null;column:tournament_applications_event_title;index:idx_ta_status_title,priority:2" json:"tournament_applications_event_title"`
	TournamentApplicationsEventStartDate       time.Time `gorm:"type:date;not null;column:tournament_applications_event_start_date;index:idx_ta_status_start,priority:2"    json:"tournament_applications_event_start_date"`
	TournamentApplicationsEventEndDate         time.Time `gorm:"type:date;not null;column:tournament_applications_event_end_date"                                          json:"tournament_applications_event_end_date"`
	TournamentApplicationsState                *string   `gorm:"type:varchar(64);column:tournament_applications_state"                                                     json:"tournament_applications_state,omitempty"`
	TournamentApplicationsCity                 string    `gorm:"type:varchar(120);column:tournament_applications_city"                                                     json:"tournament_applications_city"`
	TournamentApplicationsVenue                string    `gorm:"type:varchar(200);column:tournament_applications_venue"                                                    json:"tournament_applications_venue"`
	TournamentApplicationsClassification       string    `gorm:"type:varchar(32);not null;column:tournament_applications_classification"                                   json:"tournament_applications_classification"`
	TournamentApplicationsExpectedParticipants int       `gorm:"type:int;column:tournament_applications_expected_participants"                                             json:"tournament_applications_expected_participants"`
	TournamentApplicationsEventSummary         *string   `gorm:"type:text;column:tournament_applications_event_summary"                                                    json:"tournament_applications_event_summary,omitempty"`
	TournamentApplicationsScoringFormat        string    `gorm:"type:varchar(64);column:tournament_applications_scoring_format"                                            json:"tournament_applications_scoring_format"`

	// {"data": bool, "terms": bool}
	TournamentApplicationsConsents datatypes.JSONMap `gorm:"column:tournament_applications_consents" json:"tournament_applications_consents"`

	// Review
	TournamentApplicationsStatus  string  `gorm:"type:varchar(32);not null;column:tournament_applications_status;index:idx_ta_status_start,priority:1;index:idx_ta_status_title,priority:1" json:"tournament_applications_status"`
	TournamentApplicationsRemarks *string `gorm:"type:text;column:tournament_applications_remarks"                                                                                       json:"tournament_applications_remarks,omitempty"`

	// Audit
	TournamentApplicationsSubmittedAt time.Time `gorm:"not null;autoCreateTime;column:tournament_applications_submitted_at" json:"tournament_applications_submitted_at"`
	TournamentApplicationsUpdatedAt   time.Time `gorm:"not null;autoUpdateTime;column:tournament_applications_updated_at"   json:"tournament_applications_updated_at"`
}

func (TournamentApplicationModel) TableName() string { return "tournament_applications" }

// BeforeCreate fills the id for writers that leave it to the application.
func (m *TournamentApplicationModel) BeforeCreate(tx *gorm.DB) error {
	if m.TournamentApplicationsID == "" {
		m.TournamentApplicationsID = uuid.NewString()
	}
	return nil
}

/* ===================== Mapping ===================== */

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func consentFlag(m datatypes.JSONMap, key string) bool {
	if m == nil {
		return false
	}
	v, ok := m[key].(bool)
	return ok && v
}

// ToDomain converts the row into the store-independent record.
func (m TournamentApplicationModel) ToDomain() TournamentApplication {
	return TournamentApplication{
		ID:                   m.TournamentApplicationsID,
		ApplicationCode:      m.TournamentApplicationsCode,
		OrganiserName:        m.TournamentApplicationsOrganiserName,
		RegistrationNo:       m.TournamentApplicationsRegistrationNo,
		TelContact:           m.TournamentApplicationsTelContact,
		Email:                m.TournamentApplicationsEmail,
		PersonInCharge:       m.TournamentApplicationsPersonInCharge,
		OrganisingPartner:    strOrEmpty(m.TournamentApplicationsOrganisingPartner),
		EventTitle:           m.TournamentApplicationsEventTitle,
		EventStartDate:       m.TournamentApplicationsEventStartDate,
		EventEndDate:         m.TournamentApplicationsEventEndDate,
		State:                strOrEmpty(m.TournamentApplicationsState),
		City:                 m.TournamentApplicationsCity,
		Venue:                m.TournamentApplicationsVenue,
		Classification:       Classification(m.TournamentApplicationsClassification),
		ExpectedParticipants: m.TournamentApplicationsExpectedParticipants,
		EventSummary:         strOrEmpty(m.TournamentApplicationsEventSummary),
		ScoringFormat:        m.TournamentApplicationsScoringFormat,
		DataConsent:          consentFlag(m.TournamentApplicationsConsents, ConsentData),
		TermsConsent:         consentFlag(m.TournamentApplicationsConsents, ConsentTerms),
		Status:               ApplicationStatus(m.TournamentApplicationsStatus),
		SubmissionDate:       m.TournamentApplicationsSubmittedAt,
		LastUpdated:          m.TournamentApplicationsUpdatedAt,
		Remarks:              strOrEmpty(m.TournamentApplicationsRemarks),
	}
}

// FromDomain builds a row. Used by portal writers and test fixtures.
func FromDomain(a TournamentApplication) TournamentApplicationModel {
	return TournamentApplicationModel{
		TournamentApplicationsID:                   a.ID,
		TournamentApplicationsCode:                 a.ApplicationCode,
		TournamentApplicationsOrganiserName:        a.OrganiserName,
		TournamentApplicationsRegistrationNo:       a.RegistrationNo,
		TournamentApplicationsTelContact:           a.TelContact,
		TournamentApplicationsEmail:                a.Email,
		TournamentApplicationsPersonInCharge:       a.PersonInCharge,
		TournamentApplicationsOrganisingPartner:    strPtr(a.OrganisingPartner),
		TournamentApplicationsEventTitle:           a.EventTitle,
		TournamentApplicationsEventStartDate:       a.EventStartDate,
		TournamentApplicationsEventEndDate:         a.EventEndDate,
		TournamentApplicationsState:                strPtr(a.State),
		TournamentApplicationsCity:                 a.City,
		TournamentApplicationsVenue:                a.Venue,
		TournamentApplicationsClassification:       string(a.Classification),
		TournamentApplicationsExpectedParticipants: a.ExpectedParticipants,
		TournamentApplicationsEventSummary:         strPtr(a.EventSummary),
		TournamentApplicationsScoringFormat:        a.ScoringFormat,
		TournamentApplicationsConsents: datatypes.JSONMap{
			ConsentData:  a.DataConsent,
			ConsentTerms: a.TermsConsent,
		},
		TournamentApplicationsStatus:      string(a.Status),
		TournamentApplicationsRemarks:     strPtr(a.Remarks),
		TournamentApplicationsSubmittedAt: a.SubmissionDate,
		TournamentApplicationsUpdatedAt:   a.LastUpdated,
	}
}
