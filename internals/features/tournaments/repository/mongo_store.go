// file: internals/features/tournaments/repository/mongo_store.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/model"
)

// ApplicationsCollection is where the portal keeps tournament applications.
const ApplicationsCollection = "tournamentapplications"

// tournamentApplicationDoc mirrors the portal's document layout.
type tournamentApplicationDoc struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	ApplicationID        string             `bson:"applicationId,omitempty"`
	OrganiserName        string             `bson:"organiserName"`
	RegistrationNo       string             `bson:"registrationNo"`
	TelContact           string             `bson:"telContact"`
	Email                string             `bson:"email"`
	PersonInCharge       string             `bson:"personInCharge"`
	OrganisingPartner    string             `bson:"organisingPartner,omitempty"`
	EventTitle           string             `bson:"eventTitle"`
	EventStartDate       time.Time          `bson:"eventStartDate"`
	EventEndDate         time.Time          `bson:"eventEndDate"`
	State                string             `bson:"state,omitempty"`
	City                 string             `bson:"city"`
	Venue                string             `bson:"venue"`
	Classification       string             `bson:"classification"`
	ExpectedParticipants int                `bson:"expectedParticipants"`
	EventSummary         string             `bson:"eventSummary"`
	ScoringFormat        string             `bson:"scoringFormat"`
	DataConsent          bool               `bson:"dataConsent"`
	TermsConsent         bool               `bson:"termsConsent"`
	Status               string             `bson:"status"`
	SubmissionDate       time.Time          `bson:"submissionDate"`
	LastUpdated          time.Time          `bson:"lastUpdated"`
	Remarks              string             `bson:"remarks,omitempty"`
}

func (d tournamentApplicationDoc) toDomain() model.TournamentApplication {
	return model.TournamentApplication{
		ID:                   d.ID.Hex(),
		ApplicationCode:      d.ApplicationID,
		OrganiserName:        d.OrganiserName,
		RegistrationNo:       d.RegistrationNo,
		TelContact:           d.TelContact,
		Email:                d.Email,
		PersonInCharge:       d.PersonInCharge,
		OrganisingPartner:    d.OrganisingPartner,
		EventTitle:           d.EventTitle,
		EventStartDate:       d.EventStartDate,
		EventEndDate:         d.EventEndDate,
		State:                d.State,
		City:                 d.City,
		Venue:                d.Venue,
		Classification:       model.Classification(d.Classification),
		ExpectedParticipants: d.ExpectedParticipants,
		EventSummary:         d.EventSummary,
		ScoringFormat:        d.ScoringFormat,
		DataConsent:          d.DataConsent,
		TermsConsent:         d.TermsConsent,
		Status:               model.ApplicationStatus(d.Status),
		SubmissionDate:       d.SubmissionDate,
		LastUpdated:          d.LastUpdated,
		Remarks:              d.Remarks,
	}
}

func docFromDomain(a model.TournamentApplication) (tournamentApplicationDoc, error) {
	d := tournamentApplicationDoc{
		ApplicationID:        a.ApplicationCode,
		OrganiserName:        a.OrganiserName,
		RegistrationNo:       a.RegistrationNo,
		TelContact:           a.TelContact,
		Email:                a.Email,
		PersonInCharge:       a.PersonInCharge,
		OrganisingPartner:    a.OrganisingPartner,
		EventTitle:           a.EventTitle,
		EventStartDate:       a.EventStartDate,
		EventEndDate:         a.EventEndDate,
		State:                a.State,
		City:                 a.City,
		Venue:                a.Venue,
		Classification:       string(a.Classification),
		ExpectedParticipants: a.ExpectedParticipants,
		EventSummary:         a.EventSummary,
		ScoringFormat:        a.ScoringFormat,
		DataConsent:          a.DataConsent,
		TermsConsent:         a.TermsConsent,
		Status:               string(a.Status),
		SubmissionDate:       a.SubmissionDate,
		LastUpdated:          a.LastUpdated,
		Remarks:              a.Remarks,
	}
	if a.ID != "" {
		oid, err := primitive.ObjectIDFromHex(a.ID)
		if err != nil {
			return d, fmt.Errorf("invalid object id %q: %w", a.ID, err)
		}
		d.ID = oid
	}
	return d, nil
}

/* ===================== Query building ===================== */

// mongoFilter translates a Filter into a query document.
func mongoFilter(f Filter) bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = string(f.Status)
	}
	if f.Classification != "" {
		q["classification"] = string(f.Classification)
	}

	switch f.Region {
	case model.RegionSarawakOnly:
		q["state"] = model.SarawakRegion
	case model.RegionExceptSarawak:
		// $ne also matches documents without the field
		q["state"] = bson.M{"$ne": model.SarawakRegion}
	}

	if f.StartFrom != nil || f.StartBefore != nil {
		rng := bson.M{}
		if f.StartFrom != nil {
			rng["$gte"] = *f.StartFrom
		}
		if f.StartBefore != nil {
			rng["$lt"] = *f.StartBefore
		}
		q["eventStartDate"] = rng
	}

	switch {
	case f.TitleEquals != "" && f.TitleContains != "":
		q["$and"] = bson.A{
			bson.M{"eventTitle": f.TitleEquals},
			bson.M{"eventTitle": titleRegex(f.TitleContains)},
		}
	case f.TitleEquals != "":
		q["eventTitle"] = f.TitleEquals
	case f.TitleContains != "":
		q["eventTitle"] = titleRegex(f.TitleContains)
	}
	return q
}

func titleRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

func mongoSort() bson.D {
	return bson.D{{Key: "eventStartDate", Value: 1}, {Key: "_id", Value: 1}}
}

/* ===================== Store ===================== */

// MongoStore reads tournament applications from the portal's MongoDB.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

var _ Store = (*MongoStore)(nil)

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(ApplicationsCollection),
	}
}

func (s *MongoStore) Find(ctx context.Context, f Filter, opts FindOptions) ([]model.TournamentApplication, error) {
	fo := options.Find().SetSort(mongoSort())
	if opts.Limit > 0 {
		fo.SetLimit(int64(opts.Limit))
	}

	cur, err := s.coll.Find(ctx, mongoFilter(f), fo)
	if err != nil {
		return nil, fmt.Errorf("find tournament applications: %w", err)
	}
	defer cur.Close(ctx)

	var docs []tournamentApplicationDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode tournament applications: %w", err)
	}
	out := make([]model.TournamentApplication, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (s *MongoStore) findOne(ctx context.Context, q bson.M, opts ...*options.FindOneOptions) (*model.TournamentApplication, error) {
	var d tournamentApplicationDoc
	err := s.coll.FindOne(ctx, q, opts...).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	app := d.toDomain()
	return &app, nil
}

func (s *MongoStore) FindOne(ctx context.Context, f Filter) (*model.TournamentApplication, error) {
	app, err := s.findOne(ctx, mongoFilter(f), options.FindOne().SetSort(mongoSort()))
	if err != nil {
		return nil, fmt.Errorf("find tournament application: %w", err)
	}
	return app, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (*model.TournamentApplication, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, nil
	}
	app, err := s.findOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("find tournament application %s: %w", oid.Hex(), err)
	}
	return app, nil
}

func (s *MongoStore) Count(ctx context.Context, f Filter) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, mongoFilter(f))
	if err != nil {
		return 0, fmt.Errorf("count tournament applications: %w", err)
	}
	return n, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
