package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ariffin97/portal-mpa-sub002/internals/features/tournaments/model"
)

// MongoInsert seeds a MongoStore from external test packages.
func MongoInsert(ctx context.Context, s *MongoStore, apps ...model.TournamentApplication) ([]string, error) {
	ids := make([]string, 0, len(apps))
	for _, a := range apps {
		d, err := docFromDomain(a)
		if err != nil {
			return nil, err
		}
		if d.ID.IsZero() {
			d.ID = primitive.NewObjectID()
		}
		if _, err := s.coll.InsertOne(ctx, d); err != nil {
			return nil, err
		}
		ids = append(ids, d.ID.Hex())
	}
	return ids, nil
}
