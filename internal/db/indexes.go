package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type collectionIndexes struct {
	collection string
	models     []mongo.IndexModel
}

func ascending(field string) mongo.IndexModel {
	return mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}}
}

// requiredIndexes lists the indexes the queries rely on.
func requiredIndexes() []collectionIndexes {
	return []collectionIndexes{
		{
			collection: UsersCollection,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
				ascending("role"),
				ascending("status"),
			},
		},
		{
			collection: TuitionsCollection,
			models:     []mongo.IndexModel{ascending("studentId")},
		},
		{
			collection: ApplicationsCollection,
			models: []mongo.IndexModel{
				ascending("tuitionPostId"),
				ascending("tutorId"),
			},
		},
	}
}

// EnsureIndexes creates the required indexes. Creating an index that already
// exists is a no-op on the server. Every collection is attempted; failures
// are joined into the returned error.
func EnsureIndexes(ctx context.Context, store *Store) ([]string, error) {
	var (
		created []string
		errs    []error
	)
	for _, ci := range requiredIndexes() {
		coll, err := store.Collection(ci.collection)
		if err != nil {
			return created, err
		}
		names, err := coll.Indexes().CreateMany(ctx, ci.models)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to create indexes on %s: %w", ci.collection, err))
			continue
		}
		for _, n := range names {
			created = append(created, ci.collection+"."+n)
		}
	}
	return created, errors.Join(errs...)
}
