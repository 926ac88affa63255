package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/example/tutormarket/internal/models"
)

// secretFieldsProjection removes credentials from user documents.
var secretFieldsProjection = bson.D{
	{Key: "password", Value: 0},
	{Key: "firebaseUID", Value: 0},
}

// featuredProjection is the allow-list shown on featured tutor cards. Being an
// inclusion projection it also leaves out the secret fields.
var featuredProjection = bson.D{
	{Key: "_id", Value: 1},
	{Key: "name", Value: 1},
	{Key: "photoURL", Value: 1},
	{Key: "location", Value: 1},
	{Key: "rating", Value: 1},
	{Key: "totalReviews", Value: 1},
	{Key: "hourlyRate", Value: 1},
	{Key: "subjects", Value: 1},
	{Key: "qualifications", Value: 1},
	{Key: "isVerified", Value: 1},
}

var byRatingDesc = bson.D{
	{Key: "rating", Value: -1},
	{Key: "totalReviews", Value: -1},
}

func activeTutorsFilter() bson.D {
	return bson.D{
		{Key: "role", Value: models.RoleTutor},
		{Key: "status", Value: models.StatusActive},
	}
}

func listActiveQuery() (bson.D, *options.FindOptions) {
	return activeTutorsFilter(), options.Find().
		SetProjection(secretFieldsProjection).
		SetSort(byRatingDesc)
}

func featuredQuery(minRating float64, limit int64) (bson.D, *options.FindOptions) {
	filter := append(activeTutorsFilter(), bson.E{Key: "rating", Value: bson.D{{Key: "$gte", Value: minRating}}})
	return filter, options.Find().
		SetProjection(featuredProjection).
		SetSort(byRatingDesc).
		SetLimit(limit)
}

func tutorByIDQuery(id primitive.ObjectID) (bson.D, *options.FindOneOptions) {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "role", Value: models.RoleTutor},
	}, options.FindOne().SetProjection(secretFieldsProjection)
}

type mongoTutorRepository struct {
	store *Store
}

// NewMongoTutorRepository creates a TutorRepository over the users collection.
func NewMongoTutorRepository(store *Store) TutorRepository {
	return &mongoTutorRepository{store: store}
}

func (r *mongoTutorRepository) ListActive(ctx context.Context) ([]*models.User, error) {
	filter, opts := listActiveQuery()
	users, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tutors: %w", err)
	}
	return users, nil
}

func (r *mongoTutorRepository) ListFeatured(ctx context.Context, minRating float64, limit int64) ([]*models.User, error) {
	filter, opts := featuredQuery(minRating, limit)
	users, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured tutors: %w", err)
	}
	return users, nil
}

func (r *mongoTutorRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	coll, err := r.store.Collection(UsersCollection)
	if err != nil {
		return nil, err
	}

	filter, opts := tutorByIDQuery(id)
	var user models.User
	if err := coll.FindOne(ctx, filter, opts).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("tutor with ID '%s' not found: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tutor with ID '%s': %w", id.Hex(), err)
	}
	scrubSecrets(&user)
	return &user, nil
}

func (r *mongoTutorRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]*models.User, error) {
	coll, err := r.store.Collection(UsersCollection)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	users := make([]*models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		scrubSecrets(u)
	}
	return users, nil
}

// scrubSecrets clears credentials in case the projection was not honoured.
func scrubSecrets(u *models.User) {
	u.Password = ""
	u.FirebaseUID = ""
}
