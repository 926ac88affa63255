package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestTuitionRepository_ListAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("keeps untyped fields", func(mt *mtest.T) {
		repo := NewMongoTuitionRepository(NewStoreWithClient(mt.Client, "tuition_media"))
		id, student := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tuition_media.tuitions", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: id},
				{Key: "studentId", Value: student},
				{Key: "status", Value: "open"},
				{Key: "subject", Value: "chemistry"},
				{Key: "budget", Value: int32(5000)},
			},
		))

		tuitions, err := repo.ListAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, tuitions, 1)

		assert.Equal(mt, id, tuitions[0].ID)
		assert.Equal(mt, student, tuitions[0].StudentID)
		assert.Equal(mt, "open", tuitions[0].Status)
		assert.Equal(mt, "chemistry", tuitions[0].Fields["subject"])
		assert.EqualValues(mt, 5000, tuitions[0].Fields["budget"])
	})

	mt.Run("string studentId", func(mt *mtest.T) {
		repo := NewMongoTuitionRepository(NewStoreWithClient(mt.Client, "tuition_media"))
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tuition_media.tuitions", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "studentId", Value: "student@example.com"},
				{Key: "status", Value: "open"},
			},
			bson.D{
				{Key: "_id", Value: id},
				{Key: "studentId", Value: primitive.NewObjectID()},
				{Key: "subject", Value: "physics"},
			},
		))

		tuitions, err := repo.ListAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, tuitions, 2)
		assert.Equal(mt, "student@example.com", tuitions[0].StudentID)
		assert.Equal(mt, id, tuitions[1].ID)
		assert.Nil(mt, tuitions[1].Status)
		assert.Equal(mt, "physics", tuitions[1].Fields["subject"])
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		repo := NewMongoTuitionRepository(NewStoreWithClient(mt.Client, "tuition_media"))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tuition_media.tuitions", mtest.FirstBatch))

		tuitions, err := repo.ListAll(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, tuitions)
		assert.Empty(mt, tuitions)
	})
}

func TestApplicationRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list by tutor", func(mt *mtest.T) {
		repo := NewMongoApplicationRepository(NewStoreWithClient(mt.Client, "tuition_media"))
		tutor, post := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tuition_media.applications", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "tuitionPostId", Value: post},
				{Key: "tutorId", Value: tutor},
				{Key: "status", Value: "pending"},
			},
		))

		apps, err := repo.ListByTutor(context.Background(), tutor)
		require.NoError(mt, err)
		require.Len(mt, apps, 1)
		assert.Equal(mt, post, apps[0].TuitionPostID)
		assert.Equal(mt, "pending", apps[0].Status)
	})

	mt.Run("list by tuition error", func(mt *mtest.T) {
		repo := NewMongoApplicationRepository(NewStoreWithClient(mt.Client, "tuition_media"))
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "boom"}))

		_, err := repo.ListByTuition(context.Background(), primitive.NewObjectID())
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "failed to list applications for tuition")
	})
}

func TestPaymentRepository_GetByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewMongoPaymentRepository(NewStoreWithClient(mt.Client, "tuition_media"))
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tuition_media.payments", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "amount", Value: 1200.0}},
		))

		payment, err := repo.GetByID(context.Background(), id)
		require.NoError(mt, err)
		assert.Equal(mt, id, payment.ID)
		assert.Equal(mt, 1200.0, payment.Fields["amount"])
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewMongoPaymentRepository(NewStoreWithClient(mt.Client, "tuition_media"))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tuition_media.payments", mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}
