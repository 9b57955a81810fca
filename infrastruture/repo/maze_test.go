package repo

import (
	"context"
	"testing"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMazeRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Put upserts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: "vinom:maze:1"}}}},
		))

		r := NewMazeRepoFromCollection(mt.Coll)
		require.NoError(mt, r.Put(context.Background(), "vinom:maze:1", []byte("data")))
	})

	mt.Run("Get existing", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "vinom:maze:1"},
			{Key: "value", Value: []byte("data")},
		}))

		r := NewMazeRepoFromCollection(mt.Coll)
		got, err := r.Get(context.Background(), "vinom:maze:1")
		require.NoError(mt, err)
		assert.Equal(mt, []byte("data"), got)
	})

	mt.Run("Get missing", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		r := NewMazeRepoFromCollection(mt.Coll)
		_, err := r.Get(context.Background(), "vinom:maze:2")
		assert.ErrorIs(mt, err, i.ErrNotFound)
	})

	mt.Run("Put failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "duplicate key error",
		}))

		r := NewMazeRepoFromCollection(mt.Coll)
		assert.Error(mt, r.Put(context.Background(), "vinom:maze:3", []byte("x")))
	})
}
