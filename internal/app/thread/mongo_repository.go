package thread

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoCollection = "threads"

type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository stores each thread as one document with its replies
// embedded as an array.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{coll: db.Collection(mongoCollection)}
}

// EnsureMongoIndexes creates the index backing board listings.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(mongoCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "board", Value: 1}, {Key: "bumped_on", Value: -1}},
		Options: options.Index().SetName("board_bumped_on"),
	})
	return err
}

func newObjectID() string {
	return primitive.NewObjectID().Hex()
}

func byBoardAndID(board, id string) bson.M {
	return bson.M{"_id": id, "board": board}
}

func (r *mongoRepository) Create(ctx context.Context, t *Thread) error {
	if t.ID == "" {
		t.ID = newObjectID()
	}
	if t.Replies == nil {
		t.Replies = []Reply{}
	}
	assignReplyKeys(t, newObjectID)
	_, err := r.coll.InsertOne(ctx, t)
	return err
}

func (r *mongoRepository) FindByID(ctx context.Context, board, id string) (*Thread, error) {
	var t Thread
	err := r.coll.FindOne(ctx, byBoardAndID(board, id)).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrThreadNotFound
	}
	if err != nil {
		return nil, err
	}
	assignReplyKeys(&t, newObjectID)
	return &t, nil
}

func (r *mongoRepository) ListByBoard(ctx context.Context, board string, limit int) ([]*Thread, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "bumped_on", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"board": board}, opts)
	if err != nil {
		return nil, err
	}

	var threads []*Thread
	if err := cursor.All(ctx, &threads); err != nil {
		return nil, err
	}
	for _, t := range threads {
		assignReplyKeys(t, newObjectID)
	}
	return threads, nil
}

func (r *mongoRepository) Save(ctx context.Context, t *Thread) error {
	if t.Replies == nil {
		t.Replies = []Reply{}
	}
	assignReplyKeys(t, newObjectID)

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrThreadNotFound
	}
	return nil
}

func (r *mongoRepository) SetReported(ctx context.Context, board, id string) error {
	res, err := r.coll.UpdateOne(ctx, byBoardAndID(board, id), bson.M{"$set": bson.M{"reported": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrThreadNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, board, id string) error {
	res, err := r.coll.DeleteOne(ctx, byBoardAndID(board, id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrThreadNotFound
	}
	return nil
}

func (r *mongoRepository) ListBoards(ctx context.Context) ([]BoardSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$board"},
			{Key: "thread_count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "bumped_on", Value: bson.D{{Key: "$max", Value: "$bumped_on"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "bumped_on", Value: -1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var boards []BoardSummary
	if err := cursor.All(ctx, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

func (r *mongoRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}
