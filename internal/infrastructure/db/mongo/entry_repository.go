package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/financetrack/finance-api/internal/core/domain"
)

const entriesCollection = "entries"

type EntryRepository struct {
	coll *mongo.Collection
}

func NewEntryRepository(db *mongo.Database) *EntryRepository {
	return &EntryRepository{coll: db.Collection(entriesCollection)}
}

type mongoEntry struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	UserID   string             `bson:"id_user"`
	Title    string             `bson:"title"`
	Value    float64            `bson:"value"`
	Category string             `bson:"category,omitempty"`
	Date     int64              `bson:"date"`
}

func (r *EntryRepository) Create(ctx context.Context, entry *domain.Entry) error {
	doc := mongoEntry{
		UserID:   entry.UserID,
		Title:    entry.Title,
		Value:    entry.Value,
		Category: entry.Category,
		Date:     entry.Date.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	entry.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An unparseable id matches nothing, same as a missing one.
		return 0, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete entry: %w", err)
	}
	return res.DeletedCount, nil
}
