package timeblocks

import (
	"context"
	"time"
	"timegrid-service/internal/app/contracts"
	"timegrid-service/internal/app/models"
	"timegrid-service/internal/pkg/constvars"
	"timegrid-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type timeBlockDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	Date      time.Time          `bson:"date"`
	Hours     []bool             `bson:"hours"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *timeBlockDocument) toModel() *models.TimeBlock {
	timeBlock := &models.TimeBlock{
		ID:     d.ID.Hex(),
		UserID: d.UserID,
		Date:   d.Date.UTC(),
		Hours:  d.Hours,
	}
	timeBlock.CreatedAt = d.CreatedAt
	timeBlock.UpdatedAt = d.UpdatedAt
	return timeBlock
}

type TimeBlockMongoRepository struct {
	Collection *mongo.Collection
}

func NewTimeBlockMongoRepository(db *mongo.Client, dbName string) *TimeBlockMongoRepository {
	return &TimeBlockMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTimeBlocks),
	}
}

var _ contracts.TimeBlockRepository = (*TimeBlockMongoRepository)(nil)

// EnsureIndexes creates the unique compound (userId, date) index that keeps
// at most one block per user-day even under concurrent upserts.
func (r *TimeBlockMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// SaveTimeBlock upserts by the (userId, date) identity key. The lookup and
// the write happen in a single FindOneAndUpdate so two concurrent first
// toggles for the same user-day cannot both insert.
func (r *TimeBlockMongoRepository) SaveTimeBlock(ctx context.Context, timeBlock *models.TimeBlock) (*models.TimeBlock, error) {
	now := time.Now()
	filter := bson.M{
		"userId": timeBlock.UserID,
		"date":   timeBlock.Date,
	}
	update := bson.M{
		"$set": bson.M{
			"hours":     timeBlock.Hours,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc timeBlockDocument
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return doc.toModel(), nil
}

func (r *TimeBlockMongoRepository) FindByDate(ctx context.Context, userID string, date time.Time) (*models.TimeBlock, error) {
	var doc timeBlockDocument
	err := r.Collection.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.toModel(), nil
}

func (r *TimeBlockMongoRepository) FindRange(ctx context.Context, userID string, start, end time.Time) ([]models.TimeBlock, error) {
	filter := bson.M{
		"userId": userID,
		"date": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	timeBlocks := make([]models.TimeBlock, 0)
	for cursor.Next(ctx) {
		var doc timeBlockDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		timeBlocks = append(timeBlocks, *doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return timeBlocks, nil
}
