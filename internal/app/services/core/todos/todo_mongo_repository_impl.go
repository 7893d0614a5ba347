package todos

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

type todoDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	Title     string             `bson:"title"`
	Completed bool               `bson:"completed"`
	DueDate   *time.Time         `bson:"dueDate,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *todoDocument) toModel() *models.Todo {
	todo := &models.Todo{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Title:     d.Title,
		Completed: d.Completed,
		DueDate:   d.DueDate,
	}
	todo.CreatedAt = d.CreatedAt
	todo.UpdatedAt = d.UpdatedAt
	return todo
}

type TodoMongoRepository struct {
	Collection *mongo.Collection
}

func NewTodoMongoRepository(db *mongo.Client, dbName string) *TodoMongoRepository {
	return &TodoMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTodos),
	}
}

var _ contracts.TodoRepository = (*TodoMongoRepository)(nil)

func (r *TodoMongoRepository) CreateTodo(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	todo.SetCreatedAtUpdatedAt()
	doc := &todoDocument{
		UserID:    todo.UserID,
		Title:     todo.Title,
		Completed: todo.Completed,
		DueDate:   todo.DueDate,
		CreatedAt: todo.CreatedAt,
		UpdatedAt: todo.UpdatedAt,
	}
	result, err := r.Collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	todo.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return todo, nil
}

func (r *TodoMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.Todo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	todos := make([]models.Todo, 0)
	for cursor.Next(ctx) {
		var doc todoDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		todos = append(todos, *doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return todos, nil
}

func (r *TodoMongoRepository) FindByID(ctx context.Context, todoID string) (*models.Todo, error) {
	objectID, err := primitive.ObjectIDFromHex(todoID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var doc todoDocument
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.toModel(), nil
}

func (r *TodoMongoRepository) UpdateTodo(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	objectID, err := primitive.ObjectIDFromHex(todo.ID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	todo.SetUpdatedAt()

	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": bson.M{
		"title":     todo.Title,
		"completed": todo.Completed,
		"dueDate":   todo.DueDate,
		"updatedAt": todo.UpdatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc todoDocument
	err = r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, exceptions.ErrTodoNotFound(err)
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return doc.toModel(), nil
}

func (r *TodoMongoRepository) DeleteByID(ctx context.Context, todoID string) error {
	objectID, err := primitive.ObjectIDFromHex(todoID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
