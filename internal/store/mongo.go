package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ayush/inventory-tracker/internal/models"
)

// ErrNotFound reports that no document matched the query.
var ErrNotFound = errors.New("not found")

// MongoStore handles user and item CRUD in MongoDB.
type MongoStore struct {
	users *mongo.Collection
	items *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		users: db.Collection("users"),
		items: db.Collection("items"),
	}
}

// CreateUser inserts a user exactly as given, plaintext password included.
func (s *MongoStore) CreateUser(ctx context.Context, email, username, password string) (*models.User, error) {
	res, err := s.users.InsertOne(ctx, bson.M{
		"email":    email,
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &models.User{
		ID:       res.InsertedID.(primitive.ObjectID),
		Email:    email,
		Username: username,
		Password: password,
	}, nil
}

// GetUserByCredentials matches a user on exact email and password equality
// in a single query.
func (s *MongoStore) GetUserByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	var u models.User
	err := s.users.FindOne(ctx, bson.M{"email": email, "password": password}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateItem inserts the item and fills in its assigned id.
func (s *MongoStore) CreateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	res, err := s.items.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return item, nil
}

// ListItemsByUser returns every item owned by userID.
func (s *MongoStore) ListItemsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Item, error) {
	cur, err := s.items.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.Item
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem fetches a single item. Unknown ids return ErrNotFound; malformed
// ids surface as plain errors.
func (s *MongoStore) GetItem(ctx context.Context, id string) (*models.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid id: %w", err)
	}
	var item models.Item
	err = s.items.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem applies the given fields to the item.
func (s *MongoStore) UpdateItem(ctx context.Context, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	_, err = s.items.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	return err
}

// DeleteItem removes the item permanently.
func (s *MongoStore) DeleteItem(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	_, err = s.items.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
