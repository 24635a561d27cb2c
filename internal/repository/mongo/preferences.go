package mongo

import (
	"alcyxob/student-portal/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const preferenceCollectionName = "preferences"

// preferenceDoc stores one key of one session.
type preferenceDoc struct {
	SessionID string    `bson:"sessionId"`
	Key       string    `bson:"key"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// mongoPreferenceStore implements repository.PreferenceStore
type mongoPreferenceStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoPreferenceStore creates a preference store backed by MongoDB.
// Closing the store disconnects the client.
func NewMongoPreferenceStore(client *mongo.Client, db *mongo.Database) repository.PreferenceStore {
	return &mongoPreferenceStore{
		client:     client,
		collection: db.Collection(preferenceCollectionName),
	}
}

func (s *mongoPreferenceStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	var doc preferenceDoc
	filter := bson.M{"sessionId": sessionID, "key": key}

	err := s.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", repository.ErrNotFound
		}
		return "", err
	}
	return doc.Value, nil
}

func (s *mongoPreferenceStore) Set(ctx context.Context, sessionID, key, value string) error {
	if sessionID == "" {
		return errors.New("session id is required")
	}
	filter := bson.M{"sessionId": sessionID, "key": key}
	update := bson.M{"$set": bson.M{
		"value":     value,
		"updatedAt": time.Now().UTC(),
	}}

	_, err := s.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (s *mongoPreferenceStore) Delete(ctx context.Context, sessionID, key string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"sessionId": sessionID, "key": key})
	return err
}

func (s *mongoPreferenceStore) Clear(ctx context.Context, sessionID string) error {
	_, err := s.collection.DeleteMany(ctx, bson.M{"sessionId": sessionID})
	return err
}

func (s *mongoPreferenceStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsurePreferenceIndexes creates the unique (sessionId, key) index.
func EnsurePreferenceIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sessionId", Value: 1}, {Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// PreferenceCollection returns the collection the store writes to.
func PreferenceCollection(db *mongo.Database) *mongo.Collection {
	return db.Collection(preferenceCollectionName)
}
