package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type Config struct {
	URL      string
	Database string
	Timeout  time.Duration
}

var errNotConfigured = errors.New("database url or name not set")

var _ Store = (*MongoStore)(nil)

// MongoStore implements Store on a single MongoDB database.
type MongoStore struct {
	client   *mongo.Client
	database *mongo.Database
	timeout  time.Duration
}

func Connect(ctx context.Context, cfg Config) (*MongoStore, error) {
	if cfg.URL == "" || cfg.Database == "" {
		return nil, errNotConfigured
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{
		client:   client,
		database: client.Database(cfg.Database),
		timeout:  cfg.Timeout,
	}, nil
}

// Open connects at startup. Any failure is logged and yields an
// unavailable Handle so the API can still serve 503s.
func Open(ctx context.Context, cfg Config, logger *zap.SugaredLogger) (Handle, *MongoStore) {
	store, err := Connect(ctx, cfg)
	if err != nil {
		logger.Warnw("document store unavailable", "database", cfg.Database, "error", err)
		return Handle{}, nil
	}
	logger.Infow("connected to MongoDB", "database", cfg.Database)
	return NewHandle(store), store
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Insert(ctx context.Context, collection string, document interface{}) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	doc, err := ToDocument(document, time.Now().UTC())
	if err != nil {
		return "", err
	}

	result, err := s.database.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	switch id := result.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	default:
		return fmt.Sprint(id), nil
	}
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := s.database.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", collection, err)
	}
	return docs, nil
}

func (s *MongoStore) SetFields(ctx context.Context, collection string, id string, fields bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.database.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": fields},
	)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", collection, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s %s: %w", collection, id, ErrNotFound)
	}
	return nil
}

func (s *MongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.database.ListCollectionNames(ctx, bson.D{})
}

// ToDocument flattens a record into a bson.M using its bson tags and
// stamps created_at and updated_at.
func ToDocument(record interface{}, now time.Time) (bson.M, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	doc["created_at"] = now
	doc["updated_at"] = now
	return doc, nil
}
