package testutil

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"go-messease/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemStore is an in-memory database.Store. Documents are round-tripped
// through BSON so reads return the same types the Mongo driver does.
type MemStore struct {
	mu          sync.Mutex
	collections map[string][]bson.M

	// Err, when set, is returned by every operation.
	Err error
}

func NewMemStore() *MemStore {
	return &MemStore{collections: map[string][]bson.M{}}
}

var _ database.Store = (*MemStore)(nil)

func (m *MemStore) Insert(ctx context.Context, collection string, document interface{}) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}

	doc, err := database.ToDocument(document, time.Now().UTC())
	if err != nil {
		return "", err
	}
	id, ok := doc["_id"].(primitive.ObjectID)
	if !ok {
		id = primitive.NewObjectID()
		doc["_id"] = id
	}

	stored, err := roundTrip(doc)
	if err != nil {
		return "", err
	}
	m.collections[collection] = append(m.collections[collection], stored)
	return id.Hex(), nil
}

func (m *MemStore) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	out := []bson.M{}
	for _, doc := range m.collections[collection] {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		if !matches(doc, filter) {
			continue
		}
		cp, err := roundTrip(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	return out, nil
}

func (m *MemStore) SetFields(ctx context.Context, collection string, id string, fields bson.M) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", database.ErrInvalidID, id)
	}
	for i, doc := range m.collections[collection] {
		if doc["_id"] != objectID {
			continue
		}
		for k, v := range fields {
			doc[k] = v
		}
		updated, err := roundTrip(doc)
		if err != nil {
			return err
		}
		m.collections[collection][i] = updated
		return nil
	}
	return fmt.Errorf("%s %s: %w", collection, id, database.ErrNotFound)
}

func (m *MemStore) CollectionNames(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemStore) Ping(ctx context.Context) error {
	return m.Err
}

// Count returns how many documents a collection holds.
func (m *MemStore) Count(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.collections[collection])
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(doc[k], want) {
			return false
		}
	}
	return true
}

func roundTrip(doc bson.M) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	out := bson.M{}
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
