package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names, one per record kind.
const (
	UserCollection     = "user"
	MenuItemCollection = "menuitem"
	OrderCollection    = "order"
	PaymentCollection  = "payment"
)

var (
	ErrUnavailable = errors.New("database not available")
	ErrNotFound    = errors.New("document not found")
	ErrInvalidID   = errors.New("invalid document id")
)

// Store is the document store used by the API. Filters are equality only.
type Store interface {
	Insert(ctx context.Context, collection string, document interface{}) (string, error)
	Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	SetFields(ctx context.Context, collection string, id string, fields bson.M) error
	CollectionNames(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

// Handle carries a Store that may never have been connected.
// The zero value is an unavailable handle.
type Handle struct {
	store Store
}

func NewHandle(store Store) Handle {
	return Handle{store: store}
}

// Store returns the underlying store or ErrUnavailable.
func (h Handle) Store() (Store, error) {
	if h.store == nil {
		return nil, ErrUnavailable
	}
	return h.store, nil
}

func (h Handle) Available() bool {
	return h.store != nil
}
