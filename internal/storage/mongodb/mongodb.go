package mongodb

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/singleflight"

	"eventhub/internal/config"
	"eventhub/internal/storage"
)

const (
	eventsCollection   = "events"
	bookingsCollection = "bookings"
)

// Storage lazily opens a single MongoDB connection and shares it across all
// callers. Construction does no I/O: the first operation dials, and the
// handle survives for the rest of the process.
type Storage struct {
	cfg config.Mongo

	// open performs the actual dial; replaceable in tests.
	open func(ctx context.Context, uri string) (*mongo.Client, error)

	group singleflight.Group

	mu     sync.RWMutex
	client *mongo.Client
	db     *mongo.Database
}

func New(cfg config.Mongo) *Storage {
	s := &Storage{cfg: cfg}
	s.open = s.dial

	return s
}

func (s *Storage) dial(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	if err := ensureIndexes(ctx, client.Database(s.cfg.Database)); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

// ensure returns the live database handle, opening the connection on first
// use. Concurrent callers coalesce into a single attempt; a failed attempt
// is never cached, so the next call retries fresh.
func (s *Storage) ensure(ctx context.Context) (*mongo.Database, error) {
	const op = "storage.mongodb.ensure"

	s.mu.RLock()
	db := s.db
	s.mu.RUnlock()

	if db != nil {
		return db, nil
	}

	v, err, _ := s.group.Do("connect", func() (interface{}, error) {
		s.mu.RLock()
		db := s.db
		s.mu.RUnlock()

		if db != nil {
			return db, nil
		}

		if s.cfg.URI == "" {
			return nil, storage.ErrNoConnString
		}

		dialCtx := ctx
		if s.cfg.ConnectTimeout > 0 {
			var cancel context.CancelFunc
			dialCtx, cancel = context.WithTimeout(ctx, s.cfg.ConnectTimeout)
			defer cancel()
		}

		client, err := s.open(dialCtx, s.cfg.URI)
		if err != nil {
			return nil, err
		}

		db = client.Database(s.cfg.Database)

		s.mu.Lock()
		s.client = client
		s.db = db
		s.mu.Unlock()

		return db, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return v.(*mongo.Database), nil
}

// Open eagerly establishes the connection. Optional: every operation opens
// on demand.
func (s *Storage) Open(ctx context.Context) error {
	_, err := s.ensure(ctx)

	return err
}

func (s *Storage) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.client != nil
}

func (s *Storage) Close(ctx context.Context) error {
	s.mu.Lock()
	client := s.client
	s.client = nil
	s.db = nil
	s.mu.Unlock()

	if client == nil {
		return nil
	}

	return client.Disconnect(ctx)
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(eventsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create events indexes: %w", err)
	}

	_, err = db.Collection(bookingsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "event_id", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "event_id", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create bookings indexes: %w", err)
	}

	return nil
}
