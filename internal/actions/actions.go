package actions

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventhub/internal/models"
)

// Store is the persistence surface the actions compose. Connection
// management lives behind it: every call opens the shared connection on
// demand.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Store
type Store interface {
	SaveEvent(ctx context.Context, event *models.Event) error
	EventBySlug(ctx context.Context, slug string) (*models.Event, error)
	EventExists(ctx context.Context, id primitive.ObjectID) (bool, error)
	SimilarEvents(ctx context.Context, event *models.Event) ([]models.Event, error)
	CreateBooking(ctx context.Context, booking *models.Booking) error
}

// Actions holds the use-case entry points the HTTP layer calls into.
type Actions struct {
	log   *slog.Logger
	store Store
}

func New(log *slog.Logger, store Store) *Actions {
	return &Actions{
		log:   log,
		store: store,
	}
}
