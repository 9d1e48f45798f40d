package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"eventhub/internal/models"
	"eventhub/internal/storage"
)

// CreateBooking inserts the booking. The compound unique index on
// (event_id, email) turns a repeated booking into storage.ErrBookingExists.
func (s *Storage) CreateBooking(ctx context.Context, booking *models.Booking) error {
	const op = "storage.mongodb.CreateBooking"

	db, err := s.ensure(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	res, err := db.Collection(bookingsCollection).InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrBookingExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	booking.ID = res.InsertedID.(primitive.ObjectID)

	return nil
}
