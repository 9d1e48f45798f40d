package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventhub/internal/models"
	"eventhub/internal/storage"
)

// SaveEvent inserts the event when it has no ID and replaces the stored
// document otherwise. The unique slug index turns a colliding slug into
// storage.ErrEventExists either way.
func (s *Storage) SaveEvent(ctx context.Context, event *models.Event) error {
	const op = "storage.mongodb.SaveEvent"

	db, err := s.ensure(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	event.UpdatedAt = now

	if event.ID.IsZero() {
		event.CreatedAt = now

		res, err := db.Collection(eventsCollection).InsertOne(ctx, event)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return fmt.Errorf("%s: %w", op, storage.ErrEventExists)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		event.ID = res.InsertedID.(primitive.ObjectID)

		return nil
	}

	update := bson.M{
		"$set": bson.M{
			"title":       event.Title,
			"slug":        event.Slug,
			"description": event.Description,
			"overview":    event.Overview,
			"image":       event.Image,
			"venue":       event.Venue,
			"location":    event.Location,
			"date":        event.Date,
			"time":        event.Time,
			"mode":        event.Mode,
			"audience":    event.Audience,
			"agenda":      event.Agenda,
			"organizer":   event.Organizer,
			"tags":        event.Tags,
			"updated_at":  event.UpdatedAt,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}

	_, err = db.Collection(eventsCollection).UpdateByID(ctx, event.ID, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrEventExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) EventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	const op = "storage.mongodb.EventBySlug"

	db, err := s.ensure(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var event models.Event

	err = db.Collection(eventsCollection).FindOne(ctx, bson.M{"slug": slug}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &event, nil
}

// EventExists reports whether an event document with the given ID exists,
// without decoding it.
func (s *Storage) EventExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	const op = "storage.mongodb.EventExists"

	db, err := s.ensure(ctx)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	opts := options.FindOne().SetProjection(bson.M{"_id": 1})

	err = db.Collection(eventsCollection).FindOne(ctx, bson.M{"_id": id}, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

// SimilarEvents returns every other event sharing at least one tag with the
// given one.
func (s *Storage) SimilarEvents(ctx context.Context, event *models.Event) ([]models.Event, error) {
	const op = "storage.mongodb.SimilarEvents"

	db, err := s.ensure(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	filter := bson.M{
		"_id":  bson.M{"$ne": event.ID},
		"tags": bson.M{"$in": event.Tags},
	}

	cursor, err := db.Collection(eventsCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// AllEvents returns every event ordered by date ascending. ISO dates sort
// chronologically as strings.
func (s *Storage) AllEvents(ctx context.Context) ([]models.Event, error) {
	const op = "storage.mongodb.AllEvents"

	db, err := s.ensure(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := db.Collection(eventsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}
