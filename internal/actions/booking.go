package actions

import (
	"context"
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"
	"eventhub/internal/storage"
)

type CreateBookingRequest struct {
	EventID string
	Slug    string
	Email   string
}

// CreateBooking runs the booking pipeline: presence check, identifier
// format check, event existence check, email normalization, insert. Every
// failure is folded into the result; this never returns a raised error to
// the caller.
func (a *Actions) CreateBooking(ctx context.Context, req CreateBookingRequest) BookingResult {
	const op = "actions.CreateBooking"

	log := a.log.With(
		slog.String("op", op),
		slog.String("slug", req.Slug),
	)

	if req.EventID == "" || req.Email == "" {
		return failed(KindMissingFields, "missing required fields")
	}

	eventID, err := primitive.ObjectIDFromHex(req.EventID)
	if err != nil {
		log.Error("invalid event id", slog.String("event_id", req.EventID))
		return failed(KindInvalidID, "invalid event id")
	}

	exists, err := a.store.EventExists(ctx, eventID)
	if err != nil {
		log.Error("failed to check event existence", sl.Err(err))
		return failed(KindGeneric, err.Error())
	}
	if !exists {
		log.Error("referenced event does not exist", slog.String("event_id", req.EventID))
		return failed(KindReferential, "referenced event does not exist")
	}

	booking := &models.Booking{
		EventID: eventID,
		Email:   req.Email,
	}

	if err := booking.Normalize(); err != nil {
		log.Error("invalid booking", sl.Err(err))
		return failed(KindValidation, err.Error())
	}

	if err := a.store.CreateBooking(ctx, booking); err != nil {
		if errors.Is(err, storage.ErrBookingExists) {
			return failed(KindDuplicate, "you have already booked this event")
		}

		log.Error("failed to create booking", sl.Err(err))
		return failed(KindGeneric, err.Error())
	}

	log.Info("booking created", slog.String("booking_id", booking.ID.Hex()))

	return booked()
}
