package createBooking

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventhub/internal/actions"
	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
)

type BookingRequest struct {
	EventID string `json:"event_id"`
	Email   string `json:"email"`
}

type BookingResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(ctx context.Context, req actions.CreateBookingRequest) actions.BookingResult
}

// New books an event for an email address. Field validation lives in the
// booking pipeline, not here: the handler only decodes and maps result
// kinds onto status codes.
func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createBooking.New"

		log = log.With(slog.String("op", op))

		slug := chi.URLParam(r, "slug")
		if slug == "" {
			log.Error("event slug is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event slug is required"))
			return
		}

		log = log.With(slog.String("slug", slug))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		result := creator.CreateBooking(r.Context(), actions.CreateBookingRequest{
			EventID: req.EventID,
			Slug:    slug,
			Email:   req.Email,
		})

		if !result.Success {
			log.Error("failed to book event",
				slog.String("kind", string(result.Kind)),
				slog.String("error", result.Error),
			)

			render.Status(r, statusFor(result.Kind))
			render.JSON(w, r, response.Error(result.Error))
			return
		}

		log.Info("event booked successfully")

		responseOK(w, r)
	}
}

func statusFor(kind actions.ErrorKind) int {
	switch kind {
	case actions.KindMissingFields, actions.KindInvalidID, actions.KindValidation:
		return http.StatusBadRequest
	case actions.KindReferential:
		return http.StatusNotFound
	case actions.KindDuplicate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
	})
}
