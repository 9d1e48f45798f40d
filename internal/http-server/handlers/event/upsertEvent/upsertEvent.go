package upsertEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"
	"eventhub/internal/storage"
)

type EventRequest struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Overview    string   `json:"overview" validate:"required"`
	Image       string   `json:"image" validate:"required"`
	Venue       string   `json:"venue" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Date        string   `json:"date" validate:"required"`
	Time        string   `json:"time" validate:"required"`
	Mode        string   `json:"mode" validate:"required"`
	Audience    string   `json:"audience" validate:"required"`
	Agenda      []string `json:"agenda" validate:"required,min=1"`
	Organizer   string   `json:"organizer" validate:"required"`
	Tags        []string `json:"tags" validate:"required,min=1"`
}

type EventResponse struct {
	response.Response
	ID   string `json:"event_id"`
	Slug string `json:"slug"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpserter
type EventUpserter interface {
	UpsertEvent(ctx context.Context, event *models.Event) error
}

// New is the content-management write path: it creates an event or, when an
// id is supplied, replaces the stored document.
func New(log *slog.Logger, upserter EventUpserter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.upsertEvent.New"

		log = log.With(slog.String("op", op))

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("title", req.Title))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		event := &models.Event{
			Title:       req.Title,
			Description: req.Description,
			Overview:    req.Overview,
			Image:       req.Image,
			Venue:       req.Venue,
			Location:    req.Location,
			Date:        req.Date,
			Time:        req.Time,
			Mode:        req.Mode,
			Audience:    req.Audience,
			Agenda:      req.Agenda,
			Organizer:   req.Organizer,
			Tags:        req.Tags,
		}

		if req.ID != "" {
			id, err := primitive.ObjectIDFromHex(req.ID)
			if err != nil {
				log.Error("invalid event id format", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid event id format"))
				return
			}
			event.ID = id
		}

		if err = upserter.UpsertEvent(r.Context(), event); err != nil {
			log.Error("failed to save event", sl.Err(err))

			var fieldErr models.FieldError
			if errors.As(err, &fieldErr) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(fieldErr.Error()))
				return
			}

			if errors.Is(err, storage.ErrEventExists) {
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event with this slug already exists"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save event"))
			return
		}

		log.Info("event saved", slog.String("slug", event.Slug))

		responseOK(w, r, event)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		ID:       event.ID.Hex(),
		Slug:     event.Slug,
	})
}
