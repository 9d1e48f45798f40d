package getSimilarEvents

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/models"
)

type SimilarEventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SimilarEventsProvider
type SimilarEventsProvider interface {
	SimilarEventsBySlug(ctx context.Context, slug string) []models.Event
}

// New serves the related-events widget. The lookup never fails from the
// caller's point of view: an unknown slug or a store failure both come back
// as an empty list.
func New(log *slog.Logger, provider SimilarEventsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getSimilarEvents.New"

		log = log.With(slog.String("op", op))

		slug := chi.URLParam(r, "slug")
		if slug == "" {
			log.Error("event slug is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event slug is required"))
			return
		}

		events := provider.SimilarEventsBySlug(r.Context(), slug)

		log.Info("similar events retrieved",
			slog.String("slug", slug),
			slog.Int("count", len(events)),
		)

		responseOK(w, r, events)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	render.JSON(w, r, SimilarEventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
