package actions

import (
	"context"
	"fmt"
	"log/slog"

	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"
)

// UpsertEvent normalizes the candidate and persists it. This is the
// content-management write path; the slug uniqueness constraint surfaces as
// storage.ErrEventExists.
func (a *Actions) UpsertEvent(ctx context.Context, event *models.Event) error {
	const op = "actions.UpsertEvent"

	if err := event.Normalize(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := a.store.SaveEvent(ctx, event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	a.log.Info("event saved",
		slog.String("op", op),
		slog.String("slug", event.Slug),
	)

	return nil
}

// SimilarEventsBySlug returns every other event sharing at least one tag
// with the named one. Lookup failures, including an unknown slug, collapse
// into an empty slice; the cause is only logged.
func (a *Actions) SimilarEventsBySlug(ctx context.Context, slug string) []models.Event {
	const op = "actions.SimilarEventsBySlug"

	log := a.log.With(
		slog.String("op", op),
		slog.String("slug", slug),
	)

	event, err := a.store.EventBySlug(ctx, slug)
	if err != nil {
		log.Warn("failed to resolve event for similar lookup", sl.Err(err))
		return []models.Event{}
	}

	similar, err := a.store.SimilarEvents(ctx, event)
	if err != nil {
		log.Warn("failed to find similar events", sl.Err(err))
		return []models.Event{}
	}

	if similar == nil {
		similar = []models.Event{}
	}

	return similar
}
