package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a single listed event. Date is stored as an ISO calendar date
// (YYYY-MM-DD) and Time as a 24-hour HH:MM string; both are produced by
// Normalize before the document reaches the store.
type Event struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Slug        string             `json:"slug" bson:"slug"`
	Description string             `json:"description" bson:"description"`
	Overview    string             `json:"overview" bson:"overview"`
	Image       string             `json:"image" bson:"image"`
	Venue       string             `json:"venue" bson:"venue"`
	Location    string             `json:"location" bson:"location"`
	Date        string             `json:"date" bson:"date"`
	Time        string             `json:"time" bson:"time"`
	Mode        string             `json:"mode" bson:"mode"`
	Audience    string             `json:"audience" bson:"audience"`
	Agenda      []string           `json:"agenda" bson:"agenda"`
	Organizer   string             `json:"organizer" bson:"organizer"`
	Tags        []string           `json:"tags" bson:"tags"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// FieldError reports a validation failure on a single field.
type FieldError struct {
	Field string
	Msg   string
}

func (e FieldError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Msg) }

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	timeFormat      = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)\s*(am|pm)?$`)
)

// dateLayouts is tried in order by NormalizeDate. The first layout keeps
// normalization idempotent: an already-normalized date parses as itself.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
	"01/02/2006",
}

// Slugify derives a URL-safe slug from a title: lowercase, every run of
// non-alphanumeric characters collapsed into a single hyphen, leading and
// trailing hyphens removed. Returns "" when the title has no alphanumerics.
func Slugify(title string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "-")

	return strings.Trim(slug, "-")
}

// NormalizeDate parses a date permissively and returns only the calendar
// date part in ISO form (YYYY-MM-DD).
func NormalizeDate(value string) (string, error) {
	trimmed := strings.TrimSpace(value)

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.Format("2006-01-02"), nil
		}
	}

	return "", fmt.Errorf("invalid date format: %q", value)
}

// NormalizeTime converts H:MM / HH:MM with an optional am/pm suffix into
// 24-hour HH:MM. "12am" maps to hour 00, "12pm" stays 12, hours 1-11 with
// "pm" gain 12.
func NormalizeTime(value string) (string, error) {
	match := timeFormat.FindStringSubmatch(strings.ToLower(strings.TrimSpace(value)))
	if match == nil {
		return "", fmt.Errorf("invalid time format: %q", value)
	}

	hours, err := strconv.Atoi(match[1])
	if err != nil {
		return "", fmt.Errorf("invalid time format: %q", value)
	}

	switch match[3] {
	case "pm":
		if hours < 12 {
			hours += 12
		}
	case "am":
		if hours == 12 {
			hours = 0
		}
	}

	return fmt.Sprintf("%02d:%s", hours, match[2]), nil
}

// Normalize validates and canonicalizes the event in place. Required-field
// checks run before any derivation so malformed input is rejected before
// derived fields are computed from it. Slug is (re)derived whenever it no
// longer matches the title.
func (e *Event) Normalize() error {
	required := []struct {
		name  string
		value *string
	}{
		{"title", &e.Title},
		{"description", &e.Description},
		{"overview", &e.Overview},
		{"image", &e.Image},
		{"venue", &e.Venue},
		{"location", &e.Location},
		{"date", &e.Date},
		{"time", &e.Time},
		{"mode", &e.Mode},
		{"audience", &e.Audience},
		{"organizer", &e.Organizer},
	}

	for _, field := range required {
		*field.value = strings.TrimSpace(*field.value)
		if *field.value == "" {
			return FieldError{Field: field.name, Msg: "is required and cannot be empty"}
		}
	}

	if slug := Slugify(e.Title); e.Slug == "" || e.Slug != slug {
		if slug == "" {
			return FieldError{Field: "title", Msg: "must contain at least one alphanumeric character"}
		}
		e.Slug = slug
	}

	date, err := NormalizeDate(e.Date)
	if err != nil {
		return FieldError{Field: "date", Msg: err.Error()}
	}
	e.Date = date

	tm, err := NormalizeTime(e.Time)
	if err != nil {
		return FieldError{Field: "time", Msg: err.Error()}
	}
	e.Time = tm

	if err := normalizeEntries("agenda", e.Agenda); err != nil {
		return err
	}
	if err := normalizeEntries("tags", e.Tags); err != nil {
		return err
	}

	return nil
}

func normalizeEntries(field string, entries []string) error {
	if len(entries) == 0 {
		return FieldError{Field: field, Msg: "must contain at least one entry"}
	}

	for i, entry := range entries {
		entries[i] = strings.TrimSpace(entry)
		if entries[i] == "" {
			return FieldError{Field: field, Msg: "entries cannot be empty"}
		}
	}

	return nil
}
