package models

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking references an Event; it never owns it. One booking per
// (event, email) pair is enforced by the store's compound unique index.
type Booking struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EventID   primitive.ObjectID `json:"event_id" bson:"event_id"`
	Email     string             `json:"email" bson:"email"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

var emailFormat = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims and lowercases an address and checks it against the
// standard local@domain shape.
func NormalizeEmail(value string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(value))

	if !emailFormat.MatchString(email) {
		return "", FieldError{Field: "email", Msg: "must be a valid email address"}
	}

	return email, nil
}

// Normalize canonicalizes the booking in place.
func (b *Booking) Normalize() error {
	email, err := NormalizeEmail(b.Email)
	if err != nil {
		return err
	}
	b.Email = email

	if b.EventID.IsZero() {
		return FieldError{Field: "event_id", Msg: "is required"}
	}

	return nil
}
