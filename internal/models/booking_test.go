package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventhub/internal/models"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "dev@example.com", want: "dev@example.com"},
		{name: "uppercase is lowered", in: "Dev@Example.COM", want: "dev@example.com"},
		{name: "surrounding whitespace", in: "  dev@example.com  ", want: "dev@example.com"},
		{name: "subdomain", in: "dev@mail.example.co.uk", want: "dev@mail.example.co.uk"},
		{name: "plus addressing", in: "dev+events@example.com", want: "dev+events@example.com"},
		{name: "not an email", in: "not-an-email", wantErr: true},
		{name: "missing domain dot", in: "dev@example", wantErr: true},
		{name: "spaces inside", in: "de v@example.com", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := models.NormalizeEmail(tc.in)
			if tc.wantErr {
				require.Error(t, err)

				var fieldErr models.FieldError
				require.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, "email", fieldErr.Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBookingNormalize(t *testing.T) {
	t.Parallel()

	t.Run("email is canonicalized", func(t *testing.T) {
		t.Parallel()

		booking := &models.Booking{
			EventID: primitive.NewObjectID(),
			Email:   "  Dev@Example.COM ",
		}

		require.NoError(t, booking.Normalize())
		assert.Equal(t, "dev@example.com", booking.Email)
	})

	t.Run("zero event id is rejected", func(t *testing.T) {
		t.Parallel()

		booking := &models.Booking{Email: "dev@example.com"}

		err := booking.Normalize()
		require.Error(t, err)

		var fieldErr models.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "event_id", fieldErr.Field)
	})
}
