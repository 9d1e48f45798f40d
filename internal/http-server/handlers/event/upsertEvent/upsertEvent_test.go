package upsertEvent_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventhub/internal/http-server/handlers/event/upsertEvent"
	"eventhub/internal/http-server/handlers/event/upsertEvent/mocks"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/models"
	"eventhub/internal/storage"
)

func validBody(t *testing.T) string {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{
		"title":       "React Summit 2025",
		"description": "The biggest React conference",
		"overview":    "Talks and workshops",
		"image":       "https://example.com/react.png",
		"venue":       "RAI Amsterdam",
		"location":    "Amsterdam, Netherlands",
		"date":        "June 13, 2025",
		"time":        "9:00 am",
		"mode":        "offline",
		"audience":    "developers",
		"agenda":      []string{"Registration", "Keynote"},
		"organizer":   "GitNation",
		"tags":        []string{"react", "javascript"},
	})
	require.NoError(t, err)

	return string(body)
}

func TestUpsertEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	eventID := primitive.NewObjectID()

	testCases := []struct {
		name           string
		requestBody    func(t *testing.T) string
		mockSetup      func(upserter *mocks.EventUpserter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(upserter *mocks.EventUpserter) {
				upserter.On("UpsertEvent", mock.Anything, mock.AnythingOfType("*models.Event")).
					Run(func(args mock.Arguments) {
						event := args.Get(1).(*models.Event)
						event.ID = eventID
						event.Slug = "react-summit-2025"
					}).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"slug":"react-summit-2025"`)
				assert.Contains(t, body, eventID.Hex())
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    func(t *testing.T) string { return `not json` },
			mockSetup:      func(upserter *mocks.EventUpserter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to decode request")
			},
		},
		{
			name: "Missing title fails struct validation",
			requestBody: func(t *testing.T) string {
				return `{"description": "d", "overview": "o"}`
			},
			mockSetup:      func(upserter *mocks.EventUpserter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Title")
			},
		},
		{
			name: "Invalid id format",
			requestBody: func(t *testing.T) string {
				var req map[string]interface{}
				require.NoError(t, json.Unmarshal([]byte(validBody(t)), &req))
				req["id"] = "not-an-object-id"

				body, err := json.Marshal(req)
				require.NoError(t, err)

				return string(body)
			},
			mockSetup:      func(upserter *mocks.EventUpserter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid event id format")
			},
		},
		{
			name:        "Pipeline rejection",
			requestBody: validBody,
			mockSetup: func(upserter *mocks.EventUpserter) {
				upserter.On("UpsertEvent", mock.Anything, mock.Anything).
					Return(fmt.Errorf("actions.UpsertEvent: %w", models.FieldError{Field: "time", Msg: "invalid time format"}))
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "time: invalid time format")
			},
		},
		{
			name:        "Slug collision",
			requestBody: validBody,
			mockSetup: func(upserter *mocks.EventUpserter) {
				upserter.On("UpsertEvent", mock.Anything, mock.Anything).
					Return(fmt.Errorf("actions.UpsertEvent: %w", storage.ErrEventExists))
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "event with this slug already exists")
			},
		},
		{
			name:        "Store failure",
			requestBody: validBody,
			mockSetup: func(upserter *mocks.EventUpserter) {
				upserter.On("UpsertEvent", mock.Anything, mock.Anything).
					Return(fmt.Errorf("actions.UpsertEvent: %w", fmt.Errorf("server selection timeout")))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to save event")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			upserter := mocks.NewEventUpserter(t)
			tc.mockSetup(upserter)

			handler := upsertEvent.New(logger, upserter)

			req, err := http.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(tc.requestBody(t)))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "status code mismatch")
			tc.checkBody(t, rr.Body.String())

			upserter.AssertExpectations(t)
		})
	}
}
