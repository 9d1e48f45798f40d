package createBooking_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventhub/internal/actions"
	"eventhub/internal/http-server/handlers/event/createBooking"
	"eventhub/internal/http-server/handlers/event/createBooking/mocks"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
)

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		slug           string
		requestBody    string
		mockSetup      func(creator *mocks.BookingCreator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			slug:        "react-summit-2025",
			requestBody: `{"event_id": "665f1f77bcf86cd799439011", "email": "dev@example.com"}`,
			mockSetup: func(creator *mocks.BookingCreator) {
				creator.On("CreateBooking", mock.Anything, actions.CreateBookingRequest{
					EventID: "665f1f77bcf86cd799439011",
					Slug:    "react-summit-2025",
					Email:   "dev@example.com",
				}).Return(actions.BookingResult{Success: true})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Invalid JSON",
			slug:           "react-summit-2025",
			requestBody:    `not json`,
			mockSetup:      func(creator *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Missing fields",
			slug:        "react-summit-2025",
			requestBody: `{}`,
			mockSetup: func(creator *mocks.BookingCreator) {
				creator.On("CreateBooking", mock.Anything, mock.Anything).
					Return(actions.BookingResult{Kind: actions.KindMissingFields, Error: "missing required fields"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"missing required fields"}`,
		},
		{
			name:        "Invalid event id",
			slug:        "react-summit-2025",
			requestBody: `{"event_id": "nope", "email": "dev@example.com"}`,
			mockSetup: func(creator *mocks.BookingCreator) {
				creator.On("CreateBooking", mock.Anything, mock.Anything).
					Return(actions.BookingResult{Kind: actions.KindInvalidID, Error: "invalid event id"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id"}`,
		},
		{
			name:        "Referenced event does not exist",
			slug:        "react-summit-2025",
			requestBody: `{"event_id": "665f1f77bcf86cd799439011", "email": "dev@example.com"}`,
			mockSetup: func(creator *mocks.BookingCreator) {
				creator.On("CreateBooking", mock.Anything, mock.Anything).
					Return(actions.BookingResult{Kind: actions.KindReferential, Error: "referenced event does not exist"})
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"referenced event does not exist"}`,
		},
		{
			name:        "Malformed email",
			slug:        "react-summit-2025",
			requestBody: `{"event_id": "665f1f77bcf86cd799439011", "email": "not-an-email"}`,
			mockSetup: func(creator *mocks.BookingCreator) {
				creator.On("CreateBooking", mock.Anything, mock.Anything).
					Return(actions.BookingResult{Kind: actions.KindValidation, Error: "email: must be a valid email address"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"email: must be a valid email address"}`,
		},
		{
			name:        "Already booked",
			slug:        "react-summit-2025",
			requestBody: `{"event_id": "665f1f77bcf86cd799439011", "email": "dev@example.com"}`,
			mockSetup: func(creator *mocks.BookingCreator) {
				creator.On("CreateBooking", mock.Anything, mock.Anything).
					Return(actions.BookingResult{Kind: actions.KindDuplicate, Error: "you have already booked this event"})
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"you have already booked this event"}`,
		},
		{
			name:        "Internal error",
			slug:        "react-summit-2025",
			requestBody: `{"event_id": "665f1f77bcf86cd799439011", "email": "dev@example.com"}`,
			mockSetup: func(creator *mocks.BookingCreator) {
				creator.On("CreateBooking", mock.Anything, mock.Anything).
					Return(actions.BookingResult{Kind: actions.KindGeneric, Error: "server selection timeout"})
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"server selection timeout"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creator := mocks.NewBookingCreator(t)
			tc.mockSetup(creator)

			handler := createBooking.New(logger, creator)

			router := chi.NewRouter()
			router.Post("/events/{slug}/book", handler)

			req, err := http.NewRequest(http.MethodPost, "/events/"+tc.slug+"/book", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body mismatch")

			creator.AssertExpectations(t)
		})
	}
}

func TestCreateBookingHandler_MissingSlug(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	creator := mocks.NewBookingCreator(t)

	handler := createBooking.New(logger, creator)

	req, err := http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"event_id": "x", "email": "dev@example.com"}`))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "event slug is required")
}
