package actions

// ErrorKind is the closed set of failure categories a booking attempt can
// end in. Callers branch on the kind; Error carries the human-readable
// message.
type ErrorKind string

const (
	KindMissingFields ErrorKind = "missing_fields"
	KindInvalidID     ErrorKind = "invalid_id"
	KindValidation    ErrorKind = "validation"
	KindReferential   ErrorKind = "referential"
	KindDuplicate     ErrorKind = "duplicate"
	KindGeneric       ErrorKind = "generic"
)

// BookingResult is the uniform outcome of a booking attempt. Expected
// failures are values here, never raised errors.
type BookingResult struct {
	Success bool      `json:"success"`
	Kind    ErrorKind `json:"-"`
	Error   string    `json:"error,omitempty"`
}

func booked() BookingResult {
	return BookingResult{Success: true}
}

func failed(kind ErrorKind, msg string) BookingResult {
	return BookingResult{
		Kind:  kind,
		Error: msg,
	}
}
