package booking

import (
	"errors"
)

// Reason identifies why a booking attempt was aborted.
type Reason string

const (
	ReasonEmptyTicketSelection Reason = "EmptyTicketSelection"
	ReasonInvalidDateOrder     Reason = "InvalidDateOrder"
	ReasonInvalidHotelStay     Reason = "InvalidHotelStay"
	ReasonRoomTypeUnavailable  Reason = "RoomTypeUnavailable"
	ReasonNoRoomAvailable      Reason = "NoRoomAvailable"
	ReasonInvalidPricingInput  Reason = "InvalidPricingInput"
	ReasonFailedCommit         Reason = "FailedCommit"
)

// AbortError is a user-facing booking failure.
type AbortError struct {
	Reason  Reason
	message string
}

func (e *AbortError) Error() string {
	return e.message
}

var (
	ErrEmptyTicketSelection = &AbortError{Reason: ReasonEmptyTicketSelection, message: "select at least one child or adult ticket"}
	ErrInvalidDateOrder     = &AbortError{Reason: ReasonInvalidDateOrder, message: "visit start date must not be after its end date"}
	ErrInvalidHotelStay     = &AbortError{Reason: ReasonInvalidHotelStay, message: "hotel stay must last at least one night"}
	ErrRoomTypeUnavailable  = &AbortError{Reason: ReasonRoomTypeUnavailable, message: "no room of the requested type exists"}
	ErrNoRoomAvailable      = &AbortError{Reason: ReasonNoRoomAvailable, message: "no room of the requested type is free for these dates"}
	ErrInvalidPricingInput  = &AbortError{Reason: ReasonInvalidPricingInput, message: "ticket counts, nights and prices must not be negative"}
)

var (
	ErrUnknownRoomType  = errors.New("unknown room type")
	ErrInvalidRoomPrice = errors.New("nightly price must not be negative")
)

// AsAbort returns the AbortError wrapped in err, or nil.
func AsAbort(err error) *AbortError {
	if err == nil {
		return nil
	}

	var abortErr *AbortError
	if errors.As(err, &abortErr) {
		return abortErr
	}

	return nil
}
