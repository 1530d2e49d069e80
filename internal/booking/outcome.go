package booking

import (
	"github.com/gdg-garage/zoo-hotel-api/internal/models"
	"github.com/shopspring/decimal"
)

// State is a step of a single booking attempt.
type State string

const (
	StateValidating      State = "Validating"
	StateAllocatingRoom  State = "AllocatingRoom"
	StatePricing         State = "Pricing"
	StatePersisting      State = "Persisting"
	StateAwardingLoyalty State = "AwardingLoyalty"
	StateCommitted       State = "Committed"
	StateAborted         State = "Aborted"
)

// Outcome is what the presentation layer renders for a booking attempt.
type Outcome struct {
	State     State
	Reason    Reason
	TotalCost decimal.Decimal
	Booking   *models.Booking
	// LoyaltyPoints is the user's balance after the booking.
	LoyaltyPoints int
}

func (o Outcome) Committed() bool {
	return o.State == StateCommitted
}

func aborted(reason Reason) Outcome {
	return Outcome{State: StateAborted, Reason: reason}
}
