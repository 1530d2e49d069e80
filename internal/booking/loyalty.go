package booking

import "github.com/gdg-garage/zoo-hotel-api/internal/models"

const DefaultLoyaltyThreshold = 10

// Ledger counts completed bookings per user and wraps to zero once the
// threshold has been reached.
type Ledger struct {
	Threshold int
}

// Apply returns the balance after one more committed booking.
func (l Ledger) Apply(points int) int {
	if points < l.Threshold {
		return points + 1
	}
	return 0
}

// Award updates the user's balance in place.
func (l Ledger) Award(user *models.User) {
	user.LoyaltyPoints = l.Apply(user.LoyaltyPoints)
}
