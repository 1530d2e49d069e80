package booking

// Validate checks the structural rules of a booking request. It has no side
// effects and must pass before any room is touched.
func Validate(visit VisitRequest, hotel *HotelRequest) error {
	if visit.ChildTickets < 1 && visit.AdultTickets < 1 {
		return ErrEmptyTicketSelection
	}

	if visit.ChildTickets < 0 || visit.AdultTickets < 0 {
		return ErrInvalidPricingInput
	}

	if Day(visit.Start).After(Day(visit.End)) {
		return ErrInvalidDateOrder
	}

	if hotel != nil && !Day(hotel.Start).Before(Day(hotel.End)) {
		return ErrInvalidHotelStay
	}

	return nil
}
