package domain

import (
	"fmt"
	"time"
)

// Each rule below is a pure function with a single call-site in the command
// service. The schema mirrors them as CHECK/UNIQUE constraints so writes that
// bypass the API (seeding, admin tooling) are caught at the storage boundary.

func RatingRange(r int) *ValidationError {
	if r < 1 || r > 5 {
		return invalid("rating", "rating_range", "rating must be between 1 and 5")
	}
	return nil
}

// PricePositive is the input-side bound: strictly positive. The stored
// column only requires >= 0, a deliberately looser check.
func PricePositive(p float64) *ValidationError {
	if p <= 0 {
		return invalid("price_per_night", "price_positive", "price per night must be positive")
	}
	return nil
}

func MaxGuestCountPositive(n int) *ValidationError {
	if n < 1 {
		return invalid("max_guest_count", "max_guest_count_positive", "maximum guest count must be at least 1")
	}
	return nil
}

func CheckoutAfterCheckin(checkIn, checkOut time.Time) *ValidationError {
	if !checkOut.After(checkIn) {
		return invalid("check_out_date", "checkout_after_checkin", "check-out date must be after check-in date")
	}
	return nil
}

func GuestsWithinCapacity(maxGuests, requested int) *ValidationError {
	if requested < 1 {
		return invalid("number_of_guests", "at_least_one_guest", "number of guests must be at least 1")
	}
	if requested > maxGuests {
		return invalid("number_of_guests", "guests_within_capacity",
			fmt.Sprintf("number of guests (%d) exceeds maximum allowed (%d)", requested, maxGuests))
	}
	return nil
}

func TotalPriceNonNegative(p float64) *ValidationError {
	if p < 0 {
		return invalid("total_price", "total_price_non_negative", "total price must not be negative")
	}
	return nil
}

func StatusKnown(s BookingStatus) *ValidationError {
	if !s.Valid() {
		return invalid("status", "status_known",
			fmt.Sprintf("status must be one of pending, confirmed, canceled, completed; got %q", s))
	}
	return nil
}
