package domain

import "time"

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
	StatusCompleted BookingStatus = "completed"
)

// Valid reports membership in the four known labels. Transitions between
// them are externally driven and not constrained here.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted:
		return true
	}
	return false
}

type Booking struct {
	ID              string
	ListingID       string
	UserID          string
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumberOfGuests  int
	TotalPrice      float64
	Status          BookingStatus
	SpecialRequests string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
