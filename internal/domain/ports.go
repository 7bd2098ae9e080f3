package domain

import "context"

type Repository interface {
	// Users
	CreateUser(ctx context.Context, u User) error
	GetUser(ctx context.Context, id string) (User, error)
	DeleteUser(ctx context.Context, id string) error

	// Listings
	CreateListing(ctx context.Context, l Listing) error
	UpdateListing(ctx context.Context, l Listing) error
	DeleteListing(ctx context.Context, id string) error
	GetListing(ctx context.Context, id string) (Listing, error)
	GetListingDetail(ctx context.Context, id string) (ListingView, error)
	ListListings(ctx context.Context, limit int) ([]ListingSummary, error)

	// Bookings
	CreateBooking(ctx context.Context, b Booking) error
	UpdateBooking(ctx context.Context, b Booking) error
	DeleteBooking(ctx context.Context, id string) error
	GetBooking(ctx context.Context, id string) (Booking, error)
	GetBookingDetail(ctx context.Context, id string) (BookingView, error)
	ListBookings(ctx context.Context, limit int) ([]BookingView, error)

	// Reviews
	CreateReview(ctx context.Context, rv Review) error
	DeleteReview(ctx context.Context, id string) error
	GetReview(ctx context.Context, id string) (Review, error)
	ListReviews(ctx context.Context, listingID string, limit int) ([]ReviewView, error)

	// WipeSampleData removes all listings, bookings and reviews plus every
	// user whose username starts with prefix. Seeder support only.
	WipeSampleData(ctx context.Context, prefix string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Read models. Dates render in DateLayout; derived fields are computed at
// mapping time and never persisted.

type UserView struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type ReviewView struct {
	ReviewID  string   `json:"review_id"`
	ListingID string   `json:"listing"`
	User      UserView `json:"user"`
	Rating    int      `json:"rating"`
	Comment   string   `json:"comment"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type ListingView struct {
	ListingID         string       `json:"listing_id"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	Location          string       `json:"location"`
	PricePerNight     float64      `json:"price_per_night"`
	NumberOfBedrooms  int          `json:"number_of_bedrooms"`
	NumberOfBathrooms int          `json:"number_of_bathrooms"`
	MaxGuestCount     int          `json:"max_guest_count"`
	Host              UserView     `json:"host"`
	IsAvailable       bool         `json:"is_available"`
	Amenities         string       `json:"amenities"`
	AmenitiesList     []string     `json:"amenities_list"`
	AverageRating     float64      `json:"average_rating"`
	Reviews           []ReviewView `json:"reviews"`
	CreatedAt         string       `json:"created_at"`
	UpdatedAt         string       `json:"updated_at"`
}

// ListingSummary is the list-view shape: no nested reviews, but a count.
type ListingSummary struct {
	ListingID         string   `json:"listing_id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Location          string   `json:"location"`
	PricePerNight     float64  `json:"price_per_night"`
	NumberOfBedrooms  int      `json:"number_of_bedrooms"`
	NumberOfBathrooms int      `json:"number_of_bathrooms"`
	MaxGuestCount     int      `json:"max_guest_count"`
	Host              UserView `json:"host"`
	IsAvailable       bool     `json:"is_available"`
	AmenitiesList     []string `json:"amenities_list"`
	AverageRating     float64  `json:"average_rating"`
	ReviewCount       int      `json:"review_count"`
	CreatedAt         string   `json:"created_at"`
}

type BookingView struct {
	BookingID       string         `json:"booking_id"`
	Listing         ListingSummary `json:"listing"`
	User            UserView       `json:"user"`
	CheckInDate     string         `json:"check_in_date"`
	CheckOutDate    string         `json:"check_out_date"`
	NumberOfGuests  int            `json:"number_of_guests"`
	TotalPrice      float64        `json:"total_price"`
	Status          BookingStatus  `json:"status"`
	SpecialRequests string         `json:"special_requests"`
	DurationDays    int            `json:"duration_days"`
	CreatedAt       string         `json:"created_at"`
	UpdatedAt       string         `json:"updated_at"`
}
