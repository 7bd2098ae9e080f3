package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"alx_travel/internal/adapters/observability"
	"alx_travel/internal/domain"
)

// CommandService owns every write path. Each validation rule has exactly one
// call-site here; the storage constraints remain as an independent backstop
// for writes that bypass the service.
type CommandService struct {
	repo  domain.Repository
	cache domain.Cache
}

func NewCommandService(r domain.Repository, c domain.Cache) *CommandService {
	return &CommandService{repo: r, cache: c}
}

// ---- inputs ----

type UserInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ListingInput struct {
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Location          string  `json:"location"`
	PricePerNight     float64 `json:"price_per_night"`
	NumberOfBedrooms  int     `json:"number_of_bedrooms"`
	NumberOfBathrooms int     `json:"number_of_bathrooms"`
	MaxGuestCount     int     `json:"max_guest_count"`
	HostID            string  `json:"host_id"`
	IsAvailable       bool    `json:"is_available"`
	Amenities         string  `json:"amenities"`
}

type BookingInput struct {
	ListingID       string
	UserID          string
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumberOfGuests  int
	TotalPrice      float64
	Status          domain.BookingStatus
	SpecialRequests string
}

type ReviewInput struct {
	ListingID string `json:"listing_id"`
	UserID    string `json:"user_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// ---- users (seeder and admin tooling; no HTTP surface) ----

func (s *CommandService) CreateUser(ctx context.Context, in UserInput) (domain.User, error) {
	u := domain.User{
		ID:        uuid.NewString(),
		Username:  in.Username,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return domain.User{}, err
	}
	observability.ObserveEntityWrite("user", "create")
	return u, nil
}

// ---- listings ----

func (s *CommandService) CreateListing(ctx context.Context, in ListingInput) (domain.Listing, error) {
	if err := validateListing(in); err != nil {
		return domain.Listing{}, err
	}
	l := domain.Listing{
		ID:                uuid.NewString(),
		Title:             in.Title,
		Description:       in.Description,
		Location:          in.Location,
		PricePerNight:     in.PricePerNight,
		NumberOfBedrooms:  in.NumberOfBedrooms,
		NumberOfBathrooms: in.NumberOfBathrooms,
		MaxGuestCount:     in.MaxGuestCount,
		HostID:            in.HostID,
		IsAvailable:       in.IsAvailable,
		Amenities:         in.Amenities,
	}
	if err := s.repo.CreateListing(ctx, l); err != nil {
		return domain.Listing{}, err
	}
	observability.ObserveEntityWrite("listing", "create")
	s.invalidateListingLists(ctx)
	return l, nil
}

func (s *CommandService) UpdateListing(ctx context.Context, id string, in ListingInput) (domain.Listing, error) {
	if err := validateListing(in); err != nil {
		return domain.Listing{}, err
	}
	existing, err := s.repo.GetListing(ctx, id)
	if err != nil {
		return domain.Listing{}, err
	}
	l := existing
	l.Title = in.Title
	l.Description = in.Description
	l.Location = in.Location
	l.PricePerNight = in.PricePerNight
	l.NumberOfBedrooms = in.NumberOfBedrooms
	l.NumberOfBathrooms = in.NumberOfBathrooms
	l.MaxGuestCount = in.MaxGuestCount
	l.IsAvailable = in.IsAvailable
	l.Amenities = in.Amenities
	if err := s.repo.UpdateListing(ctx, l); err != nil {
		return domain.Listing{}, err
	}
	observability.ObserveEntityWrite("listing", "update")
	s.invalidateListing(ctx, id)
	return l, nil
}

func (s *CommandService) DeleteListing(ctx context.Context, id string) error {
	// Bookings and reviews go with it via cascade.
	if err := s.repo.DeleteListing(ctx, id); err != nil {
		return err
	}
	observability.ObserveEntityWrite("listing", "delete")
	s.invalidateListing(ctx, id)
	s.invalidateReviews(ctx, id)
	return nil
}

// validateListing is the single call-site for the listing rules.
func validateListing(in ListingInput) error {
	if verr := domain.PricePositive(in.PricePerNight); verr != nil {
		return verr
	}
	if verr := domain.MaxGuestCountPositive(in.MaxGuestCount); verr != nil {
		return verr
	}
	return nil
}

// ---- bookings ----

func (s *CommandService) CreateBooking(ctx context.Context, in BookingInput) (domain.Booking, error) {
	if in.Status == "" {
		in.Status = domain.StatusPending
	}
	listing, err := s.repo.GetListing(ctx, in.ListingID)
	if err != nil {
		return domain.Booking{}, err
	}
	if err := validateBooking(listing, in); err != nil {
		return domain.Booking{}, err
	}
	b := domain.Booking{
		ID:              uuid.NewString(),
		ListingID:       in.ListingID,
		UserID:          in.UserID,
		CheckInDate:     in.CheckInDate,
		CheckOutDate:    in.CheckOutDate,
		NumberOfGuests:  in.NumberOfGuests,
		TotalPrice:      in.TotalPrice,
		Status:          in.Status,
		SpecialRequests: in.SpecialRequests,
	}
	if err := s.repo.CreateBooking(ctx, b); err != nil {
		return domain.Booking{}, err
	}
	observability.ObserveEntityWrite("booking", "create")
	return b, nil
}

func (s *CommandService) UpdateBooking(ctx context.Context, id string, in BookingInput) (domain.Booking, error) {
	existing, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return domain.Booking{}, err
	}
	if in.Status == "" {
		in.Status = existing.Status
	}
	listing, err := s.repo.GetListing(ctx, existing.ListingID)
	if err != nil {
		return domain.Booking{}, err
	}
	if err := validateBooking(listing, in); err != nil {
		return domain.Booking{}, err
	}
	b := existing
	b.CheckInDate = in.CheckInDate
	b.CheckOutDate = in.CheckOutDate
	b.NumberOfGuests = in.NumberOfGuests
	b.TotalPrice = in.TotalPrice
	b.Status = in.Status
	b.SpecialRequests = in.SpecialRequests
	if err := s.repo.UpdateBooking(ctx, b); err != nil {
		return domain.Booking{}, err
	}
	observability.ObserveEntityWrite("booking", "update")
	return b, nil
}

func (s *CommandService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.repo.DeleteBooking(ctx, id); err != nil {
		return err
	}
	observability.ObserveEntityWrite("booking", "delete")
	return nil
}

// validateBooking is the single call-site for the cross-field booking rules,
// the combined guard the entities pass through before persistence.
func validateBooking(listing domain.Listing, in BookingInput) error {
	if verr := domain.CheckoutAfterCheckin(in.CheckInDate, in.CheckOutDate); verr != nil {
		return verr
	}
	if verr := domain.GuestsWithinCapacity(listing.MaxGuestCount, in.NumberOfGuests); verr != nil {
		return verr
	}
	if verr := domain.TotalPriceNonNegative(in.TotalPrice); verr != nil {
		return verr
	}
	if verr := domain.StatusKnown(in.Status); verr != nil {
		return verr
	}
	return nil
}

// ---- reviews ----

func (s *CommandService) CreateReview(ctx context.Context, in ReviewInput) (domain.Review, error) {
	if verr := domain.RatingRange(in.Rating); verr != nil {
		return domain.Review{}, verr
	}
	rv := domain.Review{
		ID:        uuid.NewString(),
		ListingID: in.ListingID,
		UserID:    in.UserID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	}
	// Uniqueness of (user, listing) rides on the storage constraint; a
	// concurrent duplicate surfaces as ErrConflict here.
	if err := s.repo.CreateReview(ctx, rv); err != nil {
		return domain.Review{}, err
	}
	observability.ObserveEntityWrite("review", "create")
	// The listing's average rating moved.
	s.invalidateListing(ctx, in.ListingID)
	s.invalidateReviews(ctx, in.ListingID)
	return rv, nil
}

func (s *CommandService) DeleteReview(ctx context.Context, id string) error {
	rv, err := s.repo.GetReview(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteReview(ctx, id); err != nil {
		return err
	}
	observability.ObserveEntityWrite("review", "delete")
	s.invalidateListing(ctx, rv.ListingID)
	s.invalidateReviews(ctx, rv.ListingID)
	return nil
}

// ---- cache invalidation ----

func (s *CommandService) invalidateListing(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, listingKey(id))
	s.invalidateListingLists(ctx)
}

func (s *CommandService) invalidateListingLists(ctx context.Context) {
	if s.cache == nil {
		return
	}
	for _, lim := range commonLimits {
		_ = s.cache.Del(ctx, listingsKey(lim))
	}
}

func (s *CommandService) invalidateReviews(ctx context.Context, listingID string) {
	if s.cache == nil {
		return
	}
	for _, lim := range commonLimits {
		_ = s.cache.Del(ctx, reviewsKey(listingID, lim))
	}
}
