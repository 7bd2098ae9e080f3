package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"alx_travel/internal/app"
	"alx_travel/internal/domain"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func seedListing(f *fakeRepo, maxGuests int) domain.Listing {
	l := domain.Listing{
		ID:            uuid.NewString(),
		Title:         "Beach House in San Diego",
		PricePerNight: 200,
		MaxGuestCount: maxGuests,
		HostID:        uuid.NewString(),
		IsAvailable:   true,
	}
	f.listings[l.ID] = l
	return l
}

func TestCreateListing_PriceBounds(t *testing.T) {
	repo := newFakeRepo()
	c := app.NewCommandService(repo, newFakeCache())
	ctx := context.Background()

	for _, price := range []float64{-10, 0} {
		_, err := c.CreateListing(ctx, app.ListingInput{
			Title: "Loft", PricePerNight: price, MaxGuestCount: 2, HostID: "h1",
		})
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("price %v: expected ValidationError, got %v", price, err)
		}
		if ve.Rule != "price_positive" {
			t.Fatalf("price %v: unexpected rule %s", price, ve.Rule)
		}
	}
	if len(repo.listings) != 0 {
		t.Fatalf("invalid listings must not be persisted")
	}

	l, err := c.CreateListing(ctx, app.ListingInput{
		Title: "Loft", PricePerNight: 120, MaxGuestCount: 2, HostID: "h1",
	})
	if err != nil {
		t.Fatalf("valid listing rejected: %v", err)
	}
	if _, err := uuid.Parse(l.ID); err != nil {
		t.Fatalf("listing id %q is not a UUID: %v", l.ID, err)
	}
	if _, ok := repo.listings[l.ID]; !ok {
		t.Fatalf("listing not persisted")
	}
}

func TestCreateListing_GuestCountBound(t *testing.T) {
	c := app.NewCommandService(newFakeRepo(), newFakeCache())

	_, err := c.CreateListing(context.Background(), app.ListingInput{
		Title: "Cabin", PricePerNight: 90, MaxGuestCount: 0, HostID: "h1",
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Rule != "max_guest_count_positive" {
		t.Fatalf("expected max_guest_count_positive violation, got %v", err)
	}
}

func TestCreateBooking_DateOrdering(t *testing.T) {
	repo := newFakeRepo()
	c := app.NewCommandService(repo, newFakeCache())
	ctx := context.Background()
	l := seedListing(repo, 4)

	_, err := c.CreateBooking(ctx, app.BookingInput{
		ListingID:      l.ID,
		UserID:         "g1",
		CheckInDate:    date(t, "2024-06-10"),
		CheckOutDate:   date(t, "2024-06-09"),
		NumberOfGuests: 2,
		TotalPrice:     400,
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Rule != "checkout_after_checkin" {
		t.Fatalf("expected checkout_after_checkin violation, got %v", err)
	}

	b, err := c.CreateBooking(ctx, app.BookingInput{
		ListingID:      l.ID,
		UserID:         "g1",
		CheckInDate:    date(t, "2024-06-10"),
		CheckOutDate:   date(t, "2024-06-12"),
		NumberOfGuests: 2,
		TotalPrice:     400,
	})
	if err != nil {
		t.Fatalf("valid booking rejected: %v", err)
	}
	if b.Status != domain.StatusPending {
		t.Fatalf("expected default status pending, got %s", b.Status)
	}
	if got := domain.DurationDays(b.CheckInDate, b.CheckOutDate); got != 2 {
		t.Fatalf("duration_days = %d, want 2", got)
	}
}

func TestCreateBooking_Capacity(t *testing.T) {
	repo := newFakeRepo()
	c := app.NewCommandService(repo, newFakeCache())
	ctx := context.Background()
	l := seedListing(repo, 4)

	base := app.BookingInput{
		ListingID:    l.ID,
		UserID:       "g1",
		CheckInDate:  date(t, "2024-06-10"),
		CheckOutDate: date(t, "2024-06-12"),
		TotalPrice:   400,
	}

	base.NumberOfGuests = 4
	if _, err := c.CreateBooking(ctx, base); err != nil {
		t.Fatalf("booking at capacity rejected: %v", err)
	}

	base.NumberOfGuests = 5
	_, err := c.CreateBooking(ctx, base)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Rule != "guests_within_capacity" {
		t.Fatalf("expected guests_within_capacity violation, got %v", err)
	}
}

func TestCreateBooking_ListingMissing(t *testing.T) {
	c := app.NewCommandService(newFakeRepo(), newFakeCache())

	_, err := c.CreateBooking(context.Background(), app.BookingInput{
		ListingID:      uuid.NewString(),
		UserID:         "g1",
		CheckInDate:    date(t, "2024-06-10"),
		CheckOutDate:   date(t, "2024-06-12"),
		NumberOfGuests: 1,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateReview_RatingAndUniqueness(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	c := app.NewCommandService(repo, cache)
	ctx := context.Background()
	l := seedListing(repo, 4)

	_, err := c.CreateReview(ctx, app.ReviewInput{ListingID: l.ID, UserID: "g1", Rating: 6})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Rule != "rating_range" {
		t.Fatalf("expected rating_range violation, got %v", err)
	}

	if _, err := c.CreateReview(ctx, app.ReviewInput{ListingID: l.ID, UserID: "g1", Rating: 5, Comment: "Great value for money."}); err != nil {
		t.Fatalf("first review rejected: %v", err)
	}
	// listing view carries average_rating, so it must be evicted
	if !cache.deleted("listing:" + l.ID) {
		t.Fatalf("expected listing cache eviction after review write")
	}

	_, err = c.CreateReview(ctx, app.ReviewInput{ListingID: l.ID, UserID: "g1", Rating: 4})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate (user, listing) pair, got %v", err)
	}

	if _, err := c.CreateReview(ctx, app.ReviewInput{ListingID: l.ID, UserID: "g2", Rating: 4}); err != nil {
		t.Fatalf("review from another user rejected: %v", err)
	}
}

func TestUpdateBooking_Revalidates(t *testing.T) {
	repo := newFakeRepo()
	c := app.NewCommandService(repo, newFakeCache())
	ctx := context.Background()
	l := seedListing(repo, 4)

	b, err := c.CreateBooking(ctx, app.BookingInput{
		ListingID:      l.ID,
		UserID:         "g1",
		CheckInDate:    date(t, "2024-06-10"),
		CheckOutDate:   date(t, "2024-06-12"),
		NumberOfGuests: 2,
		TotalPrice:     400,
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	_, err = c.UpdateBooking(ctx, b.ID, app.BookingInput{
		CheckInDate:    date(t, "2024-06-10"),
		CheckOutDate:   date(t, "2024-06-12"),
		NumberOfGuests: 9,
		TotalPrice:     400,
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Rule != "guests_within_capacity" {
		t.Fatalf("expected guests_within_capacity violation on update, got %v", err)
	}

	got, err := c.UpdateBooking(ctx, b.ID, app.BookingInput{
		CheckInDate:    date(t, "2024-06-11"),
		CheckOutDate:   date(t, "2024-06-13"),
		NumberOfGuests: 3,
		TotalPrice:     400,
		Status:         domain.StatusConfirmed,
	})
	if err != nil {
		t.Fatalf("valid update rejected: %v", err)
	}
	if got.Status != domain.StatusConfirmed || got.NumberOfGuests != 3 {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestDeleteReview_InvalidatesListing(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	c := app.NewCommandService(repo, cache)
	ctx := context.Background()
	l := seedListing(repo, 4)

	rv, err := c.CreateReview(ctx, app.ReviewInput{ListingID: l.ID, UserID: "g1", Rating: 3})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	cache.dels = nil

	if err := c.DeleteReview(ctx, rv.ID); err != nil {
		t.Fatalf("delete review: %v", err)
	}
	if !cache.deleted("listing:" + l.ID) {
		t.Fatalf("expected listing cache eviction after review delete")
	}
	if err := c.DeleteReview(ctx, rv.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}
