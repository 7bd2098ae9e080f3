package app_test

import (
	"context"
	"encoding/json"

	"alx_travel/internal/domain"
)

// ---- in-memory repository fake ----

type fakeRepo struct {
	users    map[string]domain.User
	listings map[string]domain.Listing
	bookings map[string]domain.Booking
	reviews  map[string]domain.Review

	// canned read views
	detail      domain.ListingView
	summaries   []domain.ListingSummary
	reviewList  []domain.ReviewView
	bookingView domain.BookingView

	// store hits per read view, for cache assertions
	detailHits  int
	listHits    int
	reviewHits  int
	bookingHits int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:    map[string]domain.User{},
		listings: map[string]domain.Listing{},
		bookings: map[string]domain.Booking{},
		reviews:  map[string]domain.Review{},
	}
}

func (f *fakeRepo) CreateUser(ctx context.Context, u domain.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepo) GetUser(ctx context.Context, id string) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) DeleteUser(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeRepo) CreateListing(ctx context.Context, l domain.Listing) error {
	f.listings[l.ID] = l
	return nil
}

func (f *fakeRepo) UpdateListing(ctx context.Context, l domain.Listing) error {
	if _, ok := f.listings[l.ID]; !ok {
		return domain.ErrNotFound
	}
	f.listings[l.ID] = l
	return nil
}

func (f *fakeRepo) DeleteListing(ctx context.Context, id string) error {
	if _, ok := f.listings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.listings, id)
	return nil
}

func (f *fakeRepo) GetListing(ctx context.Context, id string) (domain.Listing, error) {
	l, ok := f.listings[id]
	if !ok {
		return domain.Listing{}, domain.ErrNotFound
	}
	return l, nil
}

func (f *fakeRepo) GetListingDetail(ctx context.Context, id string) (domain.ListingView, error) {
	f.detailHits++
	if f.detail.ListingID == "" {
		return domain.ListingView{}, domain.ErrNotFound
	}
	return f.detail, nil
}

func (f *fakeRepo) ListListings(ctx context.Context, limit int) ([]domain.ListingSummary, error) {
	f.listHits++
	return f.summaries, nil
}

func (f *fakeRepo) CreateBooking(ctx context.Context, b domain.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeRepo) UpdateBooking(ctx context.Context, b domain.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return domain.ErrNotFound
	}
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeRepo) DeleteBooking(ctx context.Context, id string) error {
	if _, ok := f.bookings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeRepo) GetBooking(ctx context.Context, id string) (domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, nil
}

func (f *fakeRepo) GetBookingDetail(ctx context.Context, id string) (domain.BookingView, error) {
	f.bookingHits++
	return f.bookingView, nil
}

func (f *fakeRepo) ListBookings(ctx context.Context, limit int) ([]domain.BookingView, error) {
	return nil, nil
}

func (f *fakeRepo) CreateReview(ctx context.Context, rv domain.Review) error {
	for _, existing := range f.reviews {
		if existing.ListingID == rv.ListingID && existing.UserID == rv.UserID {
			return domain.ErrConflict
		}
	}
	f.reviews[rv.ID] = rv
	return nil
}

func (f *fakeRepo) DeleteReview(ctx context.Context, id string) error {
	if _, ok := f.reviews[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeRepo) GetReview(ctx context.Context, id string) (domain.Review, error) {
	rv, ok := f.reviews[id]
	if !ok {
		return domain.Review{}, domain.ErrNotFound
	}
	return rv, nil
}

func (f *fakeRepo) ListReviews(ctx context.Context, listingID string, limit int) ([]domain.ReviewView, error) {
	f.reviewHits++
	return f.reviewList, nil
}

func (f *fakeRepo) WipeSampleData(ctx context.Context, prefix string) error {
	f.listings = map[string]domain.Listing{}
	f.bookings = map[string]domain.Booking{}
	f.reviews = map[string]domain.Review{}
	return nil
}

// ---- JSON-backed cache fake (type-agnostic, mirrors the redis adapter) ----

type fakeCache struct {
	store map[string][]byte
	dels  []string
}

func newFakeCache() *fakeCache { return &fakeCache{store: map[string][]byte{}} }

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

func (c *fakeCache) deleted(key string) bool {
	for _, k := range c.dels {
		if k == key {
			return true
		}
	}
	return false
}
