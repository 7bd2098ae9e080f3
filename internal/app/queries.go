package app

import (
	"context"
	"time"

	"alx_travel/internal/domain"
)

// QueryService serves the read views. Listing and review reads go through
// the cache; a cold read always recomputes the derived fields from the
// store. Booking reads are uncached.
type QueryService struct {
	repo     domain.Repository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.Repository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) GetListing(ctx context.Context, id string) (domain.ListingView, error) {
	key := listingKey(id)
	var lv domain.ListingView
	if ok, _ := s.cache.Get(ctx, key, &lv); ok {
		return lv, nil
	}
	lv, err := s.repo.GetListingDetail(ctx, id)
	if err != nil {
		return domain.ListingView{}, err
	}
	_ = s.cache.Set(ctx, key, lv, int(s.cacheTTL.Seconds()))
	return lv, nil
}

func (s *QueryService) ListListings(ctx context.Context, limit int) ([]domain.ListingSummary, error) {
	canon := canonicalLimit(limit)
	key := listingsKey(canon)
	var out []domain.ListingSummary
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return clip(out, limit), nil
	}
	items, err := s.repo.ListListings(ctx, canon)
	if err != nil {
		return nil, err
	}
	// copy before caching so callers can't mutate the cached value
	cp := make([]domain.ListingSummary, len(items))
	copy(cp, items)
	_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	return clip(cp, limit), nil
}

func (s *QueryService) ListReviews(ctx context.Context, listingID string, limit int) ([]domain.ReviewView, error) {
	canon := canonicalLimit(limit)
	key := reviewsKey(listingID, canon)
	var out []domain.ReviewView
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return clip(out, limit), nil
	}
	items, err := s.repo.ListReviews(ctx, listingID, canon)
	if err != nil {
		return nil, err
	}
	cp := make([]domain.ReviewView, len(items))
	copy(cp, items)
	_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	return clip(cp, limit), nil
}

func clip[T any](xs []T, n int) []T {
	if len(xs) <= n {
		return xs
	}
	return xs[:n]
}

func (s *QueryService) GetBooking(ctx context.Context, id string) (domain.BookingView, error) {
	return s.repo.GetBookingDetail(ctx, id)
}

func (s *QueryService) ListBookings(ctx context.Context, limit int) ([]domain.BookingView, error) {
	return s.repo.ListBookings(ctx, limit)
}
