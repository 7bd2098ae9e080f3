// Package seed populates the store with randomized sample data for
// development. Every entity goes through the same command service as the
// API, so seeded rows satisfy the same invariants.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"alx_travel/internal/app"
	"alx_travel/internal/domain"
)

// UsernamePrefix marks seeded users so --clean can remove them without
// touching anyone else.
const UsernamePrefix = "user_"

type Counts struct {
	Users    int
	Listings int
	Bookings int
	Reviews  int
}

type Seeder struct {
	cmds    *app.CommandService
	repo    domain.Repository
	workers int
	limiter *rate.Limiter
	rng     *rand.Rand
}

func New(cmds *app.CommandService, repo domain.Repository, workers, writesPerSec int) *Seeder {
	if workers <= 0 {
		workers = 8
	}
	if writesPerSec <= 0 {
		writesPerSec = 50
	}
	return &Seeder{
		cmds:    cmds,
		repo:    repo,
		workers: workers,
		limiter: rate.NewLimiter(rate.Limit(writesPerSec), writesPerSec),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Seeder) Run(ctx context.Context, n Counts, clean bool) error {
	if clean {
		log.Info().Msg("cleaning existing sample data")
		if err := s.repo.WipeSampleData(ctx, UsernamePrefix); err != nil {
			return fmt.Errorf("wipe sample data: %w", err)
		}
	}

	users, err := s.createUsers(ctx, n.Users)
	if err != nil {
		return err
	}
	log.Info().Int("count", len(users)).Msg("users created")

	listings, err := s.createListings(ctx, users, n.Listings)
	if err != nil {
		return err
	}
	log.Info().Int("count", len(listings)).Msg("listings created")

	created := s.createBookings(ctx, users, listings, n.Bookings)
	log.Info().Int("count", created).Msg("bookings created")

	reviews := s.createReviews(ctx, users, listings, n.Reviews)
	log.Info().Int("count", reviews).Msg("reviews created")

	return nil
}

func (s *Seeder) createUsers(ctx context.Context, count int) ([]domain.User, error) {
	users := make([]domain.User, 0, count)
	for i := 0; i < count; i++ {
		username := fmt.Sprintf("%s%03d", UsernamePrefix, i+1)
		u, err := s.cmds.CreateUser(ctx, app.UserInput{
			Username:  username,
			Email:     username + "@example.com",
			FirstName: pick(s.rng, firstNames),
			LastName:  pick(s.rng, lastNames),
		})
		if err != nil {
			return nil, fmt.Errorf("create user %s: %w", username, err)
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *Seeder) createListings(ctx context.Context, users []domain.User, count int) ([]domain.Listing, error) {
	listings := make([]domain.Listing, 0, count)
	for i := 0; i < count; i++ {
		propertyType := pick(s.rng, propertyTypes)
		city := pick(s.rng, cities)
		l, err := s.cmds.CreateListing(ctx, app.ListingInput{
			Title:    propertyType + " in " + city,
			Description: fmt.Sprintf(
				"Beautiful %s located in the heart of %s. Perfect for travelers looking for comfort and convenience.",
				strings.ToLower(propertyType), city),
			Location:          city,
			PricePerNight:     float64(50 + s.rng.Intn(451)),
			NumberOfBedrooms:  1 + s.rng.Intn(4),
			NumberOfBathrooms: 1 + s.rng.Intn(3),
			MaxGuestCount:     1 + s.rng.Intn(8),
			HostID:            pick(s.rng, users).ID,
			IsAvailable:       s.rng.Intn(4) != 0, // 75% available
			Amenities:         strings.Join(pick(s.rng, amenitySets), ", "),
		})
		if err != nil {
			return nil, fmt.Errorf("create listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// Bookings are independent of each other, so their writes fan out under a
// semaphore; parameters are drawn serially because the rng isn't safe for
// concurrent use.
func (s *Seeder) createBookings(ctx context.Context, users []domain.User, listings []domain.Listing, count int) int {
	sem := semaphore.NewWeighted(int64(s.workers))
	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0

	for i := 0; i < count; i++ {
		listing := pick(s.rng, listings)
		guest, ok := pickGuest(s.rng, users, listing.HostID)
		if !ok {
			continue
		}
		checkIn := time.Now().AddDate(0, 0, s.rng.Intn(91)-30)
		duration := 1 + s.rng.Intn(14)
		checkOut := checkIn.AddDate(0, 0, duration)
		guests := 1 + s.rng.Intn(min(listing.MaxGuestCount, 6))
		in := app.BookingInput{
			ListingID:       listing.ID,
			UserID:          guest.ID,
			CheckInDate:     checkIn,
			CheckOutDate:    checkOut,
			NumberOfGuests:  guests,
			TotalPrice:      listing.PricePerNight * float64(duration),
			Status:          pick(s.rng, statuses),
			SpecialRequests: pick(s.rng, specialRequests),
		}

		if err := sem.Acquire(ctx, 1); err != nil {
			log.Warn().Err(err).Msg("semaphore acquire failed")
			break
		}
		wg.Add(1)
		go func(in app.BookingInput) {
			defer wg.Done()
			defer sem.Release(1)
			if err := s.limiter.Wait(ctx); err != nil {
				return
			}
			if _, err := s.cmds.CreateBooking(ctx, in); err != nil {
				log.Warn().Err(err).Str("listing", in.ListingID).Msg("seed booking failed")
				return
			}
			mu.Lock()
			created++
			mu.Unlock()
		}(in)
	}
	wg.Wait()
	return created
}

// Reviews stay serial: the (user, listing) pair set must be consulted
// before each insert.
func (s *Seeder) createReviews(ctx context.Context, users []domain.User, listings []domain.Listing, count int) int {
	seen := make(map[string]struct{})
	created := 0
	for i := 0; i < count; i++ {
		var listing domain.Listing
		var guest domain.User
		found := false
		for attempts := 0; attempts < 50; attempts++ {
			listing = pick(s.rng, listings)
			g, ok := pickGuest(s.rng, users, listing.HostID)
			if !ok {
				continue
			}
			key := g.ID + ":" + listing.ID
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			guest = g
			found = true
			break
		}
		if !found {
			continue
		}
		if err := s.limiter.Wait(ctx); err != nil {
			break
		}
		_, err := s.cmds.CreateReview(ctx, app.ReviewInput{
			ListingID: listing.ID,
			UserID:    guest.ID,
			Rating:    3 + s.rng.Intn(3), // mostly good ratings
			Comment:   pick(s.rng, reviewComments),
		})
		if err != nil {
			log.Warn().Err(err).Str("listing", listing.ID).Msg("seed review failed")
			continue
		}
		created++
	}
	return created
}

func pick[T any](rng *rand.Rand, xs []T) T { return xs[rng.Intn(len(xs))] }

// pickGuest returns a user other than the listing's host.
func pickGuest(rng *rand.Rand, users []domain.User, hostID string) (domain.User, bool) {
	candidates := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.ID != hostID {
			candidates = append(candidates, u)
		}
	}
	if len(candidates) == 0 {
		return domain.User{}, false
	}
	return pick(rng, candidates), true
}
