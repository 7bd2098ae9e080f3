package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"alx_travel/internal/domain"
)

// MySQL error numbers we translate into the domain taxonomy.
const (
	erDupEntry        = 1062
	erNoReferencedRow = 1452
	erCheckViolated   = 3819
)

// mapWriteErr turns driver errors into domain errors: duplicate keys become
// ErrConflict, FK misses ErrNotFound, CHECK violations ErrIntegrity.
func mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case erDupEntry:
			return fmt.Errorf("%w: %s", domain.ErrConflict, me.Message)
		case erNoReferencedRow:
			return fmt.Errorf("%w: referenced entity missing", domain.ErrNotFound)
		case erCheckViolated:
			return fmt.Errorf("%w: %s", domain.ErrIntegrity, me.Message)
		}
	}
	return err
}

// Reviews embedded in the listing detail view are capped; nothing in the
// UI pages past this.
const detailReviewLimit = 500

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func ts(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// ---------------- users ----------------

func (r *Repo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, insertUserSQL, u.ID, u.Username, u.Email, u.FirstName, u.LastName)
	return mapWriteErr(err)
}

func (r *Repo) GetUser(ctx context.Context, id string) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, getUserSQL, id).
		Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return domain.User{}, domain.ErrNotFound
	}
	return u, err
}

func (r *Repo) DeleteUser(ctx context.Context, id string) error {
	return r.execExpectingRow(ctx, deleteUserSQL, id)
}

// ---------------- listings ----------------

func (r *Repo) CreateListing(ctx context.Context, l domain.Listing) error {
	_, err := r.db.ExecContext(ctx, insertListingSQL,
		l.ID, l.Title, l.Description, l.Location, l.PricePerNight,
		l.NumberOfBedrooms, l.NumberOfBathrooms, l.MaxGuestCount,
		l.HostID, l.IsAvailable, l.Amenities,
	)
	return mapWriteErr(err)
}

func (r *Repo) UpdateListing(ctx context.Context, l domain.Listing) error {
	_, err := r.db.ExecContext(ctx, updateListingSQL,
		l.Title, l.Description, l.Location, l.PricePerNight,
		l.NumberOfBedrooms, l.NumberOfBathrooms, l.MaxGuestCount,
		l.IsAvailable, l.Amenities,
		l.ID,
	)
	return mapWriteErr(err)
}

func (r *Repo) DeleteListing(ctx context.Context, id string) error {
	return r.execExpectingRow(ctx, deleteListingSQL, id)
}

func (r *Repo) GetListing(ctx context.Context, id string) (domain.Listing, error) {
	var l domain.Listing
	err := r.db.QueryRowContext(ctx, getListingSQL, id).Scan(
		&l.ID, &l.Title, &l.Description, &l.Location, &l.PricePerNight,
		&l.NumberOfBedrooms, &l.NumberOfBathrooms, &l.MaxGuestCount,
		&l.HostID, &l.IsAvailable, &l.Amenities, &l.CreatedAt, &l.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return domain.Listing{}, domain.ErrNotFound
	}
	return l, err
}

func (r *Repo) GetListingDetail(ctx context.Context, id string) (domain.ListingView, error) {
	var (
		lv                   domain.ListingView
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRowContext(ctx, getListingDetailSQL, id).Scan(
		&lv.ListingID, &lv.Title, &lv.Description, &lv.Location, &lv.PricePerNight,
		&lv.NumberOfBedrooms, &lv.NumberOfBathrooms, &lv.MaxGuestCount,
		&lv.IsAvailable, &lv.Amenities, &createdAt, &updatedAt,
		&lv.Host.ID, &lv.Host.Username, &lv.Host.FirstName, &lv.Host.LastName, &lv.Host.Email,
	)
	if err == sql.ErrNoRows {
		return domain.ListingView{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.ListingView{}, err
	}
	lv.CreatedAt = ts(createdAt)
	lv.UpdatedAt = ts(updatedAt)
	lv.AmenitiesList = domain.AmenitiesList(lv.Amenities)

	reviews, err := r.ListReviews(ctx, id, detailReviewLimit)
	if err != nil {
		return domain.ListingView{}, err
	}
	lv.Reviews = reviews

	// Derived, per read. AverageRating wants domain.Review values.
	rs := make([]domain.Review, len(reviews))
	for i, rv := range reviews {
		rs[i] = domain.Review{Rating: rv.Rating}
	}
	lv.AverageRating = domain.AverageRating(rs)
	return lv, nil
}

func (r *Repo) ListListings(ctx context.Context, limit int) ([]domain.ListingSummary, error) {
	rows, err := r.db.QueryContext(ctx, listListingsSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ListingSummary, 0)
	for rows.Next() {
		var (
			s         domain.ListingSummary
			amenities string
			createdAt time.Time
		)
		if err := rows.Scan(
			&s.ListingID, &s.Title, &s.Description, &s.Location, &s.PricePerNight,
			&s.NumberOfBedrooms, &s.NumberOfBathrooms, &s.MaxGuestCount,
			&s.IsAvailable, &amenities, &createdAt,
			&s.Host.ID, &s.Host.Username, &s.Host.FirstName, &s.Host.LastName, &s.Host.Email,
			&s.AverageRating, &s.ReviewCount,
		); err != nil {
			return nil, err
		}
		s.AmenitiesList = domain.AmenitiesList(amenities)
		s.CreatedAt = ts(createdAt)
		out = append(out, s)
	}
	return out, rows.Err()
}

// ---------------- bookings ----------------

func (r *Repo) CreateBooking(ctx context.Context, b domain.Booking) error {
	_, err := r.db.ExecContext(ctx, insertBookingSQL,
		b.ID, b.ListingID, b.UserID,
		b.CheckInDate.Format(domain.DateLayout), b.CheckOutDate.Format(domain.DateLayout),
		b.NumberOfGuests, b.TotalPrice, string(b.Status), b.SpecialRequests,
	)
	return mapWriteErr(err)
}

func (r *Repo) UpdateBooking(ctx context.Context, b domain.Booking) error {
	_, err := r.db.ExecContext(ctx, updateBookingSQL,
		b.CheckInDate.Format(domain.DateLayout), b.CheckOutDate.Format(domain.DateLayout),
		b.NumberOfGuests, b.TotalPrice, string(b.Status), b.SpecialRequests,
		b.ID,
	)
	return mapWriteErr(err)
}

func (r *Repo) DeleteBooking(ctx context.Context, id string) error {
	return r.execExpectingRow(ctx, deleteBookingSQL, id)
}

func (r *Repo) GetBooking(ctx context.Context, id string) (domain.Booking, error) {
	var (
		b      domain.Booking
		status string
	)
	err := r.db.QueryRowContext(ctx, getBookingSQL, id).Scan(
		&b.ID, &b.ListingID, &b.UserID, &b.CheckInDate, &b.CheckOutDate,
		&b.NumberOfGuests, &b.TotalPrice, &status, &b.SpecialRequests,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return domain.Booking{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Booking{}, err
	}
	b.Status = domain.BookingStatus(status)
	return b, nil
}

func (r *Repo) GetBookingDetail(ctx context.Context, id string) (domain.BookingView, error) {
	row := r.db.QueryRowContext(ctx, getBookingDetailSQL, id)
	bv, err := scanBookingView(row)
	if err == sql.ErrNoRows {
		return domain.BookingView{}, domain.ErrNotFound
	}
	return bv, err
}

func (r *Repo) ListBookings(ctx context.Context, limit int) ([]domain.BookingView, error) {
	rows, err := r.db.QueryContext(ctx, listBookingsSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.BookingView, 0)
	for rows.Next() {
		bv, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, bv)
	}
	return out, rows.Err()
}

type rowScanner interface{ Scan(dest ...any) error }

func scanBookingView(row rowScanner) (domain.BookingView, error) {
	var (
		bv                   domain.BookingView
		checkIn, checkOut    time.Time
		createdAt, updatedAt time.Time
		status               string
		amenities            string
		listingCreated       time.Time
	)
	err := row.Scan(
		&bv.BookingID, &checkIn, &checkOut, &bv.NumberOfGuests,
		&bv.TotalPrice, &status, &bv.SpecialRequests, &createdAt, &updatedAt,
		&bv.Listing.ListingID, &bv.Listing.Title, &bv.Listing.Description,
		&bv.Listing.Location, &bv.Listing.PricePerNight,
		&bv.Listing.NumberOfBedrooms, &bv.Listing.NumberOfBathrooms,
		&bv.Listing.MaxGuestCount, &bv.Listing.IsAvailable, &amenities, &listingCreated,
		&bv.Listing.Host.ID, &bv.Listing.Host.Username, &bv.Listing.Host.FirstName,
		&bv.Listing.Host.LastName, &bv.Listing.Host.Email,
		&bv.User.ID, &bv.User.Username, &bv.User.FirstName, &bv.User.LastName, &bv.User.Email,
		&bv.Listing.AverageRating, &bv.Listing.ReviewCount,
	)
	if err != nil {
		return domain.BookingView{}, err
	}
	bv.CheckInDate = checkIn.Format(domain.DateLayout)
	bv.CheckOutDate = checkOut.Format(domain.DateLayout)
	bv.Status = domain.BookingStatus(status)
	bv.DurationDays = domain.DurationDays(checkIn, checkOut)
	bv.CreatedAt = ts(createdAt)
	bv.UpdatedAt = ts(updatedAt)
	bv.Listing.AmenitiesList = domain.AmenitiesList(amenities)
	bv.Listing.CreatedAt = ts(listingCreated)
	return bv, nil
}

// ---------------- reviews ----------------

func (r *Repo) CreateReview(ctx context.Context, rv domain.Review) error {
	_, err := r.db.ExecContext(ctx, insertReviewSQL, rv.ID, rv.ListingID, rv.UserID, rv.Rating, rv.Comment)
	return mapWriteErr(err)
}

func (r *Repo) DeleteReview(ctx context.Context, id string) error {
	return r.execExpectingRow(ctx, deleteReviewSQL, id)
}

func (r *Repo) GetReview(ctx context.Context, id string) (domain.Review, error) {
	var rv domain.Review
	err := r.db.QueryRowContext(ctx, getReviewSQL, id).Scan(
		&rv.ID, &rv.ListingID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return domain.Review{}, domain.ErrNotFound
	}
	return rv, err
}

func (r *Repo) ListReviews(ctx context.Context, listingID string, limit int) ([]domain.ReviewView, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsSQL, listingID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ReviewView, 0)
	for rows.Next() {
		var (
			rv                   domain.ReviewView
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(
			&rv.ReviewID, &rv.ListingID, &rv.Rating, &rv.Comment, &createdAt, &updatedAt,
			&rv.User.ID, &rv.User.Username, &rv.User.FirstName, &rv.User.LastName, &rv.User.Email,
		); err != nil {
			return nil, err
		}
		rv.CreatedAt = ts(createdAt)
		rv.UpdatedAt = ts(updatedAt)
		out = append(out, rv)
	}
	return out, rows.Err()
}

// ---------------- seeding support ----------------

func (r *Repo) WipeSampleData(ctx context.Context, prefix string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range []string{`DELETE FROM reviews`, `DELETE FROM bookings`, `DELETE FROM listings`} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, wipeSeedUsersSQL, prefix); err != nil {
		return err
	}
	return tx.Commit()
}

// execExpectingRow runs a single-row delete and maps "nothing deleted"
// to ErrNotFound.
func (r *Repo) execExpectingRow(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
