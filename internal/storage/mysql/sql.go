package mysql

// -----------------------------------------------------------------------------
// WRITE QUERIES
// -----------------------------------------------------------------------------

const insertUserSQL = `
INSERT INTO users (id, username, email, first_name, last_name)
VALUES (?, ?, ?, ?, ?)
`

const insertListingSQL = `
INSERT INTO listings
  (id, title, description, location, price_per_night,
   number_of_bedrooms, number_of_bathrooms, max_guest_count,
   host_id, is_available, amenities)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateListingSQL = `
UPDATE listings SET
  title               = ?,
  description         = ?,
  location            = ?,
  price_per_night     = ?,
  number_of_bedrooms  = ?,
  number_of_bathrooms = ?,
  max_guest_count     = ?,
  is_available        = ?,
  amenities           = ?
WHERE id = ?
`

const insertBookingSQL = `
INSERT INTO bookings
  (id, listing_id, user_id, check_in_date, check_out_date,
   number_of_guests, total_price, status, special_requests)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateBookingSQL = `
UPDATE bookings SET
  check_in_date    = ?,
  check_out_date   = ?,
  number_of_guests = ?,
  total_price      = ?,
  status           = ?,
  special_requests = ?
WHERE id = ?
`

const insertReviewSQL = `
INSERT INTO reviews (id, listing_id, user_id, rating, comment)
VALUES (?, ?, ?, ?, ?)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const getUserSQL = `
SELECT id, username, email, first_name, last_name, created_at
FROM users
WHERE id = ?
`

const getListingSQL = `
SELECT id, title, description, location, price_per_night,
       number_of_bedrooms, number_of_bathrooms, max_guest_count,
       host_id, is_available, amenities, created_at, updated_at
FROM listings
WHERE id = ?
`

// Detail view: listing + host; reviews are loaded separately and the
// average rating is derived from them at mapping time.
const getListingDetailSQL = `
SELECT l.id, l.title, l.description, l.location, l.price_per_night,
       l.number_of_bedrooms, l.number_of_bathrooms, l.max_guest_count,
       l.is_available, l.amenities, l.created_at, l.updated_at,
       u.id, u.username, u.first_name, u.last_name, u.email
FROM listings l
JOIN users u ON u.id = l.host_id
WHERE l.id = ?
`

// List view: average rating and review count are aggregated per request,
// never stored.
const listListingsSQL = `
SELECT l.id, l.title, l.description, l.location, l.price_per_night,
       l.number_of_bedrooms, l.number_of_bathrooms, l.max_guest_count,
       l.is_available, l.amenities, l.created_at,
       u.id, u.username, u.first_name, u.last_name, u.email,
       COALESCE(AVG(r.rating), 0) AS average_rating,
       COUNT(r.id)                AS review_count
FROM listings l
JOIN users u ON u.id = l.host_id
LEFT JOIN reviews r ON r.listing_id = l.id
GROUP BY l.id, u.id
ORDER BY l.created_at DESC, l.id DESC
LIMIT ?
`

const getBookingSQL = `
SELECT id, listing_id, user_id, check_in_date, check_out_date,
       number_of_guests, total_price, status, special_requests,
       created_at, updated_at
FROM bookings
WHERE id = ?
`

const bookingViewColumns = `
  b.id, b.check_in_date, b.check_out_date, b.number_of_guests,
  b.total_price, b.status, b.special_requests, b.created_at, b.updated_at,
  l.id, l.title, l.description, l.location, l.price_per_night,
  l.number_of_bedrooms, l.number_of_bathrooms, l.max_guest_count,
  l.is_available, l.amenities, l.created_at,
  h.id, h.username, h.first_name, h.last_name, h.email,
  g.id, g.username, g.first_name, g.last_name, g.email,
  (SELECT COALESCE(AVG(r.rating), 0) FROM reviews r WHERE r.listing_id = l.id),
  (SELECT COUNT(*) FROM reviews r WHERE r.listing_id = l.id)
`

const getBookingDetailSQL = `
SELECT ` + bookingViewColumns + `
FROM bookings b
JOIN listings l ON l.id = b.listing_id
JOIN users h ON h.id = l.host_id
JOIN users g ON g.id = b.user_id
WHERE b.id = ?
`

const listBookingsSQL = `
SELECT ` + bookingViewColumns + `
FROM bookings b
JOIN listings l ON l.id = b.listing_id
JOIN users h ON h.id = l.host_id
JOIN users g ON g.id = b.user_id
ORDER BY b.created_at DESC, b.id DESC
LIMIT ?
`

const getReviewSQL = `
SELECT id, listing_id, user_id, rating, comment, created_at, updated_at
FROM reviews
WHERE id = ?
`

// Newest first; aligns with idx_reviews_created.
const listReviewsSQL = `
SELECT r.id, r.listing_id, r.rating, r.comment, r.created_at, r.updated_at,
       u.id, u.username, u.first_name, u.last_name, u.email
FROM reviews r
JOIN users u ON u.id = r.user_id
WHERE r.listing_id = ?
ORDER BY r.created_at DESC, r.id DESC
LIMIT ?
`

// -----------------------------------------------------------------------------
// DELETE QUERIES (dependents go via ON DELETE CASCADE)
// -----------------------------------------------------------------------------

const deleteUserSQL = `DELETE FROM users WHERE id = ?`

const deleteListingSQL = `DELETE FROM listings WHERE id = ?`

const deleteBookingSQL = `DELETE FROM bookings WHERE id = ?`

const deleteReviewSQL = `DELETE FROM reviews WHERE id = ?`

const wipeSeedUsersSQL = `DELETE FROM users WHERE username LIKE CONCAT(?, '%')`
