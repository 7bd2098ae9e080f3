package domain

import (
	"strings"
	"time"
)

// AverageRating is the arithmetic mean of review ratings, or 0 when there
// are none. Recomputed on every read, never stored.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// DurationDays is the booking length in whole days.
func DurationDays(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// AmenitiesList splits the stored comma-delimited amenities string into
// trimmed tokens. An empty string yields an empty (non-nil) list.
func AmenitiesList(amenities string) []string {
	if strings.TrimSpace(amenities) == "" {
		return []string{}
	}
	parts := strings.Split(amenities, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
