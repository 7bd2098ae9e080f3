package domain

import "time"

type Review struct {
	ID        string
	ListingID string
	UserID    string
	Rating    int // 1..5
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
