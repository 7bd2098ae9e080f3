package domain

import "time"

type Listing struct {
	ID                string
	Title             string
	Description       string
	Location          string
	PricePerNight     float64
	NumberOfBedrooms  int
	NumberOfBathrooms int
	MaxGuestCount     int
	HostID            string
	IsAvailable       bool
	Amenities         string // comma-delimited, parsed at read time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
