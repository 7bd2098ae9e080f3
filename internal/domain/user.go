package domain

import "time"

// User is the minimal identity record kept for foreign keys and nested
// read views; identity management itself lives outside this service.
type User struct {
	ID        string
	Username  string
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
}
