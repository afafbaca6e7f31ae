package common

import "time"

// UserResult is the outward representation of a user. The password hash
// is deliberately absent.
type UserResult struct {
	Id        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
}
