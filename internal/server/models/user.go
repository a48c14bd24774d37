// Package models holds the persistent entities and the value types exchanged
// between repositories, services and the HTTP layer.
package models

import "time"

// User is an account that owns coaching sessions. Users are created once and
// never updated or deleted.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
