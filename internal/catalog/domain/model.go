package domain

import (
	"errors"
	"time"
)

// GuestUserID is applied once at the service boundary when a request
// carries no user id. There are no accounts; every anonymous caller
// shares this id.
const GuestUserID = "guest"

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// Project is a catalog entry. The id is server-generated, immutable
// and never reused after deletion.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"-"`
}

// CartItem links a user id to a saved project. Project is populated on
// reads and stays nil when the referenced project has been deleted;
// deleting a project does not remove its cart rows.
type CartItem struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	Project   *Project  `json:"project"`
}
