package domain

import "time"

// Listing is a property record owned by exactly one lister.
// Listings are created via submission and mutated by their owner; they are
// never deleted.
type Listing struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Size        int       `json:"size"`
	Area        string    `json:"area"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	Images      []string  `json:"images"`
	Features    []string  `json:"features"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created"`
	UpdatedAt   time.Time `json:"updated"`
}

type CreateListingRequest struct {
	Title       string   `json:"title" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Size        int      `json:"size" validate:"gte=0"`
	Area        string   `json:"area" validate:"required"`
	Bedrooms    int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms   int      `json:"bathrooms" validate:"gte=0"`
	Images      []string `json:"images"`
	Features    []string `json:"features"`
	Description string   `json:"description"`
}

type UpdateListingRequest struct {
	Title       *string   `json:"title"`
	Price       *float64  `json:"price" validate:"omitempty,gt=0"`
	Size        *int      `json:"size"`
	Area        *string   `json:"area"`
	Bedrooms    *int      `json:"bedrooms"`
	Bathrooms   *int      `json:"bathrooms"`
	Images      *[]string `json:"images"`
	Features    *[]string `json:"features"`
	Description *string   `json:"description"`
}
