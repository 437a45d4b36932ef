package models

import "time"

// Category groups transactions. Categories are seeded by migrations.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Subcategory refines a Category.
type Subcategory struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name"`

	// CategoryName is filled when subcategories of all categories are listed.
	CategoryName *string `json:"category_name,omitempty"`
}
