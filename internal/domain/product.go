package domain

import "github.com/go-openapi/strfmt"

// Product represents a catalog record as served by the remote catalog API
//
// swagger:model
type Product struct {
	// The ID of the product
	//
	// required: true
	// min: 1
	// example: 1
	ID int `json:"id"`

	// The title of the product
	//
	// required: true
	// example: Essence Mascara Lash Princess
	Title string `json:"title"`

	// The description of the product
	//
	// required: false
	Description string `json:"description"`

	// The list price of the product
	//
	// required: true
	// min: 0
	// example: 9.99
	Price float64 `json:"price"`

	// The discount applied to the list price, in percent
	//
	// min: 0
	// max: 100
	// example: 7.17
	DiscountPercentage float64 `json:"discountPercentage"`

	// The average rating of the product
	//
	// min: 0
	// max: 5
	// example: 4.94
	Rating float64 `json:"rating"`

	// The number of units in stock
	//
	// min: 0
	// example: 5
	Stock int `json:"stock"`

	// The brand of the product
	Brand string `json:"brand"`

	// The category of the product
	Category string `json:"category"`

	// The URL of the thumbnail image
	Thumbnail string `json:"thumbnail"`

	// The URLs of the gallery images
	Images []string `json:"images"`
}

// ExtendedProduct is a Product with the display-only fields derived by enrichment
//
// swagger:model
type ExtendedProduct struct {
	Product

	// Coarse stock level classification
	//
	// enum: Out of Stock,Low Stock,In Stock,High Availability
	AvailabilityStatus string `json:"availabilityStatus"`

	// Minimum number of units per order
	//
	// min: 1
	// max: 5
	MinimumOrderQuantity int `json:"minimumOrderQuantity"`

	// Sample reviews, only present on single product fetches
	Reviews []ProductReview `json:"reviews,omitempty"`
}

// ProductReview is a sample review shown on the product detail view
//
// swagger:model
type ProductReview struct {
	// Sequential within the product's batch of reviews
	ID       int    `json:"id"`
	Username string `json:"username"`
	// min: 1
	// max: 5
	Rating  int         `json:"rating"`
	Comment string      `json:"comment"`
	Date    strfmt.Date `json:"date"`
}

// ProductsResponse is the envelope returned by the remote list endpoint
type ProductsResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// ProductsPage is a ProductsResponse whose records have been enriched
//
// swagger:model
type ProductsPage struct {
	Products []ExtendedProduct `json:"products"`
	Total    int               `json:"total"`
	Skip     int               `json:"skip"`
	Limit    int               `json:"limit"`
}
