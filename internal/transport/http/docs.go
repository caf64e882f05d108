// Package classification of Storefront API
//
// # Documentation for Storefront API
//
// Schemes: http
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// swagger:meta
package http

import "github.com/kahvecikaan/storefront/internal/domain"

// ProductsPageBody is one page of the catalog plus the navigation state for it
//
// swagger:model
type ProductsPageBody struct {
	// the enriched products on this page
	Products []domain.ExtendedProduct `json:"products"`

	// total number of products in the catalog
	Total int `json:"total"`

	// offset of the first product on this page
	Skip int `json:"skip"`

	// page size requested from the catalog
	Limit int `json:"limit"`

	// the current page, starting at 1
	Page int `json:"page"`

	// number of pages in the catalog
	TotalPages int `json:"totalPages"`

	// page numbers to show as navigation buttons
	Pages []int `json:"pages"`

	// currency the prices are shown in
	Currency string `json:"currency"`
}

// PageWindowBody lists the page buttons around the current page
//
// swagger:model
type PageWindowBody struct {
	Current int   `json:"current"`
	Total   int   `json:"total"`
	Pages   []int `json:"pages"`
}

// Generic error with an HTTP status code
// swagger:response errorResponse
type errorResponseWrapper struct {
	// in: body
	Body struct {
		Code    int32  `json:"code"`
		Message string `json:"message"`
	}
}

// A page of products
// swagger:response productsPageResponse
type productsPageResponseWrapper struct {
	// in: body
	Body ProductsPageBody
}

// A single product with reviews
// swagger:response productResponse
type productResponseWrapper struct {
	// in: body
	Body domain.ExtendedProduct
}

// A list of currency codes
// swagger:response currenciesResponse
type currenciesResponseWrapper struct {
	// in: body
	Body []string
}

// Visible page numbers
// swagger:response pageWindowResponse
type pageWindowResponseWrapper struct {
	// in: body
	Body PageWindowBody
}

// swagger:parameters listProducts
type pageParamsWrapper struct {
	// Page number, starting at 1
	// in: query
	// minimum: 1
	Page int `json:"page"`

	// Display currency, for example EUR
	// in: query
	Currency string `json:"currency"`
}

// swagger:parameters getProduct
type productIDParamsWrapper struct {
	// The ID of the product
	// in: path
	// required: true
	ID int `json:"id"`

	// Display currency
	// in: query
	Currency string `json:"currency"`
}
