package http

import (
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/kahvecikaan/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailProduct() domain.ExtendedProduct {
	return domain.ExtendedProduct{
		Product: domain.Product{
			ID:                 3,
			Title:              "Chair",
			Price:              200,
			DiscountPercentage: 15,
			Rating:             3.76,
			Stock:              4,
			Thumbnail:          "https://cdn.example.com/3/t.png",
			Images:             []string{"https://cdn.example.com/3/1.png", "https://cdn.example.com/3/2.png"},
		},
		AvailabilityStatus:   "Low Stock",
		MinimumOrderQuantity: 2,
		Reviews: []domain.ProductReview{
			{ID: 1, Username: "Emily S.", Rating: 4, Comment: "Would buy again!",
				Date: strfmt.Date(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))},
		},
	}
}

func TestNewCardView(t *testing.T) {
	cv := newCardView(detailProduct(), "USD", 1)

	assert.Equal(t, "$170.00", cv.Price)
	assert.Equal(t, "$200.00", cv.OriginalPrice)
	assert.Equal(t, "15% OFF", cv.Discount)
	assert.Equal(t, "3.8", cv.Rating)
	assert.Equal(t, []bool{true, true, true, false, false}, cv.Stars)
	assert.Equal(t, "/products/3", cv.URL)
}

func TestNewCardViewConverted(t *testing.T) {
	p := detailProduct()
	p.DiscountPercentage = 0

	cv := newCardView(p, "EUR", 0.5)
	assert.Equal(t, "€100.00", cv.Price)
	assert.Empty(t, cv.OriginalPrice)
	assert.Empty(t, cv.Discount)
	assert.Equal(t, "/products/3?currency=EUR", cv.URL)
}

func TestNewDetailView(t *testing.T) {
	p := detailProduct()

	dv := newDetailView(p, "USD", 1, "")
	assert.Equal(t, p.Thumbnail, dv.SelectedImage)
	require.Len(t, dv.Images, 2)
	assert.False(t, dv.Images[0].Selected)
	require.Len(t, dv.Reviews, 1)
	assert.Equal(t, "2024-02-01", dv.Reviews[0].Date)

	dv = newDetailView(p, "USD", 1, p.Images[1])
	assert.Equal(t, p.Images[1], dv.SelectedImage)
	assert.True(t, dv.Images[1].Selected)

	dv = newDetailView(p, "USD", 1, "https://evil.example.com/x.png")
	assert.Equal(t, p.Thumbnail, dv.SelectedImage)
}

func TestNewPagerView(t *testing.T) {
	pv := newPagerView(1, 3, []int{1, 2, 3}, "USD")

	assert.Empty(t, pv.PrevURL)
	assert.Equal(t, "/products?page=2", pv.NextURL)
	require.Len(t, pv.Links, 3)
	assert.True(t, pv.Links[0].Current)

	pv = newPagerView(3, 3, []int{1, 2, 3}, "GBP")
	assert.Equal(t, "/products?currency=GBP&page=2", pv.PrevURL)
	assert.Empty(t, pv.NextURL)
}
