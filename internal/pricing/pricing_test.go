package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDiscountedPrice(t *testing.T) {
	testCases := []struct {
		name     string
		price    float64
		discount float64
		want     string
	}{
		{"no discount", 9.99, 0, "9.99"},
		{"full discount", 9.99, 100, "0"},
		{"ten percent", 100, 10, "90"},
		{"fractional discount", 549, 12.96, "477.8496"},
		{"free product", 0, 50, "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DiscountedPrice(tc.price, tc.discount)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s", got)
		})
	}
}

func TestDiscountedPriceNeverExceedsPrice(t *testing.T) {
	prices := []float64{0, 0.01, 1, 9.99, 19.5, 1249.99}
	for _, p := range prices {
		price := decimal.NewFromFloat(p)
		for d := 0.0; d <= 100; d += 2.5 {
			got := DiscountedPrice(p, d)
			assert.True(t, got.LessThanOrEqual(price), "price %v discount %v got %s", p, d, got)
			assert.False(t, got.IsNegative())
		}
		assert.True(t, DiscountedPrice(p, 0).Equal(price))
		assert.True(t, DiscountedPrice(p, 100).IsZero())
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$9.99", FormatPrice(decimal.RequireFromString("9.99")))
	assert.Equal(t, "$477.85", FormatPrice(DiscountedPrice(549, 12.96)))
	assert.Equal(t, "$0.00", FormatPrice(decimal.Zero))
	assert.Equal(t, "$10.00", FormatPrice(decimal.NewFromInt(10)))
}

func TestFormatPriceIn(t *testing.T) {
	amount := decimal.RequireFromString("3.456")

	assert.Equal(t, "€3.46", FormatPriceIn(amount, "EUR"))
	assert.Equal(t, "£3.46", FormatPriceIn(amount, "gbp"))
	assert.Equal(t, "$3.46", FormatPriceIn(amount, ""))
	assert.Equal(t, "SEK 3.46", FormatPriceIn(amount, "SEK"))
}

func TestConvert(t *testing.T) {
	got := Convert(decimal.NewFromInt(10), 0.5)
	assert.True(t, got.Equal(decimal.NewFromInt(5)))
}

func TestDiscountLabel(t *testing.T) {
	assert.Equal(t, "", DiscountLabel(0))
	assert.Equal(t, "15% OFF", DiscountLabel(15.2))
	assert.Equal(t, "13% OFF", DiscountLabel(12.96))
}
