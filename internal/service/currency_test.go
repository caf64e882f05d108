package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticRates map[string]float64

func (r staticRates) GetRate(base, dest string) (float64, error) {
	br, ok := r[base]
	if !ok {
		return 0, fmt.Errorf("rate not found for currency %s", base)
	}
	dr, ok := r[dest]
	if !ok {
		return 0, fmt.Errorf("rate not found for currency %s", dest)
	}
	return dr / br, nil
}

func (r staticRates) Currencies() []string {
	return []string{"EUR", "GBP", "USD"}
}

func TestCurrencyService(t *testing.T) {
	ctx := context.Background()
	cs := NewCurrencyService(hclog.NewNullLogger(), staticRates{"EUR": 1, "USD": 1.25, "GBP": 0.5})

	rate, err := cs.GetRate(ctx, "USD", "GBP")
	require.NoError(t, err)
	assert.InDelta(t, 0.4, rate, 1e-9)

	rate, err = cs.GetRate(ctx, "USD", "")
	require.NoError(t, err)
	assert.Equal(t, 1.0, rate)

	_, err = cs.GetRate(ctx, "USD", "XYZ")
	assert.True(t, errors.Is(err, domain.ErrInvalidCurrency))

	currencies, err := cs.ListAvailableCurrencies(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"EUR", "GBP", "USD"}, currencies)
}

func TestCurrencyServiceWithoutRates(t *testing.T) {
	ctx := context.Background()
	cs := NewCurrencyService(hclog.NewNullLogger(), nil)

	rate, err := cs.GetRate(ctx, "USD", "USD")
	require.NoError(t, err)
	assert.Equal(t, 1.0, rate)

	_, err = cs.GetRate(ctx, "USD", "EUR")
	assert.True(t, errors.Is(err, domain.ErrInvalidCurrency))

	currencies, _ := cs.ListAvailableCurrencies(ctx)
	assert.Equal(t, []string{"USD"}, currencies)
}
