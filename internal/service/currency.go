package service

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/storefront/internal/domain"
	"github.com/kahvecikaan/storefront/internal/pricing"
)

// RateTable is implemented by *rates.ExchangeRates
type RateTable interface {
	GetRate(base, dest string) (float64, error)
	Currencies() []string
}

type CurrencyService interface {
	GetRate(ctx context.Context, base, destination string) (float64, error)
	ListAvailableCurrencies(ctx context.Context) ([]string, error)
}

type currencyService struct {
	log   hclog.Logger
	rates RateTable
}

// NewCurrencyService converts prices using rates. A nil table disables
// conversion; only the base currency is offered then.
func NewCurrencyService(logger hclog.Logger, rates RateTable) CurrencyService {
	return &currencyService{log: logger, rates: rates}
}

func (s *currencyService) GetRate(ctx context.Context, base, destination string) (float64, error) {
	s.log.Debug("Getting exchange rate", "base", base, "destination", destination)

	if destination == "" || destination == base {
		return 1, nil
	}
	if s.rates == nil {
		return 0, fmt.Errorf("%w: %s (conversion disabled)", domain.ErrInvalidCurrency, destination)
	}

	rate, err := s.rates.GetRate(base, destination)
	if err != nil {
		s.log.Error("Error getting exchange rate", "base", base, "destination", destination, "error", err)
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidCurrency, destination)
	}

	return rate, nil
}

func (s *currencyService) ListAvailableCurrencies(ctx context.Context) ([]string, error) {
	s.log.Debug("Listing available currencies")

	if s.rates == nil {
		return []string{pricing.BaseCurrency}, nil
	}
	return s.rates.Currencies(), nil
}
