package rates

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// DefaultURL is the ECB daily reference rate feed, quoted against EUR
const DefaultURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"

type ExchangeRates struct {
	log    hclog.Logger
	url    string
	client *http.Client
	rates  map[string]float64
	mutex  sync.RWMutex
}

// NewRates creates an ExchangeRates table and loads it from url
func NewRates(ctx context.Context, logger hclog.Logger, client *http.Client, url string) (*ExchangeRates, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if url == "" {
		url = DefaultURL
	}

	er := &ExchangeRates{
		log:    logger,
		url:    url,
		client: client,
		rates:  map[string]float64{"EUR": 1.0},
	}

	if err := er.Refresh(ctx); err != nil {
		return nil, err
	}

	return er, nil
}

// GetRate returns how many units of dest one unit of base buys
func (e *ExchangeRates) GetRate(base, dest string) (float64, error) {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	br, ok := e.rates[base]
	if !ok {
		return 0, fmt.Errorf("rate not found for currency %s", base)
	}

	dr, ok := e.rates[dest]
	if !ok {
		return 0, fmt.Errorf("rate not found for currency %s", dest)
	}

	return dr / br, nil
}

// Currencies returns the known currency codes in alphabetical order
func (e *ExchangeRates) Currencies() []string {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	codes := make([]string, 0, len(e.rates))
	for code := range e.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Refresh reloads the table from the feed. The previous table is kept on failure.
func (e *ExchangeRates) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.url, nil)
	if err != nil {
		return err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		e.log.Error("Failed to fetch exchange rates", "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("expected success code 200, got %d", resp.StatusCode)
	}

	parsedCubes := &Cubes{}
	if err := xml.NewDecoder(resp.Body).Decode(parsedCubes); err != nil {
		e.log.Error("Failed to decode XML response", "error", err)
		return err
	}

	fresh := make(map[string]float64, len(parsedCubes.CubeData)+1)
	for _, cube := range parsedCubes.CubeData {
		rate, err := strconv.ParseFloat(cube.Rate, 64)
		if err != nil {
			return fmt.Errorf("invalid rate for %s: %w", cube.Currency, err)
		}
		fresh[cube.Currency] = rate
	}
	fresh["EUR"] = 1.0

	e.mutex.Lock()
	e.rates = fresh
	e.mutex.Unlock()

	e.log.Debug("Loaded exchange rates", "currencies", len(fresh))
	return nil
}

type Cubes struct {
	CubeData []Cube `xml:"Cube>Cube>Cube"`
}

type Cube struct {
	Currency string `xml:"currency,attr"`
	Rate     string `xml:"rate,attr"`
}
