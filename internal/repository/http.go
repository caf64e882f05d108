package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/storefront/internal/domain"
)

// DefaultCatalogURL is the public catalog the storefront browses by default
const DefaultCatalogURL = "https://dummyjson.com"

type httpCatalogSource struct {
	baseURL string
	client  *http.Client
	logger  hclog.Logger
}

// NewHTTPCatalogSource reads products from a REST catalog at baseURL.
// Calls are not retried; timeouts are whatever client enforces.
func NewHTTPCatalogSource(baseURL string, client *http.Client, logger hclog.Logger) CatalogSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpCatalogSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

func (s *httpCatalogSource) List(ctx context.Context, limit, skip int) (*domain.ProductsResponse, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("skip", strconv.Itoa(skip))
	u := s.baseURL + "/products?" + q.Encode()

	var resp domain.ProductsResponse
	if err := s.getJSON(ctx, "list products", u, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (s *httpCatalogSource) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	u := fmt.Sprintf("%s/products/%d", s.baseURL, id)

	var product domain.Product
	if err := s.getJSON(ctx, fmt.Sprintf("get product %d", id), u, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *httpCatalogSource) getJSON(ctx context.Context, op, u string, v any) error {
	s.logger.Debug("Fetching from catalog", "op", op, "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &domain.FetchError{Op: op, URL: u, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return &domain.FetchError{Op: op, URL: u, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		io.Copy(io.Discard, res.Body)
		return &domain.FetchError{Op: op, URL: u, StatusCode: res.StatusCode}
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return &domain.FetchError{Op: op, URL: u, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}
