package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	openapierrors "github.com/go-openapi/errors"
	"github.com/gofiber/template/html/v2"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/storefront/internal/domain"
	"github.com/kahvecikaan/storefront/internal/events"
	"github.com/kahvecikaan/storefront/internal/pagination"
	"github.com/kahvecikaan/storefront/internal/pricing"
	"github.com/kahvecikaan/storefront/internal/service"
)

type ProductHandler struct {
	catalog   service.CatalogService
	currency  service.CurrencyService
	validator *domain.Validation
	eventBus  *events.EventBus[any]
	views     *html.Engine
	logger    hclog.Logger
}

func NewProductHandler(
	cs service.CatalogService,
	cur service.CurrencyService,
	validator *domain.Validation,
	eventBus *events.EventBus[any],
	views *html.Engine,
	log hclog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog:   cs,
		currency:  cur,
		validator: validator,
		eventBus:  eventBus,
		views:     views,
		logger:    log,
	}
}

// listing is one enriched catalog page together with its navigation state
type listing struct {
	page       *domain.ProductsPage
	number     int
	totalPages int
	pages      []int
	currency   string
	rate       float64
}

// ListProducts handles GET /api/products
//
// swagger:route GET /api/products products listProducts
//
// Returns one page of enriched products.
//
// Responses:
//
//	200: productsPageResponse
//	400: errorResponse
//	404: errorResponse
//	502: errorResponse
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q, errs := h.pageQuery(r)
	if len(errs) > 0 {
		serveError(w, r, http.StatusBadRequest, strings.Join(errs.Messages(), "; "))
		return
	}

	l, err := h.loadListing(r.Context(), q)
	if err != nil {
		h.serveFailure(w, r, "Error listing products", err)
		return
	}

	products := make([]domain.ExtendedProduct, len(l.page.Products))
	for i, p := range l.page.Products {
		products[i] = convertProduct(p, l.rate)
	}

	json.NewEncoder(w).Encode(ProductsPageBody{
		Products:   products,
		Total:      l.page.Total,
		Skip:       l.page.Skip,
		Limit:      l.page.Limit,
		Page:       l.number,
		TotalPages: l.totalPages,
		Pages:      l.pages,
		Currency:   l.currency,
	})
}

// GetProduct handles GET /api/products/{id}
//
// swagger:route GET /api/products/{id} products getProduct
//
// Returns a single product with sample reviews.
//
// Responses:
//
//	200: productResponse
//	400: errorResponse
//	502: errorResponse
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	q, errs := h.productQuery(r)
	if len(errs) > 0 {
		serveError(w, r, http.StatusBadRequest, strings.Join(errs.Messages(), "; "))
		return
	}

	rate, err := h.currency.GetRate(r.Context(), pricing.BaseCurrency, q.Currency)
	if err != nil {
		h.serveFailure(w, r, "Error getting exchange rate", err)
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), q.ID)
	if err != nil {
		h.serveFailure(w, r, "Error getting product", err)
		return
	}

	json.NewEncoder(w).Encode(convertProduct(*product, rate))
}

// ListCurrencies handles GET /api/currencies
//
// swagger:route GET /api/currencies currencies listCurrencies
//
// Returns the currency codes prices can be shown in.
//
// Responses:
//
//	200: currenciesResponse
//	500: errorResponse
func (h *ProductHandler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	currencies, err := h.currency.ListAvailableCurrencies(r.Context())
	if err != nil {
		h.serveFailure(w, r, "Error listing currencies", err)
		return
	}

	json.NewEncoder(w).Encode(currencies)
}

// PageWindow handles GET /api/pages
//
// swagger:route GET /api/pages pagination pageWindow
//
// Returns the page-number buttons to show for a position in a listing.
//
// Responses:
//
//	200: pageWindowResponse
//	400: errorResponse
func (h *ProductHandler) PageWindow(w http.ResponseWriter, r *http.Request) {
	q := domain.PageWindowQuery{Current: 1, Window: pagination.WindowSize}
	values := r.URL.Query()
	for name, dst := range map[string]*int{"current": &q.Current, "total": &q.Total, "window": &q.Window} {
		raw := values.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			serveError(w, r, http.StatusBadRequest, "Field '"+name+"': must be an integer")
			return
		}
		*dst = n
	}

	if errs := h.validator.Validate(&q); len(errs) > 0 {
		serveError(w, r, http.StatusBadRequest, strings.Join(errs.Messages(), "; "))
		return
	}

	json.NewEncoder(w).Encode(PageWindowBody{
		Current: q.Current,
		Total:   q.Total,
		Pages:   pagination.VisiblePageNumbers(q.Current, q.Total, q.Window),
	})
}

func (h *ProductHandler) pageQuery(r *http.Request) (domain.PageQuery, domain.ValidationErrors) {
	q := domain.PageQuery{
		Page:     1,
		Currency: strings.ToUpper(r.URL.Query().Get("currency")),
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return q, domain.ValidationErrors{{Field: "Page", Message: "must be an integer"}}
		}
		q.Page = page
	}

	return q, h.validator.Validate(&q)
}

func (h *ProductHandler) productQuery(r *http.Request) (domain.ProductQuery, domain.ValidationErrors) {
	q := domain.ProductQuery{
		Currency: strings.ToUpper(r.URL.Query().Get("currency")),
		Image:    r.URL.Query().Get("image"),
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return q, domain.ValidationErrors{{Field: "ID", Message: "must be an integer"}}
	}
	q.ID = id

	return q, h.validator.Validate(&q)
}

// loadListing fetches the requested page. The page number can only be checked
// against the catalog size once the total is known, so the range check follows
// the fetch.
func (h *ProductHandler) loadListing(ctx context.Context, q domain.PageQuery) (*listing, error) {
	rate, err := h.currency.GetRate(ctx, pricing.BaseCurrency, q.Currency)
	if err != nil {
		return nil, err
	}

	page, err := h.catalog.ListProducts(ctx, pagination.PageSize, pagination.Offset(q.Page, pagination.PageSize))
	if err != nil {
		return nil, err
	}

	totalPages := pagination.TotalPages(page.Total, pagination.PageSize)
	if q.Page > 1 {
		if _, ok := pagination.GoToPage(1, q.Page, totalPages); !ok {
			return nil, domain.ErrPageOutOfRange
		}
	}

	h.eventBus.Publish(events.PageLoaded{Page: q.Page, TotalPages: totalPages, Count: len(page.Products)})

	currency := q.Currency
	if currency == "" {
		currency = pricing.BaseCurrency
	}

	return &listing{
		page:       page,
		number:     q.Page,
		totalPages: totalPages,
		pages:      pagination.VisiblePageNumbers(q.Page, totalPages, pagination.WindowSize),
		currency:   currency,
		rate:       rate,
	}, nil
}

// statusFor maps service errors onto HTTP status codes. Every catalog failure
// maps to the same status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCurrency):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPageOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrFetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *ProductHandler) serveFailure(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status := statusFor(err)
	h.logger.Error(msg, "status", status, "error", err)

	switch status {
	case http.StatusBadRequest:
		serveError(w, r, status, err.Error())
	case http.StatusNotFound:
		serveError(w, r, status, "Page not found")
	default:
		serveError(w, r, status, msg)
	}
}

func serveError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	openapierrors.ServeError(w, r, openapierrors.New(int32(status), msg))
}

// convertProduct returns a copy of p with its price in the display currency
func convertProduct(p domain.ExtendedProduct, rate float64) domain.ExtendedProduct {
	if rate == 1 {
		return p
	}
	p.Price = p.Price * rate
	return p
}
