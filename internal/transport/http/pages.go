package http

import (
	"net/http"

	"github.com/kahvecikaan/storefront/internal/pricing"
)

const (
	listErrorMessage   = "Failed to load products. Please try again."
	detailErrorMessage = "Failed to load product details. Please try again."
)

// ListPage handles GET / and GET /products, the storefront product grid
func (h *ProductHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	q, errs := h.pageQuery(r)
	if len(errs) > 0 {
		h.logger.Debug("Invalid listing query", "errors", errs.Messages())
		h.renderError(w, r, http.StatusBadRequest, "Invalid page request.", false)
		return
	}

	l, err := h.loadListing(r.Context(), q)
	if err != nil {
		status := statusFor(err)
		h.logger.Error("Error loading product listing", "page", q.Page, "status", status, "error", err)
		switch status {
		case http.StatusNotFound:
			h.renderError(w, r, status, "That page does not exist.", false)
		case http.StatusBadRequest:
			h.renderError(w, r, status, "That currency is not available.", false)
		default:
			h.renderError(w, r, status, listErrorMessage, true)
		}
		return
	}

	cards := make([]cardView, 0, len(l.page.Products))
	for _, p := range l.page.Products {
		cards = append(cards, newCardView(p, l.currency, l.rate))
	}

	h.render(w, http.StatusOK, "products", map[string]any{
		"Title":    "Our Products",
		"Products": cards,
		"Pager":    newPagerView(l.number, l.totalPages, l.pages, l.currency),
		"Page":     l.number,
		"Total":    l.page.Total,
		"Currency": l.currency,
	})
}

// DetailPage handles GET /products/{id}, the product detail view
func (h *ProductHandler) DetailPage(w http.ResponseWriter, r *http.Request) {
	q, errs := h.productQuery(r)
	if len(errs) > 0 {
		h.logger.Debug("Invalid product query", "errors", errs.Messages())
		h.renderError(w, r, http.StatusBadRequest, "Invalid product request.", false)
		return
	}

	rate, err := h.currency.GetRate(r.Context(), pricing.BaseCurrency, q.Currency)
	if err != nil {
		h.logger.Error("Error getting exchange rate", "currency", q.Currency, "error", err)
		h.renderError(w, r, http.StatusBadRequest, "That currency is not available.", false)
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), q.ID)
	if err != nil {
		status := statusFor(err)
		h.logger.Error("Error loading product", "id", q.ID, "status", status, "error", err)
		h.renderError(w, r, status, detailErrorMessage, true)
		return
	}

	currency := q.Currency
	if currency == "" {
		currency = pricing.BaseCurrency
	}

	h.render(w, http.StatusOK, "product", map[string]any{
		"Title":   product.Title,
		"Product": newDetailView(*product, currency, rate, q.Image),
		"BackURL": listURL(1, currency),
	})
}

// renderError shows the error block. Retryable failures link back to the same
// request so the user can re-issue it.
func (h *ProductHandler) renderError(w http.ResponseWriter, r *http.Request, status int, msg string, retry bool) {
	data := map[string]any{
		"Title":   "Something went wrong",
		"Message": msg,
		"BackURL": "/",
	}
	if retry {
		data["RetryURL"] = r.URL.RequestURI()
	}
	h.render(w, status, "error", data)
}

