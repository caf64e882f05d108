// Package enrichment derives the display-only fields that the remote catalog does
// not carry: availability status, minimum order quantity and sample reviews.
package enrichment

import (
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/kahvecikaan/storefront/internal/domain"
)

// Availability statuses, ordered by stock level
const (
	StatusOutOfStock       = "Out of Stock"
	StatusLowStock         = "Low Stock"
	StatusInStock          = "In Stock"
	StatusHighAvailability = "High Availability"
)

const (
	maxOrderQuantity = 5
	maxReviews       = 5
	maxReviewRating  = 5
	reviewWindowDays = 90
)

var reviewComments = []string{
	"Great product, highly recommend!",
	"Not bad, but could be better.",
	"Exactly what I was looking for!",
	"Disappointed with the quality.",
	"Amazing value for the price!",
	"Shipping was fast, product works well.",
	"Would buy again!",
	"Perfect fit for my needs.",
	"The description was accurate.",
	"Better than expected!",
}

var reviewUsernames = []string{
	"John D.",
	"Sarah M.",
	"Michael T.",
	"Jessica K.",
	"David R.",
	"Emily S.",
	"Robert J.",
	"Jennifer L.",
	"William P.",
	"Elizabeth B.",
}

// RandomSource is the subset of *rand.Rand used by the Enricher.
// IntN returns a uniform integer in [0,n).
type RandomSource interface {
	IntN(n int) int
}

// Enricher turns catalog records into ExtendedProducts. It is safe for
// concurrent use; draws from the random source are serialized.
type Enricher struct {
	mu  sync.Mutex
	rnd RandomSource
	now func() time.Time
}

// NewEnricher creates an Enricher drawing from rnd and reading the date from now
func NewEnricher(rnd RandomSource, now func() time.Time) *Enricher {
	if now == nil {
		now = time.Now
	}
	return &Enricher{rnd: rnd, now: now}
}

// NewDefaultEnricher creates an Enricher backed by a time-seeded PCG source
func NewDefaultEnricher() *Enricher {
	seed := uint64(time.Now().UnixNano())
	return NewEnricher(rand.New(rand.NewPCG(seed, seed>>1|1)), time.Now)
}

// AvailabilityStatus classifies a stock count
func AvailabilityStatus(stock int) string {
	switch {
	case stock <= 0:
		return StatusOutOfStock
	case stock < 10:
		return StatusLowStock
	case stock < 50:
		return StatusInStock
	default:
		return StatusHighAvailability
	}
}

// BasicEnrich sets the availability status and a random minimum order quantity.
// Used for list results, which carry no reviews.
func (e *Enricher) BasicEnrich(p domain.Product) domain.ExtendedProduct {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.basic(p)
}

// FullEnrich is BasicEnrich plus a freshly generated batch of sample reviews
func (e *Enricher) FullEnrich(p domain.Product) domain.ExtendedProduct {
	e.mu.Lock()
	defer e.mu.Unlock()

	ep := e.basic(p)
	ep.Reviews = e.reviews()
	return ep
}

func (e *Enricher) basic(p domain.Product) domain.ExtendedProduct {
	p.Images = slices.Clone(p.Images)

	return domain.ExtendedProduct{
		Product:              p,
		AvailabilityStatus:   AvailabilityStatus(p.Stock),
		MinimumOrderQuantity: e.between(1, maxOrderQuantity),
	}
}

func (e *Enricher) reviews() []domain.ProductReview {
	n := e.between(1, maxReviews)
	today := e.now()
	reviews := make([]domain.ProductReview, 0, n)

	for i := 0; i < n; i++ {
		daysAgo := e.rnd.IntN(reviewWindowDays)
		reviews = append(reviews, domain.ProductReview{
			ID:       i + 1,
			Username: reviewUsernames[e.rnd.IntN(len(reviewUsernames))],
			Rating:   e.between(1, maxReviewRating),
			Comment:  reviewComments[e.rnd.IntN(len(reviewComments))],
			Date:     strfmt.Date(today.AddDate(0, 0, -daysAgo)),
		})
	}

	return reviews
}

// between returns a uniform integer in [lo,hi]
func (e *Enricher) between(lo, hi int) int {
	return lo + e.rnd.IntN(hi-lo+1)
}
