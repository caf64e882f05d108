package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/storefront/internal/domain"
	"github.com/kahvecikaan/storefront/internal/events"
	"github.com/kahvecikaan/storefront/internal/pagination"
)

// ErrSuperseded is returned for a fetch whose result was discarded because a
// newer navigation started while it was in flight
var ErrSuperseded = errors.New("superseded by a newer request")

// BrowserView is a snapshot of a browsing session
type BrowserView struct {
	Page       int
	TotalPages int
	TotalItems int
	Pages      []int
	HasPrev    bool
	HasNext    bool
	Products   []domain.ExtendedProduct
	Loading    bool
	Err        error
}

// Browser is a paged walk through the catalog, the stateful counterpart of the
// listing page. Each fetch is tagged with a sequence number and only the most
// recently issued one may update the session: late responses are dropped.
type Browser struct {
	catalog  CatalogService
	eventBus *events.EventBus[any]
	logger   hclog.Logger

	mutex    sync.Mutex
	state    pagination.PageState
	products []domain.ExtendedProduct
	seq      uint64
	loading  bool
	err      error
}

func NewBrowser(catalog CatalogService, eventBus *events.EventBus[any], logger hclog.Logger) *Browser {
	return &Browser{
		catalog:  catalog,
		eventBus: eventBus,
		logger:   logger,
		state:    pagination.NewPageState(pagination.PageSize),
	}
}

// Load fetches the current page. It is also the retry action after a failure.
func (b *Browser) Load(ctx context.Context) error {
	b.mutex.Lock()
	page := b.state.CurrentPage
	seq := b.begin()
	b.mutex.Unlock()

	return b.fetch(ctx, page, seq)
}

// GoToPage navigates to page. Pages outside [1,TotalPages] are rejected with
// domain.ErrPageOutOfRange and the session is left unchanged.
func (b *Browser) GoToPage(ctx context.Context, page int) error {
	b.mutex.Lock()
	if !b.state.GoTo(page) {
		current, total := b.state.CurrentPage, b.state.TotalPages()
		b.mutex.Unlock()
		b.logger.Debug("Rejected page change", "requested", page, "current", current, "total_pages", total)
		return fmt.Errorf("%w: %d not in [1,%d]", domain.ErrPageOutOfRange, page, total)
	}
	seq := b.begin()
	b.mutex.Unlock()

	b.eventBus.Publish(events.ScrollReset{Page: page})
	return b.fetch(ctx, page, seq)
}

func (b *Browser) Next(ctx context.Context) error {
	return b.GoToPage(ctx, b.View().Page+1)
}

func (b *Browser) Prev(ctx context.Context) error {
	return b.GoToPage(ctx, b.View().Page-1)
}

// View returns a copy of the session state
func (b *Browser) View() BrowserView {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return BrowserView{
		Page:       b.state.CurrentPage,
		TotalPages: b.state.TotalPages(),
		TotalItems: b.state.TotalItems,
		Pages:      b.state.Window(),
		HasPrev:    b.state.HasPrev(),
		HasNext:    b.state.HasNext(),
		Products:   slices.Clone(b.products),
		Loading:    b.loading,
		Err:        b.err,
	}
}

// begin tags a new fetch; the caller holds the mutex
func (b *Browser) begin() uint64 {
	b.seq++
	b.loading = true
	return b.seq
}

func (b *Browser) fetch(ctx context.Context, page int, seq uint64) error {
	resp, err := b.catalog.ListProducts(ctx, b.state.PageSize, pagination.Offset(page, b.state.PageSize))

	b.mutex.Lock()
	defer b.mutex.Unlock()

	if seq != b.seq {
		b.logger.Debug("Discarding superseded page response", "page", page, "seq", seq, "latest", b.seq)
		return ErrSuperseded
	}

	b.loading = false
	if err != nil {
		b.err = err
		return err
	}

	b.err = nil
	b.products = resp.Products
	b.state.TotalItems = resp.Total

	b.eventBus.Publish(events.PageLoaded{
		Page:       page,
		TotalPages: b.state.TotalPages(),
		Count:      len(resp.Products),
	})
	return nil
}
