package service

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/storefront/internal/domain"
	"github.com/kahvecikaan/storefront/internal/enrichment"
	"github.com/kahvecikaan/storefront/internal/events"
	"github.com/kahvecikaan/storefront/internal/repository"
)

// CatalogService reads products from a CatalogSource and enriches them for display.
// Failures are returned as they come from the source; nothing is retried.
type CatalogService interface {
	ListProducts(ctx context.Context, pageSize, offset int) (*domain.ProductsPage, error)
	GetProduct(ctx context.Context, id int) (*domain.ExtendedProduct, error)
}

type catalogService struct {
	source   repository.CatalogSource
	enricher *enrichment.Enricher
	eventBus *events.EventBus[any]
	logger   hclog.Logger
}

func NewCatalogService(
	source repository.CatalogSource,
	enricher *enrichment.Enricher,
	eventBus *events.EventBus[any],
	logger hclog.Logger) CatalogService {
	return &catalogService{
		source:   source,
		enricher: enricher,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *catalogService) ListProducts(ctx context.Context, pageSize, offset int) (*domain.ProductsPage, error) {
	s.logger.Debug("Listing products", "limit", pageSize, "skip", offset)

	resp, err := s.source.List(ctx, pageSize, offset)
	if err != nil {
		s.logger.Error("Unable to list products", "limit", pageSize, "skip", offset, "error", err)
		s.eventBus.Publish(events.FetchFailed{Operation: "list products", Error: err.Error()})
		return nil, err
	}

	products := make([]domain.ExtendedProduct, 0, len(resp.Products))
	for _, p := range resp.Products {
		products = append(products, s.enricher.BasicEnrich(p))
	}

	return &domain.ProductsPage{
		Products: products,
		Total:    resp.Total,
		Skip:     resp.Skip,
		Limit:    resp.Limit,
	}, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int) (*domain.ExtendedProduct, error) {
	s.logger.Debug("Getting product by ID", "id", id)

	product, err := s.source.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Unable to get the product by ID", "id", id, "error", err)
		s.eventBus.Publish(events.FetchFailed{Operation: "get product", Error: err.Error()})
		return nil, err
	}

	ep := s.enricher.FullEnrich(*product)
	s.eventBus.Publish(events.ProductViewed{ProductID: ep.ID, Title: ep.Title})
	return &ep, nil
}
