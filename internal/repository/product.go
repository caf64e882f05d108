package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/kahvecikaan/storefront/internal/domain"
)

// CatalogSource is the read-only capability the storefront needs from a catalog
type CatalogSource interface {
	List(ctx context.Context, limit, skip int) (*domain.ProductsResponse, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
}

type memoryCatalogSource struct {
	products []domain.Product
	mutex    sync.RWMutex
}

// NewMemoryCatalogSource serves a fixed, in-process list of products
func NewMemoryCatalogSource(products []domain.Product) CatalogSource {
	return &memoryCatalogSource{products: slices.Clone(products)}
}

func (r *memoryCatalogSource) List(ctx context.Context, limit, skip int) (*domain.ProductsResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.FetchError{Op: "list products", Err: err}
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	total := len(r.products)
	start := min(max(skip, 0), total)
	end := total
	if limit > 0 {
		end = min(start+limit, total)
	}

	page := make([]domain.Product, 0, end-start)
	for _, p := range r.products[start:end] {
		p.Images = slices.Clone(p.Images)
		page = append(page, p)
	}

	return &domain.ProductsResponse{
		Products: page,
		Total:    total,
		Skip:     skip,
		Limit:    len(page),
	}, nil
}

func (r *memoryCatalogSource) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.FetchError{Op: "get product", Err: err}
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, product := range r.products {
		if product.ID == id {
			product.Images = slices.Clone(product.Images)
			return &product, nil
		}
	}

	return nil, &domain.FetchError{Op: fmt.Sprintf("get product %d", id), Err: domain.ErrProductNotFound}
}

var sampleCategories = []string{"beauty", "fragrances", "furniture", "groceries"}

// SampleProducts builds n deterministic products for offline runs and tests
func SampleProducts(n int) []domain.Product {
	products := make([]domain.Product, 0, n)
	for i := 1; i <= n; i++ {
		base := fmt.Sprintf("https://cdn.example.com/products/%d", i)
		products = append(products, domain.Product{
			ID:                 i,
			Title:              fmt.Sprintf("Sample Product %d", i),
			Description:        fmt.Sprintf("Description of sample product %d", i),
			Price:              float64(i*5) - 0.01,
			DiscountPercentage: float64(i % 20),
			Rating:             float64(i%5) + 0.5,
			Stock:              (i * 7) % 60,
			Brand:              fmt.Sprintf("Brand %c", 'A'+rune(i%4)),
			Category:           sampleCategories[i%len(sampleCategories)],
			Thumbnail:          base + "/thumbnail.png",
			Images:             []string{base + "/1.png", base + "/2.png", base + "/3.png"},
		})
	}
	return products
}
