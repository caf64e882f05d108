package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/storefront/internal/domain"
	"github.com/kahvecikaan/storefront/internal/enrichment"
	"github.com/kahvecikaan/storefront/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) List(ctx context.Context, limit, skip int) (*domain.ProductsResponse, error) {
	args := m.Called(ctx, limit, skip)
	resp, _ := args.Get(0).(*domain.ProductsResponse)
	return resp, args.Error(1)
}

func (m *mockSource) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

func testEnricher() *enrichment.Enricher {
	return enrichment.NewEnricher(rand.New(rand.NewPCG(1, 2)), func() time.Time {
		return time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	})
}

func TestCatalogService_ListProducts(t *testing.T) {
	fetchErr := &domain.FetchError{Op: "list products", StatusCode: 503}

	tests := []struct {
		name     string
		mockCall func(m *mockSource)
		wantIDs  []int
		wantErr  error
	}{
		{
			name: "success: records are enriched without reviews",
			mockCall: func(m *mockSource) {
				m.On("List", mock.Anything, 9, 18).
					Return(&domain.ProductsResponse{
						Products: []domain.Product{{ID: 19, Stock: 0}, {ID: 20, Stock: 75}},
						Total:    20, Skip: 18, Limit: 2,
					}, nil).
					Once()
			},
			wantIDs: []int{19, 20},
		},
		{
			name: "error: fetch failure is surfaced unchanged",
			mockCall: func(m *mockSource) {
				m.On("List", mock.Anything, 9, 18).Return(nil, fetchErr).Once()
			},
			wantErr: fetchErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &mockSource{}
			tt.mockCall(src)
			bus := events.NewEventBus[any]()
			sub := bus.Subscribe()
			svc := NewCatalogService(src, testEnricher(), bus, hclog.NewNullLogger())

			page, err := svc.ListProducts(context.Background(), 9, 18)
			src.AssertExpectations(t)

			if tt.wantErr != nil {
				assert.Same(t, tt.wantErr, err)
				assert.Nil(t, page)
				assert.IsType(t, events.FetchFailed{}, <-sub)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 20, page.Total)
			assert.Equal(t, 18, page.Skip)
			ids := []int{}
			for _, p := range page.Products {
				ids = append(ids, p.ID)
				assert.Nil(t, p.Reviews)
				assert.Equal(t, enrichment.AvailabilityStatus(p.Stock), p.AvailabilityStatus)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCatalogService_GetProduct(t *testing.T) {
	src := &mockSource{}
	src.On("GetByID", mock.Anything, 5).
		Return(&domain.Product{ID: 5, Title: "Desk", Stock: 9}, nil).
		Once()
	src.On("GetByID", mock.Anything, 404).
		Return(nil, &domain.FetchError{Op: "get product 404", StatusCode: 404}).
		Once()

	bus := events.NewEventBus[any]()
	sub := bus.Subscribe()
	svc := NewCatalogService(src, testEnricher(), bus, hclog.NewNullLogger())

	p, err := svc.GetProduct(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, enrichment.StatusLowStock, p.AvailabilityStatus)
	assert.NotEmpty(t, p.Reviews)
	assert.Equal(t, events.ProductViewed{ProductID: 5, Title: "Desk"}, <-sub)

	_, err = svc.GetProduct(context.Background(), 404)
	assert.True(t, errors.Is(err, domain.ErrFetch))

	src.AssertExpectations(t)
}
