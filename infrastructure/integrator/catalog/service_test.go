package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog/catalogclient"
	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog/catalogclient/mocks"
	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog/catalogdomain"
	"github.com/vfg2006/transaction-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestCatalogService_GetTransactions(t *testing.T) {
	tests := []struct {
		name     string
		response *catalogdomain.ProductsResponse
		validate func(t *testing.T, page *domain.TransactionPage)
	}{
		{
			name: "converte produtos e paginação",
			response: &catalogdomain.ProductsResponse{
				Products: []catalogdomain.Product{
					{ID: 7, Title: "Ring", Price: decimal.RequireFromString("695"), Category: "jewelery", Sold: false, Image: "ring.jpg"},
				},
				Pagination: &catalogdomain.Pagination{TotalPages: 4},
			},
			validate: func(t *testing.T, page *domain.TransactionPage) {
				require.Len(t, page.Records, 1)
				assert.Equal(t, int64(7), page.Records[0].ID)
				assert.Equal(t, "ring.jpg", page.Records[0].ImageURL)
				assert.Equal(t, "695.00", page.Records[0].Price.StringFixed(2))
				assert.Equal(t, 4, page.Pagination.TotalPages)
			},
		},
		{
			name:     "sem produtos e sem paginação",
			response: &catalogdomain.ProductsResponse{},
			validate: func(t *testing.T, page *domain.TransactionPage) {
				assert.NotNil(t, page.Records)
				assert.Empty(t, page.Records)
				assert.Equal(t, 1, page.Pagination.TotalPages)
			},
		},
		{
			name: "totalPages zero vira uma página",
			response: &catalogdomain.ProductsResponse{
				Pagination: &catalogdomain.Pagination{TotalPages: 0},
			},
			validate: func(t *testing.T, page *domain.TransactionPage) {
				assert.Equal(t, 1, page.Pagination.TotalPages)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)

			client.EXPECT().
				GetProducts(gomock.Any(), catalogclient.ProductsParams{Month: "03", Page: 2, Search: "ring"}).
				Return(tt.response, nil)

			service := New(client)
			page, err := service.GetTransactions(context.Background(), domain.TransactionQuery{Month: "03", Search: "ring", Page: 2})
			require.NoError(t, err)
			tt.validate(t, page)
		})
	}
}

func TestCatalogService_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	transportErr := catalogdomain.NewTransportError(catalogdomain.OpProducts, 500, nil)
	client.EXPECT().GetProducts(gomock.Any(), gomock.Any()).Return(nil, transportErr)
	client.EXPECT().GetStatistics(gomock.Any(), "03").Return(nil, transportErr)
	client.EXPECT().GetPriceRangeStatistics(gomock.Any(), "03").Return(nil, transportErr)

	service := New(client)
	ctx := context.Background()

	_, err := service.GetTransactions(ctx, domain.TransactionQuery{Month: "03", Page: 1})
	assert.ErrorIs(t, err, transportErr)

	_, err = service.GetStatistics(ctx, "03")
	assert.ErrorIs(t, err, transportErr)

	_, err = service.GetPriceRangeHistogram(ctx, "03")
	assert.ErrorIs(t, err, transportErr)
}

func TestCatalogService_GetStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	sold := int64(3)
	client.EXPECT().
		GetStatistics(gomock.Any(), "08").
		Return(&catalogdomain.StatisticsResponse{TotalSoldItems: &sold}, nil)

	summary, err := New(client).GetStatistics(context.Background(), "08")
	require.NoError(t, err)
	assert.Nil(t, summary.TotalSaleAmount)
	assert.Equal(t, int64(3), summary.SoldItems())
	assert.Zero(t, summary.NotSoldItems())
}

func TestCatalogService_GetPriceRangeHistogram(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		GetPriceRangeStatistics(gomock.Any(), "03").
		Return(catalogdomain.PriceRangeResponse{"101-200": float64(6), "801-900": float64(1), "oops": "x"}, nil)

	buckets, err := New(client).GetPriceRangeHistogram(context.Background(), "03")
	require.NoError(t, err)
	require.Len(t, buckets, 10)
	assert.Equal(t, domain.HistogramBucket{Label: "101-200", Count: 6}, buckets[1])
	assert.Equal(t, domain.HistogramBucket{Label: "801-900", Count: 1}, buckets[8])
	assert.Equal(t, int64(0), buckets[0].Count)
}
