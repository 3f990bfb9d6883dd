package catalogclient

import (
	"context"
	"net/url"

	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog/catalogdomain"
)

func (c *CatalogClient) GetStatistics(ctx context.Context, month string) (*catalogdomain.StatisticsResponse, error) {
	query := url.Values{}
	query.Set("month", month)

	var response catalogdomain.StatisticsResponse
	if err := c.get(ctx, catalogdomain.OpStatistics, "/api/statistics", query, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *CatalogClient) GetPriceRangeStatistics(ctx context.Context, month string) (catalogdomain.PriceRangeResponse, error) {
	query := url.Values{}
	query.Set("month", month)

	response := catalogdomain.PriceRangeResponse{}
	if err := c.get(ctx, catalogdomain.OpPriceRange, "/api/price-range-statistics", query, &response); err != nil {
		return nil, err
	}

	return response, nil
}
