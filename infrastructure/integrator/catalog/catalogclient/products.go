package catalogclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog/catalogdomain"
)

type ProductsParams struct {
	Month  string
	Page   int
	Search string
}

func (c *CatalogClient) GetProducts(ctx context.Context, params ProductsParams) (*catalogdomain.ProductsResponse, error) {
	query := url.Values{}
	query.Set("month", params.Month)
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("search", params.Search)

	var response catalogdomain.ProductsResponse
	if err := c.get(ctx, catalogdomain.OpProducts, "/api/products", query, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
