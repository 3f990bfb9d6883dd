package catalogclient

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

import (
	"context"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog/catalogdomain"
	"github.com/vfg2006/transaction-dashboard/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetProducts(ctx context.Context, params ProductsParams) (*catalogdomain.ProductsResponse, error)
	GetStatistics(ctx context.Context, month string) (*catalogdomain.StatisticsResponse, error)
	GetPriceRangeStatistics(ctx context.Context, month string) (catalogdomain.PriceRangeResponse, error)
}

type CatalogClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria o cliente HTTP da fonte de dados do catálogo
func NewClient(cfg *config.Config) Client {
	return &CatalogClient{
		httpClient: &http.Client{
			Timeout: cfg.Catalog.Timeout,
		},
		baseURL: cfg.Catalog.BaseURL,
	}
}

// get executa um GET no endpoint e decodifica o JSON em out.
// Qualquer falha vira *catalogdomain.TransportError.
func (c *CatalogClient) get(ctx context.Context, op, endpointPath string, query url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return catalogdomain.NewTransportError(op, 0, errors.Wrap(err, "parse base url"))
	}
	endpoint.Path = path.Join(endpoint.Path, endpointPath)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return catalogdomain.NewTransportError(op, 0, errors.Wrap(err, "create request"))
	}
	req.Header.Set("Accept", "application/json")

	logrus.WithFields(logrus.Fields{
		"op":  op,
		"url": endpoint.String(),
	}).Debug("catalog: sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return catalogdomain.NewTransportError(op, 0, errors.Wrap(err, "execute request"))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return catalogdomain.NewTransportError(op, resp.StatusCode, nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return catalogdomain.NewTransportError(op, resp.StatusCode, errors.Wrap(err, "decode response"))
	}

	return nil
}
