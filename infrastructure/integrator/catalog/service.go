package catalog

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog/catalogclient"
	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog/catalogdomain"
	"github.com/vfg2006/transaction-dashboard/internal/domain"
)

// CatalogIntegrator entrega os dados da fonte externa já no formato do domínio
type CatalogIntegrator interface {
	GetTransactions(ctx context.Context, query domain.TransactionQuery) (*domain.TransactionPage, error)
	GetStatistics(ctx context.Context, month domain.MonthCode) (*domain.StatisticsSummary, error)
	GetPriceRangeHistogram(ctx context.Context, month domain.MonthCode) ([]domain.HistogramBucket, error)
}

type CatalogService struct {
	Client catalogclient.Client
}

func New(client catalogclient.Client) CatalogIntegrator {
	return &CatalogService{
		Client: client,
	}
}

func (s *CatalogService) GetTransactions(ctx context.Context, query domain.TransactionQuery) (*domain.TransactionPage, error) {
	resp, err := s.Client.GetProducts(ctx, catalogclient.ProductsParams{
		Month:  query.Month.String(),
		Page:   query.Page,
		Search: query.Search,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"month":  query.Month,
			"page":   query.Page,
			"search": query.Search,
			"error":  err.Error(),
		}).Debug("catalog: failed to get products")
		return nil, err
	}

	return FactoryTransactionPage(resp), nil
}

func (s *CatalogService) GetStatistics(ctx context.Context, month domain.MonthCode) (*domain.StatisticsSummary, error) {
	resp, err := s.Client.GetStatistics(ctx, month.String())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"month": month,
			"error": err.Error(),
		}).Debug("catalog: failed to get statistics")
		return nil, err
	}

	return &domain.StatisticsSummary{
		TotalSaleAmount:   resp.TotalSaleAmount,
		TotalSoldItems:    resp.TotalSoldItems,
		TotalNotSoldItems: resp.TotalNotSoldItems,
	}, nil
}

func (s *CatalogService) GetPriceRangeHistogram(ctx context.Context, month domain.MonthCode) ([]domain.HistogramBucket, error) {
	resp, err := s.Client.GetPriceRangeStatistics(ctx, month.String())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"month": month,
			"error": err.Error(),
		}).Debug("catalog: failed to get price range statistics")
		return nil, err
	}

	return domain.NewHistogram(resp.Counts()), nil
}

// FactoryTransactionPage converte a resposta bruta: sem produtos vira lista
// vazia, sem paginação (ou totalPages < 1) vira uma página.
func FactoryTransactionPage(resp *catalogdomain.ProductsResponse) *domain.TransactionPage {
	page := &domain.TransactionPage{
		Records:    make([]domain.TransactionRecord, 0),
		Pagination: domain.PaginationMeta{TotalPages: 1},
	}
	if resp == nil {
		return page
	}

	for _, p := range resp.Products {
		page.Records = append(page.Records, domain.TransactionRecord{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.Category,
			Sold:        p.Sold,
			ImageURL:    p.Image,
		})
	}

	if resp.Pagination != nil && resp.Pagination.TotalPages > 0 {
		page.Pagination.TotalPages = resp.Pagination.TotalPages
	}

	return page
}
