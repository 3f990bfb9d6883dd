package dashboarding

import (
	"context"

	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog"
	"github.com/vfg2006/transaction-dashboard/internal/domain"
)

const histogramView = "histogram"

// HistogramView resolve o mês nas 10 faixas de preço, sempre completas e na
// ordem fixa, qualquer que seja o retorno da fonte
type HistogramView struct {
	*monthView[[]domain.HistogramBucket]
}

func NewHistogramView(ctx context.Context, integrator catalog.CatalogIntegrator, months MonthSource) *HistogramView {
	return &HistogramView{
		monthView: newMonthView[[]domain.HistogramBucket](ctx, histogramView, months, func(ctx context.Context, month domain.MonthCode) ([]domain.HistogramBucket, error) {
			buckets, err := integrator.GetPriceRangeHistogram(ctx, month)
			if err != nil {
				return nil, err
			}
			return normalizeBuckets(buckets), nil
		}),
	}
}

// normalizeBuckets garante os 10 rótulos fixos mesmo se o integrador devolver
// uma lista parcial ou fora de ordem
func normalizeBuckets(buckets []domain.HistogramBucket) []domain.HistogramBucket {
	counts := make(map[string]int64, len(buckets))
	for _, b := range buckets {
		counts[b.Label] = b.Count
	}
	return domain.NewHistogram(counts)
}
