package dashboarding

import (
	"context"

	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog"
	"github.com/vfg2006/transaction-dashboard/internal/domain"
)

const statisticsView = "statistics"

// StatisticsView resolve o mês no resumo de vendas. O payload guarda os
// campos como vieram; o "ausente = 0" fica nos acessores do domínio.
type StatisticsView struct {
	*monthView[domain.StatisticsSummary]
}

func NewStatisticsView(ctx context.Context, integrator catalog.CatalogIntegrator, months MonthSource) *StatisticsView {
	return &StatisticsView{
		monthView: newMonthView[domain.StatisticsSummary](ctx, statisticsView, months, func(ctx context.Context, month domain.MonthCode) (domain.StatisticsSummary, error) {
			summary, err := integrator.GetStatistics(ctx, month)
			if err != nil {
				return domain.StatisticsSummary{}, err
			}
			if summary == nil {
				return domain.StatisticsSummary{}, nil
			}
			return *summary, nil
		}),
	}
}
