package dashboarding

import (
	"fmt"

	"github.com/vfg2006/transaction-dashboard/internal/domain"
)

const noTransactionsText = "No transactions found"

// MonthOptions lista as 12 opções do seletor, de Jan a Dec
func MonthOptions() []domain.MonthOption {
	months := domain.Months()
	options := make([]domain.MonthOption, 0, len(months))
	for _, m := range months {
		options = append(options, monthOption(m))
	}
	return options
}

func monthOption(m domain.MonthCode) domain.MonthOption {
	return domain.MonthOption{Code: m, Label: m.ShortLabel(), Name: m.Name()}
}

// Present resolve o snapshot no view-model entregue ao renderizador
func Present(snapshot domain.DashboardSnapshot) domain.DashboardView {
	return domain.DashboardView{
		Month:        monthOption(snapshot.Month),
		Months:       MonthOptions(),
		Transactions: presentTransactions(snapshot.Transactions),
		Statistics:   presentStatistics(snapshot.Month, snapshot.Statistics),
		Histogram:    presentHistogram(snapshot.Month, snapshot.Histogram),
	}
}

func presentTransactions(snap domain.TransactionSnapshot) domain.TransactionsPanel {
	panel := domain.TransactionsPanel{
		Title:       "All Transactions",
		Status:      snap.State.Status,
		Search:      snap.Query.Search,
		Page:        snap.Query.Page,
		TotalPages:  snap.TotalPages,
		PageLabel:   fmt.Sprintf("Page %d of %d", snap.Query.Page, snap.TotalPages),
		HasPrevious: snap.HasPrevious,
		HasNext:     snap.HasNext,
		Rows:        []domain.TransactionRow{},
	}

	switch snap.State.Status {
	case domain.ViewStatusFailed:
		panel.Error = snap.State.Reason
	case domain.ViewStatusReady:
		for _, r := range snap.State.Data.Records {
			panel.Rows = append(panel.Rows, domain.TransactionRow{
				ID:          r.ID,
				Title:       r.Title,
				Description: r.Description,
				Price:       "$" + r.Price.StringFixed(2),
				Category:    r.Category,
				Sold:        yesNo(r.Sold),
				ImageURL:    r.ImageURL,
			})
		}
		if len(panel.Rows) == 0 {
			panel.EmptyText = noTransactionsText
		}
	}

	return panel
}

func presentStatistics(month domain.MonthCode, state domain.ViewState[domain.StatisticsSummary]) domain.StatisticsPanel {
	panel := domain.StatisticsPanel{
		Title:  "Statistics for " + month.Name(),
		Status: state.Status,
	}

	switch state.Status {
	case domain.ViewStatusFailed:
		panel.Error = state.Reason
	case domain.ViewStatusReady:
		panel.TotalSales = state.Data.SaleAmount().StringFixed(2)
		panel.SoldItems = state.Data.SoldItems()
		panel.UnsoldItems = state.Data.NotSoldItems()
	}

	return panel
}

func presentHistogram(month domain.MonthCode, state domain.ViewState[[]domain.HistogramBucket]) domain.HistogramPanel {
	panel := domain.HistogramPanel{
		Title:   "Bar Chart Stats - " + month.Name(),
		Status:  state.Status,
		Buckets: []domain.HistogramBucket{},
	}

	switch state.Status {
	case domain.ViewStatusFailed:
		panel.Error = state.Reason
	case domain.ViewStatusReady:
		panel.Buckets = state.Data
	}

	return panel
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
