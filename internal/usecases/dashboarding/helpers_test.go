package dashboarding

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog/catalogdomain"
	"github.com/vfg2006/transaction-dashboard/internal/domain"
)

const waitTimeout = 2 * time.Second

func query(month domain.MonthCode, search string, page int) domain.TransactionQuery {
	return domain.TransactionQuery{Month: month, Search: search, Page: page}
}

func pageOf(totalPages int, titles ...string) *domain.TransactionPage {
	records := make([]domain.TransactionRecord, 0, len(titles))
	for i, title := range titles {
		records = append(records, domain.TransactionRecord{
			ID:    int64(i + 1),
			Title: title,
			Price: decimal.RequireFromString("10.5"),
			Sold:  i%2 == 0,
		})
	}
	return &domain.TransactionPage{
		Records:    records,
		Pagination: domain.PaginationMeta{TotalPages: totalPages},
	}
}

func titles(page domain.TransactionPage) []string {
	out := make([]string, 0, len(page.Records))
	for _, r := range page.Records {
		out = append(out, r.Title)
	}
	return out
}

func int64Ptr(v int64) *int64 { return &v }

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func transportError(op string, status int) error {
	return catalogdomain.NewTransportError(op, status, nil)
}

type waiter interface {
	Wait(ctx context.Context) error
}

func waitSettled(t *testing.T, w waiter) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()
	require.NoError(t, w.Wait(ctx))
}
