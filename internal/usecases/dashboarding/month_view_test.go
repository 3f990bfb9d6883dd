package dashboarding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog/catalogdomain"
	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog/mocks"
	"github.com/vfg2006/transaction-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestMonthSelector(t *testing.T) {
	_, err := NewMonthSelector("13")
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)

	months, err := NewMonthSelector("03")
	require.NoError(t, err)

	var received []domain.MonthChange
	months.Subscribe(func(change domain.MonthChange) {
		received = append(received, change)
	})

	changed, err := months.SetMonth("00")
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)
	assert.False(t, changed)
	assert.Equal(t, domain.MonthCode("03"), months.Current().Code)

	changed, err = months.SetMonth("03")
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = months.SetMonth("11")
	require.NoError(t, err)
	assert.True(t, changed)

	require.Len(t, received, 1)
	assert.Equal(t, domain.MonthChange{Code: "11", Version: 1}, received[0])
	assert.Equal(t, received[0], months.Current())
}

func TestStatisticsView_MonthChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockCatalogIntegrator(ctrl)

	months, err := NewMonthSelector("03")
	require.NoError(t, err)

	gomock.InOrder(
		integrator.EXPECT().
			GetStatistics(gomock.Any(), domain.MonthCode("03")).
			Return(&domain.StatisticsSummary{TotalSoldItems: int64Ptr(4)}, nil),
		integrator.EXPECT().
			GetStatistics(gomock.Any(), domain.MonthCode("04")).
			Return(&domain.StatisticsSummary{
				TotalSaleAmount:   decimalPtr("1234.5"),
				TotalSoldItems:    int64Ptr(9),
				TotalNotSoldItems: int64Ptr(2),
			}, nil),
	)

	v := NewStatisticsView(context.Background(), integrator, months)
	defer v.Close()

	v.Mount()
	waitSettled(t, v)
	assert.Equal(t, int64(4), v.State().Data.SoldItems())
	assert.Equal(t, int64(0), v.State().Data.NotSoldItems())

	_, err = months.SetMonth("04")
	require.NoError(t, err)
	waitSettled(t, v)

	state := v.State()
	require.True(t, state.IsReady())
	assert.Equal(t, domain.MonthCode("04"), v.Month())
	assert.Equal(t, "1234.50", state.Data.SaleAmount().StringFixed(2))
}

func TestStatisticsView_EmptySummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockCatalogIntegrator(ctrl)

	months, err := NewMonthSelector("03")
	require.NoError(t, err)

	integrator.EXPECT().
		GetStatistics(gomock.Any(), domain.MonthCode("03")).
		Return(nil, nil)

	v := NewStatisticsView(context.Background(), integrator, months)
	defer v.Close()

	v.Mount()
	waitSettled(t, v)

	state := v.State()
	require.True(t, state.IsReady())
	assert.True(t, state.Data.SaleAmount().IsZero())
	assert.Zero(t, state.Data.SoldItems())
	assert.Zero(t, state.Data.NotSoldItems())
}

func TestHistogramView(t *testing.T) {
	tests := []struct {
		name    string
		buckets []domain.HistogramBucket
		err     error
		check   func(t *testing.T, state domain.ViewState[[]domain.HistogramBucket])
	}{
		{
			name: "faixas ausentes viram zero e a ordem é fixa",
			buckets: []domain.HistogramBucket{
				{Label: "901 and above", Count: 2},
				{Label: "0-100", Count: 5},
				{Label: "bogus", Count: 99},
			},
			check: func(t *testing.T, state domain.ViewState[[]domain.HistogramBucket]) {
				require.True(t, state.IsReady())
				require.Len(t, state.Data, len(domain.BucketLabels))
				for i, label := range domain.BucketLabels {
					assert.Equal(t, label, state.Data[i].Label)
				}
				assert.Equal(t, int64(5), state.Data[0].Count)
				assert.Equal(t, int64(0), state.Data[4].Count)
				assert.Equal(t, int64(2), state.Data[9].Count)
			},
		},
		{
			name: "resposta vazia gera as 10 faixas zeradas",
			check: func(t *testing.T, state domain.ViewState[[]domain.HistogramBucket]) {
				require.True(t, state.IsReady())
				require.Len(t, state.Data, 10)
				for _, b := range state.Data {
					assert.Zero(t, b.Count)
				}
			},
		},
		{
			name: "falha de transporte fica isolada no painel",
			err:  transportError(catalogdomain.OpPriceRange, 502),
			check: func(t *testing.T, state domain.ViewState[[]domain.HistogramBucket]) {
				require.True(t, state.IsFailed())
				assert.Equal(t, "Failed to fetch price range statistics", state.Reason)
				assert.Nil(t, state.Data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			integrator := mocks.NewMockCatalogIntegrator(ctrl)

			months, err := NewMonthSelector("03")
			require.NoError(t, err)

			integrator.EXPECT().
				GetPriceRangeHistogram(gomock.Any(), domain.MonthCode("03")).
				Return(tt.buckets, tt.err)

			v := NewHistogramView(context.Background(), integrator, months)
			defer v.Close()

			v.Mount()
			waitSettled(t, v)
			tt.check(t, v.State())
		})
	}
}

func TestMonthView_IgnoresStaleNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockCatalogIntegrator(ctrl)

	months, err := NewMonthSelector("03")
	require.NoError(t, err)

	integrator.EXPECT().
		GetStatistics(gomock.Any(), gomock.Any()).
		Return(&domain.StatisticsSummary{}, nil).
		Times(2)

	v := NewStatisticsView(context.Background(), integrator, months)
	defer v.Close()
	v.Mount()

	v.onMonthChange(domain.MonthChange{Code: "08", Version: 2})
	v.onMonthChange(domain.MonthChange{Code: "05", Version: 1})
	waitSettled(t, v)

	assert.Equal(t, domain.MonthCode("08"), v.Month())
}
