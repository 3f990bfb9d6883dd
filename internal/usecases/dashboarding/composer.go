package dashboarding

import (
	"context"
	"fmt"
	"sync"

	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog"
	"github.com/vfg2006/transaction-dashboard/internal/domain"
	"github.com/vfg2006/transaction-dashboard/pkg/apiErrors"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	InitialMonth domain.MonthCode
	PageReset    PageResetPolicy
}

// Composer é dono do seletor de mês e das três visões. É o único componente
// que pode trocar o mês.
type Composer struct {
	ctx    context.Context
	cancel context.CancelFunc

	selector     *MonthSelector
	transactions *TransactionView
	statistics   *StatisticsView
	histogram    *HistogramView

	closeOnce sync.Once
}

func NewComposer(integrator catalog.CatalogIntegrator, opts Options) (*Composer, error) {
	if opts.InitialMonth == "" {
		opts.InitialMonth = domain.DefaultMonth
	}

	selector, err := NewMonthSelector(opts.InitialMonth)
	if err != nil {
		return nil, NewDashboardError(err, apiErrors.ErrInvalidFormat, fmt.Sprintf("initial month %q", opts.InitialMonth))
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Composer{
		ctx:          ctx,
		cancel:       cancel,
		selector:     selector,
		transactions: NewTransactionView(ctx, integrator, selector, opts.PageReset),
		statistics:   NewStatisticsView(ctx, integrator, selector),
		histogram:    NewHistogramView(ctx, integrator, selector),
	}, nil
}

// Mount dispara a primeira busca das três visões
func (c *Composer) Mount() {
	c.transactions.Mount()
	c.statistics.Mount()
	c.histogram.Mount()
}

func (c *Composer) Month() domain.MonthCode {
	return c.selector.Current().Code
}

// SetMonth propaga o novo mês para as três visões
func (c *Composer) SetMonth(code domain.MonthCode) error {
	if c.ctx.Err() != nil {
		return ErrDashboardClosed
	}

	if _, err := c.selector.SetMonth(code); err != nil {
		return NewDashboardError(err, apiErrors.ErrInvalidFormat, fmt.Sprintf("month %q, expected 01..12", code))
	}
	return nil
}

func (c *Composer) SetSearch(search string) error {
	if c.ctx.Err() != nil {
		return ErrDashboardClosed
	}
	c.transactions.SetSearch(search)
	return nil
}

func (c *Composer) NextPage() error {
	if c.ctx.Err() != nil {
		return ErrDashboardClosed
	}
	if err := c.transactions.NextPage(); err != nil {
		return NewDashboardError(err, apiErrors.ErrPageUnavailable, "")
	}
	return nil
}

func (c *Composer) PreviousPage() error {
	if c.ctx.Err() != nil {
		return ErrDashboardClosed
	}
	if err := c.transactions.PreviousPage(); err != nil {
		return NewDashboardError(err, apiErrors.ErrPageUnavailable, "")
	}
	return nil
}

// Refresh reemite as buscas atuais das três visões; é a única forma de
// "tentar de novo" além de mudar um filtro
func (c *Composer) Refresh() error {
	if c.ctx.Err() != nil {
		return ErrDashboardClosed
	}
	c.transactions.Refresh()
	c.statistics.Refresh()
	c.histogram.Refresh()
	return nil
}

func (c *Composer) Transactions() *TransactionView { return c.transactions }
func (c *Composer) Statistics() *StatisticsView    { return c.statistics }
func (c *Composer) Histogram() *HistogramView      { return c.histogram }

func (c *Composer) Snapshot() domain.DashboardSnapshot {
	return domain.DashboardSnapshot{
		Month:        c.Month(),
		Transactions: c.transactions.Snapshot(),
		Statistics:   c.statistics.State(),
		Histogram:    c.histogram.State(),
	}
}

// AwaitSettled espera cada visão aplicar sua requisição mais recente
func (c *Composer) AwaitSettled(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.transactions.Wait(gctx) })
	g.Go(func() error { return c.statistics.Wait(gctx) })
	g.Go(func() error { return c.histogram.Wait(gctx) })
	return g.Wait()
}

// Close cancela as buscas em andamento e espera as goroutines terminarem
func (c *Composer) Close() {
	c.closeOnce.Do(func() {
		c.cancel()
		c.transactions.Close()
		c.statistics.Close()
		c.histogram.Close()
	})
}
