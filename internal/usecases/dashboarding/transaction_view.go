package dashboarding

import (
	"context"
	"sync"

	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog"
	"github.com/vfg2006/transaction-dashboard/internal/domain"
)

const transactionsView = "transactions"

// PageResetPolicy decide o que acontece com a página quando mês ou busca mudam
type PageResetPolicy int

const (
	// PageResetOnFilterChange volta para a página 1 na mesma atualização da tupla
	PageResetOnFilterChange PageResetPolicy = iota
	// PageKeepOnFilterChange mantém a página atual, mesmo fora do novo total
	PageKeepOnFilterChange
)

// TransactionView resolve (mês, busca, página) em uma página de transações.
// Uma busca é emitida sempre que a tupla muda por valor.
type TransactionView struct {
	mu           sync.Mutex
	query        domain.TransactionQuery
	monthVersion uint64
	policy       PageResetPolicy
	mounted      bool
	loader       *loader[domain.TransactionQuery, domain.TransactionPage]
}

func NewTransactionView(ctx context.Context, integrator catalog.CatalogIntegrator, months MonthSource, policy PageResetPolicy) *TransactionView {
	current := months.Current()

	v := &TransactionView{
		query: domain.TransactionQuery{
			Month: current.Code,
			Page:  1,
		},
		monthVersion: current.Version,
		policy:       policy,
	}

	v.loader = newLoader[domain.TransactionQuery, domain.TransactionPage](ctx, transactionsView, func(ctx context.Context, q domain.TransactionQuery) (domain.TransactionPage, error) {
		page, err := integrator.GetTransactions(ctx, q)
		if err != nil {
			return domain.TransactionPage{}, err
		}
		return *page, nil
	})

	months.Subscribe(v.onMonthChange)

	return v
}

// Mount emite a primeira busca (Idle -> Loading)
func (v *TransactionView) Mount() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.mounted {
		return
	}
	v.mounted = true
	v.loader.issue(v.query)
}

func (v *TransactionView) onMonthChange(change domain.MonthChange) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if change.Version <= v.monthVersion {
		return
	}
	v.monthVersion = change.Version

	next := v.query
	next.Month = change.Code
	v.applyFilterChangeLocked(&next)
	v.setQueryLocked(next)
}

// SetSearch troca o texto de busca; "" remove o filtro
func (v *TransactionView) SetSearch(search string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	next := v.query
	next.Search = search
	v.applyFilterChangeLocked(&next)
	return v.setQueryLocked(next)
}

func (v *TransactionView) NextPage() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.query.Page >= v.totalPagesLocked() {
		return ErrNoNextPage
	}

	next := v.query
	next.Page++
	v.setQueryLocked(next)
	return nil
}

func (v *TransactionView) PreviousPage() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.query.Page <= 1 {
		return ErrNoPreviousPage
	}

	next := v.query
	next.Page--
	v.setQueryLocked(next)
	return nil
}

// Refresh reemite a busca da tupla atual
func (v *TransactionView) Refresh() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.mounted {
		v.loader.issue(v.query)
	}
}

func (v *TransactionView) Query() domain.TransactionQuery {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query
}

func (v *TransactionView) State() domain.ViewState[domain.TransactionPage] {
	return v.loader.State()
}

// TotalPages é o último total conhecido; 1 até o primeiro Ready
func (v *TransactionView) TotalPages() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.totalPagesLocked()
}

func (v *TransactionView) HasNext() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query.Page < v.totalPagesLocked()
}

func (v *TransactionView) HasPrevious() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query.Page > 1
}

func (v *TransactionView) Snapshot() domain.TransactionSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	total := v.totalPagesLocked()
	return domain.TransactionSnapshot{
		Query:       v.query,
		TotalPages:  total,
		HasPrevious: v.query.Page > 1,
		HasNext:     v.query.Page < total,
		State:       v.loader.State(),
	}
}

func (v *TransactionView) Wait(ctx context.Context) error {
	return v.loader.Wait(ctx)
}

func (v *TransactionView) Close() {
	v.loader.Close()
}

func (v *TransactionView) applyFilterChangeLocked(next *domain.TransactionQuery) {
	if v.policy == PageResetOnFilterChange && (next.Month != v.query.Month || next.Search != v.query.Search) {
		next.Page = 1
	}
}

func (v *TransactionView) setQueryLocked(next domain.TransactionQuery) bool {
	if next == v.query {
		return false
	}
	v.query = next
	if v.mounted {
		v.loader.issue(next)
	}
	return true
}

func (v *TransactionView) totalPagesLocked() int {
	page, ok := v.loader.lastReady()
	if !ok || page.Pagination.TotalPages < 1 {
		return 1
	}
	return page.Pagination.TotalPages
}
