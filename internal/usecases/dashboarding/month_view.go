package dashboarding

import (
	"context"
	"sync"

	"github.com/vfg2006/transaction-dashboard/internal/domain"
)

// monthView é a base dos painéis que dependem apenas do mês
type monthView[T any] struct {
	mu           sync.Mutex
	month        domain.MonthCode
	monthVersion uint64
	mounted      bool
	loader       *loader[domain.MonthCode, T]
}

func newMonthView[T any](ctx context.Context, view string, months MonthSource, fetch fetchFunc[domain.MonthCode, T]) *monthView[T] {
	current := months.Current()

	v := &monthView[T]{
		month:        current.Code,
		monthVersion: current.Version,
		loader:       newLoader[domain.MonthCode, T](ctx, view, fetch),
	}

	months.Subscribe(v.onMonthChange)

	return v
}

func (v *monthView[T]) Mount() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.mounted {
		return
	}
	v.mounted = true
	v.loader.issue(v.month)
}

func (v *monthView[T]) onMonthChange(change domain.MonthChange) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if change.Version <= v.monthVersion {
		return
	}
	v.monthVersion = change.Version

	if change.Code == v.month {
		return
	}
	v.month = change.Code
	if v.mounted {
		v.loader.issue(change.Code)
	}
}

func (v *monthView[T]) Refresh() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.mounted {
		v.loader.issue(v.month)
	}
}

func (v *monthView[T]) Month() domain.MonthCode {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.month
}

func (v *monthView[T]) State() domain.ViewState[T] {
	return v.loader.State()
}

func (v *monthView[T]) Wait(ctx context.Context) error {
	return v.loader.Wait(ctx)
}

func (v *monthView[T]) Close() {
	v.loader.Close()
}
