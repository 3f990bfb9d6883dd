package dashboarding

import (
	"context"
	"errors"
	"sync"

	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog/catalogdomain"
	"github.com/vfg2006/transaction-dashboard/internal/domain"
	"github.com/vfg2006/transaction-dashboard/pkg/log"
)

type fetchFunc[K comparable, T any] func(ctx context.Context, key K) (T, error)

// loader é a máquina de estados compartilhada pelos três painéis.
//
// Cada chamada a issue recebe um número de sequência crescente; só a
// resposta cuja sequência ainda é a última emitida altera o estado. As
// anteriores têm o contexto cancelado e, se mesmo assim terminarem, são
// descartadas.
type loader[K comparable, T any] struct {
	view   string
	fetch  fetchFunc[K, T]
	parent context.Context
	logger log.Logger

	mu       sync.Mutex
	seq      uint64
	cancel   context.CancelFunc
	state    domain.ViewState[T]
	last     T
	hasLast  bool
	settled  chan struct{}
	pending  bool
	closed   bool
	inflight sync.WaitGroup
}

func newLoader[K comparable, T any](parent context.Context, view string, fetch fetchFunc[K, T]) *loader[K, T] {
	settled := make(chan struct{})
	close(settled)

	return &loader[K, T]{
		view:    view,
		fetch:   fetch,
		parent:  parent,
		logger:  log.ForView(view),
		state:   domain.Idle[T](),
		settled: settled,
	}
}

// issue registra key como a requisição mais recente e a dispara sem bloquear.
// O estado passa a Loading antes de issue retornar.
func (l *loader[K, T]) issue(key K) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return 0
	}

	if l.cancel != nil {
		l.cancel()
	}

	l.seq++
	seq := l.seq

	ctx, cancel := context.WithCancel(l.parent)
	l.cancel = cancel
	l.state = domain.Loading[T](seq)

	if !l.pending {
		l.settled = make(chan struct{})
		l.pending = true
	}

	l.logger.WithFields(log.Fields{
		"seq":      seq,
		"view_key": key,
	}).Debug("dashboard: request issued")

	l.inflight.Add(1)
	go l.run(ctx, cancel, seq, key)

	return seq
}

func (l *loader[K, T]) run(ctx context.Context, cancel context.CancelFunc, seq uint64, key K) {
	defer l.inflight.Done()
	defer cancel()

	data, err := l.fetch(ctx, key)
	l.apply(seq, data, err)
}

// apply aplica a resposta da requisição seq, se ela ainda for a mais recente
func (l *loader[K, T]) apply(seq uint64, data T, err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return false
	}

	if seq != l.seq {
		l.logger.WithFields(log.Fields{
			"seq":         seq,
			"view_latest": l.seq,
		}).Debug("dashboard: discarding stale response")
		return false
	}

	if err != nil {
		reason := failureReason(err)
		l.state = domain.Failed[T](seq, reason, err)
		l.logger.WithError(err).WithField("seq", seq).Warn("dashboard: request failed")
	} else {
		l.state = domain.Ready(seq, data)
		l.last = data
		l.hasLast = true
		l.logger.WithField("seq", seq).Debug("dashboard: request applied")
	}

	l.cancel = nil
	if l.pending {
		close(l.settled)
		l.pending = false
	}

	return true
}

func (l *loader[K, T]) State() domain.ViewState[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// lastReady devolve o último payload Ready visto, mesmo que o estado atual
// seja Loading ou Failed. Não é estado autoritativo.
func (l *loader[K, T]) lastReady() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last, l.hasLast
}

// Wait bloqueia até a requisição mais recente (no momento da chamada) ser aplicada
func (l *loader[K, T]) Wait(ctx context.Context) error {
	l.mu.Lock()
	ch := l.settled
	l.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancela a requisição pendente e espera todas as goroutines terminarem
func (l *loader[K, T]) Close() {
	l.mu.Lock()
	l.closed = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	if l.pending {
		close(l.settled)
		l.pending = false
	}
	l.mu.Unlock()

	l.inflight.Wait()
}

// failureReason é a mensagem exibida no painel em Failed
func failureReason(err error) string {
	var transportErr *catalogdomain.TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Message()
	}
	return err.Error()
}
