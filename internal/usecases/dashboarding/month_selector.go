package dashboarding

import (
	"sync"

	"github.com/vfg2006/transaction-dashboard/internal/domain"
	"github.com/vfg2006/transaction-dashboard/pkg/log"
)

// MonthSource é a visão somente leitura do seletor de mês entregue aos painéis
type MonthSource interface {
	Current() domain.MonthChange
	Subscribe(fn func(domain.MonthChange))
}

// MonthSelector guarda o único filtro compartilhado. Só o Composer escreve.
type MonthSelector struct {
	mu          sync.Mutex
	current     domain.MonthCode
	version     uint64
	subscribers []func(domain.MonthChange)
}

func NewMonthSelector(initial domain.MonthCode) (*MonthSelector, error) {
	if !initial.Valid() {
		return nil, domain.ErrInvalidMonth
	}
	return &MonthSelector{current: initial}, nil
}

func (s *MonthSelector) Current() domain.MonthChange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.MonthChange{Code: s.current, Version: s.version}
}

func (s *MonthSelector) Subscribe(fn func(domain.MonthChange)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// SetMonth troca o mês e notifica os assinantes fora do lock. Código inválido
// não é armazenado; o mesmo mês de novo não gera notificação.
func (s *MonthSelector) SetMonth(code domain.MonthCode) (bool, error) {
	if !code.Valid() {
		return false, domain.ErrInvalidMonth
	}

	s.mu.Lock()
	if code == s.current {
		s.mu.Unlock()
		return false, nil
	}
	s.version++
	change := domain.MonthChange{Code: code, Version: s.version}
	s.current = code
	subscribers := make([]func(domain.MonthChange), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	log.L.WithFields(log.Fields{
		"month":        code,
		"view_version": change.Version,
	}).Debug("dashboard: month changed")

	for _, fn := range subscribers {
		fn(change)
	}

	return true, nil
}
