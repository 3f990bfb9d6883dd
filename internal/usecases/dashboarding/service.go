package dashboarding

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transaction-dashboard/infrastructure/integrator/catalog"
	"github.com/vfg2006/transaction-dashboard/infrastructure/repository"
	"github.com/vfg2006/transaction-dashboard/internal/config"
	"github.com/vfg2006/transaction-dashboard/internal/domain"
	"github.com/vfg2006/transaction-dashboard/pkg/apiErrors"
	"github.com/vfg2006/transaction-dashboard/pkg/log"
	"github.com/vfg2006/transaction-dashboard/pkg/utils"
)

var (
	ErrSessionNotFound = errors.New("dashboard session not found")
	ErrGenerateID      = errors.New("failed to generate session id")
)

// DashboardService expõe as sessões de dashboard para a camada HTTP.
// Toda operação devolve o view-model resolvido logo após aplicar a intenção.
type DashboardService interface {
	Create(ctx context.Context, month string) (*domain.DashboardView, error)
	View(ctx context.Context, id string, wait bool) (*domain.DashboardView, error)
	SetMonth(ctx context.Context, id, month string) (*domain.DashboardView, error)
	SetSearch(ctx context.Context, id, search string) (*domain.DashboardView, error)
	NextPage(ctx context.Context, id string) (*domain.DashboardView, error)
	PreviousPage(ctx context.Context, id string) (*domain.DashboardView, error)
	Refresh(ctx context.Context, id string) (*domain.DashboardView, error)
	Close(ctx context.Context, id string) error
	Months() []domain.MonthOption
	Sessions() int
	Shutdown()
}

type Service struct {
	integrator    catalog.CatalogIntegrator
	sessions      repository.SessionRepository[*Composer]
	defaultMonth  domain.MonthCode
	pageReset     PageResetPolicy
	settleTimeout time.Duration
	generateID    func() (string, error)
}

func NewService(cfg *config.Config, integrator catalog.CatalogIntegrator, sessions repository.SessionRepository[*Composer]) DashboardService {
	policy := PageResetOnFilterChange
	if !cfg.Dashboard.PageReset {
		policy = PageKeepOnFilterChange
	}

	return &Service{
		integrator:    integrator,
		sessions:      sessions,
		defaultMonth:  domain.MonthCode(cfg.Dashboard.DefaultMonth),
		pageReset:     policy,
		settleTimeout: cfg.Dashboard.SettleTimeout,
		generateID:    utils.GenerateID,
	}
}

// Create monta uma nova sessão; month vazio usa o mês padrão
func (s *Service) Create(ctx context.Context, month string) (*domain.DashboardView, error) {
	initial := s.defaultMonth
	if month != "" {
		initial = domain.MonthCode(month)
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewDashboardError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	composer, err := NewComposer(s.integrator, Options{
		InitialMonth: initial,
		PageReset:    s.pageReset,
	})
	if err != nil {
		return nil, err
	}

	composer.Mount()
	s.sessions.Save(id, composer)

	log.ForContext(log.WithSessionID(ctx, id)).WithField("month", initial).Info("dashboard: session created")

	return s.present(id, composer), nil
}

func (s *Service) View(ctx context.Context, id string, wait bool) (*domain.DashboardView, error) {
	composer, err := s.session(id)
	if err != nil {
		return nil, err
	}

	if wait {
		waitCtx, cancel := context.WithTimeout(ctx, s.settleTimeout)
		defer cancel()

		if err := composer.AwaitSettled(waitCtx); err != nil {
			// devolve o estado atual mesmo sem todas as visões assentadas
			log.ForContext(log.WithSessionID(ctx, id)).WithError(err).Warn("dashboard: views did not settle in time")
		}
	}

	return s.present(id, composer), nil
}

func (s *Service) SetMonth(ctx context.Context, id, month string) (*domain.DashboardView, error) {
	return s.apply(ctx, id, "set_month", func(c *Composer) error {
		return c.SetMonth(domain.MonthCode(month))
	})
}

func (s *Service) SetSearch(ctx context.Context, id, search string) (*domain.DashboardView, error) {
	return s.apply(ctx, id, "set_search", func(c *Composer) error {
		return c.SetSearch(search)
	})
}

func (s *Service) NextPage(ctx context.Context, id string) (*domain.DashboardView, error) {
	return s.apply(ctx, id, "next_page", (*Composer).NextPage)
}

func (s *Service) PreviousPage(ctx context.Context, id string) (*domain.DashboardView, error) {
	return s.apply(ctx, id, "previous_page", (*Composer).PreviousPage)
}

func (s *Service) Refresh(ctx context.Context, id string) (*domain.DashboardView, error) {
	return s.apply(ctx, id, "refresh", (*Composer).Refresh)
}

// Close encerra a sessão; as buscas pendentes são canceladas no despejo
func (s *Service) Close(ctx context.Context, id string) error {
	if !s.sessions.Delete(id) {
		return NewDashboardError(ErrSessionNotFound, apiErrors.ErrDashboardNotFound, fmt.Sprintf("session %q", id))
	}

	log.ForContext(log.WithSessionID(ctx, id)).Info("dashboard: session closed")
	return nil
}

func (s *Service) Months() []domain.MonthOption {
	return MonthOptions()
}

// Sessions é o número de sessões abertas
func (s *Service) Sessions() int {
	return s.sessions.Count()
}

// Shutdown fecha todas as sessões abertas
func (s *Service) Shutdown() {
	logrus.WithField("sessions", s.sessions.Count()).Info("dashboard: closing all sessions")
	s.sessions.Flush()
}

func (s *Service) apply(ctx context.Context, id string, intent string, fn func(*Composer) error) (*domain.DashboardView, error) {
	composer, err := s.session(id)
	if err != nil {
		return nil, err
	}

	if err := fn(composer); err != nil {
		if errors.Is(err, ErrDashboardClosed) {
			return nil, NewDashboardError(err, apiErrors.ErrDashboardClosed, fmt.Sprintf("session %q", id))
		}
		return nil, err
	}

	log.ForContext(log.WithSessionID(ctx, id)).WithField("view_intent", intent).Debug("dashboard: intent applied")

	return s.present(id, composer), nil
}

func (s *Service) session(id string) (*Composer, error) {
	composer, found := s.sessions.Get(id)
	if !found {
		return nil, NewDashboardError(ErrSessionNotFound, apiErrors.ErrDashboardNotFound, fmt.Sprintf("session %q", id))
	}
	return composer, nil
}

func (s *Service) present(id string, composer *Composer) *domain.DashboardView {
	view := Present(composer.Snapshot())
	view.SessionID = id
	return &view
}
