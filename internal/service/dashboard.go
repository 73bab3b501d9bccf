package service

import (
	"context"
	"fmt"
	"time"

	"condo-maintenance-backend/internal/cache"
	"condo-maintenance-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DueSoonWindow is how far ahead the dashboard counts maintenance plans
const DueSoonWindow = 7 * 24 * time.Hour

// DashboardSummary is the condominium overview
type DashboardSummary struct {
	OpenTickets       int64     `json:"chamados_abertos"`
	OpenWorkOrders    int64     `json:"os_abertas"`
	OverdueConformity int64     `json:"conformidade_vencida"`
	PlansDueSoon      int64     `json:"manutencoes_proximas"`
	GeneratedAt       time.Time `json:"gerado_em"`
}

// DashboardService aggregates counters across resources
type DashboardService struct {
	tickets    repository.TicketRepositoryInterface
	workOrders repository.WorkOrderRepositoryInterface
	conformity repository.ConformityItemRepositoryInterface
	plans      repository.MaintenancePlanRepositoryInterface
	deps       Deps
}

var _ DashboardServiceInterface = (*DashboardService)(nil)

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	tickets repository.TicketRepositoryInterface,
	workOrders repository.WorkOrderRepositoryInterface,
	conformity repository.ConformityItemRepositoryInterface,
	plans repository.MaintenancePlanRepositoryInterface,
	deps Deps,
) *DashboardService {
	return &DashboardService{tickets: tickets, workOrders: workOrders, conformity: conformity, plans: plans, deps: deps.withDefaults()}
}

// Summary runs the four counts concurrently; any failure fails the summary
func (s *DashboardService) Summary(ctx context.Context, condominiumID uuid.UUID) (*DashboardSummary, error) {
	key := cache.Key(resourceDashboard, condominiumID, "summary")
	return cache.Fetch(ctx, s.deps.Cache, key, func(ctx context.Context) (*DashboardSummary, error) {
		now := s.deps.Now()
		sum := &DashboardSummary{GeneratedAt: now}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			sum.OpenTickets, err = s.tickets.CountOpen(gctx, condominiumID)
			return wrapCount("open tickets", err)
		})
		g.Go(func() (err error) {
			sum.OpenWorkOrders, err = s.workOrders.CountOpen(gctx, condominiumID)
			return wrapCount("open work orders", err)
		})
		g.Go(func() (err error) {
			sum.OverdueConformity, err = s.conformity.CountOverdue(gctx, condominiumID, now)
			return wrapCount("overdue conformity items", err)
		})
		g.Go(func() (err error) {
			sum.PlansDueSoon, err = s.plans.CountDueBefore(gctx, condominiumID, now.Add(DueSoonWindow))
			return wrapCount("plans due soon", err)
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return sum, nil
	})
}

func wrapCount(what string, err error) error {
	if err != nil {
		return fmt.Errorf("failed to count %s: %w", what, err)
	}
	return nil
}
