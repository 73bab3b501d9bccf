package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"condo-maintenance-backend/internal/cache"
	"condo-maintenance-backend/internal/database/models"
	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/events"
	"condo-maintenance-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// slaHours maps ticket priority to the hours allowed before the SLA breaks
var slaHours = map[models.Priority]int{
	models.PriorityUrgent: 4,
	models.PriorityHigh:   24,
	models.PriorityMedium: 72,
	models.PriorityLow:    168,
}

// SLADeadline is when a ticket of priority opened at openedAt must be resolved
func SLADeadline(priority models.Priority, openedAt time.Time) time.Time {
	hours, ok := slaHours[priority]
	if !ok {
		hours = slaHours[models.PriorityMedium]
	}
	return openedAt.Add(time.Duration(hours) * time.Hour)
}

// TicketService manages chamados
type TicketService struct {
	repo       repository.TicketRepositoryInterface
	workOrders *WorkOrderService
	orders     repository.WorkOrderRepositoryInterface
	assets     repository.AssetRepositoryInterface
	deps       Deps
}

var _ TicketServiceInterface = (*TicketService)(nil)

// NewTicketService creates a new ticket service. Conversions number their
// work orders through workOrders.
func NewTicketService(repo repository.TicketRepositoryInterface, orders repository.WorkOrderRepositoryInterface, assets repository.AssetRepositoryInterface, workOrders *WorkOrderService, deps Deps) *TicketService {
	return &TicketService{repo: repo, orders: orders, assets: assets, workOrders: workOrders, deps: deps.withDefaults()}
}

// TicketQuery filters ticket listings
type TicketQuery struct {
	Pagination
	Status   models.TicketStatus `form:"status"`
	Priority models.Priority     `form:"prioridade"`
	OpenedBy *uuid.UUID          `form:"-"`
}

// OpenTicketRequest is the body of a new chamado
type OpenTicketRequest struct {
	AssetID     *uuid.UUID      `json:"ativo_id,omitempty"`
	Title       string          `json:"titulo" validate:"required,max=200"`
	Description string          `json:"descricao" validate:"required"`
	Location    string          `json:"local,omitempty" validate:"max=200"`
	Priority    models.Priority `json:"prioridade,omitempty"`
}

// TicketStatusRequest changes a ticket's status
type TicketStatusRequest struct {
	Status models.TicketStatus `json:"status" validate:"required"`
}

// TicketView is a ticket plus its derived SLA state
type TicketView struct {
	models.Ticket
	Overdue bool `json:"sla_vencido"`
}

func (s *TicketService) view(t models.Ticket) TicketView {
	overdue := t.Status.IsOpen() && s.deps.Now().After(t.SLADeadline)
	return TicketView{Ticket: t, Overdue: overdue}
}

// List returns the condominium's tickets, newest first
func (s *TicketService) List(ctx context.Context, condominiumID uuid.UUID, q TicketQuery) (*Page[TicketView], error) {
	limit, offset := q.normalize()
	key := cache.Key(resourceTickets, condominiumID, fmt.Sprintf("%s|%s|%s|%d|%d", q.Status, q.Priority, optionalID(q.OpenedBy), limit, offset))

	page, err := cache.Fetch(ctx, s.deps.Cache, key, func(ctx context.Context) (*Page[models.Ticket], error) {
		tickets, total, err := s.repo.List(ctx, condominiumID, repository.TicketFilter{
			Status: q.Status, Priority: q.Priority, OpenedBy: q.OpenedBy, Limit: limit, Offset: offset,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list tickets: %w", err)
		}
		return &Page[models.Ticket]{Items: tickets, Total: total, Page: q.Page, PageSize: q.PageSize}, nil
	})
	if err != nil {
		return nil, err
	}

	// SLA state depends on the clock, so it is derived after the cache
	views := make([]TicketView, len(page.Items))
	for i, t := range page.Items {
		views[i] = s.view(t)
	}
	return &Page[TicketView]{Items: views, Total: page.Total, Page: page.Page, PageSize: page.PageSize}, nil
}

// Get returns one ticket
func (s *TicketService) Get(ctx context.Context, condominiumID, id uuid.UUID) (*TicketView, error) {
	t, err := s.repo.GetByID(ctx, condominiumID, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrTicketNotFound, "get ticket")
	}
	v := s.view(*t)
	return &v, nil
}

// Open files a new ticket and computes its SLA deadline
func (s *TicketService) Open(ctx context.Context, condominiumID, openedBy uuid.UUID, req *OpenTicketRequest) (*TicketView, error) {
	if err := s.deps.validate(req); err != nil {
		return nil, err
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if !req.Priority.IsValid() {
		return nil, apperrors.NewValidationError("prioridade", fmt.Sprintf("unknown priority %q", req.Priority))
	}
	if err := checkAsset(ctx, s.assets, condominiumID, req.AssetID); err != nil {
		return nil, err
	}

	now := s.deps.Now()
	t := &models.Ticket{
		TenantScoped: models.TenantScoped{CondominiumID: condominiumID},
		AssetID:      req.AssetID,
		OpenedBy:     openedBy,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Priority:     req.Priority,
		Status:       models.TicketStatusOpen,
		SLADeadline:  SLADeadline(req.Priority, now),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to open ticket: %w", err)
	}

	s.deps.invalidate(ctx, condominiumID, resourceTickets)
	s.deps.publish(ctx, events.TicketOpened, condominiumID, t.ID, map[string]any{
		"prioridade": t.Priority,
		"prazo_sla":  t.SLADeadline.UTC().Format(time.RFC3339),
	})
	v := s.view(*t)
	return &v, nil
}

// UpdateStatus moves a ticket to another status
func (s *TicketService) UpdateStatus(ctx context.Context, condominiumID, id uuid.UUID, req *TicketStatusRequest) (*TicketView, error) {
	if err := s.deps.validate(req); err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", req.Status))
	}

	t, err := s.repo.GetByID(ctx, condominiumID, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrTicketNotFound, "get ticket")
	}
	if t.Status == models.TicketStatusClosed && req.Status != models.TicketStatusClosed {
		return nil, fmt.Errorf("%w: ticket is closed", apperrors.ErrInvalidStatusTransition)
	}

	t.Status = req.Status
	switch {
	case !req.Status.IsOpen() && t.ResolvedAt == nil:
		now := s.deps.Now()
		t.ResolvedAt = &now
	case req.Status.IsOpen():
		t.ResolvedAt = nil
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}
	s.deps.invalidate(ctx, condominiumID, resourceTickets)
	v := s.view(*t)
	return &v, nil
}

// ConvertToWorkOrder opens a numbered work order for the ticket and puts the
// ticket in progress. A ticket converts at most once.
func (s *TicketService) ConvertToWorkOrder(ctx context.Context, condominiumID, id uuid.UUID) (*models.WorkOrder, error) {
	t, err := s.repo.GetByID(ctx, condominiumID, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrTicketNotFound, "get ticket")
	}
	if !t.Status.IsOpen() {
		return nil, fmt.Errorf("%w: ticket is %s", apperrors.ErrInvalidStatusTransition, t.Status)
	}

	existing, err := s.orders.GetByTicket(ctx, condominiumID, id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing work order: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrWorkOrderExists
	}

	ticketID := t.ID
	t.Status = models.TicketStatusInProgress
	order, err := s.workOrders.store(ctx, &models.WorkOrder{
		CondominiumID: condominiumID,
		TicketID:      &ticketID,
		AssetID:       t.AssetID,
		Title:         t.Title,
		Description:   t.Description,
		Priority:      t.Priority,
		Status:        models.WorkOrderStatusOpen,
	}, func(ctx context.Context, order *models.WorkOrder, year int) error {
		return s.orders.ConvertTicket(ctx, t, order, year)
	})
	if err != nil {
		return nil, err
	}

	s.deps.invalidate(ctx, condominiumID, resourceTickets)
	s.deps.publish(ctx, events.TicketConverted, condominiumID, t.ID, map[string]any{
		"os_id":  order.ID.String(),
		"numero": order.Number,
	})
	return order, nil
}
