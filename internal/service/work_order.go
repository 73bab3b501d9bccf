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
	"condo-maintenance-backend/internal/logger"
	"condo-maintenance-backend/internal/numbering"
	"condo-maintenance-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkOrderService manages OS records
type WorkOrderService struct {
	repo    repository.WorkOrderRepositoryInterface
	tickets repository.TicketRepositoryInterface
	assets  repository.AssetRepositoryInterface
	plans   repository.MaintenancePlanRepositoryInterface
	deps    Deps
}

var _ WorkOrderServiceInterface = (*WorkOrderService)(nil)

// NewWorkOrderService creates a new work order service. The other
// repositories resolve the ticket, asset and plan an order may point at.
func NewWorkOrderService(
	repo repository.WorkOrderRepositoryInterface,
	tickets repository.TicketRepositoryInterface,
	assets repository.AssetRepositoryInterface,
	plans repository.MaintenancePlanRepositoryInterface,
	deps Deps,
) *WorkOrderService {
	return &WorkOrderService{repo: repo, tickets: tickets, assets: assets, plans: plans, deps: deps.withDefaults()}
}

// WorkOrderQuery filters work order listings
type WorkOrderQuery struct {
	Pagination
	Status   models.WorkOrderStatus `form:"status"`
	Priority models.Priority        `form:"prioridade"`
	TicketID *uuid.UUID             `form:"-"`
}

// CreateWorkOrderRequest is the body of OS creation. The number is assigned by the server.
type CreateWorkOrderRequest struct {
	TicketID          *uuid.UUID      `json:"chamado_id,omitempty"`
	AssetID           *uuid.UUID      `json:"ativo_id,omitempty"`
	MaintenancePlanID *uuid.UUID      `json:"manutencao_id,omitempty"`
	Title             string          `json:"titulo" validate:"required,max=200"`
	Description       string          `json:"descricao,omitempty"`
	Priority          models.Priority `json:"prioridade,omitempty"`
	Assignee          string          `json:"responsavel,omitempty" validate:"max=200"`
	ScheduledFor      *time.Time      `json:"data_prevista,omitempty"`
	EstimatedCost     float64         `json:"custo_previsto,omitempty" validate:"gte=0"`
}

// UpdateWorkOrderRequest edits an OS without touching its number or status
type UpdateWorkOrderRequest struct {
	Title         string          `json:"titulo" validate:"required,max=200"`
	Description   string          `json:"descricao,omitempty"`
	Priority      models.Priority `json:"prioridade" validate:"required"`
	Assignee      string          `json:"responsavel,omitempty" validate:"max=200"`
	ScheduledFor  *time.Time      `json:"data_prevista,omitempty"`
	EstimatedCost float64         `json:"custo_previsto,omitempty" validate:"gte=0"`
	ActualCost    float64         `json:"custo_realizado,omitempty" validate:"gte=0"`
}

// TransitionRequest moves an OS to another status
type TransitionRequest struct {
	Status     models.WorkOrderStatus `json:"status" validate:"required"`
	ActualCost *float64               `json:"custo_realizado,omitempty" validate:"omitempty,gte=0"`
}

// List returns the condominium's work orders, newest number first
func (s *WorkOrderService) List(ctx context.Context, condominiumID uuid.UUID, q WorkOrderQuery) (*Page[models.WorkOrder], error) {
	limit, offset := q.normalize()
	key := cache.Key(resourceWorkOrders, condominiumID, fmt.Sprintf("%s|%s|%s|%d|%d", q.Status, q.Priority, optionalID(q.TicketID), limit, offset))

	return cache.Fetch(ctx, s.deps.Cache, key, func(ctx context.Context) (*Page[models.WorkOrder], error) {
		orders, total, err := s.repo.List(ctx, condominiumID, repository.WorkOrderFilter{
			Status: q.Status, Priority: q.Priority, TicketID: q.TicketID, Limit: limit, Offset: offset,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list work orders: %w", err)
		}
		return &Page[models.WorkOrder]{Items: orders, Total: total, Page: q.Page, PageSize: q.PageSize}, nil
	})
}

// Get returns one work order
func (s *WorkOrderService) Get(ctx context.Context, condominiumID, id uuid.UUID) (*models.WorkOrder, error) {
	order, err := s.repo.GetByID(ctx, condominiumID, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrWorkOrderNotFound, "get work order")
	}
	return order, nil
}

// Create numbers and stores a new work order
func (s *WorkOrderService) Create(ctx context.Context, condominiumID uuid.UUID, req *CreateWorkOrderRequest) (*models.WorkOrder, error) {
	if err := s.deps.validate(req); err != nil {
		return nil, err
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if !req.Priority.IsValid() {
		return nil, apperrors.NewValidationError("prioridade", fmt.Sprintf("unknown priority %q", req.Priority))
	}
	if err := s.checkReferences(ctx, condominiumID, req); err != nil {
		return nil, err
	}

	order := &models.WorkOrder{
		CondominiumID:     condominiumID,
		TicketID:          req.TicketID,
		AssetID:           req.AssetID,
		MaintenancePlanID: req.MaintenancePlanID,
		Title:             req.Title,
		Description:       req.Description,
		Priority:          req.Priority,
		Status:            models.WorkOrderStatusOpen,
		Assignee:          req.Assignee,
		ScheduledFor:      req.ScheduledFor,
		EstimatedCost:     req.EstimatedCost,
	}
	if req.ScheduledFor != nil {
		order.Status = models.WorkOrderStatusScheduled
	}
	return s.store(ctx, order, s.repo.CreateNumbered)
}

// checkReferences resolves every id the order points at inside the
// condominium. A ticket may back a single order.
func (s *WorkOrderService) checkReferences(ctx context.Context, condominiumID uuid.UUID, req *CreateWorkOrderRequest) error {
	if req.TicketID != nil {
		if _, err := s.tickets.GetByID(ctx, condominiumID, *req.TicketID); err != nil {
			return lookup(err, apperrors.ErrTicketNotFound, "get ticket")
		}
		existing, err := s.repo.GetByTicket(ctx, condominiumID, *req.TicketID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing work order: %w", err)
		}
		if existing != nil {
			return apperrors.ErrWorkOrderExists
		}
	}
	if err := checkAsset(ctx, s.assets, condominiumID, req.AssetID); err != nil {
		return err
	}
	if req.MaintenancePlanID != nil {
		if _, err := s.plans.GetByID(ctx, condominiumID, *req.MaintenancePlanID); err != nil {
			return lookup(err, apperrors.ErrMaintenancePlanNotFound, "get maintenance plan")
		}
	}
	return nil
}

// store numbers and inserts the order through insert; ticket conversion
// passes its own insert so the ticket update commits with the order.
func (s *WorkOrderService) store(ctx context.Context, order *models.WorkOrder, insert func(context.Context, *models.WorkOrder, int) error) (*models.WorkOrder, error) {
	if err := insert(ctx, order, s.deps.Now().Year()); err != nil {
		if errors.Is(err, repository.ErrTicketConverted) {
			return nil, apperrors.ErrWorkOrderExists
		}
		return nil, fmt.Errorf("failed to create work order: %w", err)
	}
	// the stored number is returned as generated, only its shape is checked
	if _, err := numbering.Validate(order.Number); err != nil {
		logger.WithContext(ctx).WithError(err).Error("work order stored with malformed number")
		return nil, err
	}

	s.deps.invalidate(ctx, order.CondominiumID, resourceWorkOrders)
	s.deps.publish(ctx, events.WorkOrderCreated, order.CondominiumID, order.ID, map[string]any{
		"numero":     order.Number,
		"prioridade": order.Priority,
		"chamado_id": optionalID(order.TicketID),
	})
	return order, nil
}

// Update edits descriptive fields
func (s *WorkOrderService) Update(ctx context.Context, condominiumID, id uuid.UUID, req *UpdateWorkOrderRequest) (*models.WorkOrder, error) {
	if err := s.deps.validate(req); err != nil {
		return nil, err
	}
	if !req.Priority.IsValid() {
		return nil, apperrors.NewValidationError("prioridade", fmt.Sprintf("unknown priority %q", req.Priority))
	}

	order, err := s.Get(ctx, condominiumID, id)
	if err != nil {
		return nil, err
	}
	if order.Status.IsTerminal() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("work order is %s", order.Status))
	}

	order.Title = req.Title
	order.Description = req.Description
	order.Priority = req.Priority
	order.Assignee = req.Assignee
	order.ScheduledFor = req.ScheduledFor
	order.EstimatedCost = req.EstimatedCost
	order.ActualCost = req.ActualCost

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update work order: %w", err)
	}
	s.deps.invalidate(ctx, condominiumID, resourceWorkOrders)
	return order, nil
}

// Transition moves the work order along its lifecycle
func (s *WorkOrderService) Transition(ctx context.Context, condominiumID, id uuid.UUID, req *TransitionRequest) (*models.WorkOrder, error) {
	if err := s.deps.validate(req); err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", req.Status))
	}

	order, err := s.Get(ctx, condominiumID, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(req.Status) {
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidStatusTransition, order.Status, req.Status)
	}

	previous := order.Status
	order.Status = req.Status
	if req.ActualCost != nil {
		order.ActualCost = *req.ActualCost
	}
	if req.Status == models.WorkOrderStatusDone {
		now := s.deps.Now()
		order.CompletedAt = &now
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update work order status: %w", err)
	}

	s.deps.invalidate(ctx, condominiumID, resourceWorkOrders)
	s.deps.publish(ctx, events.WorkOrderStatusChanged, condominiumID, order.ID, map[string]any{
		"numero":   order.Number,
		"anterior": previous,
		"status":   order.Status,
	})
	return order, nil
}

// Delete removes a work order
func (s *WorkOrderService) Delete(ctx context.Context, condominiumID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, condominiumID, id); err != nil {
		return lookup(err, apperrors.ErrWorkOrderNotFound, "delete work order")
	}
	s.deps.invalidate(ctx, condominiumID, resourceWorkOrders)
	return nil
}
