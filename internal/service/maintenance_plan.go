package service

import (
	"context"
	"fmt"
	"time"

	"condo-maintenance-backend/internal/cache"
	"condo-maintenance-backend/internal/database/models"
	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/repository"

	"github.com/google/uuid"
)

// MaintenancePlanService manages preventive maintenance routines
type MaintenancePlanService struct {
	repo   repository.MaintenancePlanRepositoryInterface
	assets repository.AssetRepositoryInterface
	deps   Deps
}

var _ MaintenancePlanServiceInterface = (*MaintenancePlanService)(nil)

// NewMaintenancePlanService creates a new maintenance plan service
func NewMaintenancePlanService(repo repository.MaintenancePlanRepositoryInterface, assets repository.AssetRepositoryInterface, deps Deps) *MaintenancePlanService {
	return &MaintenancePlanService{repo: repo, assets: assets, deps: deps.withDefaults()}
}

// MaintenancePlanQuery filters plan listings
type MaintenancePlanQuery struct {
	Pagination
	AssetID *uuid.UUID `form:"-"`
	// DueWithinDays keeps plans whose next execution falls in the window
	DueWithinDays int `form:"vence_em_dias"`
}

// MaintenancePlanRequest is the body of plan create and update
type MaintenancePlanRequest struct {
	AssetID         *uuid.UUID `json:"ativo_id,omitempty"`
	Title           string     `json:"titulo" validate:"required,max=200"`
	Description     string     `json:"descricao,omitempty"`
	PeriodDays      int        `json:"periodicidade_dias" validate:"required,min=1,max=3650"`
	LastExecutedAt  *time.Time `json:"ultima_execucao,omitempty"`
	NextExecutionAt *time.Time `json:"proxima_execucao,omitempty"`
	Responsible     string     `json:"responsavel,omitempty" validate:"max=200"`
	Active          *bool      `json:"ativo,omitempty"`
}

// ExecutionRequest records a completed execution
type ExecutionRequest struct {
	ExecutedAt *time.Time `json:"executado_em,omitempty"`
	Notes      string     `json:"observacoes,omitempty"`
}

// NextExecution is the due date following an execution at last
func NextExecution(last time.Time, periodDays int) time.Time {
	return last.AddDate(0, 0, periodDays)
}

// List returns the condominium's plans ordered by next execution
func (s *MaintenancePlanService) List(ctx context.Context, condominiumID uuid.UUID, q MaintenancePlanQuery) (*Page[models.MaintenancePlan], error) {
	limit, offset := q.normalize()
	filter := repository.MaintenancePlanFilter{AssetID: q.AssetID, Limit: limit, Offset: offset}
	if q.DueWithinDays > 0 {
		before := s.deps.Now().AddDate(0, 0, q.DueWithinDays)
		filter.DueBefore = &before
	}
	key := cache.Key(resourcePlans, condominiumID, fmt.Sprintf("%s|%d|%d|%d", optionalID(q.AssetID), q.DueWithinDays, limit, offset))

	return cache.Fetch(ctx, s.deps.Cache, key, func(ctx context.Context) (*Page[models.MaintenancePlan], error) {
		plans, total, err := s.repo.List(ctx, condominiumID, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to list maintenance plans: %w", err)
		}
		return &Page[models.MaintenancePlan]{Items: plans, Total: total, Page: q.Page, PageSize: q.PageSize}, nil
	})
}

// Get returns one plan
func (s *MaintenancePlanService) Get(ctx context.Context, condominiumID, id uuid.UUID) (*models.MaintenancePlan, error) {
	plan, err := s.repo.GetByID(ctx, condominiumID, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrMaintenancePlanNotFound, "get maintenance plan")
	}
	return plan, nil
}

// Create adds a plan. Without an explicit next execution the plan is due one
// period after its last execution, or today when it never ran.
func (s *MaintenancePlanService) Create(ctx context.Context, condominiumID uuid.UUID, req *MaintenancePlanRequest) (*models.MaintenancePlan, error) {
	if err := s.deps.validate(req); err != nil {
		return nil, err
	}
	if err := checkAsset(ctx, s.assets, condominiumID, req.AssetID); err != nil {
		return nil, err
	}

	plan := &models.MaintenancePlan{TenantScoped: models.TenantScoped{CondominiumID: condominiumID}, Active: true}
	s.apply(plan, req)
	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create maintenance plan: %w", err)
	}

	s.deps.invalidate(ctx, condominiumID, resourcePlans)
	return plan, nil
}

// Update replaces a plan's editable fields
func (s *MaintenancePlanService) Update(ctx context.Context, condominiumID, id uuid.UUID, req *MaintenancePlanRequest) (*models.MaintenancePlan, error) {
	if err := s.deps.validate(req); err != nil {
		return nil, err
	}
	if err := checkAsset(ctx, s.assets, condominiumID, req.AssetID); err != nil {
		return nil, err
	}

	plan, err := s.Get(ctx, condominiumID, id)
	if err != nil {
		return nil, err
	}
	s.apply(plan, req)
	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to update maintenance plan: %w", err)
	}

	s.deps.invalidate(ctx, condominiumID, resourcePlans)
	return plan, nil
}

// Delete removes a plan
func (s *MaintenancePlanService) Delete(ctx context.Context, condominiumID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, condominiumID, id); err != nil {
		return lookup(err, apperrors.ErrMaintenancePlanNotFound, "delete maintenance plan")
	}
	s.deps.invalidate(ctx, condominiumID, resourcePlans)
	return nil
}

// RegisterExecution records an execution and schedules the next one
func (s *MaintenancePlanService) RegisterExecution(ctx context.Context, condominiumID, id uuid.UUID, req *ExecutionRequest) (*models.MaintenancePlan, error) {
	plan, err := s.Get(ctx, condominiumID, id)
	if err != nil {
		return nil, err
	}

	executed := s.deps.Now()
	if req != nil && req.ExecutedAt != nil {
		executed = *req.ExecutedAt
	}
	if executed.After(s.deps.Now()) {
		return nil, apperrors.NewValidationError("executado_em", "execution cannot be in the future")
	}
	next := NextExecution(executed, plan.PeriodDays)
	plan.LastExecutedAt = &executed
	plan.NextExecutionAt = &next

	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to register execution: %w", err)
	}

	s.deps.invalidate(ctx, condominiumID, resourcePlans)
	return plan, nil
}

func (s *MaintenancePlanService) apply(plan *models.MaintenancePlan, req *MaintenancePlanRequest) {
	if plan.Asset != nil && (req.AssetID == nil || *req.AssetID != plan.Asset.ID) {
		plan.Asset = nil
	}
	plan.AssetID = req.AssetID
	plan.Title = req.Title
	plan.Description = req.Description
	plan.PeriodDays = req.PeriodDays
	plan.LastExecutedAt = req.LastExecutedAt
	plan.Responsible = req.Responsible
	if req.Active != nil {
		plan.Active = *req.Active
	}

	switch {
	case req.NextExecutionAt != nil:
		plan.NextExecutionAt = req.NextExecutionAt
	case req.LastExecutedAt != nil:
		next := NextExecution(*req.LastExecutedAt, req.PeriodDays)
		plan.NextExecutionAt = &next
	case plan.NextExecutionAt == nil:
		now := s.deps.Now()
		plan.NextExecutionAt = &now
	}
}
