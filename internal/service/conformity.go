package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"condo-maintenance-backend/internal/cache"
	"condo-maintenance-backend/internal/database/models"
	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/repository"

	"github.com/google/uuid"
)

// WarningWindow is how far ahead a due date turns an item yellow
const WarningWindow = 30 * 24 * time.Hour

// ConformityStatusAt derives the traffic light of an item due at dueAt
func ConformityStatusAt(dueAt *time.Time, now time.Time) models.ConformityStatus {
	switch {
	case dueAt == nil:
		return models.ConformityStatusGray
	case dueAt.Before(now):
		return models.ConformityStatusRed
	case !dueAt.After(now.Add(WarningWindow)):
		return models.ConformityStatusYellow
	}
	return models.ConformityStatusGreen
}

// ConformityItemView is an item plus its derived status
type ConformityItemView struct {
	models.ConformityItem
	Status models.ConformityStatus `json:"status"`
}

// ConformityService tracks NBR obligations
type ConformityService struct {
	repo      repository.ConformityItemRepositoryInterface
	templates repository.ChecklistTemplateRepositoryInterface
	assets    repository.AssetRepositoryInterface
	deps      Deps
}

var _ ConformityServiceInterface = (*ConformityService)(nil)

// NewConformityService creates a new conformity service
func NewConformityService(repo repository.ConformityItemRepositoryInterface, templates repository.ChecklistTemplateRepositoryInterface, assets repository.AssetRepositoryInterface, deps Deps) *ConformityService {
	return &ConformityService{repo: repo, templates: templates, assets: assets, deps: deps.withDefaults()}
}

// ConformityItemRequest is the body of item create and update
type ConformityItemRequest struct {
	AssetID        *uuid.UUID `json:"ativo_id,omitempty"`
	NBR            string     `json:"nbr,omitempty" validate:"max=40"`
	Description    string     `json:"descricao" validate:"required,max=300"`
	PeriodDays     int        `json:"periodicidade_dias" validate:"required,min=1,max=3650"`
	LastExecutedAt *time.Time `json:"ultima_execucao,omitempty"`
	DueAt          *time.Time `json:"proximo_vencimento,omitempty"`
	Notes          string     `json:"observacoes,omitempty"`
}

// InstantiateTemplateRequest creates an item from a checklist template
type InstantiateTemplateRequest struct {
	AssetID        *uuid.UUID `json:"ativo_id,omitempty"`
	LastExecutedAt *time.Time `json:"ultima_execucao,omitempty"`
	DueAt          *time.Time `json:"proximo_vencimento,omitempty"`
}

func (s *ConformityService) view(item models.ConformityItem) ConformityItemView {
	return ConformityItemView{ConformityItem: item, Status: ConformityStatusAt(item.DueAt, s.deps.Now())}
}

// List returns items ordered by due date with their status
func (s *ConformityService) List(ctx context.Context, condominiumID uuid.UUID, p Pagination) (*Page[ConformityItemView], error) {
	limit, offset := p.normalize()
	key := cache.Key(resourceConformity, condominiumID, fmt.Sprintf("%d|%d", limit, offset))

	page, err := cache.Fetch(ctx, s.deps.Cache, key, func(ctx context.Context) (*Page[models.ConformityItem], error) {
		items, total, err := s.repo.List(ctx, condominiumID, limit, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to list conformity items: %w", err)
		}
		return &Page[models.ConformityItem]{Items: items, Total: total, Page: p.Page, PageSize: p.PageSize}, nil
	})
	if err != nil {
		return nil, err
	}

	views := make([]ConformityItemView, len(page.Items))
	for i, item := range page.Items {
		views[i] = s.view(item)
	}
	return &Page[ConformityItemView]{Items: views, Total: page.Total, Page: page.Page, PageSize: page.PageSize}, nil
}

// Get returns one item
func (s *ConformityService) Get(ctx context.Context, condominiumID, id uuid.UUID) (*ConformityItemView, error) {
	item, err := s.repo.GetByID(ctx, condominiumID, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrConformityItemNotFound, "get conformity item")
	}
	v := s.view(*item)
	return &v, nil
}

// Create adds an item
func (s *ConformityService) Create(ctx context.Context, condominiumID uuid.UUID, req *ConformityItemRequest) (*ConformityItemView, error) {
	if err := s.deps.validate(req); err != nil {
		return nil, err
	}
	if err := checkAsset(ctx, s.assets, condominiumID, req.AssetID); err != nil {
		return nil, err
	}
	item := &models.ConformityItem{TenantScoped: models.TenantScoped{CondominiumID: condominiumID}}
	applyConformity(item, req)
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create conformity item: %w", err)
	}

	s.deps.invalidate(ctx, condominiumID, resourceConformity)
	v := s.view(*item)
	return &v, nil
}

// Update replaces an item's editable fields
func (s *ConformityService) Update(ctx context.Context, condominiumID, id uuid.UUID, req *ConformityItemRequest) (*ConformityItemView, error) {
	if err := s.deps.validate(req); err != nil {
		return nil, err
	}
	item, err := s.repo.GetByID(ctx, condominiumID, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrConformityItemNotFound, "get conformity item")
	}
	if err := checkAsset(ctx, s.assets, condominiumID, req.AssetID); err != nil {
		return nil, err
	}
	applyConformity(item, req)
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update conformity item: %w", err)
	}

	s.deps.invalidate(ctx, condominiumID, resourceConformity)
	v := s.view(*item)
	return &v, nil
}

// Delete removes an item
func (s *ConformityService) Delete(ctx context.Context, condominiumID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, condominiumID, id); err != nil {
		return lookup(err, apperrors.ErrConformityItemNotFound, "delete conformity item")
	}
	s.deps.invalidate(ctx, condominiumID, resourceConformity)
	return nil
}

// RegisterExecution records an inspection and moves the due date one period ahead
func (s *ConformityService) RegisterExecution(ctx context.Context, condominiumID, id uuid.UUID, req *ExecutionRequest) (*ConformityItemView, error) {
	item, err := s.repo.GetByID(ctx, condominiumID, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrConformityItemNotFound, "get conformity item")
	}

	executed := s.deps.Now()
	if req != nil && req.ExecutedAt != nil {
		executed = *req.ExecutedAt
	}
	if executed.After(s.deps.Now()) {
		return nil, apperrors.NewValidationError("executado_em", "execution cannot be in the future")
	}
	due := NextExecution(executed, item.PeriodDays)
	item.LastExecutedAt = &executed
	item.DueAt = &due
	if req != nil && req.Notes != "" {
		item.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to register execution: %w", err)
	}
	s.deps.invalidate(ctx, condominiumID, resourceConformity)
	v := s.view(*item)
	return &v, nil
}

// InstantiateTemplate creates an item from a template visible to the condominium
func (s *ConformityService) InstantiateTemplate(ctx context.Context, condominiumID, templateID uuid.UUID, req *InstantiateTemplateRequest) (*ConformityItemView, error) {
	tpl, err := s.templates.GetVisible(ctx, condominiumID, templateID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrChecklistTemplateNotFound, "get checklist template")
	}
	if req == nil {
		req = &InstantiateTemplateRequest{}
	}

	return s.Create(ctx, condominiumID, &ConformityItemRequest{
		AssetID:        req.AssetID,
		NBR:            tpl.NBR,
		Description:    tpl.Name,
		PeriodDays:     tpl.PeriodDays,
		LastExecutedAt: req.LastExecutedAt,
		DueAt:          req.DueAt,
	})
}

func applyConformity(item *models.ConformityItem, req *ConformityItemRequest) {
	item.AssetID = req.AssetID
	item.NBR = req.NBR
	item.Description = req.Description
	item.PeriodDays = req.PeriodDays
	item.LastExecutedAt = req.LastExecutedAt
	item.Notes = req.Notes
	switch {
	case req.DueAt != nil:
		item.DueAt = req.DueAt
	case req.LastExecutedAt != nil:
		due := NextExecution(*req.LastExecutedAt, req.PeriodDays)
		item.DueAt = &due
	default:
		item.DueAt = nil
	}
}

// ChecklistTemplateService manages NBR checklist templates
type ChecklistTemplateService struct {
	repo repository.ChecklistTemplateRepositoryInterface
	deps Deps
}

var _ ChecklistTemplateServiceInterface = (*ChecklistTemplateService)(nil)

// NewChecklistTemplateService creates a new checklist template service
func NewChecklistTemplateService(repo repository.ChecklistTemplateRepositoryInterface, deps Deps) *ChecklistTemplateService {
	return &ChecklistTemplateService{repo: repo, deps: deps.withDefaults()}
}

// ChecklistTemplateRequest is the body of template creation
type ChecklistTemplateRequest struct {
	Name       string          `json:"nome" validate:"required,max=200"`
	NBR        string          `json:"nbr" validate:"required,max=40"`
	Category   string          `json:"categoria,omitempty" validate:"max=80"`
	PeriodDays int             `json:"periodicidade_dias" validate:"required,min=1,max=3650"`
	Items      json.RawMessage `json:"itens" swaggertype:"array,object"`
	// Global templates are visible to every condominium
	Global bool `json:"global,omitempty"`
}

// List returns global templates plus the condominium's own
func (s *ChecklistTemplateService) List(ctx context.Context, condominiumID uuid.UUID) ([]models.ChecklistTemplate, error) {
	key := cache.Key(resourceTemplates, condominiumID, "all")
	return cache.Fetch(ctx, s.deps.Cache, key, func(ctx context.Context) ([]models.ChecklistTemplate, error) {
		tpls, err := s.repo.ListVisible(ctx, condominiumID)
		if err != nil {
			return nil, fmt.Errorf("failed to list checklist templates: %w", err)
		}
		return tpls, nil
	})
}

// Get returns one visible template
func (s *ChecklistTemplateService) Get(ctx context.Context, condominiumID, id uuid.UUID) (*models.ChecklistTemplate, error) {
	tpl, err := s.repo.GetVisible(ctx, condominiumID, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrChecklistTemplateNotFound, "get checklist template")
	}
	return tpl, nil
}

// Create stores a template. Only global admins may create global ones.
func (s *ChecklistTemplateService) Create(ctx context.Context, condominiumID uuid.UUID, globalAdmin bool, req *ChecklistTemplateRequest) (*models.ChecklistTemplate, error) {
	if err := s.deps.validate(req); err != nil {
		return nil, err
	}
	if req.Global && !globalAdmin {
		return nil, apperrors.NewAuthorizationError("only global administrators create global templates")
	}
	items := req.Items
	if len(items) == 0 {
		items = json.RawMessage("[]")
	}
	if !json.Valid(items) {
		return nil, apperrors.NewValidationError("itens", "must be valid JSON")
	}

	tpl := &models.ChecklistTemplate{
		Name:       req.Name,
		NBR:        req.NBR,
		Category:   req.Category,
		PeriodDays: req.PeriodDays,
		Items:      items,
	}
	if !req.Global {
		owner := condominiumID
		tpl.CondominiumID = &owner
	}
	if err := s.repo.Create(ctx, tpl); err != nil {
		return nil, fmt.Errorf("failed to create checklist template: %w", err)
	}

	if req.Global && s.deps.Cache != nil {
		// every tenant lists global templates
		s.deps.Cache.InvalidateEverywhere(resourceTemplates)
	} else {
		s.deps.invalidate(ctx, condominiumID, resourceTemplates)
	}
	return tpl, nil
}

// Delete removes a template owned by the condominium
func (s *ChecklistTemplateService) Delete(ctx context.Context, condominiumID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, condominiumID, id); err != nil {
		return lookup(err, apperrors.ErrChecklistTemplateNotFound, "delete checklist template")
	}
	s.deps.invalidate(ctx, condominiumID, resourceTemplates)
	return nil
}
