package repository

import (
	"context"
	"time"

	"condo-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user profile operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.UserProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*models.UserProfile, error)
	Update(ctx context.Context, user *models.UserProfile) error
}

// CondominiumRepositoryInterface defines the interface for condominium operations
type CondominiumRepositoryInterface interface {
	Create(ctx context.Context, condominium *models.Condominium) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Condominium, error)
	GetAll(ctx context.Context) ([]models.Condominium, error)
	Update(ctx context.Context, condominium *models.Condominium) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CondominiumLinkRepositoryInterface defines the interface for user-condominium links
type CondominiumLinkRepositoryInterface interface {
	Create(ctx context.Context, link *models.CondominiumLink) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CondominiumLink, error)
	GetByUserAndCondominium(ctx context.Context, userID, condominiumID uuid.UUID) (*models.CondominiumLink, error)
	GetPrincipal(ctx context.Context, userID uuid.UUID) (*models.CondominiumLink, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CondominiumLink, error)
	ListByCondominium(ctx context.Context, condominiumID uuid.UUID) ([]models.CondominiumLink, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role models.Role) error
	SetPrincipal(ctx context.Context, userID, linkID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TenantSelectionRepositoryInterface persists each user's active condominium
type TenantSelectionRepositoryInterface interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.TenantSelection, error)
	Save(ctx context.Context, userID, condominiumID uuid.UUID) error
}

// AssetFilter narrows asset listings
type AssetFilter struct {
	Type   string
	Status models.AssetStatus
	Search string
	Limit  int
	Offset int
}

// AssetRepositoryInterface defines the interface for asset operations
type AssetRepositoryInterface interface {
	Create(ctx context.Context, asset *models.Asset) error
	GetByID(ctx context.Context, condominiumID, id uuid.UUID) (*models.Asset, error)
	List(ctx context.Context, condominiumID uuid.UUID, filter AssetFilter) ([]models.Asset, int64, error)
	Update(ctx context.Context, asset *models.Asset) error
	Delete(ctx context.Context, condominiumID, id uuid.UUID) error
}

// MaintenancePlanFilter narrows maintenance plan listings
type MaintenancePlanFilter struct {
	AssetID   *uuid.UUID
	DueBefore *time.Time
	Limit     int
	Offset    int
}

// MaintenancePlanRepositoryInterface defines the interface for maintenance plan operations
type MaintenancePlanRepositoryInterface interface {
	Create(ctx context.Context, plan *models.MaintenancePlan) error
	GetByID(ctx context.Context, condominiumID, id uuid.UUID) (*models.MaintenancePlan, error)
	List(ctx context.Context, condominiumID uuid.UUID, filter MaintenancePlanFilter) ([]models.MaintenancePlan, int64, error)
	Update(ctx context.Context, plan *models.MaintenancePlan) error
	Delete(ctx context.Context, condominiumID, id uuid.UUID) error
	CountDueBefore(ctx context.Context, condominiumID uuid.UUID, before time.Time) (int64, error)
}

// ConformityItemRepositoryInterface defines the interface for conformity item operations
type ConformityItemRepositoryInterface interface {
	Create(ctx context.Context, item *models.ConformityItem) error
	GetByID(ctx context.Context, condominiumID, id uuid.UUID) (*models.ConformityItem, error)
	List(ctx context.Context, condominiumID uuid.UUID, limit, offset int) ([]models.ConformityItem, int64, error)
	Update(ctx context.Context, item *models.ConformityItem) error
	Delete(ctx context.Context, condominiumID, id uuid.UUID) error
	CountOverdue(ctx context.Context, condominiumID uuid.UUID, now time.Time) (int64, error)
}

// ChecklistTemplateRepositoryInterface defines the interface for checklist template operations
type ChecklistTemplateRepositoryInterface interface {
	Create(ctx context.Context, template *models.ChecklistTemplate) error
	GetVisible(ctx context.Context, condominiumID, id uuid.UUID) (*models.ChecklistTemplate, error)
	ListVisible(ctx context.Context, condominiumID uuid.UUID) ([]models.ChecklistTemplate, error)
	Delete(ctx context.Context, condominiumID, id uuid.UUID) error
}

// TicketFilter narrows ticket listings
type TicketFilter struct {
	Status   models.TicketStatus
	Priority models.Priority
	OpenedBy *uuid.UUID
	Limit    int
	Offset   int
}

// TicketRepositoryInterface defines the interface for ticket operations
type TicketRepositoryInterface interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	GetByID(ctx context.Context, condominiumID, id uuid.UUID) (*models.Ticket, error)
	List(ctx context.Context, condominiumID uuid.UUID, filter TicketFilter) ([]models.Ticket, int64, error)
	Update(ctx context.Context, ticket *models.Ticket) error
	CountOpen(ctx context.Context, condominiumID uuid.UUID) (int64, error)
}

// WorkOrderFilter narrows work order listings
type WorkOrderFilter struct {
	Status   models.WorkOrderStatus
	Priority models.Priority
	TicketID *uuid.UUID
	Limit    int
	Offset   int
}

// WorkOrderRepositoryInterface defines the interface for work order operations
type WorkOrderRepositoryInterface interface {
	// CreateNumbered assigns the next OS number for the order's condominium
	// and year, then inserts the order, atomically.
	CreateNumbered(ctx context.Context, order *models.WorkOrder, year int) error
	// ConvertTicket does the same and updates the ticket's status with it.
	ConvertTicket(ctx context.Context, ticket *models.Ticket, order *models.WorkOrder, year int) error
	GetByID(ctx context.Context, condominiumID, id uuid.UUID) (*models.WorkOrder, error)
	GetByTicket(ctx context.Context, condominiumID, ticketID uuid.UUID) (*models.WorkOrder, error)
	List(ctx context.Context, condominiumID uuid.UUID, filter WorkOrderFilter) ([]models.WorkOrder, int64, error)
	Update(ctx context.Context, order *models.WorkOrder) error
	Delete(ctx context.Context, condominiumID, id uuid.UUID) error
	CountOpen(ctx context.Context, condominiumID uuid.UUID) (int64, error)
}

// AttachmentRepositoryInterface defines the interface for attachment metadata
type AttachmentRepositoryInterface interface {
	Create(ctx context.Context, attachment *models.Attachment) error
	GetByID(ctx context.Context, condominiumID, id uuid.UUID) (*models.Attachment, error)
	ListByEntity(ctx context.Context, condominiumID uuid.UUID, entityType string, entityID uuid.UUID) ([]models.Attachment, error)
	Delete(ctx context.Context, condominiumID, id uuid.UUID) error
}
