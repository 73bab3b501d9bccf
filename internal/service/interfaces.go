package service

import (
	"context"
	"io"

	"condo-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CondominiumServiceInterface defines the interface for condominium service
type CondominiumServiceInterface interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Condominium, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Condominium, error)
	Create(ctx context.Context, req *CondominiumRequest) (*models.Condominium, error)
	Update(ctx context.Context, id uuid.UUID, req *CondominiumRequest) (*models.Condominium, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MembershipServiceInterface defines the interface for profile and link operations
type MembershipServiceInterface interface {
	Profile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*models.UserProfile, error)
	MyLinks(ctx context.Context, userID uuid.UUID) ([]models.CondominiumLink, error)
	ListMembers(ctx context.Context, condominiumID uuid.UUID) ([]MemberResponse, error)
	AddMember(ctx context.Context, condominiumID uuid.UUID, req *AddMemberRequest) (*models.CondominiumLink, error)
	UpdateRole(ctx context.Context, condominiumID, linkID uuid.UUID, req *UpdateRoleRequest) (*models.CondominiumLink, error)
	RemoveMember(ctx context.Context, condominiumID, linkID uuid.UUID) error
	SetPrincipal(ctx context.Context, userID, linkID uuid.UUID) error
}

// AssetServiceInterface defines the interface for asset service
type AssetServiceInterface interface {
	List(ctx context.Context, condominiumID uuid.UUID, q AssetQuery) (*Page[models.Asset], error)
	Get(ctx context.Context, condominiumID, id uuid.UUID) (*models.Asset, error)
	Create(ctx context.Context, condominiumID uuid.UUID, req *AssetRequest) (*models.Asset, error)
	Update(ctx context.Context, condominiumID, id uuid.UUID, req *AssetRequest) (*models.Asset, error)
	Delete(ctx context.Context, condominiumID, id uuid.UUID) error
}

// MaintenancePlanServiceInterface defines the interface for maintenance plan service
type MaintenancePlanServiceInterface interface {
	List(ctx context.Context, condominiumID uuid.UUID, q MaintenancePlanQuery) (*Page[models.MaintenancePlan], error)
	Get(ctx context.Context, condominiumID, id uuid.UUID) (*models.MaintenancePlan, error)
	Create(ctx context.Context, condominiumID uuid.UUID, req *MaintenancePlanRequest) (*models.MaintenancePlan, error)
	Update(ctx context.Context, condominiumID, id uuid.UUID, req *MaintenancePlanRequest) (*models.MaintenancePlan, error)
	Delete(ctx context.Context, condominiumID, id uuid.UUID) error
	RegisterExecution(ctx context.Context, condominiumID, id uuid.UUID, req *ExecutionRequest) (*models.MaintenancePlan, error)
}

// TicketServiceInterface defines the interface for ticket service
type TicketServiceInterface interface {
	List(ctx context.Context, condominiumID uuid.UUID, q TicketQuery) (*Page[TicketView], error)
	Get(ctx context.Context, condominiumID, id uuid.UUID) (*TicketView, error)
	Open(ctx context.Context, condominiumID, openedBy uuid.UUID, req *OpenTicketRequest) (*TicketView, error)
	UpdateStatus(ctx context.Context, condominiumID, id uuid.UUID, req *TicketStatusRequest) (*TicketView, error)
	ConvertToWorkOrder(ctx context.Context, condominiumID, id uuid.UUID) (*models.WorkOrder, error)
}

// WorkOrderServiceInterface defines the interface for work order service
type WorkOrderServiceInterface interface {
	List(ctx context.Context, condominiumID uuid.UUID, q WorkOrderQuery) (*Page[models.WorkOrder], error)
	Get(ctx context.Context, condominiumID, id uuid.UUID) (*models.WorkOrder, error)
	Create(ctx context.Context, condominiumID uuid.UUID, req *CreateWorkOrderRequest) (*models.WorkOrder, error)
	Update(ctx context.Context, condominiumID, id uuid.UUID, req *UpdateWorkOrderRequest) (*models.WorkOrder, error)
	Transition(ctx context.Context, condominiumID, id uuid.UUID, req *TransitionRequest) (*models.WorkOrder, error)
	Delete(ctx context.Context, condominiumID, id uuid.UUID) error
}

// ConformityServiceInterface defines the interface for conformity service
type ConformityServiceInterface interface {
	List(ctx context.Context, condominiumID uuid.UUID, p Pagination) (*Page[ConformityItemView], error)
	Get(ctx context.Context, condominiumID, id uuid.UUID) (*ConformityItemView, error)
	Create(ctx context.Context, condominiumID uuid.UUID, req *ConformityItemRequest) (*ConformityItemView, error)
	Update(ctx context.Context, condominiumID, id uuid.UUID, req *ConformityItemRequest) (*ConformityItemView, error)
	Delete(ctx context.Context, condominiumID, id uuid.UUID) error
	RegisterExecution(ctx context.Context, condominiumID, id uuid.UUID, req *ExecutionRequest) (*ConformityItemView, error)
	InstantiateTemplate(ctx context.Context, condominiumID, templateID uuid.UUID, req *InstantiateTemplateRequest) (*ConformityItemView, error)
}

// ChecklistTemplateServiceInterface defines the interface for checklist template service
type ChecklistTemplateServiceInterface interface {
	List(ctx context.Context, condominiumID uuid.UUID) ([]models.ChecklistTemplate, error)
	Get(ctx context.Context, condominiumID, id uuid.UUID) (*models.ChecklistTemplate, error)
	Create(ctx context.Context, condominiumID uuid.UUID, globalAdmin bool, req *ChecklistTemplateRequest) (*models.ChecklistTemplate, error)
	Delete(ctx context.Context, condominiumID, id uuid.UUID) error
}

// AttachmentServiceInterface defines the interface for attachment service
type AttachmentServiceInterface interface {
	Upload(ctx context.Context, condominiumID uuid.UUID, up UploadRequest) (*models.Attachment, error)
	List(ctx context.Context, condominiumID uuid.UUID, entityType string, entityID uuid.UUID) ([]models.Attachment, error)
	Open(ctx context.Context, condominiumID, id uuid.UUID) (*models.Attachment, io.ReadCloser, error)
	Delete(ctx context.Context, condominiumID, id uuid.UUID) error
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	Summary(ctx context.Context, condominiumID uuid.UUID) (*DashboardSummary, error)
}
