package testutils

import (
	"encoding/json"
	"time"

	"condo-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
)

func newBase() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// UserFactory provides methods to create test UserProfile data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test user with a unique email and no global role
func (f *UserFactory) Create() *models.UserProfile {
	base := newBase()
	return &models.UserProfile{
		BaseModel:    base,
		Email:        "user-" + base.ID.String()[:8] + "@condo.test",
		Name:         "Maria Souza",
		Phone:        "+55 11 99999-0000",
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0$aGFzaGhhc2hoYXNoaGFzaA",
		Active:       true,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.UserProfile {
	user := f.Create()
	user.Email = email
	return user
}

// WithGlobalRole sets the global role for the user
func (f *UserFactory) WithGlobalRole(role models.GlobalRole) *models.UserProfile {
	user := f.Create()
	user.GlobalRole = role
	return user
}

// CondominiumFactory provides methods to create test Condominium data
type CondominiumFactory struct{}

// NewCondominiumFactory creates a new CondominiumFactory
func NewCondominiumFactory() *CondominiumFactory {
	return &CondominiumFactory{}
}

// Create creates a test condominium
func (f *CondominiumFactory) Create() *models.Condominium {
	return &models.Condominium{
		BaseModel:  newBase(),
		Name:       "Residencial Jardim das Flores",
		TaxID:      "12.345.678/0001-90",
		Address:    "Rua das Flores, 100",
		City:       "Sao Paulo",
		State:      "SP",
		PostalCode: "01000-000",
	}
}

// WithName sets a custom name for the condominium
func (f *CondominiumFactory) WithName(name string) *models.Condominium {
	c := f.Create()
	c.Name = name
	return c
}

// LinkFactory provides methods to create test CondominiumLink data
type LinkFactory struct{}

// NewLinkFactory creates a new LinkFactory
func NewLinkFactory() *LinkFactory {
	return &LinkFactory{}
}

// Create creates a non-principal link
func (f *LinkFactory) Create(userID, condominiumID uuid.UUID, role models.Role) *models.CondominiumLink {
	return &models.CondominiumLink{
		BaseModel:     newBase(),
		UserID:        userID,
		CondominiumID: condominiumID,
		Role:          role,
	}
}

// Principal creates a principal link
func (f *LinkFactory) Principal(userID, condominiumID uuid.UUID, role models.Role) *models.CondominiumLink {
	link := f.Create(userID, condominiumID, role)
	link.IsPrincipal = true
	return link
}

// AssetFactory provides methods to create test Asset data
type AssetFactory struct{}

// NewAssetFactory creates a new AssetFactory
func NewAssetFactory() *AssetFactory {
	return &AssetFactory{}
}

// Create creates a test asset in the condominium
func (f *AssetFactory) Create(condominiumID uuid.UUID) *models.Asset {
	return &models.Asset{
		BaseModel:    newBase(),
		TenantScoped: models.TenantScoped{CondominiumID: condominiumID},
		Name:         "Elevador Social",
		Type:         "elevador",
		Location:     "Torre A",
		Manufacturer: "Atlas",
		Status:       models.AssetStatusActive,
		Metadata:     json.RawMessage(`{"capacidade":8}`),
	}
}

// MaintenancePlanFactory provides methods to create test MaintenancePlan data
type MaintenancePlanFactory struct{}

// NewMaintenancePlanFactory creates a new MaintenancePlanFactory
func NewMaintenancePlanFactory() *MaintenancePlanFactory {
	return &MaintenancePlanFactory{}
}

// Create creates a monthly plan due in a week
func (f *MaintenancePlanFactory) Create(condominiumID uuid.UUID) *models.MaintenancePlan {
	next := time.Now().Add(7 * 24 * time.Hour)
	return &models.MaintenancePlan{
		BaseModel:       newBase(),
		TenantScoped:    models.TenantScoped{CondominiumID: condominiumID},
		Title:           "Revisao mensal do elevador",
		PeriodDays:      30,
		NextExecutionAt: &next,
		Responsible:     "Atlas Manutencao",
		Active:          true,
	}
}

// ConformityItemFactory provides methods to create test ConformityItem data
type ConformityItemFactory struct{}

// NewConformityItemFactory creates a new ConformityItemFactory
func NewConformityItemFactory() *ConformityItemFactory {
	return &ConformityItemFactory{}
}

// Create creates a yearly item with the given due date
func (f *ConformityItemFactory) Create(condominiumID uuid.UUID, dueAt *time.Time) *models.ConformityItem {
	return &models.ConformityItem{
		BaseModel:    newBase(),
		TenantScoped: models.TenantScoped{CondominiumID: condominiumID},
		NBR:          "NBR 12962",
		Description:  "Inspecao de extintores",
		PeriodDays:   365,
		DueAt:        dueAt,
	}
}

// TicketFactory provides methods to create test Ticket data
type TicketFactory struct{}

// NewTicketFactory creates a new TicketFactory
func NewTicketFactory() *TicketFactory {
	return &TicketFactory{}
}

// Create creates an open ticket of medium priority
func (f *TicketFactory) Create(condominiumID, openedBy uuid.UUID) *models.Ticket {
	return &models.Ticket{
		BaseModel:    newBase(),
		TenantScoped: models.TenantScoped{CondominiumID: condominiumID},
		OpenedBy:     openedBy,
		Title:        "Lampada queimada no hall",
		Description:  "Hall do bloco B sem iluminacao",
		Location:     "Bloco B",
		Priority:     models.PriorityMedium,
		Status:       models.TicketStatusOpen,
		SLADeadline:  time.Now().Add(72 * time.Hour),
	}
}

// WorkOrderFactory provides methods to create test WorkOrder data
type WorkOrderFactory struct{}

// NewWorkOrderFactory creates a new WorkOrderFactory
func NewWorkOrderFactory() *WorkOrderFactory {
	return &WorkOrderFactory{}
}

// Create creates an unnumbered open work order
func (f *WorkOrderFactory) Create(condominiumID uuid.UUID) *models.WorkOrder {
	return &models.WorkOrder{
		BaseModel:     newBase(),
		CondominiumID: condominiumID,
		Title:         "Troca de lampada",
		Description:   "Substituir lampadas do hall",
		Priority:      models.PriorityMedium,
		Status:        models.WorkOrderStatusOpen,
		EstimatedCost: 50,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User            *UserFactory
	Condominium     *CondominiumFactory
	Link            *LinkFactory
	Asset           *AssetFactory
	MaintenancePlan *MaintenancePlanFactory
	ConformityItem  *ConformityItemFactory
	Ticket          *TicketFactory
	WorkOrder       *WorkOrderFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:            NewUserFactory(),
		Condominium:     NewCondominiumFactory(),
		Link:            NewLinkFactory(),
		Asset:           NewAssetFactory(),
		MaintenancePlan: NewMaintenancePlanFactory(),
		ConformityItem:  NewConformityItemFactory(),
		Ticket:          NewTicketFactory(),
		WorkOrder:       NewWorkOrderFactory(),
	}
}
