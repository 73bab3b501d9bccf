package repository

import (
	"context"

	"condo-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketRepository handles database operations for tickets
type TicketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Create creates a new ticket
func (r *TicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

// GetByID retrieves a ticket
func (r *TicketRepository) GetByID(ctx context.Context, condominiumID, id uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).Scopes(inCondominium(condominiumID)).First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// List retrieves tickets, newest first
func (r *TicketRepository) List(ctx context.Context, condominiumID uuid.UUID, filter TicketFilter) ([]models.Ticket, int64, error) {
	var tickets []models.Ticket
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Ticket{}).Scopes(inCondominium(condominiumID))
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("prioridade = ?", filter.Priority)
	}
	if filter.OpenedBy != nil {
		query = query.Where("aberto_por = ?", *filter.OpenedBy)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Scopes(page(filter.Limit, filter.Offset)).Order("created_at DESC").Find(&tickets).Error
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

// Update updates a ticket
func (r *TicketRepository) Update(ctx context.Context, ticket *models.Ticket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

// CountOpen counts tickets that are open or in progress
func (r *TicketRepository) CountOpen(ctx context.Context, condominiumID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Ticket{}).
		Scopes(inCondominium(condominiumID)).
		Where("status IN ?", []models.TicketStatus{models.TicketStatusOpen, models.TicketStatusInProgress}).
		Count(&count).Error
	return count, err
}
