package repository

import (
	"context"

	"condo-maintenance-backend/internal/database/models"
	"condo-maintenance-backend/internal/numbering"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WorkOrderRepository handles database operations for work orders
type WorkOrderRepository struct {
	db *gorm.DB
}

// NewWorkOrderRepository creates a new work order repository
func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

// CreateNumbered reserves the next sequence for (condominium, year) under a row
// lock and inserts the order with the formatted number in the same transaction.
func (r *WorkOrderRepository) CreateNumbered(ctx context.Context, order *models.WorkOrder, year int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return insertNumbered(tx, order, year)
	})
	return translate(err)
}

// ConvertTicket inserts the numbered order and moves the ticket to its new
// status in one transaction. A second conversion of the same ticket fails with
// ErrTicketConverted, even when both run concurrently.
func (r *WorkOrderRepository) ConvertTicket(ctx context.Context, ticket *models.Ticket, order *models.WorkOrder, year int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := insertNumbered(tx, order, year); err != nil {
			return err
		}
		res := tx.Model(&models.Ticket{}).
			Scopes(inCondominium(ticket.CondominiumID)).
			Where("id = ?", ticket.ID).
			Update("status", ticket.Status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate(err)
}

func insertNumbered(tx *gorm.DB, order *models.WorkOrder, year int) error {
	seq := models.WorkOrderSequence{CondominiumID: order.CondominiumID, Year: year}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seq).Error; err != nil {
		return err
	}
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&seq, "condominio_id = ? AND ano = ?", order.CondominiumID, year).Error; err != nil {
		return err
	}

	number, err := numbering.Format(year, seq.Last+1)
	if err != nil {
		return err
	}
	if err := tx.Model(&models.WorkOrderSequence{}).
		Where("condominio_id = ? AND ano = ?", order.CondominiumID, year).
		Update("ultimo", seq.Last+1).Error; err != nil {
		return err
	}

	order.Number = number
	return tx.Create(order).Error
}

func translate(err error) error {
	if violates(err, "idx_os_chamado") {
		return ErrTicketConverted
	}
	return err
}

// GetByID retrieves a work order
func (r *WorkOrderRepository) GetByID(ctx context.Context, condominiumID, id uuid.UUID) (*models.WorkOrder, error) {
	var order models.WorkOrder
	err := r.db.WithContext(ctx).Scopes(inCondominium(condominiumID)).First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByTicket retrieves the work order created from a ticket
func (r *WorkOrderRepository) GetByTicket(ctx context.Context, condominiumID, ticketID uuid.UUID) (*models.WorkOrder, error) {
	var order models.WorkOrder
	err := r.db.WithContext(ctx).Scopes(inCondominium(condominiumID)).First(&order, "chamado_id = ?", ticketID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List retrieves work orders, highest number first
func (r *WorkOrderRepository) List(ctx context.Context, condominiumID uuid.UUID, filter WorkOrderFilter) ([]models.WorkOrder, int64, error) {
	var orders []models.WorkOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&models.WorkOrder{}).Scopes(inCondominium(condominiumID))
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("prioridade = ?", filter.Priority)
	}
	if filter.TicketID != nil {
		query = query.Where("chamado_id = ?", *filter.TicketID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Scopes(page(filter.Limit, filter.Offset)).Order("numero DESC").Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// Update updates a work order. The number is never rewritten.
func (r *WorkOrderRepository) Update(ctx context.Context, order *models.WorkOrder) error {
	return r.db.WithContext(ctx).Omit("numero").Save(order).Error
}

// Delete deletes a work order
func (r *WorkOrderRepository) Delete(ctx context.Context, condominiumID, id uuid.UUID) error {
	return deleteScoped(r.db.WithContext(ctx), &models.WorkOrder{}, condominiumID, id)
}

// CountOpen counts work orders not yet finished or cancelled
func (r *WorkOrderRepository) CountOpen(ctx context.Context, condominiumID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.WorkOrder{}).
		Scopes(inCondominium(condominiumID)).
		Where("status NOT IN ?", []models.WorkOrderStatus{models.WorkOrderStatusDone, models.WorkOrderStatusCancelled}).
		Count(&count).Error
	return count, err
}
