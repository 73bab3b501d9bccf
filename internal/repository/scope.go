package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrTicketConverted is returned when a ticket already has a work order.
var ErrTicketConverted = errors.New("ticket already has a work order")

const uniqueViolation = "23505"

// violates reports whether err is a unique violation of the named index.
func violates(err error, index string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == index
}

// inCondominium restricts a query to one condominium.
func inCondominium(condominiumID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("condominio_id = ?", condominiumID)
	}
}

// page applies limit/offset when a limit is set.
func page(limit, offset int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit > 0 {
			db = db.Limit(limit)
		}
		if offset > 0 {
			db = db.Offset(offset)
		}
		return db
	}
}

func deleteScoped(db *gorm.DB, model interface{}, condominiumID, id uuid.UUID) error {
	res := db.Scopes(inCondominium(condominiumID)).Delete(model, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
