package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"swea-cms.backend/internal/domain/entities"
)

// TeamRepository wraps the generic repository with the dense-ordering
// invariant: active team member orders always form the exact sequence 1..N.
// Every cascade runs inside one transaction so concurrent order mutations
// serialize instead of racing.
type TeamRepository struct {
	*Repository[entities.Team]
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{Repository: NewRepository[entities.Team](db)}
}

// CreateOrdered inserts a member at its requested order, shifting members at
// that order and above up by one. Orders outside [1, N+1] are clamped.
func (r *TeamRepository) CreateOrdered(ctx context.Context, t *entities.Team) error {
	return r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := activeCount(tx)
		if err != nil {
			return err
		}
		t.Order = clampOrder(t.Order, int(count)+1)

		err = tx.Model(&entities.Team{}).
			Where(`"order" >= ?`, t.Order).
			UpdateColumn("order", gorm.Expr(`"order" + 1`)).Error
		if err != nil {
			return err
		}
		return tx.Create(t).Error
	})
}

// UpdateOrdered saves a member and moves it to newOrder, shifting everyone
// strictly between the old and new position by one to close the old gap and
// open the new one.
func (r *TeamRepository) UpdateOrdered(ctx context.Context, t *entities.Team, newOrder int) error {
	return r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current entities.Team
		if err := tx.Where("id = ?", t.ID).First(&current).Error; err != nil {
			return err
		}

		count, err := activeCount(tx)
		if err != nil {
			return err
		}
		newOrder = clampOrder(newOrder, int(count))
		oldOrder := current.Order

		switch {
		case newOrder < oldOrder:
			err = tx.Model(&entities.Team{}).
				Where(`"order" >= ? AND "order" < ?`, newOrder, oldOrder).
				UpdateColumn("order", gorm.Expr(`"order" + 1`)).Error
		case newOrder > oldOrder:
			err = tx.Model(&entities.Team{}).
				Where(`"order" > ? AND "order" <= ?`, oldOrder, newOrder).
				UpdateColumn("order", gorm.Expr(`"order" - 1`)).Error
		}
		if err != nil {
			return err
		}

		t.Order = newOrder
		return tx.Save(t).Error
	})
}

// DeleteOrdered removes a member and closes the gap it leaves: every member
// ordered after it decrements by one. Returns false when no active member
// has the id.
func (r *TeamRepository) DeleteOrdered(ctx context.Context, id uuid.UUID, permanent bool) (bool, error) {
	deleted := false
	err := r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current entities.Team
		if err := tx.Where("id = ?", id).First(&current).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				// permanent delete may still target a soft-deleted row,
				// whose order was already compacted away
				if permanent {
					result := tx.Unscoped().Where("id = ?", id).Delete(&entities.Team{})
					if result.Error != nil {
						return result.Error
					}
					deleted = result.RowsAffected > 0
				}
				return nil
			}
			return err
		}

		query := tx
		if permanent {
			query = tx.Unscoped()
		}
		if err := query.Where("id = ?", id).Delete(&entities.Team{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.Team{}).
			Where(`"order" > ?`, current.Order).
			UpdateColumn("order", gorm.Expr(`"order" - 1`)).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}

// RestoreOrdered brings back a soft-deleted member at the end of the
// sequence. Its old position is long gone, so appending keeps 1..N dense.
func (r *TeamRepository) RestoreOrdered(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	var restored *entities.Team
	err := r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := activeCount(tx)
		if err != nil {
			return err
		}

		result := tx.Unscoped().Model(&entities.Team{}).
			Where("id = ? AND deleted_at IS NOT NULL", id).
			Updates(map[string]interface{}{"deleted_at": nil, "order": int(count) + 1})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		var t entities.Team
		if err := tx.Where("id = ?", id).First(&t).Error; err != nil {
			return err
		}
		restored = &t
		return nil
	})
	return restored, err
}

func activeCount(tx *gorm.DB) (int64, error) {
	var count int64
	err := tx.Model(&entities.Team{}).Count(&count).Error
	return count, err
}

func clampOrder(order, max int) int {
	if order < 1 {
		return 1
	}
	if order > max {
		return max
	}
	return order
}
