package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/billing"
)

type PostgresCreditRepository struct {
	db *gorm.DB
}

func NewCreditRepository(db *gorm.DB) CreditRepository {
	return &PostgresCreditRepository{db: db}
}

// GetOrSeed returns the owner's credit account, creating it with the
// configured free allowance on first touch.
func (r *PostgresCreditRepository) GetOrSeed(ctx context.Context, ownerID uuid.UUID, seed int) (billing.CreditAccount, error) {
	var acct billing.CreditAccount
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&acct).Error
	if err == nil {
		return acct, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return billing.CreditAccount{}, err
	}

	acct = billing.CreditAccount{OwnerID: ownerID, Remaining: seed}
	if err := r.db.WithContext(ctx).Create(&acct).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race; the account exists now.
			err = r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&acct).Error
		}
		if err != nil {
			return billing.CreditAccount{}, err
		}
	}
	return acct, nil
}

func (r *PostgresCreditRepository) Decrement(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&billing.CreditAccount{}).
		Where("owner_id = ? AND remaining > 0", ownerID).
		Updates(map[string]interface{}{
			"remaining":  gorm.Expr("remaining - 1"),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *PostgresCreditRepository) Refund(ctx context.Context, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&billing.CreditAccount{}).
		Where("owner_id = ?", ownerID).
		Updates(map[string]interface{}{
			"remaining":  gorm.Expr("remaining + 1"),
			"updated_at": time.Now(),
		}).Error
}
