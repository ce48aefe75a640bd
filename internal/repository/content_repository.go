package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/content"
	apperrors "github.com/RedPanda-08/AI-Content-Generator-sub000/pkg/errors"
)

type PostgresContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &PostgresContentRepository{db: db}
}

func (r *PostgresContentRepository) CreateContent(ctx context.Context, c *content.GeneratedContent) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *PostgresContentRepository) ListContentByOwner(ctx context.Context, ownerID uuid.UUID) ([]content.GeneratedContent, error) {
	var items []content.GeneratedContent
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresContentRepository) GetBrandProfile(ctx context.Context, ownerID uuid.UUID) (content.BrandProfile, error) {
	var p content.BrandProfile
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return content.BrandProfile{}, apperrors.ErrNotFound
		}
		return content.BrandProfile{}, err
	}
	return p, nil
}

func (r *PostgresContentRepository) UpsertBrandProfile(ctx context.Context, p *content.BrandProfile) error {
	p.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"voice", "audience", "hashtags", "signature", "updated_at"}),
		}).
		Create(p).Error
}
