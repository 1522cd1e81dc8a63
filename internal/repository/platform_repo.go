package repository

import (
	"context"
	"errors"

	"vgm/internal/domain"

	"gorm.io/gorm"
)

type PlatformRepository struct {
	db *gorm.DB
}

func NewPlatformRepository(db *gorm.DB) *PlatformRepository {
	return &PlatformRepository{db: db}
}

// List returns every platform ordered by id
func (r *PlatformRepository) List(ctx context.Context) ([]domain.Platform, error) {
	platforms := []domain.Platform{}
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&platforms).Error
	return platforms, err
}

// GetByID returns nil, nil when the platform does not exist
func (r *PlatformRepository) GetByID(ctx context.Context, id int64) (*domain.Platform, error) {
	var p domain.Platform
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlatformRepository) Create(ctx context.Context, p *domain.Platform) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Update overwrites name and year and reports whether a row matched
func (r *PlatformRepository) Update(ctx context.Context, p *domain.Platform) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Platform{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name": p.Name,
			"year": p.Year,
		})
	return tx.RowsAffected > 0, tx.Error
}

// Delete reports whether a row existed
func (r *PlatformRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&domain.Platform{}, id)
	return tx.RowsAffected > 0, tx.Error
}
