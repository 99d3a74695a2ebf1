package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/nduthigear/gearhq/internal/domain"
)

type GearRepo struct{ db *gorm.DB }

func NewGearRepo(db *gorm.DB) *GearRepo { return &GearRepo{db: db} }

func (r *GearRepo) Save(ctx context.Context, g *domain.GearProduct) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *GearRepo) List(ctx context.Context, category string) ([]domain.GearProduct, error) {
	list := []domain.GearProduct{}
	q := r.db.WithContext(ctx).Model(&domain.GearProduct{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Order("name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

type TwitterRepo struct{ db *gorm.DB }

func NewTwitterRepo(db *gorm.DB) *TwitterRepo { return &TwitterRepo{db: db} }

func (r *TwitterRepo) Save(ctx context.Context, p *domain.TwitterPost) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *TwitterRepo) Latest(ctx context.Context, limit int) ([]domain.TwitterPost, error) {
	list := []domain.TwitterPost{}
	if err := r.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
