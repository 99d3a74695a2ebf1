package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/nduthigear/gearhq/internal/domain"
)

type ConsultationRepo struct{ db *gorm.DB }

func NewConsultationRepo(db *gorm.DB) *ConsultationRepo { return &ConsultationRepo{db: db} }

func (r *ConsultationRepo) Create(ctx context.Context, c *domain.Consultation) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ConsultationRepo) List(ctx context.Context) ([]domain.Consultation, error) {
	list := []domain.Consultation{}
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
