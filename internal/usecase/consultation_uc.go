package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/nduthigear/gearhq/internal/domain"
)

type ConsultationUC struct {
	Consultations domain.ConsultationRepo
}

// Create books an advisory session. Status always starts at "pending";
// nothing in the application ever moves it.
func (uc *ConsultationUC) Create(ctx context.Context, c *domain.Consultation) error {
	if !c.ServiceType.Valid() {
		return errors.New("invalid service type")
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.Status = "pending"
	return uc.Consultations.Create(ctx, c)
}

func (uc *ConsultationUC) List(ctx context.Context) ([]domain.Consultation, error) {
	return uc.Consultations.List(ctx)
}
