package domain

import (
	"time"

	"github.com/google/uuid"
)

type ServiceType string

const (
	ServiceMotorcycleConsultation ServiceType = "motorcycle-consultation"
	ServiceBudgetGuidance         ServiceType = "budget-guidance"
	ServiceConfidenceRiding       ServiceType = "confidence-riding"
	ServiceEquipmentRecs          ServiceType = "equipment-recommendations"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceMotorcycleConsultation, ServiceBudgetGuidance, ServiceConfidenceRiding, ServiceEquipmentRecs:
		return true
	}
	return false
}

// Consultation is a booked advisory session request. Write-once from the
// public form; status stays "pending".
type Consultation struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName   string      `gorm:"size:80" json:"firstName"`
	LastName    string      `gorm:"size:80" json:"lastName"`
	Email       string      `gorm:"size:140" json:"email"`
	Phone       string      `gorm:"size:50" json:"phone"`
	ServiceType ServiceType `gorm:"type:varchar(40)" json:"serviceType"`
	Message     string      `gorm:"type:text" json:"message"`
	Status      string      `gorm:"size:30;default:pending" json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}
