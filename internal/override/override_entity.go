package override

import (
	"time"

	"github.com/google/uuid"
)

// DemandOverride replaces a designer's demand for one calendar day.
type DemandOverride struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StoreID uuid.UUID `gorm:"type:uuid;not null;index:idx_demand_overrides_store_date"`

	DesignerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_demand_overrides_designer_date"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:uq_demand_overrides_designer_date;index:idx_demand_overrides_store_date"`
	Demand     float64   `gorm:"type:numeric(5,2);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DemandOverride) TableName() string {
	return "designer_demand_overrides"
}
