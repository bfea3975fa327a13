package staff

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a salon staff member. BaseDemand and BaseSupply are per-user
// overrides of the store-wide defaults; nil means "use the config value".
type User struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StoreID uuid.UUID `gorm:"type:uuid;not null;index:idx_users_store_role"`

	Name string `gorm:"type:varchar(100);not null"`
	Role string `gorm:"type:varchar(20);not null;index:idx_users_store_role"`

	BaseDemand *float64 `gorm:"type:numeric(5,2)"`
	BaseSupply *float64 `gorm:"type:numeric(5,2)"`

	Active bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_users_deleted_at"`
}
