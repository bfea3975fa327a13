package binding

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Binding is a standing assistant-designer support pairing. It drives leave
// mirroring and the master-working block.
type Binding struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StoreID uuid.UUID `gorm:"type:uuid;not null;index:idx_bindings_store"`

	AssistantID uuid.UUID `gorm:"type:uuid;not null;index:idx_bindings_assistant"`
	DesignerID  uuid.UUID `gorm:"type:uuid;not null;index:idx_bindings_designer"`

	Active bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_bindings_deleted_at"`
}
