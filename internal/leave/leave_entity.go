package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
	StatusCanceled = "CANCELED"
)

const (
	SourceSelf          = "SELF"
	SourceBindingMirror = "BINDING_MIRROR"
	SourceManager       = "MANAGER"
	SourceSystem        = "SYSTEM"
)

// LeaveRequest is a single-day leave record. At most one PENDING or APPROVED
// record may exist per (user_id, date); the partial unique index
// uq_leave_requests_active enforces that under concurrent creation.
//
// A designer's request may spawn mirrored assistant requests through active
// bindings. Mirrors point back at the parent through MirrorOf and follow the
// parent's status transitions.
type LeaveRequest struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StoreID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_store_date"`

	UserID uuid.UUID `gorm:"type:uuid;not null"`
	Date   time.Time `gorm:"type:date;not null;index:idx_leave_requests_store_date"`

	Status string `gorm:"type:varchar(16);not null;default:'PENDING'"`
	Source string `gorm:"type:varchar(24);not null;default:'SELF'"`

	MirrorOf  *uuid.UUID `gorm:"type:uuid;index:idx_leave_requests_mirror_of"`
	CreatedBy uuid.UUID  `gorm:"type:uuid;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_leave_requests_deleted_at"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// Active reports whether the record occupies the one-per-user-per-date slot.
func (l LeaveRequest) Active() bool {
	return l.Status == StatusPending || l.Status == StatusApproved
}
