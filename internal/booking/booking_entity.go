package booking

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RookieBooking marks a rookie serving a personal guest during an interval of
// a day. Its presence can zero the rookie's support supply for that date.
type RookieBooking struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StoreID uuid.UUID `gorm:"type:uuid;not null;index:idx_rookie_bookings_store_date"`

	RookieID uuid.UUID `gorm:"type:uuid;not null;index:idx_rookie_bookings_rookie_date"`
	Date     time.Time `gorm:"type:date;not null;index:idx_rookie_bookings_store_date;index:idx_rookie_bookings_rookie_date"`

	StartTime string `gorm:"type:time;not null"`
	EndTime   string `gorm:"type:time;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_rookie_bookings_deleted_at"`
}
