package storeconfig

import (
	"time"

	"github.com/google/uuid"
)

// ConfigEntry is one per-store key with a JSON scalar value. Rows with a
// non-null EffectiveFrom are scheduled future values; the engine only reads
// current rows (EffectiveFrom IS NULL).
type ConfigEntry struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StoreID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_config_store_key"`

	Key   string `gorm:"type:varchar(64);not null;uniqueIndex:uq_config_store_key"`
	Value string `gorm:"type:jsonb;not null"`

	EffectiveFrom *time.Time `gorm:"type:date;uniqueIndex:uq_config_store_key"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ConfigEntry) TableName() string {
	return "store_configs"
}

// Config keys understood by the availability calculator.
const (
	KeySafetyFactor          = "safety_factor"
	KeyAssistantSupply       = "assistant_supply"
	KeyRookieSupportSupply   = "rookie_support_supply"
	KeyRookieGuestSupply     = "rookie_guest_supply"
	KeyDesignerDefaultDemand = "designer_default_demand"

	KeyPhase1StartDay = "phase1_start_day"
	KeyPhase1EndDay   = "phase1_end_day"
	KeyPhase2StartDay = "phase2_start_day"
	KeyPhase2EndDay   = "phase2_end_day"

	KeyAssistantBlockSaturday        = "assistant_block_saturday"
	KeyAssistantBlockIfMasterWorking = "assistant_block_if_master_working"
	KeyRookieAnyBookingSupplyZero    = "rookie_any_booking_supply_zero"

	KeyBindingMirrorLeave = "binding_mirror_leave"
	KeyClosedDates        = "closed_dates"
	KeyClosedWeekdays     = "closed_weekdays"
)

// MirrorLeaveAutoCreate enables mirrored assistant requests on designer leave.
const MirrorLeaveAutoCreate = "auto_create"
