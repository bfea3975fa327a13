package availability

import (
	"time"

	"github.com/ray0128/sunday-for-rayinhair/internal/storeconfig"
)

const (
	ReasonPhaseLock          = "PHASE_LOCK"
	ReasonStoreClosed        = "STORE_CLOSED"
	ReasonQuotaFull          = "QUOTA_FULL"
	ReasonSaturdayBlock      = "SATURDAY_BLOCK"
	ReasonMasterWorkingBlock = "MASTER_WORKING_BLOCK"
)

// Requester identifies who is asking, since phase gating and the
// assistant-only blocks depend on the viewer, not just the data.
type Requester struct {
	ID   string
	Role string
}

type StaffMember struct {
	ID         string
	Role       string
	BaseDemand *float64
	BaseSupply *float64
}

// OffRecord is an active (PENDING or APPROVED) leave request projected for
// the calculator.
type OffRecord struct {
	ID        string
	UserID    string
	Date      string
	Status    string
	CreatedBy string
}

type DemandOverrideRecord struct {
	DesignerID string
	Date       string
	Demand     float64
}

type BookingRecord struct {
	RookieID string
	Date     string
}

// Inputs bundles everything ComputeMonth needs. All loading happens before
// the calculation so the function stays pure.
type Inputs struct {
	Month     string
	Today     time.Time
	Config    storeconfig.Snapshot
	Requester Requester

	Staff          []StaffMember
	Leaves         []OffRecord
	Overrides      []DemandOverrideRecord
	Bookings       []BookingRecord
	BoundDesigners []string
}

type OwnRequest struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	Cancelable bool   `json:"cancelable"`
}

type OffUser struct {
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

type DayAvailability struct {
	Date            string      `json:"date"`
	Weekday         string      `json:"weekday"`
	AssistantSupply float64     `json:"assistant_supply"`
	RookieSupply    float64     `json:"rookie_supply"`
	DesignerDemand  float64     `json:"designer_demand"`
	SafetyFactor    float64     `json:"safety_factor"`
	RemainingQuota  float64     `json:"remaining_quota"`
	Selectable      bool        `json:"selectable"`
	Reasons         []string    `json:"reasons,omitempty"`
	OwnRequest      *OwnRequest `json:"own_request,omitempty"`
	OffUsers        []OffUser   `json:"off_users,omitempty"`
}

type MonthAvailability struct {
	Month string            `json:"month"`
	Days  []DayAvailability `json:"days"`
}
