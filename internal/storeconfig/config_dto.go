package storeconfig

type UpsertConfigRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"` // JSON scalar, e.g. 1.1, true, "Mon,Tue"
}

type ConfigEntryResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type SnapshotResponse struct {
	SafetyFactor          float64 `json:"safety_factor"`
	AssistantSupply       float64 `json:"assistant_supply"`
	RookieSupportSupply   float64 `json:"rookie_support_supply"`
	RookieGuestSupply     float64 `json:"rookie_guest_supply"`
	DesignerDefaultDemand float64 `json:"designer_default_demand"`

	Phase1StartDay int `json:"phase1_start_day"`
	Phase1EndDay   int `json:"phase1_end_day"`
	Phase2StartDay int `json:"phase2_start_day"`
	Phase2EndDay   int `json:"phase2_end_day"`

	AssistantBlockSaturday        bool `json:"assistant_block_saturday"`
	AssistantBlockIfMasterWorking bool `json:"assistant_block_if_master_working"`
	RookieAnyBookingSupplyZero    bool `json:"rookie_any_booking_supply_zero"`

	BindingMirrorLeave string   `json:"binding_mirror_leave"`
	ClosedDates        []string `json:"closed_dates"`
	ClosedWeekdays     []string `json:"closed_weekdays"`
}
