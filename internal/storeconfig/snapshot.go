package storeconfig

import (
	"encoding/json"
	"strings"
)

// Snapshot is the fully-resolved store configuration the availability
// calculator consumes. It is built once per computation so the calculator
// stays a pure function; missing or wrong-typed rows fall back to defaults
// and never produce an error.
type Snapshot struct {
	SafetyFactor          float64
	AssistantSupply       float64
	RookieSupportSupply   float64
	RookieGuestSupply     float64
	DesignerDefaultDemand float64

	// Day-of-month request windows. An end day of 0 means "through the end
	// of the month".
	Phase1StartDay int
	Phase1EndDay   int
	Phase2StartDay int
	Phase2EndDay   int

	AssistantBlockSaturday        bool
	AssistantBlockIfMasterWorking bool
	RookieAnyBookingSupplyZero    bool

	BindingMirrorLeave string

	ClosedDates    map[string]bool // "2026-04-05"
	ClosedWeekdays map[string]bool // "Mon", "Tue", ...
}

func DefaultSnapshot() Snapshot {
	return Snapshot{
		SafetyFactor:          1.0,
		AssistantSupply:       1.0,
		RookieSupportSupply:   0.5,
		RookieGuestSupply:     0.0,
		DesignerDefaultDemand: 1.0,
		Phase1StartDay:        1,
		Phase1EndDay:          10,
		Phase2StartDay:        11,
		Phase2EndDay:          0,
		ClosedDates:           map[string]bool{},
		ClosedWeekdays:        map[string]bool{},
	}
}

// BuildSnapshot folds current config rows over the defaults. Each value is a
// JSON scalar; a value that fails to decode as the expected type is ignored.
func BuildSnapshot(entries []ConfigEntry) Snapshot {
	snap := DefaultSnapshot()

	for _, e := range entries {
		switch e.Key {
		case KeySafetyFactor:
			setFloat(&snap.SafetyFactor, e.Value)
		case KeyAssistantSupply:
			setFloat(&snap.AssistantSupply, e.Value)
		case KeyRookieSupportSupply:
			setFloat(&snap.RookieSupportSupply, e.Value)
		case KeyRookieGuestSupply:
			setFloat(&snap.RookieGuestSupply, e.Value)
		case KeyDesignerDefaultDemand:
			setFloat(&snap.DesignerDefaultDemand, e.Value)
		case KeyPhase1StartDay:
			setDay(&snap.Phase1StartDay, e.Value)
		case KeyPhase1EndDay:
			setDay(&snap.Phase1EndDay, e.Value)
		case KeyPhase2StartDay:
			setDay(&snap.Phase2StartDay, e.Value)
		case KeyPhase2EndDay:
			setDay(&snap.Phase2EndDay, e.Value)
		case KeyAssistantBlockSaturday:
			setBool(&snap.AssistantBlockSaturday, e.Value)
		case KeyAssistantBlockIfMasterWorking:
			setBool(&snap.AssistantBlockIfMasterWorking, e.Value)
		case KeyRookieAnyBookingSupplyZero:
			setBool(&snap.RookieAnyBookingSupplyZero, e.Value)
		case KeyBindingMirrorLeave:
			setString(&snap.BindingMirrorLeave, e.Value)
		case KeyClosedDates:
			var raw string
			if json.Unmarshal([]byte(e.Value), &raw) == nil {
				snap.ClosedDates = splitCSV(raw)
			}
		case KeyClosedWeekdays:
			var raw string
			if json.Unmarshal([]byte(e.Value), &raw) == nil {
				snap.ClosedWeekdays = splitCSV(raw)
			}
		}
	}

	return snap
}

func setFloat(dst *float64, raw string) {
	var v float64
	if json.Unmarshal([]byte(raw), &v) == nil {
		*dst = v
	}
}

func setDay(dst *int, raw string) {
	var v float64
	if json.Unmarshal([]byte(raw), &v) == nil {
		*dst = int(v)
	}
}

func setBool(dst *bool, raw string) {
	var v bool
	if json.Unmarshal([]byte(raw), &v) == nil {
		*dst = v
	}
}

func setString(dst *string, raw string) {
	var v string
	if json.Unmarshal([]byte(raw), &v) == nil {
		*dst = v
	}
}

func splitCSV(raw string) map[string]bool {
	out := map[string]bool{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out[part] = true
		}
	}
	return out
}
