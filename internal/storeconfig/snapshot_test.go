package storeconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ray0128/sunday-for-rayinhair/internal/storeconfig"
)

func entry(key, value string) storeconfig.ConfigEntry {
	return storeconfig.ConfigEntry{Key: key, Value: value}
}

func TestBuildSnapshot_Defaults(t *testing.T) {
	snap := storeconfig.BuildSnapshot(nil)

	assert.Equal(t, 1.0, snap.SafetyFactor)
	assert.Equal(t, 1.0, snap.AssistantSupply)
	assert.Equal(t, 0.5, snap.RookieSupportSupply)
	assert.Equal(t, 0.0, snap.RookieGuestSupply)
	assert.Equal(t, 1.0, snap.DesignerDefaultDemand)
	assert.Equal(t, 1, snap.Phase1StartDay)
	assert.Equal(t, 10, snap.Phase1EndDay)
	assert.Equal(t, 11, snap.Phase2StartDay)
	assert.Equal(t, 0, snap.Phase2EndDay)
	assert.False(t, snap.AssistantBlockSaturday)
	assert.False(t, snap.AssistantBlockIfMasterWorking)
	assert.False(t, snap.RookieAnyBookingSupplyZero)
	assert.Empty(t, snap.BindingMirrorLeave)
	assert.Empty(t, snap.ClosedDates)
	assert.Empty(t, snap.ClosedWeekdays)
}

func TestBuildSnapshot_Overrides(t *testing.T) {
	snap := storeconfig.BuildSnapshot([]storeconfig.ConfigEntry{
		entry(storeconfig.KeySafetyFactor, `1.1`),
		entry(storeconfig.KeyAssistantSupply, `1.5`),
		entry(storeconfig.KeyPhase1EndDay, `5`),
		entry(storeconfig.KeyAssistantBlockSaturday, `true`),
		entry(storeconfig.KeyBindingMirrorLeave, `"auto_create"`),
		entry(storeconfig.KeyClosedDates, `"2026-04-05, 2026-04-06"`),
		entry(storeconfig.KeyClosedWeekdays, `"Mon,Tue"`),
	})

	assert.Equal(t, 1.1, snap.SafetyFactor)
	assert.Equal(t, 1.5, snap.AssistantSupply)
	assert.Equal(t, 5, snap.Phase1EndDay)
	assert.True(t, snap.AssistantBlockSaturday)
	assert.Equal(t, storeconfig.MirrorLeaveAutoCreate, snap.BindingMirrorLeave)
	assert.True(t, snap.ClosedDates["2026-04-05"])
	assert.True(t, snap.ClosedDates["2026-04-06"])
	assert.True(t, snap.ClosedWeekdays["Mon"])
	assert.True(t, snap.ClosedWeekdays["Tue"])
}

func TestBuildSnapshot_WrongTypeFallsBack(t *testing.T) {
	snap := storeconfig.BuildSnapshot([]storeconfig.ConfigEntry{
		entry(storeconfig.KeySafetyFactor, `"loud"`),
		entry(storeconfig.KeyAssistantBlockSaturday, `7`),
		entry(storeconfig.KeyBindingMirrorLeave, `false`),
	})

	assert.Equal(t, 1.0, snap.SafetyFactor)
	assert.False(t, snap.AssistantBlockSaturday)
	assert.Empty(t, snap.BindingMirrorLeave)
}

func TestBuildSnapshot_UnknownKeyIgnored(t *testing.T) {
	snap := storeconfig.BuildSnapshot([]storeconfig.ConfigEntry{
		entry("line_channel_secret", `"abc"`),
	})

	assert.Equal(t, storeconfig.DefaultSnapshot(), snap)
}
