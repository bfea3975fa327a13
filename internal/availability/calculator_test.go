package availability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ray0128/sunday-for-rayinhair/internal/availability"
	"github.com/ray0128/sunday-for-rayinhair/internal/domain"
	"github.com/ray0128/sunday-for-rayinhair/internal/leave"
	"github.com/ray0128/sunday-for-rayinhair/internal/storeconfig"
)

func floatPtr(v float64) *float64 { return &v }

// September 2026: the 1st is a Tuesday, Saturdays fall on 5, 12, 19 and 26.
const testMonth = "2026-09"

func baseInputs(requesterRole string) availability.Inputs {
	cfg := storeconfig.DefaultSnapshot()
	return availability.Inputs{
		Month:     testMonth,
		Today:     time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		Config:    cfg,
		Requester: availability.Requester{ID: "requester", Role: requesterRole},
		Staff: []availability.StaffMember{
			{ID: "designer-1", Role: domain.RoleDesigner},
			{ID: "assistant-1", Role: domain.RoleAssistant},
			{ID: "rookie-1", Role: domain.RoleRookie},
		},
	}
}

func TestComputeMonth_QuotaFormula(t *testing.T) {
	in := baseInputs(domain.RoleManager)
	in.Config.SafetyFactor = 1.2
	in.Staff = []availability.StaffMember{
		{ID: "d1", Role: domain.RoleDesigner},
		{ID: "d2", Role: domain.RoleDesigner, BaseDemand: floatPtr(2.0)},
		{ID: "a1", Role: domain.RoleAssistant},
		{ID: "a2", Role: domain.RoleAssistant, BaseSupply: floatPtr(0.5)},
		{ID: "r1", Role: domain.RoleRookie},
	}

	out := availability.ComputeMonth(in)

	assert.Equal(t, testMonth, out.Month)
	assert.Len(t, out.Days, 30)
	for _, day := range out.Days {
		assert.Equal(t, 1.5, day.AssistantSupply, day.Date)
		assert.Equal(t, 0.5, day.RookieSupply, day.Date)
		assert.Equal(t, 3.0, day.DesignerDemand, day.Date)
		assert.InDelta(t,
			day.AssistantSupply+day.RookieSupply-day.DesignerDemand*day.SafetyFactor,
			day.RemainingQuota, 1e-9, day.Date)
	}
}

func TestComputeMonth_RookieBookingZeroesSupply(t *testing.T) {
	in := baseInputs(domain.RoleManager)
	in.Config.RookieAnyBookingSupplyZero = true
	in.Config.RookieGuestSupply = 0.1
	in.Staff = []availability.StaffMember{
		// The override is ignored on a booked day.
		{ID: "rookie-1", Role: domain.RoleRookie, BaseSupply: floatPtr(0.8)},
	}
	in.Bookings = []availability.BookingRecord{
		{RookieID: "rookie-1", Date: "2026-09-10"},
	}

	out := availability.ComputeMonth(in)

	assert.Equal(t, 0.1, out.Days[9].RookieSupply)
	assert.Equal(t, 0.8, out.Days[10].RookieSupply)
}

func TestComputeMonth_RookieBookingIgnoredWhenFlagOff(t *testing.T) {
	in := baseInputs(domain.RoleManager)
	in.Staff = []availability.StaffMember{
		{ID: "rookie-1", Role: domain.RoleRookie},
	}
	in.Bookings = []availability.BookingRecord{
		{RookieID: "rookie-1", Date: "2026-09-10"},
	}

	out := availability.ComputeMonth(in)

	assert.Equal(t, in.Config.RookieSupportSupply, out.Days[9].RookieSupply)
}

func TestComputeMonth_OffStaffContributeNothing(t *testing.T) {
	in := baseInputs(domain.RoleManager)
	in.Leaves = []availability.OffRecord{
		{ID: "l1", UserID: "designer-1", Date: "2026-09-10", Status: leave.StatusApproved, CreatedBy: "designer-1"},
		{ID: "l2", UserID: "assistant-1", Date: "2026-09-10", Status: leave.StatusPending, CreatedBy: "assistant-1"},
		{ID: "l3", UserID: "rookie-1", Date: "2026-09-10", Status: leave.StatusPending, CreatedBy: "rookie-1"},
	}

	out := availability.ComputeMonth(in)

	day := out.Days[9]
	assert.Zero(t, day.AssistantSupply)
	assert.Zero(t, day.RookieSupply)
	assert.Zero(t, day.DesignerDemand)
	assert.Zero(t, day.RemainingQuota)

	assert.Len(t, day.OffUsers, 3)
	assert.Equal(t, "assistant-1", day.OffUsers[0].UserID)
	assert.Equal(t, "designer-1", day.OffUsers[1].UserID)
	assert.Equal(t, "rookie-1", day.OffUsers[2].UserID)

	next := out.Days[10]
	assert.Empty(t, next.OffUsers)
	assert.Equal(t, 1.0, next.AssistantSupply)
}

func TestComputeMonth_PhaseGating(t *testing.T) {
	setup := func(role string) availability.Inputs {
		in := baseInputs(role)
		in.Config.Phase1StartDay = 1
		in.Config.Phase1EndDay = 5
		in.Config.Phase2StartDay = 6
		in.Config.Phase2EndDay = 0
		// Evaluated on the 3rd: inside phase 1, before phase 2.
		in.Today = time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC)
		return in
	}

	t.Run("designer sees whole month open during phase 1", func(t *testing.T) {
		out := availability.ComputeMonth(setup(domain.RoleDesigner))
		for _, day := range out.Days {
			assert.True(t, day.Selectable, day.Date)
			assert.NotContains(t, day.Reasons, availability.ReasonPhaseLock, day.Date)
		}
	})

	t.Run("assistant sees phase lock on every day", func(t *testing.T) {
		out := availability.ComputeMonth(setup(domain.RoleAssistant))
		for _, day := range out.Days {
			assert.False(t, day.Selectable, day.Date)
			assert.Contains(t, day.Reasons, availability.ReasonPhaseLock, day.Date)
		}
	})

	t.Run("assistant unlocked once phase 2 opens", func(t *testing.T) {
		in := setup(domain.RoleAssistant)
		in.Today = time.Date(2026, 9, 20, 10, 0, 0, 0, time.UTC)
		out := availability.ComputeMonth(in)
		for _, day := range out.Days {
			assert.NotContains(t, day.Reasons, availability.ReasonPhaseLock, day.Date)
		}
	})

	t.Run("manager is never gated", func(t *testing.T) {
		in := setup(domain.RoleManager)
		in.Today = time.Date(2026, 9, 28, 10, 0, 0, 0, time.UTC)
		in.Config.Phase2EndDay = 20
		out := availability.ComputeMonth(in)
		for _, day := range out.Days {
			assert.NotContains(t, day.Reasons, availability.ReasonPhaseLock, day.Date)
		}
	})
}

func TestComputeMonth_ClosedDays(t *testing.T) {
	in := baseInputs(domain.RoleDesigner)
	in.Config.ClosedDates = map[string]bool{"2026-09-10": true}
	in.Config.ClosedWeekdays = map[string]bool{"Mon": true}

	out := availability.ComputeMonth(in)

	closed := out.Days[9]
	assert.False(t, closed.Selectable)
	assert.Contains(t, closed.Reasons, availability.ReasonStoreClosed)

	// September 7th 2026 is a Monday.
	monday := out.Days[6]
	assert.Equal(t, "Mon", monday.Weekday)
	assert.Contains(t, monday.Reasons, availability.ReasonStoreClosed)

	open := out.Days[10]
	assert.NotContains(t, open.Reasons, availability.ReasonStoreClosed)
}

func TestComputeMonth_ReasonsStack(t *testing.T) {
	in := baseInputs(domain.RoleAssistant)
	in.Config.Phase2StartDay = 20
	in.Config.Phase2EndDay = 0
	in.Today = time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC)
	in.Config.ClosedDates = map[string]bool{"2026-09-10": true}

	out := availability.ComputeMonth(in)

	day := out.Days[9]
	assert.False(t, day.Selectable)
	assert.Contains(t, day.Reasons, availability.ReasonPhaseLock)
	assert.Contains(t, day.Reasons, availability.ReasonStoreClosed)
}

func TestComputeMonth_QuotaFull(t *testing.T) {
	// One designer demanding 1.0, one assistant supplying 1.0, safety 1.1:
	// remaining quota is exactly -0.1 on every day.
	setup := func(role string) availability.Inputs {
		in := baseInputs(role)
		in.Config.SafetyFactor = 1.1
		in.Staff = []availability.StaffMember{
			{ID: "designer-1", Role: domain.RoleDesigner},
			{ID: "assistant-1", Role: domain.RoleAssistant},
		}
		return in
	}

	t.Run("advisory for designer", func(t *testing.T) {
		out := availability.ComputeMonth(setup(domain.RoleDesigner))
		for _, day := range out.Days {
			assert.InDelta(t, -0.1, day.RemainingQuota, 1e-9, day.Date)
			assert.Contains(t, day.Reasons, availability.ReasonQuotaFull, day.Date)
			assert.True(t, day.Selectable, day.Date)
		}
	})

	t.Run("blocking for assistant", func(t *testing.T) {
		out := availability.ComputeMonth(setup(domain.RoleAssistant))
		for _, day := range out.Days {
			assert.Contains(t, day.Reasons, availability.ReasonQuotaFull, day.Date)
			assert.False(t, day.Selectable, day.Date)
		}
	})

	t.Run("blocking for rookie", func(t *testing.T) {
		out := availability.ComputeMonth(setup(domain.RoleRookie))
		assert.False(t, out.Days[0].Selectable)
	})
}

func TestComputeMonth_SaturdayBlock(t *testing.T) {
	in := baseInputs(domain.RoleAssistant)
	in.Config.AssistantBlockSaturday = true

	out := availability.ComputeMonth(in)

	saturday := out.Days[4] // 2026-09-05
	assert.Equal(t, "Sat", saturday.Weekday)
	assert.False(t, saturday.Selectable)
	assert.Contains(t, saturday.Reasons, availability.ReasonSaturdayBlock)

	friday := out.Days[3]
	assert.NotContains(t, friday.Reasons, availability.ReasonSaturdayBlock)

	// Only assistants are blocked on Saturdays.
	designerView := baseInputs(domain.RoleDesigner)
	designerView.Config.AssistantBlockSaturday = true
	designerOut := availability.ComputeMonth(designerView)
	assert.NotContains(t, designerOut.Days[4].Reasons, availability.ReasonSaturdayBlock)
}

func TestComputeMonth_MasterWorkingBlock(t *testing.T) {
	in := baseInputs(domain.RoleAssistant)
	in.Requester.ID = "assistant-1"
	in.Config.AssistantBlockIfMasterWorking = true
	in.BoundDesigners = []string{"designer-1", "designer-2"}
	in.Staff = append(in.Staff, availability.StaffMember{ID: "designer-2", Role: domain.RoleDesigner})

	// Both designers off on the 10th, only one off on the 11th.
	in.Leaves = []availability.OffRecord{
		{ID: "l1", UserID: "designer-1", Date: "2026-09-10", Status: leave.StatusApproved, CreatedBy: "designer-1"},
		{ID: "l2", UserID: "designer-2", Date: "2026-09-10", Status: leave.StatusApproved, CreatedBy: "designer-2"},
		{ID: "l3", UserID: "designer-1", Date: "2026-09-11", Status: leave.StatusApproved, CreatedBy: "designer-1"},
	}

	out := availability.ComputeMonth(in)

	bothOff := out.Days[9]
	assert.NotContains(t, bothOff.Reasons, availability.ReasonMasterWorkingBlock)

	oneWorking := out.Days[10]
	assert.False(t, oneWorking.Selectable)
	assert.Contains(t, oneWorking.Reasons, availability.ReasonMasterWorkingBlock)
}

func TestComputeMonth_OwnRequest(t *testing.T) {
	in := baseInputs(domain.RoleAssistant)
	in.Requester.ID = "assistant-1"
	in.Leaves = []availability.OffRecord{
		// Self-created pending: cancelable.
		{ID: "l1", UserID: "assistant-1", Date: "2026-09-10", Status: leave.StatusPending, CreatedBy: "assistant-1"},
		// Mirror created by the designer: not cancelable by the assistant.
		{ID: "l2", UserID: "assistant-1", Date: "2026-09-11", Status: leave.StatusPending, CreatedBy: "designer-1"},
		// Approved: no longer cancelable.
		{ID: "l3", UserID: "assistant-1", Date: "2026-09-12", Status: leave.StatusApproved, CreatedBy: "assistant-1"},
	}

	out := availability.ComputeMonth(in)

	own := out.Days[9].OwnRequest
	assert.NotNil(t, own)
	assert.Equal(t, "l1", own.ID)
	assert.True(t, own.Cancelable)

	mirrored := out.Days[10].OwnRequest
	assert.NotNil(t, mirrored)
	assert.False(t, mirrored.Cancelable)

	approved := out.Days[11].OwnRequest
	assert.NotNil(t, approved)
	assert.Equal(t, leave.StatusApproved, approved.Status)
	assert.False(t, approved.Cancelable)

	assert.Nil(t, out.Days[12].OwnRequest)
}

func TestComputeMonth_DemandOverrides(t *testing.T) {
	in := baseInputs(domain.RoleManager)
	in.Staff = []availability.StaffMember{
		{ID: "designer-1", Role: domain.RoleDesigner, BaseDemand: floatPtr(1.5)},
	}
	in.Overrides = []availability.DemandOverrideRecord{
		{DesignerID: "designer-1", Date: "2026-09-10", Demand: 3.0},
	}

	out := availability.ComputeMonth(in)

	// Per-date override wins over the per-user base, which wins over the
	// global default.
	assert.Equal(t, 3.0, out.Days[9].DesignerDemand)
	assert.Equal(t, 1.5, out.Days[10].DesignerDemand)
}
