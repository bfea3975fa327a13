package availability

import (
	"fmt"
	"sort"
	"time"

	"github.com/ray0128/sunday-for-rayinhair/internal/domain"
	"github.com/ray0128/sunday-for-rayinhair/internal/leave"
	"github.com/ray0128/sunday-for-rayinhair/internal/storeconfig"
)

// ComputeMonth runs the quota calculation for every day of the month. It is
// a pure function of its inputs: no clock reads, no storage access, no
// failure paths. Malformed config never reaches this point because the
// snapshot already applied defaults.
//
// Phase gating compares today's day-of-month against the windows while
// iterating target days. The same call therefore flips selectability for the
// whole month as today moves through the windows; that is intended behavior,
// requests open and close by when they are made, not by which day they aim
// at.
func ComputeMonth(in Inputs) MonthAvailability {
	year, monthNum := monthParts(in.Month)
	daysInMonth := time.Date(year, time.Month(monthNum), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, -1).Day()

	offByDate := indexOff(in.Leaves)
	overrides := indexOverrides(in.Overrides)
	bookings := indexBookings(in.Bookings)
	boundDesigners := make(map[string]bool, len(in.BoundDesigners))
	for _, id := range in.BoundDesigners {
		boundDesigners[id] = true
	}

	phaseOpen := phaseOpenFor(in.Requester.Role, in.Today.Day(), in.Config)

	out := MonthAvailability{
		Month: in.Month,
		Days:  make([]DayAvailability, 0, daysInMonth),
	}

	for d := 1; d <= daysInMonth; d++ {
		date := fmt.Sprintf("%s-%02d", in.Month, d)
		weekday := time.Date(year, time.Month(monthNum), d, 0, 0, 0, 0, time.UTC).Weekday()
		off := offByDate[date]

		day := DayAvailability{
			Date:         date,
			Weekday:      weekday.String()[:3],
			SafetyFactor: in.Config.SafetyFactor,
			Selectable:   true,
		}

		for _, member := range in.Staff {
			if _, isOff := off[member.ID]; isOff {
				continue
			}
			switch member.Role {
			case domain.RoleAssistant:
				day.AssistantSupply += valueOr(member.BaseSupply, in.Config.AssistantSupply)
			case domain.RoleRookie:
				if bookings[key(member.ID, date)] && in.Config.RookieAnyBookingSupplyZero {
					day.RookieSupply += in.Config.RookieGuestSupply
				} else {
					day.RookieSupply += valueOr(member.BaseSupply, in.Config.RookieSupportSupply)
				}
			case domain.RoleDesigner:
				if demand, ok := overrides[key(member.ID, date)]; ok {
					day.DesignerDemand += demand
				} else {
					day.DesignerDemand += valueOr(member.BaseDemand, in.Config.DesignerDefaultDemand)
				}
			}
		}

		day.RemainingQuota = day.AssistantSupply + day.RookieSupply -
			day.DesignerDemand*in.Config.SafetyFactor

		if !phaseOpen {
			day.block(ReasonPhaseLock)
		}
		if in.Config.ClosedDates[date] || in.Config.ClosedWeekdays[day.Weekday] {
			day.block(ReasonStoreClosed)
		}
		if day.RemainingQuota < 0 {
			// Advisory for designers and managers, blocking for the rest.
			day.Reasons = append(day.Reasons, ReasonQuotaFull)
			if in.Requester.Role == domain.RoleAssistant || in.Requester.Role == domain.RoleRookie {
				day.Selectable = false
			}
		}
		if in.Requester.Role == domain.RoleAssistant {
			if in.Config.AssistantBlockSaturday && weekday == time.Saturday {
				day.block(ReasonSaturdayBlock)
			}
			if in.Config.AssistantBlockIfMasterWorking && anyDesignerWorking(boundDesigners, off) {
				day.block(ReasonMasterWorkingBlock)
			}
		}

		if own, ok := off[in.Requester.ID]; ok {
			day.OwnRequest = &OwnRequest{
				ID:         own.ID,
				Status:     own.Status,
				Cancelable: own.Status == leave.StatusPending && own.CreatedBy == in.Requester.ID,
			}
		}
		day.OffUsers = collectOffUsers(off)

		out.Days = append(out.Days, day)
	}

	return out
}

func (d *DayAvailability) block(reason string) {
	d.Reasons = append(d.Reasons, reason)
	d.Selectable = false
}

// phaseOpenFor evaluates the request windows against today's day-of-month.
// Designers may submit in either window, assistants and rookies only in the
// second. Managers are never gated.
func phaseOpenFor(role string, todayDOM int, cfg storeconfig.Snapshot) bool {
	switch role {
	case domain.RoleManager:
		return true
	case domain.RoleDesigner:
		return inWindow(todayDOM, cfg.Phase1StartDay, cfg.Phase1EndDay) ||
			inWindow(todayDOM, cfg.Phase2StartDay, cfg.Phase2EndDay)
	default:
		return inWindow(todayDOM, cfg.Phase2StartDay, cfg.Phase2EndDay)
	}
}

func inWindow(dom int, start, end int) bool {
	if start <= 0 {
		start = 1
	}
	if end <= 0 {
		// Open-ended window runs through the end of the month.
		end = 31
	}
	return dom >= start && dom <= end
}

func anyDesignerWorking(bound map[string]bool, off map[string]OffRecord) bool {
	for id := range bound {
		if _, isOff := off[id]; !isOff {
			return true
		}
	}
	return false
}

func collectOffUsers(off map[string]OffRecord) []OffUser {
	if len(off) == 0 {
		return nil
	}
	users := make([]OffUser, 0, len(off))
	for _, rec := range off {
		users = append(users, OffUser{UserID: rec.UserID, Status: rec.Status})
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })
	return users
}

func indexOff(leaves []OffRecord) map[string]map[string]OffRecord {
	idx := make(map[string]map[string]OffRecord)
	for _, l := range leaves {
		if idx[l.Date] == nil {
			idx[l.Date] = make(map[string]OffRecord)
		}
		idx[l.Date][l.UserID] = l
	}
	return idx
}

func indexOverrides(overrides []DemandOverrideRecord) map[string]float64 {
	idx := make(map[string]float64, len(overrides))
	for _, o := range overrides {
		idx[key(o.DesignerID, o.Date)] = o.Demand
	}
	return idx
}

func indexBookings(bookings []BookingRecord) map[string]bool {
	idx := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		idx[key(b.RookieID, b.Date)] = true
	}
	return idx
}

func key(id, date string) string {
	return id + "|" + date
}

func valueOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

func monthParts(month string) (int, int) {
	var year, monthNum int
	fmt.Sscanf(month, "%d-%d", &year, &monthNum)
	return year, monthNum
}
