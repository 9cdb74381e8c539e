package stats

import (
	"testing"

	"github.com/acss-labs/acss-backend-go/internal/domain/attendance"
	"github.com/acss-labs/acss-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roster(n int) []staff.Staff {
	out := make([]staff.Staff, n)
	for i := range out {
		out[i] = staff.Staff{ID: string(rune('a' + i)), Name: "Member " + string(rune('A'+i))}
	}
	return out
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil, roster(5), testRules)

	assert.Equal(t, 0, s.TotalDays)
	assert.Equal(t, 0, s.PresentCount)
	assert.Equal(t, 0, s.AbsentCount)
	assert.Zero(t, s.PresentRate)
	assert.Zero(t, s.AbsentRate)
}

func TestCompute_DistinctStaffPerDay(t *testing.T) {
	// Duplicate events for the same member on one day count once.
	events := []attendance.Event{
		{StaffID: "a", Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 8, 50)},
		{StaffID: "a", Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 8, 55)},
		{StaffID: "b", Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 9, 30)},
	}

	s := Compute(events, roster(3), testRules)

	assert.Equal(t, 1, s.TotalDays)
	assert.Equal(t, 3, s.TotalRecords)
	assert.Equal(t, 1, s.PresentCount)
	assert.Equal(t, 1, s.LateCount)
	// 3 staff x 1 day - 1 present - 1 late
	assert.Equal(t, 1, s.AbsentCount)
}

func TestCompute_AbsentClampedAtZero(t *testing.T) {
	// More attendees than the roster denominator, from events of members no
	// longer active. The absent count must not go negative.
	events := []attendance.Event{
		{StaffID: "a", Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 8, 50)},
		{StaffID: "b", Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 8, 50)},
		{StaffID: "c", Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 8, 50)},
	}

	s := Compute(events, roster(1), testRules)

	assert.Equal(t, 0, s.AbsentCount)
	assert.GreaterOrEqual(t, s.AbsentRate, 0.0)
}

func TestCompute_RatesWithinRange(t *testing.T) {
	events := []attendance.Event{
		{StaffID: "a", Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 8, 50)},
		{StaffID: "b", Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 8, 50)},
		{StaffID: "c", Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 8, 50)},
		{StaffID: "d", Date: "2026-03-03", CheckIn: at(t, "2026-03-03", 10, 0)},
	}

	s := Compute(events, roster(2), testRules)

	for _, r := range []float64{s.PresentRate, s.LateRate, s.HalfDayRate, s.AbsentRate} {
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 100.0)
	}
}

func TestCompute_MalformedEventsSkipped(t *testing.T) {
	events := []attendance.Event{
		{StaffID: "a", Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 8, 50)},
		{StaffID: "b", Date: "garbage", CheckIn: at(t, "2026-03-02", 8, 50)},
	}

	s := Compute(events, roster(2), testRules)

	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 2, s.TotalRecords)
	assert.Equal(t, 1, s.PresentCount)
}

func TestPairWithRoster_SynthesizesNoData(t *testing.T) {
	members := roster(5)
	events := []attendance.Event{
		{StaffID: "a", Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 8, 50), CheckOut: at(t, "2026-03-02", 17, 0)},
		{StaffID: "b", Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 9, 0)},
		{StaffID: "c", Date: "2026-03-02", CheckOut: at(t, "2026-03-02", 17, 30)},
	}

	entries := PairWithRoster(events, members)
	require.Len(t, entries, 5)

	byID := make(map[string]PairedEntry)
	for _, entry := range entries {
		byID[entry.Staff.ID] = entry
	}

	assert.Equal(t, PresenceComplete, byID["a"].Status)
	assert.Equal(t, PresenceCheckedIn, byID["b"].Status)
	assert.Equal(t, PresenceCheckedOut, byID["c"].Status)
	assert.Equal(t, PresenceNoData, byID["d"].Status)
	assert.Equal(t, PresenceNoData, byID["e"].Status)
}

func TestPairWithRoster_MostCompleteEventWins(t *testing.T) {
	members := roster(1)
	events := []attendance.Event{
		{StaffID: "a", Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 9, 0)},
		{StaffID: "a", Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 9, 5), CheckOut: at(t, "2026-03-02", 17, 0)},
	}

	entries := PairWithRoster(events, members)
	require.Len(t, entries, 1)
	assert.Equal(t, PresenceComplete, entries[0].Status)
}

func TestTrendSeries_PerDateDenominators(t *testing.T) {
	// Each point is normalized by that date's own event count, so one date
	// with 2 events and one with 4 both produce percentages of their own day.
	events := []attendance.Event{
		{StaffID: "a", Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 8, 50)},
		{StaffID: "b", Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 9, 30)},

		{StaffID: "a", Date: "2026-03-03", CheckIn: at(t, "2026-03-03", 8, 50)},
		{StaffID: "b", Date: "2026-03-03", CheckIn: at(t, "2026-03-03", 8, 50)},
		{StaffID: "c", Date: "2026-03-03", CheckIn: at(t, "2026-03-03", 8, 50)},
		{StaffID: "d", Date: "2026-03-03", CheckIn: at(t, "2026-03-03", 9, 30)},
	}

	points := TrendSeries(events, testRules)
	require.Len(t, points, 2)

	assert.Equal(t, "2026-03-02", points[0].Date)
	assert.InDelta(t, 50.0, points[0].PresentPct, 0.001)
	assert.InDelta(t, 50.0, points[0].LatePct, 0.001)

	assert.Equal(t, "2026-03-03", points[1].Date)
	assert.InDelta(t, 75.0, points[1].PresentPct, 0.001)
	assert.InDelta(t, 25.0, points[1].LatePct, 0.001)
}

func TestCountByStatus(t *testing.T) {
	events := []attendance.Event{
		{StaffID: "a", Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 8, 50)},
		{StaffID: "a", Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 9, 45)},
		{StaffID: "b", Date: "2026-03-02"},
	}

	counts := CountByStatus(events, testRules)

	assert.Equal(t, 1, counts[StatusPresent])
	assert.Equal(t, 1, counts[StatusLate])
	assert.Equal(t, 0, counts[StatusNone])
}
