package stats

import (
	"testing"
	"time"

	"github.com/acss-labs/acss-backend-go/internal/domain/attendance"
	"github.com/acss-labs/acss-backend-go/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRules = rules.Rules{
	WorkStart:            rules.ClockTime{Hour: 9, Minute: 0},
	WorkEnd:              rules.ClockTime{Hour: 17, Minute: 0},
	LateThresholdMinutes: 15,
	MinimumHours:         4,
	WeekendDays:          []int{0, 6},
}

func at(t *testing.T, date string, hour, minute int) *time.Time {
	t.Helper()
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	require.NoError(t, err)
	instant := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local)
	return &instant
}

func TestClassify_OnTime(t *testing.T) {
	e := attendance.Event{Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 8, 55)}

	status, err := Classify(e, testRules)
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, status)
}

func TestClassify_CutoffBoundaryIsPresent(t *testing.T) {
	// 9:00 start + 15 minutes: a check-in at exactly 9:15 is not late.
	e := attendance.Event{Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 9, 15)}

	status, err := Classify(e, testRules)
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, status)
}

func TestClassify_PastCutoffIsLate(t *testing.T) {
	e := attendance.Event{Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 9, 16)}

	status, err := Classify(e, testRules)
	require.NoError(t, err)
	assert.Equal(t, StatusLate, status)
}

func TestClassify_CheckOutOnlyIsPresent(t *testing.T) {
	e := attendance.Event{Date: "2026-03-02", CheckOut: at(t, "2026-03-02", 17, 5)}

	status, err := Classify(e, testRules)
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, status)
}

func TestClassify_NoTimestampsIsNone(t *testing.T) {
	e := attendance.Event{Date: "2026-03-02"}

	status, err := Classify(e, testRules)
	require.NoError(t, err)
	assert.Equal(t, StatusNone, status)
}

func TestClassify_MalformedDate(t *testing.T) {
	e := attendance.Event{Date: "not-a-date", CheckIn: at(t, "2026-03-02", 9, 0)}

	_, err := Classify(e, testRules)
	assert.ErrorIs(t, err, ErrMalformedTimestamp)
}

func TestClassify_ThresholdChangeReclassifies(t *testing.T) {
	e := attendance.Event{Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 9, 10)}

	strict := testRules
	strict.LateThresholdMinutes = 5

	status, err := Classify(e, testRules)
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, status)

	status, err = Classify(e, strict)
	require.NoError(t, err)
	assert.Equal(t, StatusLate, status)
}

func TestPresenceStatus(t *testing.T) {
	in := at(t, "2026-03-02", 9, 0)
	out := at(t, "2026-03-02", 17, 0)

	assert.Equal(t, PresenceComplete, PresenceStatus(attendance.Event{CheckIn: in, CheckOut: out}))
	assert.Equal(t, PresenceCheckedIn, PresenceStatus(attendance.Event{CheckIn: in}))
	assert.Equal(t, PresenceCheckedOut, PresenceStatus(attendance.Event{CheckOut: out}))
	assert.Equal(t, PresenceNoData, PresenceStatus(attendance.Event{}))
}

func TestLateMinutes(t *testing.T) {
	onTime := attendance.Event{Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 8, 45)}
	late := attendance.Event{Date: "2026-03-02", CheckIn: at(t, "2026-03-02", 9, 42)}

	assert.Equal(t, 0, LateMinutes(onTime, testRules))
	assert.Equal(t, 42, LateMinutes(late, testRules))
	assert.Equal(t, 0, LateMinutes(attendance.Event{Date: "2026-03-02"}, testRules))
}
