package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func existingRecord(day, night bool) *Record {
	return &Record{
		ID:          "rec-1",
		LabourID:    "lab-1",
		SiteID:      "site-1",
		Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		WorkedDay:   day,
		WorkedNight: night,
	}
}

func TestDiffMarkCreatesWhenNoRecord(t *testing.T) {
	change, needed := DiffMark(nil, "lab-1", "Ramesh", true, false)

	assert.True(t, needed)
	assert.Equal(t, "created", change.Note)
	assert.Equal(t, ShiftState{Day: "Absent", Night: "Absent"}, change.Before)
	assert.Equal(t, ShiftState{Day: "Present", Night: "Absent"}, change.After)
}

func TestDiffMarkUpdatesWhenFlagsDiffer(t *testing.T) {
	change, needed := DiffMark(existingRecord(true, false), "lab-1", "Ramesh", true, true)

	assert.True(t, needed)
	assert.Equal(t, "updated", change.Note)
	assert.Equal(t, ShiftState{Day: "Present", Night: "Absent"}, change.Before)
	assert.Equal(t, ShiftState{Day: "Present", Night: "Present"}, change.After)
}

func TestDiffMarkIdempotentOnIdenticalFlags(t *testing.T) {
	cases := []struct{ day, night bool }{
		{false, false},
		{true, false},
		{false, true},
		{true, true},
	}
	for _, c := range cases {
		_, needed := DiffMark(existingRecord(c.day, c.night), "lab-1", "Ramesh", c.day, c.night)
		assert.False(t, needed, "day=%v night=%v should produce no change", c.day, c.night)
	}
}

func TestDiffMarkUnmarkBothShifts(t *testing.T) {
	change, needed := DiffMark(existingRecord(true, true), "lab-1", "Ramesh", false, false)

	assert.True(t, needed)
	assert.Equal(t, ShiftState{Day: "Absent", Night: "Absent"}, change.After)
}

func TestRecordPresent(t *testing.T) {
	assert.False(t, Record{}.Present())
	assert.True(t, Record{WorkedDay: true}.Present())
	assert.True(t, Record{WorkedNight: true}.Present())
	assert.True(t, Record{WorkedDay: true, WorkedNight: true}.Present())
}
