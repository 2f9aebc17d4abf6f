package attendance

func shiftLabel(worked bool) string {
	if worked {
		return "Present"
	}
	return "Absent"
}

func stateOf(existing *Record) ShiftState {
	if existing == nil {
		return ShiftState{Day: "Absent", Night: "Absent"}
	}
	return ShiftState{Day: shiftLabel(existing.WorkedDay), Night: shiftLabel(existing.WorkedNight)}
}

// DiffMark compares an existing record (nil when none) against the
// requested flags. It returns the audit change entry and whether a
// write is needed. Re-marking identical flags yields no change, which
// keeps marking idempotent: the audit trail stays empty on repeats.
func DiffMark(existing *Record, labourID, labourName string, workedDay, workedNight bool) (Change, bool) {
	if existing != nil && existing.WorkedDay == workedDay && existing.WorkedNight == workedNight {
		return Change{}, false
	}

	note := "created"
	if existing != nil {
		note = "updated"
	}

	return Change{
		LabourID:   labourID,
		LabourName: labourName,
		Before:     stateOf(existing),
		After:      ShiftState{Day: shiftLabel(workedDay), Night: shiftLabel(workedNight)},
		Note:       note,
	}, true
}
