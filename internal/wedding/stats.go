package wedding

// TotalAttendance is the "Total" guest statistic: every guest counts as
// themselves plus their companions.
func TotalAttendance(guests []Guest) int {
	total := 0
	for _, g := range guests {
		total += 1 + g.PlusOnes
	}
	return total
}

// ConfirmedAttendance counts attendance for guests that confirmed.
func ConfirmedAttendance(guests []Guest) int {
	total := 0
	for _, g := range guests {
		if g.RSVPStatus == RSVPConfirmed {
			total += 1 + g.PlusOnes
		}
	}
	return total
}

// DeriveTaskStatus applies the checklist completion rule: a task with
// subtasks is completed exactly when all of them are; a task without
// subtasks keeps whatever status it was toggled to.
func DeriveTaskStatus(t Task) TaskStatus {
	if len(t.Subtasks) == 0 {
		return t.Status
	}
	done := 0
	for _, st := range t.Subtasks {
		if st.Completed {
			done++
		}
	}
	switch done {
	case len(t.Subtasks):
		return TaskCompleted
	case 0:
		return TaskPending
	default:
		return TaskInProgress
	}
}
