package service

import "strings"

// ===============================
// Service Status
// ===============================

type Status string

const (
	StatusQueue      Status = "queue"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusPaid       Status = "paid"
	StatusDebts      Status = "debts"
	StatusCancelled  Status = "cancelled"
)

// ===============================
// Tabs
// ===============================

// The two tabs partition the six statuses into disjoint groups: work that
// is still on the floor versus settled history.

type Tab string

const (
	TabActive  Tab = "active"
	TabHistory Tab = "history"
)

var (
	ActiveStatuses  = []Status{StatusQueue, StatusInProgress, StatusCompleted}
	HistoryStatuses = []Status{StatusPaid, StatusDebts, StatusCancelled}
)

func TabStatuses(tab Tab) []Status {
	switch tab {
	case TabActive:
		return ActiveStatuses
	case TabHistory:
		return HistoryStatuses
	default:
		return nil
	}
}

// Display renders a status for the UI: "in_progress" -> "IN PROGRESS".
func (s Status) Display() string {
	return strings.ToUpper(strings.ReplaceAll(string(s), "_", " "))
}
