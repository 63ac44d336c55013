package models

// StatusCount pairs a status value with how many records carry it.
type StatusCount struct {
	Status string `db:"status" json:"status"`
	Count  int    `db:"count" json:"count"`
}

// DateCount pairs a calendar date with how many schedules fall on it.
type DateCount struct {
	Date  string `db:"date" json:"date"`
	Count int    `db:"count" json:"count"`
}

// StudentSummary aggregates the student collection.
type StudentSummary struct {
	Total    int           `json:"total"`
	ByStatus []StatusCount `json:"by_status"`
}

// ScheduleSummary aggregates the schedule collection.
type ScheduleSummary struct {
	Total    int           `json:"total"`
	ByStatus []StatusCount `json:"by_status"`
	Today    int           `json:"today"`
	Upcoming []DateCount   `json:"upcoming"`
}

// Summary is the derived dashboard payload. It is computed from the live
// tables on demand and never persisted.
type Summary struct {
	Students  StudentSummary  `json:"students"`
	Schedules ScheduleSummary `json:"schedules"`
	Financial FinancialTotals `json:"financial"`
}
