package models

// DashboardStatistics summarizes the account roster and warmup task activity
// for the dashboard landing page.
type DashboardStatistics struct {
	TotalAccounts    int `json:"total_accounts"`
	ActiveAccounts   int `json:"active_accounts"`
	InactiveAccounts int `json:"inactive_accounts"`
	TotalTasks       int `json:"total_tasks"`
	PendingTasks     int `json:"pending_tasks"`
	CompletedTasks   int `json:"completed_tasks"`
}
