package response_models

import "baladi/internal/models/db_models"

type EntityCount struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// SubscriptionStats are the KPI counters of the subscriptions screen.
// Cancelled is tracked but not a headline card.
type SubscriptionStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Paused    int `json:"paused"`
	None      int `json:"none"`
	Cancelled int `json:"cancelled"`
}

type DashboardReport struct {
	Categories     EntityCount       `json:"categories"`
	Interests      EntityCount       `json:"interests"`
	Municipalities EntityCount       `json:"municipalities"`
	Subscriptions  SubscriptionStats `json:"subscriptions"`
	Plans          []db_models.Plan  `json:"plans"`
}
