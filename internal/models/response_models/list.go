package response_models

import "baladi/internal/models/db_models"

// Selection mirrors the page's current selection set. Selected ids are
// always a subset of ids the current filter can reach.
type Selection struct {
	SelectedIDs   []string `json:"selectedIds"`
	SelectedCount int      `json:"selectedCount"`
}

type CategoryListResponse struct {
	Items      []db_models.Category `json:"items"`
	TotalCount int                  `json:"totalCount"`
	Selection  Selection            `json:"selection"`
}

// InterestRow is an interest with its category name resolved for
// display. A dangling category reference renders as "-".
type InterestRow struct {
	db_models.Interest
	CategoryName string `json:"categoryName"`
}

type InterestListResponse struct {
	Items      []InterestRow `json:"items"`
	TotalCount int           `json:"totalCount"`
	Selection  Selection     `json:"selection"`
}

type MunicipalityListResponse struct {
	Items      []db_models.Municipality `json:"items"`
	TotalCount int                      `json:"totalCount"`
	Selection  Selection                `json:"selection"`
}

// SubscriptionRow is a municipality viewed through the subscriptions
// screen, with the plan resolved to its display label.
type SubscriptionRow struct {
	db_models.Municipality
	PlanLabel string `json:"planLabel"`
}

type SubscriptionListResponse struct {
	Items      []SubscriptionRow `json:"items"`
	TotalCount int               `json:"totalCount"`
}
