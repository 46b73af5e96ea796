package request_models

type CreateSubscriptionRequest struct {
	PlanID       string `json:"planId" binding:"required,oneof=basic standard premium"`
	BillingCycle string `json:"billingCycle" binding:"required,oneof=monthly yearly"`
}

type ChangePlanRequest struct {
	PlanID string `json:"planId" binding:"required,oneof=basic standard premium"`
}

// BulkDeleteRequest gates bulk deletion behind an explicit confirmation,
// matching the confirmation step single deletes already have.
type BulkDeleteRequest struct {
	Confirm bool `json:"confirm"`
}
