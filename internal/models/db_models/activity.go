package db_models

import "time"

type EntityType string

const (
	TypeAll          EntityType = "all"
	TypeCategory     EntityType = "category"
	TypeInterest     EntityType = "interest"
	TypeMunicipality EntityType = "municipality"
	TypeSubscription EntityType = "subscription"
)

type ActionKind string

const (
	ActionCreate             ActionKind = "create"
	ActionUpdate             ActionKind = "update"
	ActionDelete             ActionKind = "delete"
	ActionBulkActivate       ActionKind = "bulk_activate"
	ActionBulkDeactivate     ActionKind = "bulk_deactivate"
	ActionBulkDelete         ActionKind = "bulk_delete"
	ActionPauseSubscription  ActionKind = "pause_subscription"
	ActionResumeSubscription ActionKind = "resume_subscription"
	ActionCancelSubscription ActionKind = "cancel_subscription"
)

var actionLabels = map[ActionKind]string{
	ActionCreate:             "Create",
	ActionUpdate:             "Update",
	ActionDelete:             "Delete",
	ActionBulkActivate:       "Bulk Activate",
	ActionBulkDeactivate:     "Bulk Deactivate",
	ActionBulkDelete:         "Bulk Delete",
	ActionPauseSubscription:  "Pause Subscription",
	ActionResumeSubscription: "Resume Subscription",
	ActionCancelSubscription: "Cancel Subscription",
}

// Label returns the badge text shown for an action kind.
func (k ActionKind) Label() string {
	if l, ok := actionLabels[k]; ok {
		return l
	}
	return string(k)
}

// ActivityItem is an append-only audit record. DateTime and TimeAgo are
// display renditions computed from OccurredAt when the log is read.
type ActivityItem struct {
	ID          string     `json:"id"`
	ActionKind  ActionKind `json:"actionKind"`
	ActionLabel string     `json:"actionLabel"`
	Entity      string     `json:"entity"`
	Type        EntityType `json:"type"`
	User        string     `json:"user"`
	OccurredAt  time.Time  `json:"-"`
	DateTime    string     `json:"dateTime"`
	TimeAgo     string     `json:"timeAgo"`
}
