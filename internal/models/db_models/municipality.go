package db_models

import "time"

type SubscriptionStatus string

const (
	SubNone      SubscriptionStatus = "none"
	SubActive    SubscriptionStatus = "active"
	SubPaused    SubscriptionStatus = "paused"
	SubCancelled SubscriptionStatus = "cancelled"
)

type BillingCycle string

const (
	CycleMonthly BillingCycle = "monthly"
	CycleYearly  BillingCycle = "yearly"
)

// Municipality is the central record of the platform. The subscription
// extension fields are pointers with omitempty: they are present if and
// only if SubscriptionStatus is active or paused, and cancelling removes
// them entirely rather than nulling them.
type Municipality struct {
	ID           string   `json:"id"`
	NameEn       string   `json:"nameEn"`
	NameAr       string   `json:"nameAr"`
	Region       string   `json:"region"`
	Country      string   `json:"country"`
	ContactEmail string   `json:"contactEmail"`
	ContactPhone string   `json:"contactPhone"`
	Population   int64    `json:"population"`
	CategoryIDs  []string `json:"categoryIds"`
	InterestIDs  []string `json:"interestIds"`

	Status             EntityStatus       `json:"status"`
	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	SubscriptionPlanID    *PlanID       `json:"subscriptionPlanId,omitempty"`
	BillingCycle          *BillingCycle `json:"billingCycle,omitempty"`
	SubscriptionStartDate *time.Time    `json:"subscriptionStartDate,omitempty"`
	NextBillingDate       *time.Time    `json:"nextBillingDate,omitempty"`
}

func (m Municipality) RowID() string { return m.ID }

// HasSubscription reports whether the plan extension must be present.
func (m Municipality) HasSubscription() bool {
	return m.SubscriptionStatus == SubActive || m.SubscriptionStatus == SubPaused
}

// ClearSubscription removes the plan extension fields.
func (m *Municipality) ClearSubscription() {
	m.SubscriptionPlanID = nil
	m.BillingCycle = nil
	m.SubscriptionStartDate = nil
	m.NextBillingDate = nil
}
