package db_models

type PlanID string

const (
	PlanBasic    PlanID = "basic"
	PlanStandard PlanID = "standard"
	PlanPremium  PlanID = "premium"
)

// Plan describes a subscription tier. Prices are whole SAR amounts.
type Plan struct {
	ID           PlanID   `json:"id"`
	Name         string   `json:"name"`
	PriceMonthly int64    `json:"priceMonthly"`
	PriceYearly  int64    `json:"priceYearly"`
	Currency     string   `json:"currency"`
	Features     []string `json:"features"`
}

func DefaultPlans() []Plan {
	return []Plan{
		{
			ID:           PlanBasic,
			Name:         "Basic",
			PriceMonthly: 500,
			PriceYearly:  5000,
			Currency:     "SAR",
			Features:     []string{"Up to 50 news/month", "Up to 20 announcements/month", "Basic analytics"},
		},
		{
			ID:           PlanStandard,
			Name:         "Standard",
			PriceMonthly: 1000,
			PriceYearly:  10000,
			Currency:     "SAR",
			Features:     []string{"Up to 200 news/month", "Up to 100 announcements/month", "Advanced analytics"},
		},
		{
			ID:           PlanPremium,
			Name:         "Premium",
			PriceMonthly: 2000,
			PriceYearly:  20000,
			Currency:     "SAR",
			Features:     []string{"Unlimited news", "Unlimited announcements", "Full analytics suite"},
		},
	}
}

func PlanByID(id PlanID) (Plan, bool) {
	for _, p := range DefaultPlans() {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// PlanLabel renders a plan reference for display, "-" when absent or
// unknown.
func PlanLabel(id *PlanID) string {
	if id == nil {
		return "-"
	}
	p, ok := PlanByID(*id)
	if !ok {
		return "-"
	}
	return p.Name
}
