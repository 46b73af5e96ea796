package services

import (
	"context"

	"baladi/internal/bridge"
	"baladi/internal/listview"
	"baladi/internal/models/db_models"
	"baladi/internal/models/response_models"
	"baladi/internal/repositories"
	"baladi/pkg/utils"
)

// SubscriptionService owns the municipality detail screen's lifecycle
// state machine. All transitions operate on the bridge "view" snapshot
// rather than the municipality store: the detail screen is a separate
// context that only sees what the list screen handed over, and its
// mutations travel back through the bridge's "update" key.
type SubscriptionServiceInterface interface {
	Details(ctx context.Context, id string) (db_models.Municipality, error)
	Create(ctx context.Context, id string, planID db_models.PlanID, cycle db_models.BillingCycle) (db_models.Municipality, string, error)
	Pause(ctx context.Context, id string) (db_models.Municipality, string, error)
	Resume(ctx context.Context, id string) (db_models.Municipality, string, error)
	Cancel(ctx context.Context, id string) (db_models.Municipality, string, error)
	ChangePlan(ctx context.Context, id string, planID db_models.PlanID) (db_models.Municipality, string, error)

	Overview(ctx context.Context, status, planID string) (*response_models.SubscriptionListResponse, error)
	Stats(ctx context.Context) (response_models.SubscriptionStats, error)
	Plans(ctx context.Context) ([]db_models.Plan, error)
}

type SubscriptionService struct {
	municipalities repositories.MunicipalityRepository
	bridge         *bridge.MunicipalityBridge
	activity       ActivityServiceInterface
	notifier       Notifier
	list           *listview.Controller[db_models.Municipality]
}

func NewSubscriptionService(
	municipalities repositories.MunicipalityRepository,
	b *bridge.MunicipalityBridge,
	activity ActivityServiceInterface,
	notifier Notifier,
) SubscriptionServiceInterface {
	return &SubscriptionService{
		municipalities: municipalities,
		bridge:         b,
		activity:       activity,
		notifier:       notifier,
		list: listview.New(listview.Config[db_models.Municipality]{
			MatchFilter: func(m db_models.Municipality, name, value string) bool {
				switch name {
				case "status":
					if value == "no_subscription" {
						value = string(db_models.SubNone)
					}
					return string(m.SubscriptionStatus) == value
				case "planId":
					return m.SubscriptionPlanID != nil && string(*m.SubscriptionPlanID) == value
				default:
					return true
				}
			},
		}),
	}
}

func (s *SubscriptionService) Details(ctx context.Context, id string) (db_models.Municipality, error) {
	m, ok := s.bridge.ReadView(ctx, id)
	if !ok {
		return db_models.Municipality{}, utils.ErrSnapshotNotFound
	}
	return m, nil
}

func (s *SubscriptionService) Create(ctx context.Context, id string, planID db_models.PlanID, cycle db_models.BillingCycle) (db_models.Municipality, string, error) {
	m, err := s.Details(ctx, id)
	if err != nil {
		return db_models.Municipality{}, "", err
	}
	if m.HasSubscription() {
		return db_models.Municipality{}, "", utils.ErrInvalidTransition
	}
	plan, ok := db_models.PlanByID(planID)
	if !ok {
		return db_models.Municipality{}, "", utils.ErrPlanNotFound
	}

	start := utils.Now()
	days := 30
	if cycle == db_models.CycleYearly {
		days = 365
	}
	nextBilling := utils.AddDays(start, days)

	m.SubscriptionStatus = db_models.SubActive
	m.SubscriptionPlanID = &plan.ID
	m.BillingCycle = &cycle
	m.SubscriptionStartDate = &start
	m.NextBillingDate = &nextBilling

	if err := s.bridge.Publish(ctx, m); err != nil {
		return db_models.Municipality{}, "", err
	}

	s.activity.Record(ctx, db_models.ActionCreate, db_models.TypeSubscription, m.NameEn+" - "+plan.Name)
	msg := "Subscription created successfully"
	s.notifier.Success(msg)
	return m, msg, nil
}

func (s *SubscriptionService) Pause(ctx context.Context, id string) (db_models.Municipality, string, error) {
	m, err := s.Details(ctx, id)
	if err != nil {
		return db_models.Municipality{}, "", err
	}
	if m.SubscriptionStatus != db_models.SubActive {
		return db_models.Municipality{}, "", utils.ErrInvalidTransition
	}

	m.SubscriptionStatus = db_models.SubPaused
	if err := s.bridge.Publish(ctx, m); err != nil {
		return db_models.Municipality{}, "", err
	}

	s.activity.Record(ctx, db_models.ActionPauseSubscription, db_models.TypeSubscription, m.NameEn+" - "+db_models.PlanLabel(m.SubscriptionPlanID))
	msg := "Subscription paused"
	s.notifier.Success(msg)
	return m, msg, nil
}

func (s *SubscriptionService) Resume(ctx context.Context, id string) (db_models.Municipality, string, error) {
	m, err := s.Details(ctx, id)
	if err != nil {
		return db_models.Municipality{}, "", err
	}
	if m.SubscriptionStatus != db_models.SubPaused {
		return db_models.Municipality{}, "", utils.ErrInvalidTransition
	}

	m.SubscriptionStatus = db_models.SubActive
	if err := s.bridge.Publish(ctx, m); err != nil {
		return db_models.Municipality{}, "", err
	}

	s.activity.Record(ctx, db_models.ActionResumeSubscription, db_models.TypeSubscription, m.NameEn)
	msg := "Subscription resumed"
	s.notifier.Success(msg)
	return m, msg, nil
}

func (s *SubscriptionService) Cancel(ctx context.Context, id string) (db_models.Municipality, string, error) {
	m, err := s.Details(ctx, id)
	if err != nil {
		return db_models.Municipality{}, "", err
	}
	if m.SubscriptionStatus == db_models.SubNone {
		return db_models.Municipality{}, "", utils.ErrInvalidTransition
	}

	// Cancelling removes the plan extension entirely so the detail
	// screen falls back to its "no active subscription" presentation.
	m.SubscriptionStatus = db_models.SubCancelled
	m.ClearSubscription()
	if err := s.bridge.Publish(ctx, m); err != nil {
		return db_models.Municipality{}, "", err
	}

	s.activity.Record(ctx, db_models.ActionCancelSubscription, db_models.TypeSubscription, m.NameEn)
	msg := "Subscription cancelled"
	s.notifier.Success(msg)
	return m, msg, nil
}

func (s *SubscriptionService) ChangePlan(ctx context.Context, id string, planID db_models.PlanID) (db_models.Municipality, string, error) {
	m, err := s.Details(ctx, id)
	if err != nil {
		return db_models.Municipality{}, "", err
	}
	if !m.HasSubscription() {
		return db_models.Municipality{}, "", utils.ErrInvalidTransition
	}
	plan, ok := db_models.PlanByID(planID)
	if !ok {
		return db_models.Municipality{}, "", utils.ErrPlanNotFound
	}

	// Billing cycle and dates stay as they are.
	m.SubscriptionPlanID = &plan.ID
	if err := s.bridge.Publish(ctx, m); err != nil {
		return db_models.Municipality{}, "", err
	}

	s.activity.Record(ctx, db_models.ActionUpdate, db_models.TypeSubscription, m.NameEn+" - "+plan.Name)
	msg := "Plan updated successfully"
	s.notifier.Success(msg)
	return m, msg, nil
}

// mergedAll mirrors the subscriptions screen: the municipality store
// overlaid with pending bridge updates.
func (s *SubscriptionService) mergedAll(ctx context.Context) ([]db_models.Municipality, error) {
	items, err := s.municipalities.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i] = s.bridge.MergeLatest(ctx, items[i])
	}
	return items, nil
}

func (s *SubscriptionService) Overview(ctx context.Context, status, planID string) (*response_models.SubscriptionListResponse, error) {
	s.list.SetFilter("status", status)
	s.list.SetFilter("planId", planID)

	items, err := s.mergedAll(ctx)
	if err != nil {
		return nil, err
	}
	visible := s.list.Visible(items)

	rows := make([]response_models.SubscriptionRow, 0, len(visible))
	for _, m := range visible {
		rows = append(rows, response_models.SubscriptionRow{
			Municipality: m,
			PlanLabel:    db_models.PlanLabel(m.SubscriptionPlanID),
		})
	}

	return &response_models.SubscriptionListResponse{
		Items:      rows,
		TotalCount: len(rows),
	}, nil
}

func (s *SubscriptionService) Stats(ctx context.Context) (response_models.SubscriptionStats, error) {
	items, err := s.mergedAll(ctx)
	if err != nil {
		return response_models.SubscriptionStats{}, err
	}

	stats := response_models.SubscriptionStats{Total: len(items)}
	for _, m := range items {
		switch m.SubscriptionStatus {
		case db_models.SubActive:
			stats.Active++
		case db_models.SubPaused:
			stats.Paused++
		case db_models.SubCancelled:
			stats.Cancelled++
		default:
			stats.None++
		}
	}
	return stats, nil
}

func (s *SubscriptionService) Plans(ctx context.Context) ([]db_models.Plan, error) {
	return db_models.DefaultPlans(), nil
}
