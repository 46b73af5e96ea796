package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baladi/internal/bridge"
	"baladi/internal/models/db_models"
	"baladi/internal/repositories"
	"baladi/pkg/utils"
)

func newSubscriptionFixture(seed []db_models.Municipality) (SubscriptionServiceInterface, *bridge.MunicipalityBridge, *spyNotifier) {
	notifier := &spyNotifier{}
	b := bridge.NewMunicipalityBridge(bridge.NewMemoryStore(0))
	svc := NewSubscriptionService(
		repositories.NewMunicipalityRepository(seed),
		b,
		newActivity(),
		notifier,
	)
	return svc, b, notifier
}

func seedMunicipality(id string, status db_models.SubscriptionStatus) db_models.Municipality {
	return db_models.Municipality{
		ID:                 id,
		NameEn:             "Testville",
		Region:             "Riyadh Region",
		Country:            "Saudi Arabia",
		Status:             db_models.StatusActive,
		SubscriptionStatus: status,
	}
}

func publishView(t *testing.T, b *bridge.MunicipalityBridge, m db_models.Municipality) {
	t.Helper()
	require.NoError(t, b.PublishView(context.Background(), m))
}

func TestSubscriptionDetailsRequiresSnapshot(t *testing.T) {
	svc, _, _ := newSubscriptionFixture(nil)

	_, err := svc.Details(context.Background(), "mun_1")
	assert.ErrorIs(t, err, utils.ErrSnapshotNotFound)
}

func TestSubscriptionCreateMonthly(t *testing.T) {
	ctx := context.Background()
	svc, b, notifier := newSubscriptionFixture(nil)
	publishView(t, b, seedMunicipality("mun_1", db_models.SubNone))

	before := time.Now().UTC()
	m, msg, err := svc.Create(ctx, "mun_1", db_models.PlanBasic, db_models.CycleMonthly)
	require.NoError(t, err)
	assert.Equal(t, "Subscription created successfully", msg)
	assert.Equal(t, "Subscription created successfully", notifier.last())

	assert.Equal(t, db_models.SubActive, m.SubscriptionStatus)
	require.NotNil(t, m.SubscriptionPlanID)
	assert.Equal(t, db_models.PlanBasic, *m.SubscriptionPlanID)
	require.NotNil(t, m.BillingCycle)
	assert.Equal(t, db_models.CycleMonthly, *m.BillingCycle)

	// Monthly billing is a flat 30 days out, never calendar-aware.
	require.NotNil(t, m.SubscriptionStartDate)
	require.NotNil(t, m.NextBillingDate)
	assert.Equal(t, 30*24*time.Hour, m.NextBillingDate.Sub(*m.SubscriptionStartDate))
	assert.False(t, m.SubscriptionStartDate.Before(before.Add(-time.Minute)))

	// The mutation is visible to a fresh Details read.
	got, err := svc.Details(ctx, "mun_1")
	require.NoError(t, err)
	assert.Equal(t, db_models.SubActive, got.SubscriptionStatus)
}

func TestSubscriptionCreateYearly(t *testing.T) {
	ctx := context.Background()
	svc, b, _ := newSubscriptionFixture(nil)
	publishView(t, b, seedMunicipality("mun_1", db_models.SubNone))

	m, _, err := svc.Create(ctx, "mun_1", db_models.PlanStandard, db_models.CycleYearly)
	require.NoError(t, err)
	assert.Equal(t, 365*24*time.Hour, m.NextBillingDate.Sub(*m.SubscriptionStartDate))
}

func TestSubscriptionCreateRejectsExisting(t *testing.T) {
	ctx := context.Background()
	svc, b, _ := newSubscriptionFixture(nil)
	publishView(t, b, seedMunicipality("mun_1", db_models.SubNone))

	_, _, err := svc.Create(ctx, "mun_1", db_models.PlanBasic, db_models.CycleMonthly)
	require.NoError(t, err)

	_, _, err = svc.Create(ctx, "mun_1", db_models.PlanPremium, db_models.CycleMonthly)
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)
}

func TestSubscriptionCreateUnknownPlan(t *testing.T) {
	ctx := context.Background()
	svc, b, _ := newSubscriptionFixture(nil)
	publishView(t, b, seedMunicipality("mun_1", db_models.SubNone))

	_, _, err := svc.Create(ctx, "mun_1", db_models.PlanID("platinum"), db_models.CycleMonthly)
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestSubscriptionPauseResume(t *testing.T) {
	ctx := context.Background()
	svc, b, _ := newSubscriptionFixture(nil)
	publishView(t, b, seedMunicipality("mun_1", db_models.SubNone))

	// Pausing without an active subscription is rejected.
	_, _, err := svc.Pause(ctx, "mun_1")
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)

	_, _, err = svc.Create(ctx, "mun_1", db_models.PlanBasic, db_models.CycleMonthly)
	require.NoError(t, err)

	m, msg, err := svc.Pause(ctx, "mun_1")
	require.NoError(t, err)
	assert.Equal(t, db_models.SubPaused, m.SubscriptionStatus)
	assert.Equal(t, "Subscription paused", msg)
	// Plan fields survive the pause.
	assert.NotNil(t, m.SubscriptionPlanID)
	assert.NotNil(t, m.NextBillingDate)

	// Resuming only works from paused.
	m, msg, err = svc.Resume(ctx, "mun_1")
	require.NoError(t, err)
	assert.Equal(t, db_models.SubActive, m.SubscriptionStatus)
	assert.Equal(t, "Subscription resumed", msg)

	_, _, err = svc.Resume(ctx, "mun_1")
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)
}

func TestSubscriptionCancelRemovesPlanFields(t *testing.T) {
	ctx := context.Background()
	svc, b, _ := newSubscriptionFixture(nil)
	publishView(t, b, seedMunicipality("mun_1", db_models.SubNone))

	_, _, err := svc.Create(ctx, "mun_1", db_models.PlanStandard, db_models.CycleYearly)
	require.NoError(t, err)

	m, msg, err := svc.Cancel(ctx, "mun_1")
	require.NoError(t, err)
	assert.Equal(t, "Subscription cancelled", msg)
	assert.Equal(t, db_models.SubCancelled, m.SubscriptionStatus)
	assert.Nil(t, m.SubscriptionPlanID)
	assert.Nil(t, m.BillingCycle)
	assert.Nil(t, m.SubscriptionStartDate)
	assert.Nil(t, m.NextBillingDate)
}

func TestSubscriptionCancelFromNoneRejected(t *testing.T) {
	ctx := context.Background()
	svc, b, _ := newSubscriptionFixture(nil)
	publishView(t, b, seedMunicipality("mun_1", db_models.SubNone))

	_, _, err := svc.Cancel(ctx, "mun_1")
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)
}

func TestSubscriptionChangePlanKeepsCycleAndDates(t *testing.T) {
	ctx := context.Background()
	svc, b, _ := newSubscriptionFixture(nil)
	publishView(t, b, seedMunicipality("mun_1", db_models.SubNone))

	created, _, err := svc.Create(ctx, "mun_1", db_models.PlanBasic, db_models.CycleMonthly)
	require.NoError(t, err)

	m, msg, err := svc.ChangePlan(ctx, "mun_1", db_models.PlanPremium)
	require.NoError(t, err)
	assert.Equal(t, "Plan updated successfully", msg)
	assert.Equal(t, db_models.PlanPremium, *m.SubscriptionPlanID)
	assert.Equal(t, *created.BillingCycle, *m.BillingCycle)
	assert.True(t, created.NextBillingDate.Equal(*m.NextBillingDate))
}

func TestSubscriptionChangePlanWithoutSubscription(t *testing.T) {
	ctx := context.Background()
	svc, b, _ := newSubscriptionFixture(nil)
	publishView(t, b, seedMunicipality("mun_1", db_models.SubCancelled))

	_, _, err := svc.ChangePlan(ctx, "mun_1", db_models.PlanBasic)
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)
}

func TestSubscriptionOverviewFiltersAndLabels(t *testing.T) {
	ctx := context.Background()
	active := seedMunicipality("mun_active", db_models.SubActive)
	plan := db_models.PlanPremium
	active.SubscriptionPlanID = &plan
	none := seedMunicipality("mun_none", db_models.SubNone)

	svc, _, _ := newSubscriptionFixture([]db_models.Municipality{active, none})

	res, err := svc.Overview(ctx, "", "")
	require.NoError(t, err)
	require.Equal(t, 2, res.TotalCount)
	assert.Equal(t, "Premium", res.Items[0].PlanLabel)
	assert.Equal(t, "-", res.Items[1].PlanLabel)

	// "no_subscription" is the dropdown alias for none.
	res, err = svc.Overview(ctx, "no_subscription", "")
	require.NoError(t, err)
	require.Equal(t, 1, res.TotalCount)
	assert.Equal(t, "mun_none", res.Items[0].ID)

	res, err = svc.Overview(ctx, "", "premium")
	require.NoError(t, err)
	require.Equal(t, 1, res.TotalCount)
	assert.Equal(t, "mun_active", res.Items[0].ID)
}

func TestSubscriptionStatsCountBridgeUpdates(t *testing.T) {
	ctx := context.Background()
	svc, b, _ := newSubscriptionFixture([]db_models.Municipality{
		seedMunicipality("mun_1", db_models.SubNone),
		seedMunicipality("mun_2", db_models.SubNone),
	})

	// A lifecycle mutation through the detail screen shows up in stats
	// without the store ever being written.
	publishView(t, b, seedMunicipality("mun_1", db_models.SubNone))
	_, _, err := svc.Create(ctx, "mun_1", db_models.PlanBasic, db_models.CycleMonthly)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 1, stats.None)
}

func TestSubscriptionPlansCatalogue(t *testing.T) {
	svc, _, _ := newSubscriptionFixture(nil)

	plans, err := svc.Plans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, db_models.PlanBasic, plans[0].ID)
	assert.Equal(t, int64(500), plans[0].PriceMonthly)
	assert.Equal(t, int64(20000), plans[2].PriceYearly)
	assert.Equal(t, "SAR", plans[0].Currency)
}
