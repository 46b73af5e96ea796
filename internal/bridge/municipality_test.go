package bridge

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baladi/internal/models/db_models"
)

func testMunicipality() db_models.Municipality {
	return db_models.Municipality{
		ID:                 "mun_test",
		NameEn:             "Testville",
		NameAr:             "تستفيل",
		Region:             "Riyadh Region",
		Country:            "Saudi Arabia",
		ContactEmail:       "info@testville.gov.sa",
		Population:         120000,
		CategoryIDs:        []string{"cat_news"},
		InterestIDs:        []string{},
		Status:             db_models.StatusActive,
		SubscriptionStatus: db_models.SubNone,
		CreatedAt:          time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:          time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestPublishViewWritesViewKeyOnly(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	b := NewMunicipalityBridge(store)
	m := testMunicipality()

	require.NoError(t, b.PublishView(ctx, m))

	got, ok := b.ReadView(ctx, m.ID)
	assert.True(t, ok)
	assert.Equal(t, m.NameEn, got.NameEn)

	_, err := store.Get(ctx, UpdateKey(m.ID))
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestPublishWritesBothKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	b := NewMunicipalityBridge(store)
	m := testMunicipality()

	require.NoError(t, b.Publish(ctx, m))

	_, err := store.Get(ctx, ViewKey(m.ID))
	assert.NoError(t, err)
	_, err = store.Get(ctx, UpdateKey(m.ID))
	assert.NoError(t, err)
}

func TestReadViewAbsence(t *testing.T) {
	ctx := context.Background()
	b := NewMunicipalityBridge(NewMemoryStore(0))

	_, ok := b.ReadView(ctx, "mun_missing")
	assert.False(t, ok)
}

func TestReadViewCorruptPayload(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	b := NewMunicipalityBridge(store)

	require.NoError(t, store.Set(ctx, ViewKey("mun_test"), []byte("not json")))

	_, ok := b.ReadView(ctx, "mun_test")
	assert.False(t, ok)
}

func TestMergeLatestOverlaysUpdate(t *testing.T) {
	ctx := context.Background()
	b := NewMunicipalityBridge(NewMemoryStore(0))

	base := testMunicipality()
	updated := base
	plan := db_models.PlanStandard
	cycle := db_models.CycleMonthly
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	next := start.AddDate(0, 0, 30)
	updated.SubscriptionStatus = db_models.SubActive
	updated.SubscriptionPlanID = &plan
	updated.BillingCycle = &cycle
	updated.SubscriptionStartDate = &start
	updated.NextBillingDate = &next

	require.NoError(t, b.Publish(ctx, updated))

	merged := b.MergeLatest(ctx, base)
	assert.Equal(t, db_models.SubActive, merged.SubscriptionStatus)
	require.NotNil(t, merged.SubscriptionPlanID)
	assert.Equal(t, db_models.PlanStandard, *merged.SubscriptionPlanID)
	require.NotNil(t, merged.NextBillingDate)
	assert.True(t, next.Equal(*merged.NextBillingDate))
}

func TestMergeLatestWithoutUpdateReturnsBase(t *testing.T) {
	ctx := context.Background()
	b := NewMunicipalityBridge(NewMemoryStore(0))

	base := testMunicipality()
	assert.Equal(t, base, b.MergeLatest(ctx, base))
}

func TestMergeLatestCorruptUpdateReturnsBase(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	b := NewMunicipalityBridge(store)

	base := testMunicipality()
	require.NoError(t, store.Set(ctx, UpdateKey(base.ID), []byte("{broken")))

	assert.Equal(t, base, b.MergeLatest(ctx, base))
}

func TestMergeSnapshotFieldPresentWins(t *testing.T) {
	base := testMunicipality()

	merged, err := MergeSnapshot(base, []byte(`{"nameEn":"Renamed","population":999}`))
	require.NoError(t, err)
	assert.Equal(t, "Renamed", merged.NameEn)
	assert.Equal(t, int64(999), merged.Population)
	// Fields absent from the snapshot keep the base value.
	assert.Equal(t, base.Region, merged.Region)
	assert.Equal(t, base.ContactEmail, merged.ContactEmail)
}

func TestMergeSnapshotInvalidJSON(t *testing.T) {
	base := testMunicipality()

	merged, err := MergeSnapshot(base, []byte("nope"))
	assert.Error(t, err)
	assert.Equal(t, base, merged)
}
