package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baladi/internal/bridge"
	"baladi/internal/models/db_models"
	"baladi/internal/repositories"
)

func TestDashboardReportCounts(t *testing.T) {
	ctx := context.Background()

	categories := repositories.NewCategoryRepository([]db_models.Category{
		{ID: "cat_1", Status: db_models.StatusActive},
		{ID: "cat_2", Status: db_models.StatusInactive},
	})
	interests := repositories.NewInterestRepository([]db_models.Interest{
		{ID: "int_1", Status: db_models.StatusActive},
	})
	municipalities := repositories.NewMunicipalityRepository([]db_models.Municipality{
		{ID: "mun_1", Status: db_models.StatusActive, SubscriptionStatus: db_models.SubActive},
		{ID: "mun_2", Status: db_models.StatusInactive, SubscriptionStatus: db_models.SubNone},
	})

	b := bridge.NewMunicipalityBridge(bridge.NewMemoryStore(0))
	subscriptions := NewSubscriptionService(municipalities, b, newActivity(), &spyNotifier{})
	svc := NewDashboardService(categories, interests, municipalities, subscriptions)

	report, err := svc.BuildDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Categories.Total)
	assert.Equal(t, 1, report.Categories.Active)
	assert.Equal(t, 1, report.Interests.Total)
	assert.Equal(t, 1, report.Interests.Active)
	assert.Equal(t, 2, report.Municipalities.Total)
	assert.Equal(t, 1, report.Municipalities.Active)
	assert.Equal(t, 2, report.Subscriptions.Total)
	assert.Equal(t, 1, report.Subscriptions.Active)
	assert.Equal(t, 1, report.Subscriptions.None)
	assert.Len(t, report.Plans, 3)
}
