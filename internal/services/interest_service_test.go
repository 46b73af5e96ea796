package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baladi/internal/models/db_models"
	"baladi/internal/models/request_models"
	"baladi/internal/repositories"
)

func newInterestFixture(interests []db_models.Interest, categories []db_models.Category) (InterestServiceInterface, *spyNotifier) {
	notifier := &spyNotifier{}
	svc := NewInterestService(
		repositories.NewInterestRepository(interests),
		repositories.NewCategoryRepository(categories),
		newActivity(),
		notifier,
	)
	return svc, notifier
}

func fixtureCategories() []db_models.Category {
	return []db_models.Category{
		{ID: "cat_1", NameEn: "Sports", Status: db_models.StatusActive},
		{ID: "cat_2", NameEn: "Culture", Status: db_models.StatusActive},
	}
}

func fixtureInterests() []db_models.Interest {
	return []db_models.Interest{
		{ID: "int_a", NameEn: "Football", CategoryID: "cat_1", Status: db_models.StatusActive},
		{ID: "int_b", NameEn: "Theatre", CategoryID: "cat_2", Status: db_models.StatusActive},
	}
}

func TestInterestListResolvesCategoryName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInterestFixture(fixtureInterests(), fixtureCategories())

	res, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	require.Equal(t, 2, res.TotalCount)
	assert.Equal(t, "Sports", res.Items[0].CategoryName)
	assert.Equal(t, "Culture", res.Items[1].CategoryName)
}

func TestInterestDanglingCategoryRendersPlaceholder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInterestFixture([]db_models.Interest{
		{ID: "int_a", NameEn: "Football", CategoryID: "cat_gone", Status: db_models.StatusActive},
	}, nil)

	res, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	require.Equal(t, 1, res.TotalCount)
	assert.Equal(t, "-", res.Items[0].CategoryName)
}

func TestInterestSearchMatchesCategoryName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInterestFixture(fixtureInterests(), fixtureCategories())

	res, err := svc.List(ctx, "sports", "")
	require.NoError(t, err)
	require.Equal(t, 1, res.TotalCount)
	assert.Equal(t, "int_a", res.Items[0].ID)
}

func TestInterestBulkDeactivateScopedToFilter(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInterestFixture(fixtureInterests(), fixtureCategories())

	// Filter down to cat_1, select everything visible, deactivate.
	_, err := svc.List(ctx, "", "cat_1")
	require.NoError(t, err)

	sel, err := svc.ToggleAllVisible(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"int_a"}, sel.SelectedIDs)

	msg, err := svc.BulkDeactivate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Interest inactivated", msg)

	res, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	for _, row := range res.Items {
		switch row.ID {
		case "int_a":
			assert.Equal(t, db_models.StatusInactive, row.Status)
		case "int_b":
			assert.Equal(t, db_models.StatusActive, row.Status)
		}
	}
	assert.Equal(t, 0, res.Selection.SelectedCount)
}

func TestInterestCreateSetsTimestamps(t *testing.T) {
	ctx := context.Background()
	svc, notifier := newInterestFixture(nil, fixtureCategories())

	interest, msg, err := svc.Create(ctx, request_models.CreateInterestRequest{
		NameEn:     "Swimming",
		CategoryID: "cat_1",
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.StatusActive, interest.Status)
	assert.False(t, interest.CreatedAt.IsZero())
	assert.Equal(t, interest.CreatedAt, interest.UpdatedAt)
	assert.Equal(t, "Interest created successfully", msg)
	assert.Equal(t, "Interest created successfully", notifier.last())
}

func TestInterestToggleStatusWording(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInterestFixture(fixtureInterests(), fixtureCategories())

	_, msg, err := svc.ToggleStatus(ctx, "int_a")
	require.NoError(t, err)
	assert.Equal(t, "Interest inactivated", msg)

	_, msg, err = svc.ToggleStatus(ctx, "int_a")
	require.NoError(t, err)
	assert.Equal(t, "Interest activated", msg)
}
