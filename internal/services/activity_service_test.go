package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baladi/internal/models/db_models"
	"baladi/internal/repositories"
)

func TestActivityRecordPrepends(t *testing.T) {
	ctx := context.Background()
	svc := NewActivityService(repositories.NewActivityRepository([]db_models.ActivityItem{
		{ID: "act_seed", ActionKind: db_models.ActionCreate, Type: db_models.TypeCategory, OccurredAt: time.Now().Add(-time.Hour)},
	}))

	svc.Record(ctx, db_models.ActionDelete, db_models.TypeInterest, "Football")

	items, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, db_models.ActionDelete, items[0].ActionKind)
	assert.Equal(t, "Delete", items[0].ActionLabel)
	assert.Equal(t, "Football", items[0].Entity)
	assert.Equal(t, "Admin User", items[0].User)
	assert.Equal(t, "act_seed", items[1].ID)
}

func TestActivityListFiltersByType(t *testing.T) {
	ctx := context.Background()
	svc := NewActivityService(repositories.NewActivityRepository(nil))

	svc.Record(ctx, db_models.ActionCreate, db_models.TypeCategory, "News")
	svc.Record(ctx, db_models.ActionCreate, db_models.TypeMunicipality, "Riyadh")

	items, err := svc.List(ctx, "municipality")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, db_models.TypeMunicipality, items[0].Type)

	// "all" and empty both return everything.
	items, err = svc.List(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestActivityListRendersDisplayTimes(t *testing.T) {
	ctx := context.Background()
	occurred := time.Date(2026, 1, 27, 15, 37, 0, 0, time.UTC)
	svc := NewActivityService(repositories.NewActivityRepository([]db_models.ActivityItem{
		{ID: "act_1", ActionKind: db_models.ActionUpdate, Type: db_models.TypeCategory, OccurredAt: occurred},
	}))

	items, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Jan 27, 2026 15:37", items[0].DateTime)
	assert.NotEmpty(t, items[0].TimeAgo)
}
