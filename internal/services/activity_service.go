package services

import (
	"context"

	"baladi/internal/models/db_models"
	"baladi/internal/repositories"
	"baladi/pkg/utils"
)

const activityUser = "Admin User"

type ActivityServiceInterface interface {
	// Record appends an audit entry. It never fails the mutation that
	// triggered it.
	Record(ctx context.Context, kind db_models.ActionKind, entityType db_models.EntityType, entity string)
	List(ctx context.Context, typeFilter string) ([]db_models.ActivityItem, error)
}

type ActivityService struct {
	repo repositories.ActivityRepository
}

func NewActivityService(repo repositories.ActivityRepository) ActivityServiceInterface {
	return &ActivityService{repo: repo}
}

func (s *ActivityService) Record(ctx context.Context, kind db_models.ActionKind, entityType db_models.EntityType, entity string) {
	item := db_models.ActivityItem{
		ID:          utils.MakeID("act"),
		ActionKind:  kind,
		ActionLabel: kind.Label(),
		Entity:      entity,
		Type:        entityType,
		User:        activityUser,
		OccurredAt:  utils.Now(),
	}
	_ = s.repo.Append(ctx, item)
}

func (s *ActivityService) List(ctx context.Context, typeFilter string) ([]db_models.ActivityItem, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := utils.Now()
	out := make([]db_models.ActivityItem, 0, len(items))
	for _, item := range items {
		if typeFilter != "" && typeFilter != string(db_models.TypeAll) && typeFilter != string(item.Type) {
			continue
		}
		item.DateTime = utils.FormatDisplay(item.OccurredAt)
		item.TimeAgo = utils.TimeAgo(item.OccurredAt, now)
		out = append(out, item)
	}
	return out, nil
}
