package services

import (
	"context"

	"baladi/internal/models/db_models"
	"baladi/internal/models/response_models"
	"baladi/internal/repositories"
)

type DashboardServiceInterface interface {
	BuildDashboard(ctx context.Context) (*response_models.DashboardReport, error)
}

type DashboardService struct {
	categories     repositories.CategoryRepository
	interests      repositories.InterestRepository
	municipalities repositories.MunicipalityRepository
	subscriptions  SubscriptionServiceInterface
}

func NewDashboardService(
	categories repositories.CategoryRepository,
	interests repositories.InterestRepository,
	municipalities repositories.MunicipalityRepository,
	subscriptions SubscriptionServiceInterface,
) DashboardServiceInterface {
	return &DashboardService{
		categories:     categories,
		interests:      interests,
		municipalities: municipalities,
		subscriptions:  subscriptions,
	}
}

func (s *DashboardService) BuildDashboard(ctx context.Context) (*response_models.DashboardReport, error) {
	report := &response_models.DashboardReport{
		Plans: db_models.DefaultPlans(),
	}

	cats, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	report.Categories.Total = len(cats)
	for _, c := range cats {
		if c.Status == db_models.StatusActive {
			report.Categories.Active++
		}
	}

	ints, err := s.interests.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	report.Interests.Total = len(ints)
	for _, i := range ints {
		if i.Status == db_models.StatusActive {
			report.Interests.Active++
		}
	}

	muns, err := s.municipalities.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	report.Municipalities.Total = len(muns)
	for _, m := range muns {
		if m.Status == db_models.StatusActive {
			report.Municipalities.Active++
		}
	}

	stats, err := s.subscriptions.Stats(ctx)
	if err != nil {
		return nil, err
	}
	report.Subscriptions = stats

	return report, nil
}
