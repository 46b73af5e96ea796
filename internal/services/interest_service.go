package services

import (
	"context"
	"fmt"

	"baladi/internal/listview"
	"baladi/internal/models/db_models"
	"baladi/internal/models/request_models"
	"baladi/internal/models/response_models"
	"baladi/internal/repositories"
	"baladi/pkg/utils"
)

type InterestServiceInterface interface {
	List(ctx context.Context, search, categoryID string) (*response_models.InterestListResponse, error)
	Create(ctx context.Context, req request_models.CreateInterestRequest) (db_models.Interest, string, error)
	Update(ctx context.Context, id string, req request_models.UpdateInterestRequest) (db_models.Interest, string, error)
	Delete(ctx context.Context, id string) (string, error)
	ToggleStatus(ctx context.Context, id string) (db_models.Interest, string, error)
	ToggleSelection(ctx context.Context, id string) (response_models.Selection, error)
	ToggleAllVisible(ctx context.Context) (response_models.Selection, error)
	ClearSelection(ctx context.Context) response_models.Selection
	BulkActivate(ctx context.Context) (string, error)
	BulkDeactivate(ctx context.Context) (string, error)
	BulkDelete(ctx context.Context, confirm bool) (int, string, error)
}

type InterestService struct {
	repo       repositories.InterestRepository
	categories repositories.CategoryRepository
	activity   ActivityServiceInterface
	notifier   Notifier
	list       *listview.Controller[db_models.Interest]
}

func NewInterestService(
	repo repositories.InterestRepository,
	categories repositories.CategoryRepository,
	activity ActivityServiceInterface,
	notifier Notifier,
) InterestServiceInterface {
	s := &InterestService{
		repo:       repo,
		categories: categories,
		activity:   activity,
		notifier:   notifier,
	}
	s.list = listview.New(listview.Config[db_models.Interest]{
		// Search also matches the resolved category's English name, so
		// typing "Sports" finds every interest in that category.
		SearchFields: func(i db_models.Interest) []string {
			return []string{i.NameEn, i.NameAr, s.categoryNameEn(i.CategoryID)}
		},
		MatchFilter: func(i db_models.Interest, name, value string) bool {
			if name == "categoryId" {
				return i.CategoryID == value
			}
			return true
		},
	})
	return s
}

// categoryNameEn resolves a category reference for search matching; a
// dangling id yields "".
func (s *InterestService) categoryNameEn(categoryID string) string {
	cat, found, err := s.categories.GetByID(context.Background(), categoryID)
	if err != nil || !found {
		return ""
	}
	return cat.NameEn
}

func (s *InterestService) toRow(ctx context.Context, i db_models.Interest) response_models.InterestRow {
	name := "-"
	if cat, found, err := s.categories.GetByID(ctx, i.CategoryID); err == nil && found {
		name = cat.NameEn
	}
	return response_models.InterestRow{Interest: i, CategoryName: name}
}

func (s *InterestService) selection() response_models.Selection {
	return response_models.Selection{
		SelectedIDs:   s.list.SelectedIDs(),
		SelectedCount: s.list.SelectedCount(),
	}
}

func (s *InterestService) List(ctx context.Context, search, categoryID string) (*response_models.InterestListResponse, error) {
	s.list.SetSearch(search)
	s.list.SetFilter("categoryId", categoryID)

	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	visible := s.list.Visible(items)

	rows := make([]response_models.InterestRow, 0, len(visible))
	for _, i := range visible {
		rows = append(rows, s.toRow(ctx, i))
	}

	return &response_models.InterestListResponse{
		Items:      rows,
		TotalCount: len(rows),
		Selection:  s.selection(),
	}, nil
}

func (s *InterestService) Create(ctx context.Context, req request_models.CreateInterestRequest) (db_models.Interest, string, error) {
	now := utils.Now()
	interest := db_models.Interest{
		ID:          utils.MakeID("int"),
		NameEn:      req.NameEn,
		NameAr:      req.NameAr,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Status:      db_models.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, interest); err != nil {
		return db_models.Interest{}, "", err
	}

	s.activity.Record(ctx, db_models.ActionCreate, db_models.TypeInterest, interest.NameEn)
	msg := "Interest created successfully"
	s.notifier.Success(msg)
	return interest, msg, nil
}

func (s *InterestService) Update(ctx context.Context, id string, req request_models.UpdateInterestRequest) (db_models.Interest, string, error) {
	interest, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return db_models.Interest{}, "", err
	}
	if !found {
		return db_models.Interest{}, "", utils.ErrInterestNotFound
	}

	interest.NameEn = req.NameEn
	interest.NameAr = req.NameAr
	interest.Description = req.Description
	interest.CategoryID = req.CategoryID
	interest.UpdatedAt = utils.Now()
	if _, err := s.repo.Update(ctx, interest); err != nil {
		return db_models.Interest{}, "", err
	}

	s.activity.Record(ctx, db_models.ActionUpdate, db_models.TypeInterest, interest.NameEn)
	msg := "Interest updated successfully"
	s.notifier.Success(msg)
	return interest, msg, nil
}

func (s *InterestService) Delete(ctx context.Context, id string) (string, error) {
	interest, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !found {
		return "", utils.ErrInterestNotFound
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		return "", err
	}
	s.list.Deselect(id)

	s.activity.Record(ctx, db_models.ActionDelete, db_models.TypeInterest, interest.NameEn)
	msg := "Interest deleted successfully"
	s.notifier.Success(msg)
	return msg, nil
}

func (s *InterestService) ToggleStatus(ctx context.Context, id string) (db_models.Interest, string, error) {
	interest, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return db_models.Interest{}, "", err
	}
	if !found {
		return db_models.Interest{}, "", utils.ErrInterestNotFound
	}

	interest.Status = interest.Status.Toggle()
	interest.UpdatedAt = utils.Now()
	if _, err := s.repo.Update(ctx, interest); err != nil {
		return db_models.Interest{}, "", err
	}

	s.activity.Record(ctx, db_models.ActionUpdate, db_models.TypeInterest, interest.NameEn)
	msg := "Interest inactivated"
	if interest.Status == db_models.StatusActive {
		msg = "Interest activated"
	}
	s.notifier.Success(msg)
	return interest, msg, nil
}

func (s *InterestService) ToggleSelection(ctx context.Context, id string) (response_models.Selection, error) {
	s.list.ToggleOne(id)
	return s.selection(), nil
}

func (s *InterestService) ToggleAllVisible(ctx context.Context) (response_models.Selection, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return response_models.Selection{}, err
	}
	s.list.ToggleAllVisible(items)
	return s.selection(), nil
}

func (s *InterestService) ClearSelection(ctx context.Context) response_models.Selection {
	s.list.ClearSelection()
	return s.selection()
}

func (s *InterestService) bulkSetStatus(ctx context.Context, status db_models.EntityStatus) (int, error) {
	ids := s.list.SelectedIDs()
	if len(ids) == 0 {
		return 0, utils.ErrEmptySelection
	}

	now := utils.Now()
	for _, id := range ids {
		interest, found, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return 0, err
		}
		if !found {
			continue
		}
		interest.Status = status
		interest.UpdatedAt = now
		if _, err := s.repo.Update(ctx, interest); err != nil {
			return 0, err
		}
	}
	s.list.ClearSelection()
	return len(ids), nil
}

func (s *InterestService) BulkActivate(ctx context.Context) (string, error) {
	n, err := s.bulkSetStatus(ctx, db_models.StatusActive)
	if err != nil {
		return "", err
	}
	s.activity.Record(ctx, db_models.ActionBulkActivate, db_models.TypeInterest, fmt.Sprintf("%d interests", n))
	msg := "Interest activated"
	s.notifier.Success(msg)
	return msg, nil
}

func (s *InterestService) BulkDeactivate(ctx context.Context) (string, error) {
	n, err := s.bulkSetStatus(ctx, db_models.StatusInactive)
	if err != nil {
		return "", err
	}
	s.activity.Record(ctx, db_models.ActionBulkDeactivate, db_models.TypeInterest, fmt.Sprintf("%d interests", n))
	msg := "Interest inactivated"
	s.notifier.Success(msg)
	return msg, nil
}

func (s *InterestService) BulkDelete(ctx context.Context, confirm bool) (int, string, error) {
	if !confirm {
		return 0, "", utils.ErrConfirmationRequired
	}
	ids := s.list.SelectedIDs()
	if len(ids) == 0 {
		return 0, "", utils.ErrEmptySelection
	}

	removed, err := s.repo.Delete(ctx, ids...)
	if err != nil {
		return 0, "", err
	}
	s.list.ClearSelection()

	s.activity.Record(ctx, db_models.ActionBulkDelete, db_models.TypeInterest, fmt.Sprintf("%d interests", removed))
	msg := "Interest deleted successfully"
	s.notifier.Success(msg)
	return removed, msg, nil
}
