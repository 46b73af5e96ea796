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

type CategoryServiceInterface interface {
	List(ctx context.Context, search string) (*response_models.CategoryListResponse, error)
	Create(ctx context.Context, req request_models.CreateCategoryRequest) (db_models.Category, string, error)
	Update(ctx context.Context, id string, req request_models.UpdateCategoryRequest) (db_models.Category, string, error)
	Delete(ctx context.Context, id string) (string, error)
	ToggleStatus(ctx context.Context, id string) (db_models.Category, string, error)
	ToggleSelection(ctx context.Context, id string) (response_models.Selection, error)
	ToggleAllVisible(ctx context.Context) (response_models.Selection, error)
	ClearSelection(ctx context.Context) response_models.Selection
	BulkActivate(ctx context.Context) (string, error)
	BulkDeactivate(ctx context.Context) (string, error)
	BulkDelete(ctx context.Context, confirm bool) (int, string, error)
}

type CategoryService struct {
	repo     repositories.CategoryRepository
	activity ActivityServiceInterface
	notifier Notifier
	list     *listview.Controller[db_models.Category]
}

func NewCategoryService(repo repositories.CategoryRepository, activity ActivityServiceInterface, notifier Notifier) CategoryServiceInterface {
	return &CategoryService{
		repo:     repo,
		activity: activity,
		notifier: notifier,
		list: listview.New(listview.Config[db_models.Category]{
			SearchFields: func(c db_models.Category) []string {
				return []string{c.NameEn, c.NameAr, c.Description}
			},
		}),
	}
}

func (s *CategoryService) selection() response_models.Selection {
	return response_models.Selection{
		SelectedIDs:   s.list.SelectedIDs(),
		SelectedCount: s.list.SelectedCount(),
	}
}

func (s *CategoryService) List(ctx context.Context, search string) (*response_models.CategoryListResponse, error) {
	s.list.SetSearch(search)

	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	visible := s.list.Visible(items)

	return &response_models.CategoryListResponse{
		Items:      visible,
		TotalCount: len(visible),
		Selection:  s.selection(),
	}, nil
}

func (s *CategoryService) Create(ctx context.Context, req request_models.CreateCategoryRequest) (db_models.Category, string, error) {
	cat := db_models.Category{
		ID:          utils.MakeID("cat"),
		NameEn:      req.NameEn,
		NameAr:      req.NameAr,
		Description: req.Description,
		Icon:        req.Icon,
		Status:      db_models.StatusActive,
	}
	if err := s.repo.Insert(ctx, cat); err != nil {
		return db_models.Category{}, "", err
	}

	s.activity.Record(ctx, db_models.ActionCreate, db_models.TypeCategory, cat.NameEn)
	msg := "Category Created Successfully"
	s.notifier.Success(msg)
	return cat, msg, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, req request_models.UpdateCategoryRequest) (db_models.Category, string, error) {
	cat, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return db_models.Category{}, "", err
	}
	if !found {
		return db_models.Category{}, "", utils.ErrCategoryNotFound
	}

	cat.NameEn = req.NameEn
	cat.NameAr = req.NameAr
	cat.Description = req.Description
	cat.Icon = req.Icon
	if _, err := s.repo.Update(ctx, cat); err != nil {
		return db_models.Category{}, "", err
	}

	s.activity.Record(ctx, db_models.ActionUpdate, db_models.TypeCategory, cat.NameEn)
	msg := "Category Updated Successfully"
	s.notifier.Success(msg)
	return cat, msg, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) (string, error) {
	cat, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !found {
		return "", utils.ErrCategoryNotFound
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		return "", err
	}
	// Deleting a category does not cascade into its interests; a
	// dangling reference degrades to a placeholder on display.
	s.list.Deselect(id)

	s.activity.Record(ctx, db_models.ActionDelete, db_models.TypeCategory, cat.NameEn)
	msg := "Category Deleted Successfully"
	s.notifier.Success(msg)
	return msg, nil
}

func (s *CategoryService) ToggleStatus(ctx context.Context, id string) (db_models.Category, string, error) {
	cat, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return db_models.Category{}, "", err
	}
	if !found {
		return db_models.Category{}, "", utils.ErrCategoryNotFound
	}

	cat.Status = cat.Status.Toggle()
	if _, err := s.repo.Update(ctx, cat); err != nil {
		return db_models.Category{}, "", err
	}

	s.activity.Record(ctx, db_models.ActionUpdate, db_models.TypeCategory, cat.NameEn)
	msg := "Category Inactivated"
	if cat.Status == db_models.StatusActive {
		msg = "Category Activated"
	}
	s.notifier.Success(msg)
	return cat, msg, nil
}

func (s *CategoryService) ToggleSelection(ctx context.Context, id string) (response_models.Selection, error) {
	s.list.ToggleOne(id)
	return s.selection(), nil
}

func (s *CategoryService) ToggleAllVisible(ctx context.Context) (response_models.Selection, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return response_models.Selection{}, err
	}
	s.list.ToggleAllVisible(items)
	return s.selection(), nil
}

func (s *CategoryService) ClearSelection(ctx context.Context) response_models.Selection {
	s.list.ClearSelection()
	return s.selection()
}

func (s *CategoryService) bulkSetStatus(ctx context.Context, status db_models.EntityStatus) (int, error) {
	ids := s.list.SelectedIDs()
	if len(ids) == 0 {
		return 0, utils.ErrEmptySelection
	}

	for _, id := range ids {
		cat, found, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return 0, err
		}
		if !found {
			continue
		}
		cat.Status = status
		if _, err := s.repo.Update(ctx, cat); err != nil {
			return 0, err
		}
	}
	s.list.ClearSelection()
	return len(ids), nil
}

func (s *CategoryService) BulkActivate(ctx context.Context) (string, error) {
	n, err := s.bulkSetStatus(ctx, db_models.StatusActive)
	if err != nil {
		return "", err
	}
	s.activity.Record(ctx, db_models.ActionBulkActivate, db_models.TypeCategory, fmt.Sprintf("%d categories", n))
	msg := "Category Activated"
	s.notifier.Success(msg)
	return msg, nil
}

func (s *CategoryService) BulkDeactivate(ctx context.Context) (string, error) {
	n, err := s.bulkSetStatus(ctx, db_models.StatusInactive)
	if err != nil {
		return "", err
	}
	s.activity.Record(ctx, db_models.ActionBulkDeactivate, db_models.TypeCategory, fmt.Sprintf("%d categories", n))
	msg := "Category Inactivated"
	s.notifier.Success(msg)
	return msg, nil
}

func (s *CategoryService) BulkDelete(ctx context.Context, confirm bool) (int, string, error) {
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

	s.activity.Record(ctx, db_models.ActionBulkDelete, db_models.TypeCategory, fmt.Sprintf("%d categories", removed))
	msg := "Category Deleted Successfully"
	s.notifier.Success(msg)
	return removed, msg, nil
}
