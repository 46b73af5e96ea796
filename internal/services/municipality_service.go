package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"baladi/internal/bridge"
	"baladi/internal/listview"
	"baladi/internal/models/db_models"
	"baladi/internal/models/request_models"
	"baladi/internal/models/response_models"
	"baladi/internal/repositories"
	"baladi/pkg/utils"
)

type MunicipalityServiceInterface interface {
	List(ctx context.Context, search, region, subscriptionStatus string) (*response_models.MunicipalityListResponse, error)
	Regions(ctx context.Context) ([]string, error)
	Create(ctx context.Context, req request_models.CreateMunicipalityRequest) (db_models.Municipality, string, error)
	Update(ctx context.Context, id string, req request_models.UpdateMunicipalityRequest) (db_models.Municipality, string, error)
	Delete(ctx context.Context, id string) (string, error)
	ToggleStatus(ctx context.Context, id string) (db_models.Municipality, string, error)
	// View merges the latest bridge update into the record, publishes
	// the detail screen's view snapshot and returns the merged record.
	View(ctx context.Context, id string) (db_models.Municipality, error)
	ToggleSelection(ctx context.Context, id string) (response_models.Selection, error)
	ToggleAllVisible(ctx context.Context) (response_models.Selection, error)
	ClearSelection(ctx context.Context) response_models.Selection
	BulkActivate(ctx context.Context) (string, error)
	BulkDeactivate(ctx context.Context) (string, error)
	BulkDelete(ctx context.Context, confirm bool) (int, string, error)
}

type MunicipalityService struct {
	repo     repositories.MunicipalityRepository
	bridge   *bridge.MunicipalityBridge
	activity ActivityServiceInterface
	notifier Notifier
	list     *listview.Controller[db_models.Municipality]
}

func NewMunicipalityService(
	repo repositories.MunicipalityRepository,
	b *bridge.MunicipalityBridge,
	activity ActivityServiceInterface,
	notifier Notifier,
) MunicipalityServiceInterface {
	return &MunicipalityService{
		repo:     repo,
		bridge:   b,
		activity: activity,
		notifier: notifier,
		list: listview.New(listview.Config[db_models.Municipality]{
			SearchFields: func(m db_models.Municipality) []string {
				return []string{m.NameEn, m.NameAr, m.Region, m.Country}
			},
			MatchFilter: func(m db_models.Municipality, name, value string) bool {
				switch name {
				case "region":
					return m.Region == value
				case "subscriptionStatus":
					// "no_subscription" is the dropdown's alias for none.
					if value == "no_subscription" {
						value = string(db_models.SubNone)
					}
					return string(m.SubscriptionStatus) == value
				default:
					return true
				}
			},
		}),
	}
}

// mergedAll returns the store's records with any pending bridge updates
// overlaid. The store itself is not modified: the merge is read-side.
func (s *MunicipalityService) mergedAll(ctx context.Context) ([]db_models.Municipality, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i] = s.bridge.MergeLatest(ctx, items[i])
	}
	return items, nil
}

// mergedByID loads one record with pending bridge updates overlaid.
func (s *MunicipalityService) mergedByID(ctx context.Context, id string) (db_models.Municipality, error) {
	m, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return db_models.Municipality{}, err
	}
	if !found {
		return db_models.Municipality{}, utils.ErrMunicipalityNotFound
	}
	return s.bridge.MergeLatest(ctx, m), nil
}

func (s *MunicipalityService) selection() response_models.Selection {
	return response_models.Selection{
		SelectedIDs:   s.list.SelectedIDs(),
		SelectedCount: s.list.SelectedCount(),
	}
}

func (s *MunicipalityService) List(ctx context.Context, search, region, subscriptionStatus string) (*response_models.MunicipalityListResponse, error) {
	s.list.SetSearch(search)
	s.list.SetFilter("region", region)
	s.list.SetFilter("subscriptionStatus", subscriptionStatus)

	items, err := s.mergedAll(ctx)
	if err != nil {
		return nil, err
	}
	visible := s.list.Visible(items)

	return &response_models.MunicipalityListResponse{
		Items:      visible,
		TotalCount: len(visible),
		Selection:  s.selection(),
	}, nil
}

func (s *MunicipalityService) Regions(ctx context.Context) ([]string, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var regions []string
	for _, m := range items {
		r := strings.TrimSpace(m.Region)
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions, nil
}

func (s *MunicipalityService) Create(ctx context.Context, req request_models.CreateMunicipalityRequest) (db_models.Municipality, string, error) {
	now := utils.Now()
	m := db_models.Municipality{
		ID:                 utils.MakeID("mun"),
		NameEn:             req.NameEn,
		NameAr:             req.NameAr,
		Region:             req.Region,
		Country:            req.Country,
		ContactEmail:       req.ContactEmail,
		ContactPhone:       req.ContactPhone,
		Population:         req.Population,
		CategoryIDs:        []string{},
		InterestIDs:        []string{},
		Status:             db_models.StatusActive,
		SubscriptionStatus: db_models.SubNone,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.repo.Insert(ctx, m); err != nil {
		return db_models.Municipality{}, "", err
	}

	s.activity.Record(ctx, db_models.ActionCreate, db_models.TypeMunicipality, m.NameEn)
	msg := "Municipality created successfully"
	s.notifier.Success(msg)
	return m, msg, nil
}

func (s *MunicipalityService) Update(ctx context.Context, id string, req request_models.UpdateMunicipalityRequest) (db_models.Municipality, string, error) {
	m, err := s.mergedByID(ctx, id)
	if err != nil {
		return db_models.Municipality{}, "", err
	}

	m.NameEn = req.NameEn
	m.NameAr = req.NameAr
	m.Region = req.Region
	m.Country = req.Country
	m.ContactEmail = req.ContactEmail
	m.ContactPhone = req.ContactPhone
	m.Population = req.Population
	m.UpdatedAt = utils.Now()
	if _, err := s.repo.Update(ctx, m); err != nil {
		return db_models.Municipality{}, "", err
	}

	s.activity.Record(ctx, db_models.ActionUpdate, db_models.TypeMunicipality, m.NameEn)
	msg := "Municipality updated successfully"
	s.notifier.Success(msg)
	return m, msg, nil
}

func (s *MunicipalityService) Delete(ctx context.Context, id string) (string, error) {
	m, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !found {
		return "", utils.ErrMunicipalityNotFound
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		return "", err
	}
	s.list.Deselect(id)

	s.activity.Record(ctx, db_models.ActionDelete, db_models.TypeMunicipality, m.NameEn)
	msg := "Municipality deleted successfully"
	s.notifier.Success(msg)
	return msg, nil
}

func (s *MunicipalityService) ToggleStatus(ctx context.Context, id string) (db_models.Municipality, string, error) {
	// Merge first so a flip does not discard subscription fields that
	// only exist in the bridge update.
	m, err := s.mergedByID(ctx, id)
	if err != nil {
		return db_models.Municipality{}, "", err
	}

	m.Status = m.Status.Toggle()
	m.UpdatedAt = utils.Now()
	if _, err := s.repo.Update(ctx, m); err != nil {
		return db_models.Municipality{}, "", err
	}

	s.activity.Record(ctx, db_models.ActionUpdate, db_models.TypeMunicipality, m.NameEn)
	msg := "Municipality deactivated"
	if m.Status == db_models.StatusActive {
		msg = "Municipality activated"
	}
	s.notifier.Success(msg)
	return m, msg, nil
}

func (s *MunicipalityService) View(ctx context.Context, id string) (db_models.Municipality, error) {
	m, err := s.mergedByID(ctx, id)
	if err != nil {
		return db_models.Municipality{}, err
	}
	if err := s.bridge.PublishView(ctx, m); err != nil {
		return db_models.Municipality{}, err
	}
	return m, nil
}

func (s *MunicipalityService) ToggleSelection(ctx context.Context, id string) (response_models.Selection, error) {
	s.list.ToggleOne(id)
	return s.selection(), nil
}

func (s *MunicipalityService) ToggleAllVisible(ctx context.Context) (response_models.Selection, error) {
	items, err := s.mergedAll(ctx)
	if err != nil {
		return response_models.Selection{}, err
	}
	s.list.ToggleAllVisible(items)
	return s.selection(), nil
}

func (s *MunicipalityService) ClearSelection(ctx context.Context) response_models.Selection {
	s.list.ClearSelection()
	return s.selection()
}

func (s *MunicipalityService) bulkSetStatus(ctx context.Context, status db_models.EntityStatus) (int, error) {
	ids := s.list.SelectedIDs()
	if len(ids) == 0 {
		return 0, utils.ErrEmptySelection
	}

	now := utils.Now()
	for _, id := range ids {
		m, err := s.mergedByID(ctx, id)
		if err != nil {
			continue
		}
		m.Status = status
		m.UpdatedAt = now
		if _, err := s.repo.Update(ctx, m); err != nil {
			return 0, err
		}
	}
	s.list.ClearSelection()
	return len(ids), nil
}

func (s *MunicipalityService) BulkActivate(ctx context.Context) (string, error) {
	n, err := s.bulkSetStatus(ctx, db_models.StatusActive)
	if err != nil {
		return "", err
	}
	s.activity.Record(ctx, db_models.ActionBulkActivate, db_models.TypeMunicipality, fmt.Sprintf("%d municipalities", n))
	msg := "Municipality activated"
	s.notifier.Success(msg)
	return msg, nil
}

func (s *MunicipalityService) BulkDeactivate(ctx context.Context) (string, error) {
	n, err := s.bulkSetStatus(ctx, db_models.StatusInactive)
	if err != nil {
		return "", err
	}
	s.activity.Record(ctx, db_models.ActionBulkDeactivate, db_models.TypeMunicipality, fmt.Sprintf("%d municipalities", n))
	msg := "Municipality deactivated"
	s.notifier.Success(msg)
	return msg, nil
}

func (s *MunicipalityService) BulkDelete(ctx context.Context, confirm bool) (int, string, error) {
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

	s.activity.Record(ctx, db_models.ActionBulkDelete, db_models.TypeMunicipality, fmt.Sprintf("%d municipalities", removed))
	msg := "Municipality deleted successfully"
	s.notifier.Success(msg)
	return removed, msg, nil
}
