package utils

import "errors"

var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrInterestNotFound     = errors.New("interest not found")
	ErrMunicipalityNotFound = errors.New("municipality not found")
	ErrSnapshotNotFound     = errors.New("municipality snapshot not found")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrInvalidTransition    = errors.New("invalid subscription transition")
	ErrEmptySelection       = errors.New("empty selection")
	ErrConfirmationRequired = errors.New("confirmation required")
)
