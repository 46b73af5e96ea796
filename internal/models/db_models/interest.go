package db_models

import "time"

// Interest belongs to a category via CategoryID. The reference is not
// enforced: a dangling CategoryID degrades to a placeholder on display.
type Interest struct {
	ID          string       `json:"id"`
	NameEn      string       `json:"nameEn"`
	NameAr      string       `json:"nameAr"`
	Description string       `json:"description"`
	CategoryID  string       `json:"categoryId"`
	Status      EntityStatus `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func (i Interest) RowID() string { return i.ID }
