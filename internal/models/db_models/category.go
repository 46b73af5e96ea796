package db_models

type EntityStatus string

const (
	StatusActive   EntityStatus = "active"
	StatusInactive EntityStatus = "inactive"
)

// Toggle flips between active and inactive.
func (s EntityStatus) Toggle() EntityStatus {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// Category is a top-level content category. Icon holds a lucide icon
// name such as "newspaper". Categories carry no timestamps.
type Category struct {
	ID          string       `json:"id"`
	NameEn      string       `json:"nameEn"`
	NameAr      string       `json:"nameAr"`
	Description string       `json:"description"`
	Icon        string       `json:"icon"`
	Status      EntityStatus `json:"status"`
}

func (c Category) RowID() string { return c.ID }
