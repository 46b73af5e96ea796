package request_models

type CreateMunicipalityRequest struct {
	NameEn       string `json:"nameEn" binding:"required"`
	NameAr       string `json:"nameAr"`
	Region       string `json:"region"`
	Country      string `json:"country"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`
	Population   int64  `json:"population" binding:"gte=0"`
}

type UpdateMunicipalityRequest struct {
	NameEn       string `json:"nameEn" binding:"required"`
	NameAr       string `json:"nameAr"`
	Region       string `json:"region"`
	Country      string `json:"country"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`
	Population   int64  `json:"population" binding:"gte=0"`
}
