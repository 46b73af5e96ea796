package request_models

type CreateInterestRequest struct {
	NameEn      string `json:"nameEn" binding:"required"`
	NameAr      string `json:"nameAr"`
	Description string `json:"description"`
	CategoryID  string `json:"categoryId"`
}

type UpdateInterestRequest struct {
	NameEn      string `json:"nameEn" binding:"required"`
	NameAr      string `json:"nameAr"`
	Description string `json:"description"`
	CategoryID  string `json:"categoryId"`
}
