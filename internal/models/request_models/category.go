package request_models

type CreateCategoryRequest struct {
	NameEn      string `json:"nameEn" binding:"required"`
	NameAr      string `json:"nameAr"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type UpdateCategoryRequest struct {
	NameEn      string `json:"nameEn" binding:"required"`
	NameAr      string `json:"nameAr"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
