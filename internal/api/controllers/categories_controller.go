package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"baladi/internal/models/request_models"
	"baladi/internal/services"
	"baladi/pkg/utils"
)

type CategoriesController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoriesController(categoryService services.CategoryServiceInterface) *CategoriesController {
	return &CategoriesController{categoryService: categoryService}
}

// List godoc
// @Summary List categories
// @Description Fetch categories matching the current search query
// @Tags Categories
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} utils.APIResponse
// @Router /categories [get]
func (cc *CategoriesController) List(c *gin.Context) {
	res, err := cc.categoryService.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Categories fetched successfully")
}

// Create godoc
// @Summary Create a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body request_models.CreateCategoryRequest true "Category payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /categories [post]
func (cc *CategoriesController) Create(c *gin.Context) {
	var req request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	cat, msg, err := cc.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cat, msg)
}

func (cc *CategoriesController) Update(c *gin.Context) {
	var req request_models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	cat, msg, err := cc.categoryService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cat, msg)
}

func (cc *CategoriesController) Delete(c *gin.Context) {
	msg, err := cc.categoryService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, msg)
}

func (cc *CategoriesController) ToggleStatus(c *gin.Context) {
	cat, msg, err := cc.categoryService.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cat, msg)
}

func (cc *CategoriesController) ToggleSelection(c *gin.Context) {
	sel, err := cc.categoryService.ToggleSelection(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sel, "")
}

func (cc *CategoriesController) ToggleAll(c *gin.Context) {
	sel, err := cc.categoryService.ToggleAllVisible(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sel, "")
}

func (cc *CategoriesController) ClearSelection(c *gin.Context) {
	utils.RespondSuccess(c, cc.categoryService.ClearSelection(c.Request.Context()), "")
}

func (cc *CategoriesController) BulkActivate(c *gin.Context) {
	msg, err := cc.categoryService.BulkActivate(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, msg)
}

func (cc *CategoriesController) BulkDeactivate(c *gin.Context) {
	msg, err := cc.categoryService.BulkDeactivate(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, msg)
}

func (cc *CategoriesController) BulkDelete(c *gin.Context) {
	var req request_models.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	removed, msg, err := cc.categoryService.BulkDelete(c.Request.Context(), req.Confirm)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"removed": removed}, msg)
}
