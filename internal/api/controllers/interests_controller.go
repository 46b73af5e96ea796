package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"baladi/internal/models/request_models"
	"baladi/internal/services"
	"baladi/pkg/utils"
)

type InterestsController struct {
	interestService services.InterestServiceInterface
}

func NewInterestsController(interestService services.InterestServiceInterface) *InterestsController {
	return &InterestsController{interestService: interestService}
}

// List godoc
// @Summary List interests
// @Description Fetch interests matching the current search query and category filter
// @Tags Interests
// @Produce json
// @Param q query string false "Search query"
// @Param categoryId query string false "Category filter (default: all)"
// @Success 200 {object} utils.APIResponse
// @Router /interests [get]
func (ic *InterestsController) List(c *gin.Context) {
	res, err := ic.interestService.List(c.Request.Context(), c.Query("q"), c.Query("categoryId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Interests fetched successfully")
}

func (ic *InterestsController) Create(c *gin.Context) {
	var req request_models.CreateInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	interest, msg, err := ic.interestService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, interest, msg)
}

func (ic *InterestsController) Update(c *gin.Context) {
	var req request_models.UpdateInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	interest, msg, err := ic.interestService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, interest, msg)
}

func (ic *InterestsController) Delete(c *gin.Context) {
	msg, err := ic.interestService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, msg)
}

func (ic *InterestsController) ToggleStatus(c *gin.Context) {
	interest, msg, err := ic.interestService.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, interest, msg)
}

func (ic *InterestsController) ToggleSelection(c *gin.Context) {
	sel, err := ic.interestService.ToggleSelection(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sel, "")
}

func (ic *InterestsController) ToggleAll(c *gin.Context) {
	sel, err := ic.interestService.ToggleAllVisible(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sel, "")
}

func (ic *InterestsController) ClearSelection(c *gin.Context) {
	utils.RespondSuccess(c, ic.interestService.ClearSelection(c.Request.Context()), "")
}

func (ic *InterestsController) BulkActivate(c *gin.Context) {
	msg, err := ic.interestService.BulkActivate(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, msg)
}

func (ic *InterestsController) BulkDeactivate(c *gin.Context) {
	msg, err := ic.interestService.BulkDeactivate(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, msg)
}

func (ic *InterestsController) BulkDelete(c *gin.Context) {
	var req request_models.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	removed, msg, err := ic.interestService.BulkDelete(c.Request.Context(), req.Confirm)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"removed": removed}, msg)
}
