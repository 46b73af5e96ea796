package controllers

import (
	"github.com/gin-gonic/gin"

	"baladi/internal/services"
	"baladi/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{activityService: activityService}
}

// List godoc
// @Summary List activity log entries
// @Tags Activity
// @Produce json
// @Param type query string false "Entity type filter (default: all)"
// @Success 200 {object} utils.APIResponse
// @Router /activity [get]
func (ac *ActivityController) List(c *gin.Context) {
	items, err := ac.activityService.List(c.Request.Context(), c.Query("type"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "Activity fetched successfully")
}
