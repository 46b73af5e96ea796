package controllers

import (
	"github.com/gin-gonic/gin"

	"baladi/internal/services"
	"baladi/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Report godoc
// @Summary Dashboard overview
// @Description Entity counts, subscription KPIs and the plan catalogue
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /dashboard [get]
func (dc *DashboardController) Report(c *gin.Context) {
	report, err := dc.dashboardService.BuildDashboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "Dashboard fetched successfully")
}
