package controllers

import (
	"github.com/gin-gonic/gin"

	"baladi/internal/services"
	"baladi/pkg/utils"
)

type SubscriptionsController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionsController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionsController {
	return &SubscriptionsController{subscriptionService: subscriptionService}
}

// Overview godoc
// @Summary List subscriptions
// @Description Municipalities viewed through their subscription state
// @Tags Subscriptions
// @Produce json
// @Param status query string false "Subscription status filter (default: all)"
// @Param planId query string false "Plan filter (default: all)"
// @Success 200 {object} utils.APIResponse
// @Router /subscriptions [get]
func (sc *SubscriptionsController) Overview(c *gin.Context) {
	res, err := sc.subscriptionService.Overview(c.Request.Context(), c.Query("status"), c.Query("planId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Subscriptions fetched successfully")
}

func (sc *SubscriptionsController) Stats(c *gin.Context) {
	stats, err := sc.subscriptionService.Stats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Subscription stats fetched successfully")
}

func (sc *SubscriptionsController) Plans(c *gin.Context) {
	plans, err := sc.subscriptionService.Plans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}
