package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"baladi/internal/models/db_models"
	"baladi/internal/models/request_models"
	"baladi/internal/services"
	"baladi/pkg/utils"
)

type MunicipalitiesController struct {
	municipalityService services.MunicipalityServiceInterface
	subscriptionService services.SubscriptionServiceInterface
}

func NewMunicipalitiesController(
	municipalityService services.MunicipalityServiceInterface,
	subscriptionService services.SubscriptionServiceInterface,
) *MunicipalitiesController {
	return &MunicipalitiesController{
		municipalityService: municipalityService,
		subscriptionService: subscriptionService,
	}
}

// List godoc
// @Summary List municipalities
// @Description Fetch municipalities matching the search query, region and subscription filters
// @Tags Municipalities
// @Produce json
// @Param q query string false "Search query"
// @Param region query string false "Region filter (default: all)"
// @Param subscriptionStatus query string false "Subscription status filter (default: all)"
// @Success 200 {object} utils.APIResponse
// @Router /municipalities [get]
func (mc *MunicipalitiesController) List(c *gin.Context) {
	res, err := mc.municipalityService.List(
		c.Request.Context(),
		c.Query("q"),
		c.Query("region"),
		c.Query("subscriptionStatus"),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Municipalities fetched successfully")
}

func (mc *MunicipalitiesController) Regions(c *gin.Context) {
	regions, err := mc.municipalityService.Regions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, regions, "Regions fetched successfully")
}

func (mc *MunicipalitiesController) Create(c *gin.Context) {
	var req request_models.CreateMunicipalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	m, msg, err := mc.municipalityService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, m, msg)
}

func (mc *MunicipalitiesController) Update(c *gin.Context) {
	var req request_models.UpdateMunicipalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	m, msg, err := mc.municipalityService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, m, msg)
}

func (mc *MunicipalitiesController) Delete(c *gin.Context) {
	msg, err := mc.municipalityService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, msg)
}

func (mc *MunicipalitiesController) ToggleStatus(c *gin.Context) {
	m, msg, err := mc.municipalityService.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, m, msg)
}

// View publishes the detail screen's snapshot and returns the merged
// record, the side effect of the "view details" navigation.
func (mc *MunicipalitiesController) View(c *gin.Context) {
	m, err := mc.municipalityService.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, m, "Municipality snapshot published")
}

// Details reads the detail screen's snapshot; 404 when nothing was
// handed over.
func (mc *MunicipalitiesController) Details(c *gin.Context) {
	m, err := mc.subscriptionService.Details(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, m, "Municipality details fetched successfully")
}

func (mc *MunicipalitiesController) ToggleSelection(c *gin.Context) {
	sel, err := mc.municipalityService.ToggleSelection(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sel, "")
}

func (mc *MunicipalitiesController) ToggleAll(c *gin.Context) {
	sel, err := mc.municipalityService.ToggleAllVisible(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sel, "")
}

func (mc *MunicipalitiesController) ClearSelection(c *gin.Context) {
	utils.RespondSuccess(c, mc.municipalityService.ClearSelection(c.Request.Context()), "")
}

func (mc *MunicipalitiesController) BulkActivate(c *gin.Context) {
	msg, err := mc.municipalityService.BulkActivate(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, msg)
}

func (mc *MunicipalitiesController) BulkDeactivate(c *gin.Context) {
	msg, err := mc.municipalityService.BulkDeactivate(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, msg)
}

func (mc *MunicipalitiesController) BulkDelete(c *gin.Context) {
	var req request_models.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	removed, msg, err := mc.municipalityService.BulkDelete(c.Request.Context(), req.Confirm)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"removed": removed}, msg)
}

// CreateSubscription godoc
// @Summary Create a subscription
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.CreateSubscriptionRequest true "Subscription payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /municipalities/{id}/subscription [post]
func (mc *MunicipalitiesController) CreateSubscription(c *gin.Context) {
	var req request_models.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	m, msg, err := mc.subscriptionService.Create(
		c.Request.Context(),
		c.Param("id"),
		db_models.PlanID(req.PlanID),
		db_models.BillingCycle(req.BillingCycle),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, m, msg)
}

func (mc *MunicipalitiesController) PauseSubscription(c *gin.Context) {
	m, msg, err := mc.subscriptionService.Pause(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, m, msg)
}

func (mc *MunicipalitiesController) ResumeSubscription(c *gin.Context) {
	m, msg, err := mc.subscriptionService.Resume(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, m, msg)
}

func (mc *MunicipalitiesController) CancelSubscription(c *gin.Context) {
	m, msg, err := mc.subscriptionService.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, m, msg)
}

func (mc *MunicipalitiesController) ChangePlan(c *gin.Context) {
	var req request_models.ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	m, msg, err := mc.subscriptionService.ChangePlan(c.Request.Context(), c.Param("id"), db_models.PlanID(req.PlanID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, m, msg)
}
