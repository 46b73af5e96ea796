package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		RespondError(c, http.StatusNotFound, "Category not found")
	case errors.Is(err, ErrInterestNotFound):
		RespondError(c, http.StatusNotFound, "Interest not found")
	case errors.Is(err, ErrMunicipalityNotFound):
		RespondError(c, http.StatusNotFound, "Municipality not found")
	case errors.Is(err, ErrSnapshotNotFound):
		RespondError(c, http.StatusNotFound, "No municipality data available")
	case errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, "Plan not found")
	case errors.Is(err, ErrInvalidTransition):
		RespondError(c, http.StatusConflict, "Subscription state does not allow this action")
	case errors.Is(err, ErrEmptySelection):
		RespondError(c, http.StatusBadRequest, "No rows selected")
	case errors.Is(err, ErrConfirmationRequired):
		RespondError(c, http.StatusBadRequest, "Bulk delete requires confirmation")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
