package handlers

import (
	"net/http"

	"quiz-admin-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	configService *services.ConfigService
}

func NewConfigHandler(configService *services.ConfigService) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

type TimeLeftResponse struct {
	TimeLeftForKBS string `json:"timeleftforkbs"`
}

type UpdateTimeLeftRequest struct {
	// empty clears the value; a local minute string stores an instant;
	// anything else is kept verbatim
	TimeLeftForKBS string `json:"timeleftforkbs"`
}

func (h *ConfigHandler) GetTimeLeft(c *gin.Context) {
	value, err := h.configService.GetTimeLeft(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, TimeLeftResponse{TimeLeftForKBS: value})
}

func (h *ConfigHandler) SetTimeLeft(c *gin.Context) {
	var req UpdateTimeLeftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.configService.SetTimeLeft(c.Request.Context(), req.TimeLeftForKBS); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	value, err := h.configService.GetTimeLeft(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, TimeLeftResponse{TimeLeftForKBS: value})
}
