package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openmined/skeleton-api/internal/server/services"
)

// HealthController serves the liveness endpoint.
type HealthController struct {
	infoService *services.InfoService
}

func NewHealthController(infoService *services.InfoService) *HealthController {
	return &HealthController{
		infoService: infoService,
	}
}

// RegisterRoutes mounts GET /health on the given group. The trailing-slash
// form is served as well, without a redirect.
func (c *HealthController) RegisterRoutes(router gin.IRoutes) {
	router.GET("/health", c.GetHealth)
	router.GET("/health/", c.GetHealth)
}

// GetHealth writes the current HealthInfo.
//
// Failures are not rendered here. The error is attached to the context and
// the error-handling stage turns it into a 500.
func (c *HealthController) GetHealth(ctx *gin.Context) {
	info, err := c.infoService.GetInfo(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, info)
}
