package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmined/skeleton-api/internal/server/controllers"
	apierrors "github.com/openmined/skeleton-api/internal/server/errors"
)

// SetupRoutes mounts the pipeline, the API group and the 404 fallback.
// Unknown methods on known paths are treated as unknown routes, and paths
// are never redirected so every response goes through the pipeline.
func SetupRoutes(pipeline Pipeline, svc *Services) http.Handler {
	r := gin.New()
	r.HandleMethodNotAllowed = false
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(pipeline.Handlers()...)

	healthC := controllers.NewHealthController(svc.Info)

	api := r.Group(APIPrefix)
	{
		healthC.RegisterRoutes(api)
	}

	r.NoRoute(NotFoundHandler)

	return r.Handler()
}

func NotFoundHandler(ctx *gin.Context) {
	appErr := apierrors.NotFound()
	ctx.JSON(appErr.Status, appErr.Response())
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}
