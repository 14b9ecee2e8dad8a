package router

import (
	"github.com/khaild19/10AI/internal/config"
	"github.com/khaild19/10AI/internal/handler"
	"github.com/khaild19/10AI/internal/middleware"
	"github.com/khaild19/10AI/internal/repository"

	"github.com/gin-gonic/gin"
)

type Router struct {
	handler   *handler.Handler
	userStore repository.UserStore
}

func NewRouter(h *handler.Handler, userStore repository.UserStore) *Router {
	return &Router{
		handler:   h,
		userStore: userStore,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(config.Get().Server))
	r.Use(middleware.BodyLimitMiddleware())

	// owner-scoped routes share one status check and one download limiter
	authed := []gin.HandlerFunc{middleware.JWTAuth(), middleware.UserStatusCheck(rt.userStore)}
	downloadLimiter := middleware.DownloadRateLimit()

	api := r.Group("/api")
	registerAuthRoutes(api, middleware.AuthRateLimit(), rt.handler)
	registerProductRoutes(api, authed, downloadLimiter, rt.handler)
	registerSeasonRoutes(api, authed, rt.handler)

	registerPublicRoutes(r, authed, downloadLimiter, rt.handler)
}
