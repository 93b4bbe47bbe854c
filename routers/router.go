package routers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"pagebuilder/cache"
	"pagebuilder/common"
	"pagebuilder/controllers"
	"pagebuilder/database"
	"pagebuilder/metrics"
)

// Store is the connection provider the routes are served from.
type Store interface {
	database.Provider
	Ping(ctx context.Context) error
}

type Options struct {
	Store   Store
	Logger  zerolog.Logger
	Metrics *metrics.Collector
}

// NewRouter builds the engine with middleware, entity routes and the
// operational endpoints. Metrics are skipped when opts.Metrics is nil.
func NewRouter(opts Options) *gin.Engine {
	router := gin.New()
	router.Use(common.RequestID(opts.Logger), common.RequestLogger())
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
	}
	// recovery writes its 500 through the buffering writer
	router.Use(cache.ETagMiddleware(), gin.Recovery())

	router.GET("/healthz", health(opts.Store))
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	RegisterPageRoutes(router, controllers.NewPageController(opts.Store))
	RegisterModuleRoutes(router, controllers.NewModuleController(opts.Store))

	return router
}

func health(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
