package routers

import (
	"github.com/gin-gonic/gin"

	"pagebuilder/controllers"
)

func RegisterModuleRoutes(router gin.IRouter, ctl *controllers.ModuleController) {
	modules := router.Group("/modules")
	{
		modules.POST("", controllers.Handle(ctl.Create))
		modules.GET("", controllers.Handle(ctl.ReadAll))
		modules.GET("/:id", controllers.Handle(ctl.ReadOne))
		modules.GET("/:id/html", controllers.Handle(ctl.RenderHTML))
		modules.PUT("/:id", controllers.Handle(ctl.Update))
		modules.DELETE("/:id", controllers.Handle(ctl.Delete))
	}
}
