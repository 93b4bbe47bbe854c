package routers

import (
	"github.com/gin-gonic/gin"

	"pagebuilder/controllers"
)

func RegisterPageRoutes(router gin.IRouter, ctl *controllers.PageController) {
	pages := router.Group("/pages")
	{
		pages.POST("", controllers.Handle(ctl.Create))
		pages.GET("", controllers.Handle(ctl.ReadAll))
		pages.GET("/:id", controllers.Handle(ctl.ReadOne))
		pages.GET("/:id/modules", controllers.Handle(ctl.ReadOneJoinModules))
		pages.PUT("/:id", controllers.Handle(ctl.Update))
		pages.DELETE("/:id", controllers.Handle(ctl.Delete))
	}
}
