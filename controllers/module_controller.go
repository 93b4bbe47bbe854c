package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pagebuilder/database"
	"pagebuilder/models"
	"pagebuilder/render"
)

type ModuleController struct {
	*Controller[models.Module, models.MutModule]
}

func NewModuleController(provider database.Provider) *ModuleController {
	return &ModuleController{
		Controller: NewController[models.Module, models.MutModule](models.ModuleModel{}, provider),
	}
}

// RenderHTML renders the module's markdown content. A module without
// content renders to an empty document.
func (ctl *ModuleController) RenderHTML(c *gin.Context) error {
	id, err := PathID(c)
	if err != nil {
		return err
	}

	var module models.Module
	err = ctl.Provider.WithConn(c.Request.Context(), func(db *gorm.DB) error {
		var err error
		module, err = ctl.Model.ReadOne(db, id)
		return err
	})
	if err != nil {
		return MapSQLError(err)
	}

	var content string
	if module.Content != nil {
		content = *module.Content
	}
	html, err := render.Markdown(content)
	if err != nil {
		return Internal(err)
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
	return nil
}
