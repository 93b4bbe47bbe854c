package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pagebuilder/database"
	"pagebuilder/models"
)

type PageController struct {
	*Controller[models.Page, models.MutPage]
	pages models.PageModel
}

func NewPageController(provider database.Provider) *PageController {
	pages := models.PageModel{}
	return &PageController{
		Controller: NewController[models.Page, models.MutPage](pages, provider),
		pages:      pages,
	}
}

// ReadOneJoinModules responds with the page and all of its modules nested
// under it instead of the flat pairs the join produces.
//
// A join with no rows does not tell a missing page from a page without
// modules, so the page is looked up on the same connection before answering
// 404.
func (ctl *PageController) ReadOneJoinModules(c *gin.Context) error {
	id, err := PathID(c)
	if err != nil {
		return err
	}

	var res models.PageModuleRelation
	err = ctl.Provider.WithConn(c.Request.Context(), func(db *gorm.DB) error {
		pairs, err := ctl.pages.ReadOneJoinOn(db, id)
		if err != nil {
			return err
		}

		var ok bool
		if res, ok = models.FlattenPageModules(pairs); ok {
			return nil
		}

		page, err := ctl.pages.ReadOne(db, id)
		if err != nil {
			return err
		}
		res = models.PageModuleRelation{
			PageID:      page.PageID,
			Title:       page.Title,
			TimeCreated: page.TimeCreated,
			Modules:     []models.Module{},
		}
		return nil
	})
	if err != nil {
		return MapSQLError(err)
	}

	c.JSON(http.StatusOK, res)
	return nil
}
