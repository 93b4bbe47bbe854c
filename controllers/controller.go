package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pagebuilder/database"
	"pagebuilder/models"
)

// Controller serves create, read, update and delete for any entity T with
// mutation payload M. The only per-entity code is the models.Model behind it.
type Controller[T any, M any] struct {
	Model    models.Model[T, M]
	Provider database.Provider
}

func NewController[T any, M any](model models.Model[T, M], provider database.Provider) *Controller[T, M] {
	return &Controller[T, M]{Model: model, Provider: provider}
}

func (ctl *Controller[T, M]) Create(c *gin.Context) error {
	var in M
	if err := c.ShouldBindJSON(&in); err != nil {
		return BadRequest(err)
	}

	err := ctl.Provider.WithConn(c.Request.Context(), func(db *gorm.DB) error {
		_, err := ctl.Model.Create(db, &in)
		return err
	})
	if err != nil {
		return MapSQLError(err)
	}

	c.JSON(http.StatusCreated, in)
	return nil
}

func (ctl *Controller[T, M]) ReadAll(c *gin.Context) error {
	var all []T
	err := ctl.Provider.WithConn(c.Request.Context(), func(db *gorm.DB) error {
		var err error
		all, err = ctl.Model.ReadAll(db)
		return err
	})
	if err != nil {
		return MapSQLError(err)
	}

	c.JSON(http.StatusOK, all)
	return nil
}

func (ctl *Controller[T, M]) ReadOne(c *gin.Context) error {
	id, err := PathID(c)
	if err != nil {
		return err
	}

	var one T
	err = ctl.Provider.WithConn(c.Request.Context(), func(db *gorm.DB) error {
		var err error
		one, err = ctl.Model.ReadOne(db, id)
		return err
	})
	if err != nil {
		return MapSQLError(err)
	}

	c.JSON(http.StatusOK, one)
	return nil
}

// Update echoes the payload, not the stored row.
func (ctl *Controller[T, M]) Update(c *gin.Context) error {
	var in M
	if err := c.ShouldBindJSON(&in); err != nil {
		return BadRequest(err)
	}
	id, err := PathID(c)
	if err != nil {
		return err
	}

	err = ctl.Provider.WithConn(c.Request.Context(), func(db *gorm.DB) error {
		_, err := ctl.Model.Update(db, id, &in)
		return err
	})
	if err != nil {
		return MapSQLError(err)
	}

	c.JSON(http.StatusOK, in)
	return nil
}

func (ctl *Controller[T, M]) Delete(c *gin.Context) error {
	id, err := PathID(c)
	if err != nil {
		return err
	}

	err = ctl.Provider.WithConn(c.Request.Context(), func(db *gorm.DB) error {
		_, err := ctl.Model.Delete(db, id)
		return err
	})
	if err != nil {
		return MapSQLError(err)
	}

	c.String(http.StatusOK, "%s", DeletedMessage(id))
	return nil
}

func DeletedMessage(id int32) string {
	return fmt.Sprintf("Successfully deleted resource %d", id)
}

// PathID parses the :id route parameter as a signed 32-bit integer.
func PathID(c *gin.Context) (int32, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return 0, MapIntParsingError(err)
	}
	return int32(id), nil
}
