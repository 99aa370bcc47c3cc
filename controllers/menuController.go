package controllers

import (
	"net/http"

	"go-messease/database"
	"go-messease/helpers"
	"go-messease/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const defaultMenuLimit = 100

// GetMenu lists menu items. Only available items are listed unless
// available_only=false.
func GetMenu(db database.Handle, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := helpers.QueryLimit(c, defaultMenuLimit)
		if err != nil {
			abortWithError(c, logger, err)
			return
		}
		availableOnly, err := helpers.QueryBool(c, "available_only", true)
		if err != nil {
			abortWithError(c, logger, err)
			return
		}

		store, err := db.Store()
		if err != nil {
			abortWithError(c, logger, err)
			return
		}

		filter := bson.M{}
		if availableOnly {
			filter["is_available"] = true
		}
		docs, err := store.Find(c.Request.Context(), database.MenuItemCollection, filter, limit)
		if err != nil {
			abortWithError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, helpers.SerializeDocuments(docs))
	}
}

func CreateMenuItem(db database.Handle, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.MenuItem
		if err := bindBody(c, &item); err != nil {
			abortWithError(c, logger, err)
			return
		}

		store, err := db.Store()
		if err != nil {
			abortWithError(c, logger, err)
			return
		}

		id, err := store.Insert(c.Request.Context(), database.MenuItemCollection, item)
		if err != nil {
			abortWithError(c, logger, err)
			return
		}
		logger.Infow("menu item created", "menuitem_id", id, "title", *item.Title)
		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}
