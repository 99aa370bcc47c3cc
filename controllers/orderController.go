package controllers

import (
	"net/http"

	"go-messease/database"
	"go-messease/helpers"
	"go-messease/models"
	"go-messease/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const defaultOrderLimit = 50

func GetOrders(db database.Handle, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := helpers.QueryLimit(c, defaultOrderLimit)
		if err != nil {
			abortWithError(c, logger, err)
			return
		}

		store, err := db.Store()
		if err != nil {
			abortWithError(c, logger, err)
			return
		}

		docs, err := store.Find(c.Request.Context(), database.OrderCollection, bson.M{}, limit)
		if err != nil {
			abortWithError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, helpers.SerializeDocuments(docs))
	}
}

// CreateOrder rejects orders whose subtotal does not match their items.
func CreateOrder(db database.Handle, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := bindBody(c, &order); err != nil {
			abortWithError(c, logger, err)
			return
		}

		store, err := db.Store()
		if err != nil {
			abortWithError(c, logger, err)
			return
		}

		id, status, err := services.NewOrderService(store, logger).CreateOrder(c.Request.Context(), &order)
		if err != nil {
			abortWithError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": id, "status": status})
	}
}
