package controllers

import (
	"net/http"

	"go-messease/database"
	"go-messease/helpers"
	"go-messease/middleware"
	"go-messease/models"
	"go-messease/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const defaultPaymentLimit = 50

func GetPayments(db database.Handle, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := helpers.QueryLimit(c, defaultPaymentLimit)
		if err != nil {
			abortWithError(c, logger, err)
			return
		}

		store, err := db.Store()
		if err != nil {
			abortWithError(c, logger, err)
			return
		}

		docs, err := store.Find(c.Request.Context(), database.PaymentCollection, bson.M{}, limit)
		if err != nil {
			abortWithError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, helpers.SerializeDocuments(docs))
	}
}

// CreatePayment always answers 201 once the payment is stored, whatever
// happens to the follow-up order update.
func CreatePayment(db database.Handle, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payment models.Payment
		if err := bindBody(c, &payment); err != nil {
			abortWithError(c, logger, err)
			return
		}

		store, err := db.Store()
		if err != nil {
			abortWithError(c, logger, err)
			return
		}

		id, sync, err := services.NewOrderService(store, logger).CreatePayment(c.Request.Context(), &payment)
		if err != nil {
			abortWithError(c, logger, err)
			return
		}
		if sync.Failed() {
			logger.Warnw("order status not updated after payment",
				"payment_id", id,
				"order_id", sync.OrderID,
				"request_id", middleware.RequestIDFrom(c),
				"error", sync.Err,
			)
		}
		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}
