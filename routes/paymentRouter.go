package routes

import (
	controller "go-messease/controllers"
	"go-messease/database"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func PaymentRoutes(incomingRoutes *gin.Engine, db database.Handle, logger *zap.SugaredLogger) {
	incomingRoutes.GET("/payments", controller.GetPayments(db, logger))
	incomingRoutes.POST("/payment", controller.CreatePayment(db, logger))
}
