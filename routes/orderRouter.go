package routes

import (
	controller "go-messease/controllers"
	"go-messease/database"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func OrderRoutes(incomingRoutes *gin.Engine, db database.Handle, logger *zap.SugaredLogger) {
	incomingRoutes.GET("/orders", controller.GetOrders(db, logger))
	incomingRoutes.POST("/order", controller.CreateOrder(db, logger))
}
