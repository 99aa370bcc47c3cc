package routes

import (
	controller "go-messease/controllers"
	"go-messease/database"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func MenuRoutes(incomingRoutes *gin.Engine, db database.Handle, logger *zap.SugaredLogger) {
	incomingRoutes.GET("/menu", controller.GetMenu(db, logger))
	incomingRoutes.POST("/menu", controller.CreateMenuItem(db, logger))
}
