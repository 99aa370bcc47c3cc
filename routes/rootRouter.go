package routes

import (
	"go-messease/config"
	controller "go-messease/controllers"
	"go-messease/database"

	"github.com/gin-gonic/gin"
)

func RootRoutes(incomingRoutes *gin.Engine, db database.Handle, cfg *config.Config) {
	incomingRoutes.GET("/", controller.Root())
	incomingRoutes.GET("/schema", controller.Schema())
	incomingRoutes.GET("/test", controller.TestDatabase(db, cfg))
}
