package controllers

import (
	"net/http"

	"go-messease/config"
	"go-messease/database"
	"go-messease/models"

	"github.com/gin-gonic/gin"
)

const errorTextLimit = 80

func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "MessEase Backend Running"})
	}
}

func Schema() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"collections": models.Schemas()})
	}
}

// TestDatabase reports backend and store health. It always answers 200.
func TestDatabase(db database.Handle, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{
			"backend":           "Running",
			"database":          "Not Available",
			"database_url":      setOrNot(cfg.Database.URL),
			"database_name":     setOrNot(cfg.Database.Name),
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		store, err := db.Store()
		if err != nil {
			resp["database"] = "Not Connected"
			c.JSON(http.StatusOK, resp)
			return
		}

		if err := store.Ping(c.Request.Context()); err != nil {
			resp["database"] = "Error: " + truncate(err.Error(), errorTextLimit)
			c.JSON(http.StatusOK, resp)
			return
		}

		names, err := store.CollectionNames(c.Request.Context())
		if err != nil {
			resp["database"] = "Error: " + truncate(err.Error(), errorTextLimit)
			c.JSON(http.StatusOK, resp)
			return
		}
		if names == nil {
			names = []string{}
		}
		resp["database"] = "Connected"
		resp["connection_status"] = "Connected"
		resp["collections"] = names
		c.JSON(http.StatusOK, resp)
	}
}

func setOrNot(v string) string {
	if v == "" {
		return "Not Set"
	}
	return "Set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
