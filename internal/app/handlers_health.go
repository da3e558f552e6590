package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (a *App) HandleHeartbeat(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UnixMilli(),
	})
}

func (a *App) HandleReadiness(c *gin.Context) {
	c.JSON(http.StatusOK, a.db.Health())
}
