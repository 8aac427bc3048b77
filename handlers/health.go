package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicbook/database"
	"clinicbook/utils"
)

// Health reports liveness of the storage collaborators.
func Health(c *gin.Context) {
	ctx := c.Request.Context()

	if err := database.MongoClient.Ping(ctx, nil); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": err.Error()})
		return
	}
	if err := utils.GetCacheClient().Ping(ctx).Err(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "redis": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
