package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness; it is unauthenticated by design so load balancers
// can probe it.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
