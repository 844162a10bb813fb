package utils

import "github.com/gin-gonic/gin"

// JSONDetail writes the error body shape the booking front-end parses:
// {"detail": "..."}.
func JSONDetail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"detail": message})
}
