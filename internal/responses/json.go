package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON writes body as-is. Successful responses carry bare records or small
// result objects rather than an envelope.
func JSON(c *gin.Context, statusCode int, body any) {
	c.JSON(statusCode, body)
}

func Created(c *gin.Context, key string, id int64) {
	c.JSON(http.StatusCreated, gin.H{key: id})
}

func Updated(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func NoFields(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"updated": false, "reason": "no fields"})
}

func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func Fail(c *gin.Context, statusCode int, err error, message string) {
	resp := APIResponse{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(statusCode, resp)
}
