package responses

import "github.com/gin-gonic/gin"

type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes data as-is; used for resources and resource lists.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Created(c *gin.Context, statusCode int, id int64, message string) {
	c.JSON(statusCode, CreatedResponse{
		ID:      id,
		Message: message,
	})
}

func Success(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}
