package request

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	requests := r.Group("/requests")
	{
		requests.GET("", handler.List)
		requests.POST("", handler.Create)
		requests.GET("/:id", handler.GetByID)
		requests.PATCH("/:id", handler.Update)
		requests.POST("/:id/approve", handler.Approve)
		requests.POST("/:id/reject", handler.Reject)
		requests.POST("/:id/return", handler.Return)
		requests.POST("/bulk-review", handler.BulkReview)
	}

	r.GET("/employees/:id/balance", handler.Balance)
}
