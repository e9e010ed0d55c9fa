// internal/handler/routes.go
package handler

import (
	"net/http"

	"smartspend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the full API surface. Signup and login are
// public; everything else requires a bearer token.
func RegisterRoutes(r *gin.Engine, h *Handler, ah *AuthHandler, authMW *middleware.AuthMiddleware) {
	api := r.Group("/api")

	api.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "API is running"})
	})
	api.POST("/signup", ah.Signup)
	api.POST("/register", ah.Signup)
	api.POST("/login", ah.Login)

	protected := api.Group("")
	protected.Use(authMW.RequireAuth())
	{
		protected.GET("/expenses/:userId", h.List)
		protected.POST("/expenses", h.Create)
		protected.PUT("/expenses/:id", h.Update)
		protected.DELETE("/expenses/:id", h.Delete)

		protected.GET("/user/:id", h.GetUser)
		protected.PUT("/user/:id/settings", h.UpdateSettings)
		protected.PUT("/user/:id/categories", h.UpdateCategories)
		protected.PUT("/user/:id/budgets", h.UpdateBudgets)
		protected.PUT("/user/:id/profile", h.UpdateProfile)

		protected.GET("/predict-budget/:userId", h.PredictBudget)
		protected.GET("/summary/:userId", h.Summary)
	}
}
