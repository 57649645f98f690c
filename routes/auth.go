package routes

import (
	"github.com/gin-gonic/gin"

	sessionControllers "github.com/maturomero/huellitas-tpo-front/controllers/session"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", sessionControllers.Login())
		authGroup.POST("/register", sessionControllers.Register())
		authGroup.POST("/logout", sessionControllers.Logout())
		authGroup.GET("/session", sessionControllers.Current())
	}
}
