package sessionControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maturomero/huellitas-tpo-front/middleware"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /auth/login
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess, err := st.Session.Login(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			st.Notify.Error("Login failed: " + err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "status": sess.Status})
			return
		}

		c.JSON(http.StatusOK, gin.H{"session_id": st.ID, "status": sess.Status, "user": sess.Profile})
	}
}

// POST /auth/register
func Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess, err := st.Session.Register(c.Request.Context(), input.FullName, input.Email, input.Password)
		if err != nil {
			st.Notify.Error("Registration failed: " + err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "status": sess.Status})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"session_id": st.ID, "status": sess.Status, "user": sess.Profile})
	}
}

// POST /auth/logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)
		sess := st.Session.Logout()
		st.Cart.Clear()
		c.JSON(http.StatusOK, gin.H{"status": sess.Status})
	}
}

// GET /auth/session
func Current() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)
		sess := st.Session.Snapshot()
		c.JSON(http.StatusOK, gin.H{"session_id": st.ID, "status": sess.Status, "user": sess.Profile})
	}
}
