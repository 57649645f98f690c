package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maturomero/huellitas-tpo-front/models"
	"github.com/maturomero/huellitas-tpo-front/store"
)

// HeaderSessionID carries the gateway session id. Unknown or missing
// ids get a fresh session; the id is always echoed back so the client
// can keep it.
const HeaderSessionID = "X-Session-ID"

const storesKey = "stores"

// Sessions resolves the caller's session stores and puts them in the
// request context.
func Sessions(reg *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderSessionID)

		var st *store.Stores
		if id != "" {
			st, _ = reg.Get(id)
		}
		if st == nil {
			st = reg.Create()
		}

		c.Header(HeaderSessionID, st.ID)
		c.Set(storesKey, st)
		c.Next()
	}
}

// GetStores pulls the session stores out of a request context.
func GetStores(c *gin.Context) *store.Stores {
	return c.MustGet(storesKey).(*store.Stores)
}

// RequireAuth aborts unless the session is authenticated.
func RequireAuth(c *gin.Context) {
	st := GetStores(c)
	if st.Session.Snapshot().Status != models.StatusAuthenticated {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		c.Abort()
		return
	}
	c.Next()
}

// RequireAdmin aborts unless the session's profile carries the ADMIN
// role.
func RequireAdmin(c *gin.Context) {
	st := GetStores(c)
	if !st.Session.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
		c.Abort()
		return
	}
	c.Next()
}
