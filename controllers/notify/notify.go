package notifyControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/maturomero/huellitas-tpo-front/middleware"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GET /notifications
func GetNotifications() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)
		c.JSON(http.StatusOK, st.Notify.Recent())
	}
}

// GET /notifications/ws
// Streams the session's notifications live. The connection stays open
// until the client closes it.
func NotificationsWebSocketHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		st.Notify.Attach(conn)
		defer st.Notify.Detach(conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}
}
