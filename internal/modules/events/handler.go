package events

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/ws/exhibit", h.Subscribe)
}

// Subscribe upgrades a kiosk connection. The client may pass a stable
// client_id to survive reconnects; otherwise one is assigned.
func (h *Handler) Subscribe(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	clientID := c.Query("client_id")
	if clientID == "" {
		clientID = uuid.NewString()
	}

	h.hub.Register(clientID, conn)

	// Kiosks only listen; the read loop exists to detect disconnects.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.Unregister(clientID)
				return
			}
		}
	}()
}
