package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/00harsha00/fixmyride/models"
)

// Live order feed for the admin panel: every new checkout and every status
// change is pushed to connected clients.

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsClients   = make(map[*websocket.Conn]bool)
	wsClientsMu sync.Mutex
)

type orderEvent struct {
	Event string       `json:"event"`
	Order models.Order `json:"order"`
}

// GET /api/orders/ws
func FeedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsClientsMu.Lock()
	wsClients[conn] = true
	wsClientsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsClientsMu.Lock()
			delete(wsClients, conn)
			wsClientsMu.Unlock()
			break
		}
	}
}

// Broadcast pushes a newly created order to all feed clients.
func Broadcast(order models.Order) {
	broadcast(orderEvent{Event: "order_created", Order: order})
}

// BroadcastStatus pushes a status change to all feed clients.
func BroadcastStatus(order models.Order) {
	broadcast(orderEvent{Event: "status_changed", Order: order})
}

func broadcast(ev orderEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}

	wsClientsMu.Lock()
	defer wsClientsMu.Unlock()
	for client := range wsClients {
		_ = client.WriteMessage(websocket.TextMessage, data)
	}
}
