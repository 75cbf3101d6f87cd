package handlers

import (
	"net/http"

	"quiz-admin-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type WSHandler struct {
	hub *ws.Hub
	log *zap.SugaredLogger
}

func NewWSHandler(hub *ws.Hub, log *zap.SugaredLogger) *WSHandler {
	return &WSHandler{hub: hub, log: log}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveSocket streams monitor-state updates for one session.
func (h *WSHandler) LiveSocket(c *gin.Context) {
	h.serve(c, "live:"+c.Param("id"))
}

// ChatSocket streams chat messages for one session.
func (h *WSHandler) ChatSocket(c *gin.Context) {
	h.serve(c, "chat:"+c.Param("id"))
}

// serve upgrades the connection and parks it on the topic until the client
// goes away; teardown always unregisters the subscription exactly once.
func (h *WSHandler) serve(c *gin.Context, topic string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warnf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(topic, conn)
	defer h.hub.RemoveConnection(topic, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
