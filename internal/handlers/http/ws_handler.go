package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/vipnexus/funil-backend/internal/domain/ports"
	"github.com/vipnexus/funil-backend/internal/events"
)

// WSHandler expõe o stream de eventos de leads para o dashboard
type WSHandler struct {
	hub    *events.Hub
	logger ports.Logger

	upgrader websocket.Upgrader
}

// NewWSHandler cria um novo WSHandler
func NewWSHandler(hub *events.Hub, logger ports.Logger) *WSHandler {
	return &WSHandler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origens são filtradas pelo middleware de CORS/token
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// LeadStream faz o upgrade da conexão e passa a enviar frames
// {"type":"lead_created","lead":{...}} a cada lead capturado.
// Autenticação via query param "token" (middleware RequireAdmin).
func (h *WSHandler) LeadStream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	h.hub.Register(conn)
}
