package events

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vipnexus/funil-backend/internal/domain/entities"
	"github.com/vipnexus/funil-backend/internal/domain/ports"
)

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 16
)

// leadPayload é o formato do lead dentro dos frames do websocket.
// Mesmo shape do LeadResponse da API REST.
type leadPayload struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Telefone  string    `json:"telefone"`
	Status    string    `json:"status"`
	Fonte     string    `json:"fonte"`
	Timestamp time.Time `json:"timestamp"`
}

type leadCreatedMessage struct {
	Type string      `json:"type"`
	Lead leadPayload `json:"lead"`
}

// client é uma conexão de dashboard com fila de envio própria
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub distribui eventos de lead para dashboards conectados via
// websocket. Implementa ports.LeadEventPublisher: publicar nunca
// bloqueia — clientes lentos são desconectados.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	logger  ports.Logger
}

// NewHub cria um novo Hub
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

// Register passa a distribuir eventos para a conexão até ela fechar
func (h *Hub) Register(conn *websocket.Conn) {
	c := &client{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go h.writePump(c)
	go h.readPump(c)
}

// LeadCreated publica um evento de lead criado para todos os clientes
func (h *Hub) LeadCreated(lead *entities.Lead) {
	msg := leadCreatedMessage{
		Type: "lead_created",
		Lead: leadPayload{
			ID:        lead.ID,
			Nome:      lead.Nome,
			Email:     lead.Email.String(),
			Telefone:  lead.Telefone,
			Status:    string(lead.Status),
			Fonte:     lead.Fonte,
			Timestamp: lead.Timestamp,
		},
	}

	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to marshal lead event", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// Fila cheia: derrubar o cliente ao invés de bloquear
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// ClientCount retorna o número de dashboards conectados
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

// writePump drena a fila de envio do cliente
func (h *Hub) writePump(c *client) {
	for data := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			break
		}
	}
	h.unregister(c)
}

// readPump descarta mensagens do cliente e detecta desconexão
func (h *Hub) readPump(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
	h.unregister(c)
}
