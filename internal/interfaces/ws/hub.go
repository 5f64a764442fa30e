// Package ws difunde en vivo las opiniones nuevas a los tableros del MIS conectados por WebSocket.
package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-mis/internal/application/ports"
	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
	"github.com/jhoicas/restaurante-mis/pkg/logger"
)

const broadcastBuffer = 64

var _ ports.FeedbackNotifier = (*Hub)(nil)

// Hub mantiene los clientes conectados y reenvía cada mensaje a todos.
type Hub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
	done       chan struct{}
	mu         sync.Mutex
	log        *logger.Logger
}

// NewHub construye el hub. Run debe arrancarse en una goroutine.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, broadcastBuffer),
		done:       make(chan struct{}),
		log:        log.Named("ws"),
	}
}

// Run procesa altas, bajas y difusiones hasta que ctx se cancele; al salir cierra todas las
// conexiones y Done queda cerrado. Se llama una sola vez.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.mu.Unlock()
			return

		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			n := len(h.clients)
			h.mu.Unlock()
			h.log.Debug().Int("clients", n).Msg("cliente conectado")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Done se cierra cuando Run terminó.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Clients devuelve la cantidad de conexiones activas.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// NotifyFeedback encola la opinión para difusión. Nunca bloquea al caso de uso:
// si el buffer está lleno el mensaje se descarta.
func (h *Hub) NotifyFeedback(fb entity.Feedback) {
	msg, err := json.Marshal(struct {
		Type string          `json:"type"`
		Data entity.Feedback `json:"data"`
	}{Type: "feedback", Data: fb})
	if err != nil {
		h.log.Error().Err(err).Msg("serializar feedback")
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.log.Warn().Str("feedback_id", fb.ID).Msg("buffer de difusión lleno, mensaje descartado")
	}
}

// Upgrade rechaza con 426 las peticiones que no son upgrade a WebSocket.
func Upgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	}
}

// Handler registra la conexión en el hub y la mantiene viva hasta que el cliente cierre
// o el hub se detenga. Con el hub detenido la conexión se cierra de inmediato.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		select {
		case h.register <- c:
		case <-h.done:
			return
		}
		defer func() {
			select {
			case h.unregister <- c:
			case <-h.done:
			}
		}()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	})
}
