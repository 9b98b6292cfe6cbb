package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/service"
	"github.com/vestalumina/vls-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveFeed delivers action log entries published by any API instance.
//
//go:generate mockery --name LiveFeed --output ../mocks
type LiveFeed interface {
	Subscribe(ctx context.Context, callback func(*dto.ActionLogResponse)) error
	Close()
}

type Client struct {
	conn      *websocket.Conn
	principal domain.Principal
	send      chan []byte
}

type WebSocketHandler struct {
	*BaseHandler
	authorizer ActionLogService
	feed       LiveFeed
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mutex      sync.Mutex
	logger     *logger.Logger
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewWebSocketHandler(authorizer ActionLogService, feed LiveFeed, logger *logger.Logger) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		authorizer: authorizer,
		feed:       feed,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// HandleWebSocket godoc
// @Summary Stream action log entries
// @Description Upgrades to a websocket relaying new entries the admin may view
// @Tags action-log
// @Success 101
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Security BearerAuth
// @Router /action-log/stream [get]
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	principal, err := h.authorizer.AuthorizeStream(h.RequestCtx(c), h.Caller(c))
	if err != nil {
		respondError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade connection", zap.Error(err))
		return
	}

	client := &Client{
		conn:      conn,
		principal: principal,
		send:      make(chan []byte, websocketSendChannelBufferSize),
	}
	select {
	case h.register <- client:
	case <-h.ctx.Done():
		conn.Close()
		return
	}

	go h.writePump(client)
	go h.readPump(client)
}

// Start subscribes to the live feed and runs the client registry until Stop.
func (h *WebSocketHandler) Start() {
	if err := h.feed.Subscribe(h.ctx, h.handleLiveEntry); err != nil {
		h.logger.Error("Failed to subscribe to live action log", err)
	}

	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			h.removeClient(client)
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
	h.feed.Close()
}

// removeClient must be called with mutex held.
func (h *WebSocketHandler) removeClient(client *Client) {
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
}

// handleLiveEntry fans an entry out to every client allowed to see it.
func (h *WebSocketHandler) handleLiveEntry(entry *dto.ActionLogResponse) {
	message, err := json.Marshal(entry)
	if err != nil {
		h.logger.Error("Error marshaling action log entry", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		if !service.CanView(client.principal, entry) {
			continue
		}
		select {
		case client.send <- message:
		default: // Slow consumer: drop the client rather than block the feed
			h.removeClient(client)
		}
	}
}

func (h *WebSocketHandler) writePump(client *Client) {
	defer func() {
		client.conn.Close()
	}()

	for message := range client.send {
		if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}

	// Channel was closed, send close message
	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		select {
		case h.unregister <- client:
		case <-h.ctx.Done():
		}
		client.conn.Close()
	}()

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("Unexpected close error", zap.String("admin", client.principal.Email), zap.Error(err))
			}
			return
		}
	}
}
