package realtime

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/pkg/config"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The CORS middleware owns origin policy; the hub accepts any origin that
	// made it through.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades HTTP connections and hands clients to the hub.
type Handler struct {
	hub       *Hub
	cfg       config.RealtimeConfig
	onInbound InboundHandler
	logger    *zap.Logger
}

// NewHandler constructs the websocket entry point. onInbound receives every
// parsed client frame (chat joins and chat messages).
func NewHandler(hub *Hub, cfg config.RealtimeConfig, onInbound InboundHandler, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.SendBufferSize <= 0 {
		cfg.SendBufferSize = 32
	}
	if cfg.WriteWait <= 0 {
		cfg.WriteWait = defaultWriteWait
	}
	if cfg.PongWait <= 0 {
		cfg.PongWait = defaultPongWait
	}
	if cfg.MaxMessageBytes <= 0 {
		cfg.MaxMessageBytes = defaultMaxMessageBytes
	}
	return &Handler{hub: hub, cfg: cfg, onInbound: onInbound, logger: logger}
}

// Connect godoc
// @Summary Open the real-time channel
// @Description Upgrades to a websocket subscribed to the caller's notification room
// @Tags Realtime
// @Param email query string true "Subscriber email"
// @Success 101 {string} string "Switching Protocols"
// @Router /ws [get]
func (h *Handler) Connect(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.String("email", email), zap.Error(err))
		return
	}

	client := &Client{
		hub:             h.hub,
		conn:            conn,
		send:            make(chan []byte, h.cfg.SendBufferSize),
		rooms:           map[string]struct{}{UserRoom(email): {}},
		Email:           email,
		onInbound:       h.onInbound,
		logger:          h.logger,
		writeWait:       h.cfg.WriteWait,
		pongWait:        h.cfg.PongWait,
		maxMessageBytes: h.cfg.MaxMessageBytes,
	}
	h.hub.register <- client

	go client.writePump()
	go client.readPump()

	h.logger.Info("websocket connected", zap.String("email", email), zap.String("remote", conn.RemoteAddr().String()))
}
