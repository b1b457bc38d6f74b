package realtime

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	pingRatio = 9.0 / 10.0

	defaultWriteWait       = 10 * time.Second
	defaultPongWait        = 60 * time.Second
	defaultMaxMessageBytes = 8192
)

// UserRoom names the per-recipient notification channel.
func UserRoom(email string) string {
	return "user:" + strings.ToLower(email)
}

// ChatRoom names a parent/teacher conversation. The pair is unordered:
// ChatRoom(a, b) == ChatRoom(b, a).
func ChatRoom(a, b string) string {
	pair := []string{strings.ToLower(a), strings.ToLower(b)}
	sort.Strings(pair)
	return "chat:" + pair[0] + "|" + pair[1]
}

// Inbound is a client-to-server frame.
type Inbound struct {
	Type         string `json:"type"`
	ParentEmail  string `json:"parentEmail,omitempty"`
	TeacherEmail string `json:"teacherEmail,omitempty"`
	Sender       string `json:"sender,omitempty"`
	Message      string `json:"message,omitempty"`
}

// InboundHandler reacts to frames read from a client connection.
type InboundHandler func(c *Client, msg Inbound)

// Client is the middleman between one websocket connection and the hub.
type Client struct {
	hub  *Hub
	conn *websocket.Conn

	send  chan []byte
	rooms map[string]struct{}

	// Email the connection authenticated itself with at upgrade time.
	Email string

	onInbound InboundHandler
	logger    *zap.Logger

	closeOnce sync.Once

	writeWait       time.Duration
	pongWait        time.Duration
	maxMessageBytes int64
}

// Join subscribes the connection to an additional room.
func (c *Client) Join(room string) {
	c.hub.Join(c, room)
}

func (c *Client) readPump() {
	defer func() {
		c.closeOnce.Do(func() { c.hub.unregister <- c })
		c.conn.Close()
	}()

	c.conn.SetReadLimit(c.maxMessageBytes)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Warn("unexpected websocket close", zap.String("email", c.Email), zap.Error(err))
			}
			return
		}

		var msg Inbound
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.logger.Debug("discarding malformed websocket frame", zap.String("email", c.Email), zap.Error(err))
			continue
		}
		if c.onInbound != nil {
			c.onInbound(c, msg)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(time.Duration(float64(c.pongWait) * pingRatio))
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
