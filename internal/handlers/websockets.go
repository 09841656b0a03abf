package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 5 * time.Second
	minInterval      = 1 * time.Second
	maxInterval      = 60 * time.Second
	maxIntervalMilli = 60_000
)

// Envelope used for WebSocket messages. Each "status" message carries a
// freshly polled record; a failed poll is reported in Error and the
// stream keeps going (the next tick re-polls).
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origins for production
}

func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	// Send a first status immediately, then on every tick.
	if err := h.sendStatus(c.Request.Context(), conn); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if err := h.sendStatus(c.Request.Context(), conn); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// parseInterval reads ?interval=10s or ?interval_ms=10000 with bounds.
// The floor keeps clients from hammering the serial line.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d >= minInterval && d <= maxInterval {
			return d
		}
	}
	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil {
			d := time.Duration(v) * time.Millisecond
			if d >= minInterval && v <= maxIntervalMilli {
				return d
			}
		}
	}
	return defaultInterval
}

// startReader drains incoming messages to handle control frames and
// detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// sendStatus polls the controller and writes the result with a write
// deadline. Poll errors go to the client as an error envelope; only a
// failed write tears the connection down.
func (h *Handler) sendStatus(ctx context.Context, conn *websocket.Conn) error {
	env := wsEnvelope{Type: "status"}
	st, err := h.services.Status.Poll(ctx)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_poll_failed", "err", err)
		}
		env.Type = "error"
		env.Error = err.Error()
	} else {
		env.Data = st
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}
