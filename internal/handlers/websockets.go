package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"spacex_dashboard/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12 // 4 KB
)

// Message types exchanged over /ws.
const (
	wsTypeUpdate  = "update"
	wsTypePing    = "ping"
	wsTypePong    = "pong"
	wsTypeOutputs = "outputs"
	wsTypeError   = "error"
)

var errUnknownMessageType = errors.New("unknown message type")

// wsRequest is what the page sends when a widget changes.
type wsRequest struct {
	Type    string             `json:"type"`
	Changed string             `json:"changed"`
	State   models.WidgetState `json:"state"`

	// set by the reader when the frame could not be decoded
	err error
}

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary      Live chart updates
// @Description  WebSocket. Send {"type":"update","changed":"site-dropdown","state":{...}}; receive {"type":"outputs","data":[...]}.
// @Tags         dashboard
// @Success      101
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Errorw("ws_upgrade_failed", "err", err, "request_id", requestID(c))
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	requests := make(chan wsRequest)
	stop := make(chan struct{})
	defer close(stop)
	go h.startReader(conn, requests, stop)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	// Single writer: every response and ping goes out from this loop.
	for {
		select {
		case <-c.Request.Context().Done():
			return
		case req, ok := <-requests:
			if !ok {
				return
			}
			if err := h.handleWSRequest(conn, req); err != nil {
				h.log.Infow("ws_write_failed", "err", err)
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.log.Infow("ws_ping_failed", "err", err)
				return
			}
		}
	}
}

// startReader decodes incoming frames and hands them to the writer loop.
// It closes requests when the connection goes away.
func (h *Handler) startReader(conn *websocket.Conn, requests chan<- wsRequest, stop <-chan struct{}) {
	defer close(requests)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			h.log.Infow("ws_read_closed", "err", err)
			return
		}
		var req wsRequest
		if err := json.Unmarshal(data, &req); err != nil {
			req = wsRequest{err: err}
		}
		select {
		case requests <- req:
		case <-stop:
			return
		}
	}
}

// handleWSRequest answers one request. Bad input gets an error envelope and
// leaves the connection open; only write failures are returned.
func (h *Handler) handleWSRequest(conn *websocket.Conn, req wsRequest) error {
	if req.err != nil {
		return writeEnvelope(conn, wsEnvelope{Type: wsTypeError, Error: errInvalidBodyPref + req.err.Error()})
	}

	switch req.Type {
	case wsTypePing:
		return writeEnvelope(conn, wsEnvelope{Type: wsTypePong})
	case wsTypeUpdate:
		outs, err := h.dispatch(req.Changed, req.State)
		if err != nil {
			h.log.Infow("ws_update_rejected", "err", err, "changed", req.Changed)
			return writeEnvelope(conn, wsEnvelope{Type: wsTypeError, Error: err.Error()})
		}
		return writeEnvelope(conn, wsEnvelope{Type: wsTypeOutputs, Data: outs})
	default:
		return writeEnvelope(conn, wsEnvelope{Type: wsTypeError, Error: errUnknownMessageType.Error() + ": " + req.Type})
	}
}

func writeEnvelope(conn *websocket.Conn, env wsEnvelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}
