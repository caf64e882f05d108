package websocket

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/storefront/internal/events"
)

// Handler streams storefront activity to websocket clients
type Handler struct {
	Upgrader websocket.Upgrader
	Log      hclog.Logger
	EventBus *events.EventBus[any]
}

type Message struct {
	EventType string `json:"event-type"`
	Data      any    `json:"data"`
}

func NewHandler(log hclog.Logger, eventBus *events.EventBus[any]) *Handler {
	return &Handler{
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		Log:      log,
		EventBus: eventBus,
	}
}

// messageFor names an event for the wire. ok is false for events the feed
// does not carry.
func messageFor(event any) (Message, bool) {
	switch e := event.(type) {
	case events.PageLoaded:
		return Message{EventType: "page_loaded", Data: e}, true
	case events.ProductViewed:
		return Message{EventType: "product_viewed", Data: e}, true
	case events.FetchFailed:
		return Message{EventType: "fetch_failed", Data: e}, true
	case events.ScrollReset:
		return Message{EventType: "scroll_reset", Data: e}, true
	default:
		return Message{}, false
	}
}

func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Error("Unable to upgrade to WebSocket", "error", err)
		return
	}
	defer conn.Close()

	subscriber := h.EventBus.Subscribe()
	defer h.EventBus.Unsubscribe(subscriber)

	done := make(chan struct{})
	go h.readPump(conn, done)

	for {
		select {
		case event := <-subscriber:
			message, ok := messageFor(event)
			if !ok {
				h.Log.Warn("Unknown event type", "event", event)
				continue
			}

			payload, err := json.Marshal(message)
			if err != nil {
				h.Log.Error("Error marshalling message", "error", err)
				continue
			}

			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.Log.Error("Error writing message to WebSocket", "error", err)
				return
			}
		case <-done:
			h.Log.Debug("WebSocket connection closed by the client")
			return
		}
	}
}

func (h *Handler) readPump(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.Log.Error("Error reading message", "error", err)
			}
			return
		}
	}
}
