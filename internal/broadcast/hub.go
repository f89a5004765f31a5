package broadcast

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"memehustle/utils"
)

// Topics delivered on the live channel. Every connected viewer receives
// every topic; there is no per-meme subscription filtering.
const (
	TopicNewMeme       = "new-meme"
	TopicVoteUpdate    = "vote-update"
	TopicNewBid        = "new-bid"
	TopicCaptionUpdate = "caption-update"
)

// Event is a single frame on the live channel.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Publisher fans an event out to every connected viewer. Implementations
// must never block the caller: mutation paths publish while holding a
// per-meme lock.
type Publisher interface {
	Publish(event string, data any)
}

const (
	defaultHubBuffer = 256
	clientBuffer     = 32

	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub owns the set of connected viewers. A single goroutine (Run) touches
// the client set, so registration and fan-out need no locking. Delivery is
// best-effort and at-most-once: viewers connecting after a publish never
// receive it, and a viewer whose send queue is full is disconnected rather
// than allowed to stall fan-out.
type Hub struct {
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	events     chan Event
}

// NewHub creates a hub with the given publish buffer size.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultHubBuffer
	}
	return &Hub{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		events:     make(chan Event, buffer),
	}
}

// Run processes registrations and fan-out until the process exits. Call it
// in its own goroutine before serving traffic.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			utils.Info("broadcast: viewer connected", map[string]any{"viewers": len(h.clients)})
		case c := <-h.unregister:
			h.drop(c)
		case ev := <-h.events:
			for c := range h.clients {
				select {
				case c.send <- ev:
				default:
					// Slow consumer: disconnect it rather than stall the others.
					utils.Warn("broadcast: dropping slow viewer", map[string]any{"event": ev.Event})
					h.drop(c)
				}
			}
		}
	}
}

func (h *Hub) drop(c *client) {
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// Publish enqueues an event for fan-out to all connected viewers. It never
// blocks; if the hub buffer is full the event is dropped with a warning.
// Events enqueued by operations serialized on the same meme are delivered
// in that serialization order.
func (h *Hub) Publish(event string, data any) {
	select {
	case h.events <- Event{Event: event, Data: data}:
	default:
		utils.Warn("broadcast: event dropped, hub buffer full", map[string]any{"event": event})
	}
}

// ServeWS upgrades the request to a websocket and attaches the viewer to
// the hub.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Error("broadcast: websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}

	cl := &client{hub: h, conn: conn, send: make(chan Event, clientBuffer)}
	h.register <- cl

	go cl.writePump()
	go cl.readPump()
}

// client is one connected viewer with its buffered send queue.
type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan Event
}

// readPump discards inbound frames (the live channel has no
// request/response semantics) and detects disconnects.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			utils.Debug("broadcast: viewer disconnected", map[string]any{"error": err.Error()})
			return
		}
	}
}

// writePump drains the send queue onto the connection and keeps it alive
// with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case ev, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub dropped this viewer.
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
