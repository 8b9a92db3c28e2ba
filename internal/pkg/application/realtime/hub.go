package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/gorilla/websocket"
)

//go:generate moq -rm -out broadcaster_mock.go . Broadcaster

// Broadcaster announces state change deltas to every observer currently
// watching a site. Delivery is best effort and nothing is persisted; a
// reconnecting observer re-fetches state over REST.
type Broadcaster interface {
	BroadcastToSite(siteID string, event string, payload map[string]any)
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 32
)

// Hub is the process scoped registry of connected observers, keyed by
// site id. It is passed as an explicit dependency into every component
// that publishes; there is no package level shared state.
type Hub struct {
	mu    sync.RWMutex
	sites map[string]map[*connection]struct{}
}

func NewHub() *Hub {
	return &Hub{
		sites: map[string]map[*connection]struct{}{},
	}
}

func (h *Hub) BroadcastToSite(siteID string, event string, payload map[string]any) {
	msg := map[string]any{"event": event}
	for k, v := range payload {
		if k != "event" {
			msg[k] = v
		}
	}

	b, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.sites[siteID] {
		select {
		case c.send <- b:
		default:
			// The observer is not keeping up. Dropping the message is
			// the contract: reconnect and re-fetch via REST.
		}
	}
}

func (h *Hub) register(siteID string, c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sites[siteID] == nil {
		h.sites[siteID] = map[*connection]struct{}{}
	}
	h.sites[siteID][c] = struct{}{}
}

func (h *Hub) unregister(siteID string, c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.sites[siteID]; ok {
		if _, ok := conns[c]; ok {
			delete(conns, c)
			close(c.send)
		}
		if len(conns) == 0 {
			delete(h.sites, siteID)
		}
	}
}

// ObserverCount reports how many observers are currently subscribed to
// a site.
func (h *Hub) ObserverCount(siteID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.sites[siteID])
}

type connection struct {
	ws   *websocket.Conn
	send chan []byte
}

type subscribeMessage struct {
	Type   string `json:"type"`
	SiteID string `json:"siteId"`
}

var (
	ErrSubscribeExpected = errors.New("first message must be a subscribe")
	ErrSiteNotAllowed    = errors.New("subscribed site is outside the caller's site scope")
)

// Serve runs one observer connection to completion: a subscribe
// handshake checked against the actor's site scope, then a read loop
// and a write pump until either side goes away.
func Serve(ctx context.Context, hub *Hub, ws *websocket.Conn, actor types.Actor) error {
	log := logging.GetFromContext(ctx)

	ws.SetReadLimit(1024)
	ws.SetReadDeadline(time.Now().Add(pongWait))

	var sub subscribeMessage
	err := ws.ReadJSON(&sub)
	if err != nil {
		return err
	}

	if sub.Type != "subscribe" || sub.SiteID == "" {
		ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "subscribe expected"),
			time.Now().Add(writeWait))
		return ErrSubscribeExpected
	}

	if !actor.HasSite(sub.SiteID) {
		log.Info("realtime subscribe rejected", "actor", actor.ID, "site_id", sub.SiteID)
		ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "forbidden"),
			time.Now().Add(writeWait))
		return ErrSiteNotAllowed
	}

	c := &connection{ws: ws, send: make(chan []byte, sendBufferSize)}

	hub.register(sub.SiteID, c)
	defer hub.unregister(sub.SiteID, c)

	go c.writePump()

	ws.SetPongHandler(func(string) error {
		ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		// Observers only listen after the handshake; inbound frames are
		// drained to service the connection.
		_, _, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("realtime connection closed unexpectedly", "err", err.Error())
			}
			return nil
		}
	}
}

func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
