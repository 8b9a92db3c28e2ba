package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
	"github.com/gorilla/websocket"
	"github.com/matryer/is"
)

var testUpgrader = websocket.Upgrader{}

func observerServer(t *testing.T, hub *Hub, actor types.Actor) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()

		Serve(context.Background(), hub, ws, actor)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func waitForObservers(hub *Hub, siteID string, n int) bool {
	deadline := time.Now().Add(2 * time.Second)
	for hub.ObserverCount(siteID) != n {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(10 * time.Millisecond)
	}
	return true
}

func TestSubscribedObserverReceivesSiteBroadcasts(t *testing.T) {
	is := is.New(t)

	hub := NewHub()
	srv := observerServer(t, hub, types.Actor{ID: "u-1", Role: types.RoleTeacher, SiteIDs: []string{"site-1"}})
	conn := dial(t, srv)

	is.NoErr(conn.WriteJSON(map[string]string{"type": "subscribe", "siteId": "site-1"}))
	is.True(waitForObservers(hub, "site-1", 1))

	hub.BroadcastToSite("site-1", "alert:created", map[string]any{"id": "alert-1", "level": "FIRE"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg map[string]any
	is.NoErr(conn.ReadJSON(&msg))
	is.Equal("alert:created", msg["event"])
	is.Equal("alert-1", msg["id"])
}

func TestSubscribeOutsideSiteScopeIsRejected(t *testing.T) {
	is := is.New(t)

	hub := NewHub()
	srv := observerServer(t, hub, types.Actor{ID: "u-1", Role: types.RoleTeacher, SiteIDs: []string{"site-1"}})
	conn := dial(t, srv)

	is.NoErr(conn.WriteJSON(map[string]string{"type": "subscribe", "siteId": "site-2"}))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	is.True(websocket.IsCloseError(err, websocket.ClosePolicyViolation))
	is.Equal(0, hub.ObserverCount("site-2"))
}

func TestBroadcastsDoNotLeakAcrossSites(t *testing.T) {
	is := is.New(t)

	hub := NewHub()
	srv := observerServer(t, hub, types.Actor{ID: "u-1", Role: types.RoleOperator, SiteIDs: []string{"site-1", "site-2"}})
	conn := dial(t, srv)

	is.NoErr(conn.WriteJSON(map[string]string{"type": "subscribe", "siteId": "site-1"}))
	is.True(waitForObservers(hub, "site-1", 1))

	hub.BroadcastToSite("site-2", "lockdown:initiated", map[string]any{"id": "ld-1"})
	hub.BroadcastToSite("site-1", "rollcall:initiated", map[string]any{"id": "rc-1"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg map[string]any
	is.NoErr(conn.ReadJSON(&msg))

	// The first frame delivered must be the one for the subscribed
	// site, not the other site's lockdown.
	is.Equal("rollcall:initiated", msg["event"])
	is.Equal("rc-1", msg["id"])
}

func TestDisconnectedObserverIsUnregistered(t *testing.T) {
	is := is.New(t)

	hub := NewHub()
	srv := observerServer(t, hub, types.Actor{ID: "u-1", Role: types.RoleTeacher, SiteIDs: []string{"site-1"}})
	conn := dial(t, srv)

	is.NoErr(conn.WriteJSON(map[string]string{"type": "subscribe", "siteId": "site-1"}))
	is.True(waitForObservers(hub, "site-1", 1))

	conn.Close()
	is.True(waitForObservers(hub, "site-1", 0))
}

func TestBroadcastWithoutObserversIsHarmless(t *testing.T) {
	hub := NewHub()
	hub.BroadcastToSite("site-1", "alert:created", map[string]any{"id": "alert-1"})
}
