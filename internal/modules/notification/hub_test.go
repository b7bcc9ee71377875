package notification

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialHub spins up a real websocket pair: the server side registers into
// the hub, the returned conn is the client end.
func dialHub(t *testing.T, hub *Hub, userID int64) (*client, *websocket.Conn) {
	t.Helper()

	registered := make(chan *client, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		up := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		registered <- hub.Register(userID, conn)
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	select {
	case cl := <-registered:
		return cl, conn
	case <-time.After(2 * time.Second):
		t.Fatal("server never registered the connection")
		return nil, nil
	}
}

func TestHub_PushesToRegisteredUser(t *testing.T) {
	hub := NewHub()
	_, conn := dialHub(t, hub, 7)

	assert.True(t, hub.IsOnline(7))
	require.True(t, hub.SendToUser(7, map[string]interface{}{"title": "Installment paid"}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg map[string]interface{}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "Installment paid", msg["title"])
}

func TestHub_ConcurrentPushAndPing(t *testing.T) {
	hub := NewHub()
	cl, conn := dialHub(t, hub, 7)

	const pushes = 50

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < pushes; i++ {
			hub.SendToUser(7, map[string]interface{}{"seq": i})
		}
	}()
	// Pings interleave with pushes on the same connection; the client
	// lock must keep both frame streams intact.
	for i := 0; i < pushes; i++ {
		require.NoError(t, cl.ping())
	}
	<-done

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for i := 0; i < pushes; i++ {
		var msg map[string]interface{}
		require.NoError(t, conn.ReadJSON(&msg), "push %d never arrived", i)
	}
}

func TestHub_ReconnectReplacesConnection(t *testing.T) {
	hub := NewHub()
	dialHub(t, hub, 7)
	_, second := dialHub(t, hub, 7)

	require.True(t, hub.SendToUser(7, map[string]interface{}{"title": "hello"}))

	require.NoError(t, second.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg map[string]interface{}
	require.NoError(t, second.ReadJSON(&msg))
	assert.Equal(t, "hello", msg["title"])
}
