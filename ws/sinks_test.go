package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D4vidDf/HyperBridge/common"
)

func newStreamServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/bridge/stream", Stream)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dialSink(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := strings.Replace(srv.URL, "http://", "ws://", 1) + "/api/bridge/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForSinks(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for SinkCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d sinks, have %d", n, SinkCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestBroadcastReachesEverySink(t *testing.T) {
	srv := newStreamServer(t)
	a := dialSink(t, srv)
	b := dialSink(t, srv)
	waitForSinks(t, 2)

	payload := &common.IslandData{
		Params:    common.IslandParams{ID: "bridge_com.example.mail", Title: "Alice"},
		Resources: map[string][]byte{},
	}
	Broadcast(payload)

	for _, conn := range []*websocket.Conn{a, b} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var msg sinkMessage
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, "island", msg.Type)
		assert.Equal(t, "bridge_com.example.mail", msg.Key)
		require.NotNil(t, msg.Payload)
		assert.Equal(t, "Alice", msg.Payload.Params.Title)
	}
}

func TestBroadcastDismiss(t *testing.T) {
	srv := newStreamServer(t)
	conn := dialSink(t, srv)
	waitForSinks(t, 1)

	BroadcastDismiss("0|com.example.mail|1")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg sinkMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "dismiss", msg.Type)
	assert.Equal(t, "0|com.example.mail|1", msg.Key)
	assert.Nil(t, msg.Payload)
}

func TestSinkDeregistersOnClose(t *testing.T) {
	srv := newStreamServer(t)
	conn := dialSink(t, srv)
	waitForSinks(t, 1)

	conn.Close()
	waitForSinks(t, 0)
}

func TestStreamRejectsPlainHTTP(t *testing.T) {
	srv := newStreamServer(t)
	resp, err := http.Get(srv.URL + "/api/bridge/stream")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
