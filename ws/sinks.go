package ws

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/D4vidDf/HyperBridge/common"
	"github.com/D4vidDf/HyperBridge/utils"
)

// Connected render sinks, keyed by connection id.
var sinks = utils.NewSafeMap[string, *SafeConn]()

// sinkMessage is the envelope every frame pushed to a sink uses.
type sinkMessage struct {
	Type    string             `json:"type"` // "island" or "dismiss"
	Key     string             `json:"key,omitempty"`
	Payload *common.IslandData `json:"payload,omitempty"`
}

// Stream upgrades a render sink connection and keeps it registered until it
// drops. The sink only ever reads; incoming frames are drained and ignored.
func Stream(c *gin.Context) {
	conn, err := UpgradeRequest(c, CheckOrigin)
	if err != nil {
		c.String(400, "websocket upgrade required")
		return
	}

	sc := NewSafeConn(conn)
	sinks.Set(sc.ID, sc)
	log.Printf("Render sink %s connected (%d total)", sc.ID, sinks.Len())

	defer func() {
		sinks.Delete(sc.ID)
		sc.Close()
		log.Printf("Render sink %s disconnected (%d total)", sc.ID, sinks.Len())
	}()

	for {
		if _, _, err := sc.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast pushes a translated island payload to every connected sink.
// A sink whose write fails is dropped.
func Broadcast(payload *common.IslandData) {
	broadcast(sinkMessage{Type: "island", Key: payload.Params.ID, Payload: payload})
}

// BroadcastDismiss tells sinks to tear down the island for a notification key.
func BroadcastDismiss(key string) {
	broadcast(sinkMessage{Type: "dismiss", Key: key})
}

func broadcast(msg sinkMessage) {
	var dead []string
	sinks.Range(func(id string, sc *SafeConn) bool {
		if err := sc.WriteJSON(msg); err != nil {
			dead = append(dead, id)
		}
		return true
	})
	for _, id := range dead {
		if sc, ok := sinks.Get(id); ok {
			sc.Close()
			sinks.Delete(id)
		}
	}
}

// SinkCount reports how many render sinks are connected.
func SinkCount() int {
	return sinks.Len()
}
