package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/D4vidDf/HyperBridge/common"
	"github.com/D4vidDf/HyperBridge/translator"
	"github.com/D4vidDf/HyperBridge/ws"
)

var pipeline *translator.Pipeline

// SetPipeline wires the translation pipeline the ingest endpoint drives.
func SetPipeline(p *translator.Pipeline) {
	pipeline = p
}

// Notify ingests one raw notification from the device agent, translates it
// and fans the payload out to every connected render sink.
func Notify(c *gin.Context) {
	if pipeline == nil {
		RespondError(c, http.StatusServiceUnavailable, "translation pipeline not ready")
		return
	}

	var n common.RawNotification
	if err := c.ShouldBindJSON(&n); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid notification payload: "+err.Error())
		return
	}
	if n.PackageName == "" {
		RespondError(c, http.StatusBadRequest, "package_name is required")
		return
	}

	payload := pipeline.Translate(&n)
	if payload == nil {
		RespondSuccessMessage(c, "notification suppressed", nil)
		return
	}

	ws.Broadcast(payload)
	RespondSuccess(c, payload)
}

// Dismiss tells connected sinks that a notification was removed before its
// island expired. In-flight translations for the key are simply abandoned;
// only complete payloads ever reach a sink.
func Dismiss(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		RespondError(c, http.StatusBadRequest, "key is required")
		return
	}
	ws.BroadcastDismiss(key)
	RespondSuccessMessage(c, "dismissed", nil)
}
