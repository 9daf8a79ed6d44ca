package ws

import (
	"net/http"
	"net/url"
	"os"
	"strings"
)

func CheckOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	// Explicit opt-out for development setups.
	if strings.EqualFold(os.Getenv("HYPERBRIDGE_WS_DISABLE_ORIGIN"), "true") {
		return true
	}
	if origin == "" {
		// Device agents and render sinks connect without a browser origin.
		return true
	}
	host := r.Host
	originUrl, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return originUrl.Host == host
}
