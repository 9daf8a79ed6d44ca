package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/D4vidDf/HyperBridge/api"
	"github.com/D4vidDf/HyperBridge/database/settings"
)

// GetSettings returns the global configuration row.
func GetSettings(c *gin.Context) {
	s, err := settings.Get()
	if err != nil {
		api.RespondError(c, http.StatusInternalServerError, "failed to load settings: "+err.Error())
		return
	}
	api.RespondSuccess(c, s)
}

// EditSettings applies a partial update to the global configuration and
// notifies subscribers.
func EditSettings(c *gin.Context) {
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	// The row id and timestamps are managed by the store.
	delete(req, "id")
	delete(req, "CreatedAt")
	delete(req, "UpdatedAt")

	if err := settings.Update(req); err != nil {
		api.RespondError(c, http.StatusInternalServerError, "failed to update settings: "+err.Error())
		return
	}

	api.RespondSuccessMessage(c, "settings updated", nil)
}
