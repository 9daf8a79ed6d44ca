package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/D4vidDf/HyperBridge/api"
	"github.com/D4vidDf/HyperBridge/database/models"
	"github.com/D4vidDf/HyperBridge/database/settings"
)

// ListApps lists every package with an override row.
func ListApps(c *gin.Context) {
	apps, err := settings.ListApps()
	if err != nil {
		api.RespondError(c, http.StatusInternalServerError, "failed to list apps: "+err.Error())
		return
	}
	if apps == nil {
		apps = []models.AppSetting{}
	}
	api.RespondSuccess(c, apps)
}

// GetApp returns the raw override row plus the effective resolved values for
// one package.
func GetApp(c *gin.Context) {
	pkg := c.Query("package")
	if pkg == "" {
		api.RespondError(c, http.StatusBadRequest, "package is required")
		return
	}

	app, err := settings.GetApp(pkg)
	if err != nil {
		api.RespondError(c, http.StatusInternalServerError, "failed to load app settings: "+err.Error())
		return
	}

	left, right := settings.EffectiveNavLayout(pkg)
	api.RespondSuccess(c, gin.H{
		"app":       app,
		"effective": settings.EffectiveIslandConfig(pkg),
		"nav_left":  left,
		"nav_right": right,
		"allowed":   settings.IsPackageAllowed(pkg),
	})
}

// EditApp upserts the override row for one package.
func EditApp(c *gin.Context) {
	var req models.AppSetting
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if req.PackageName == "" {
		api.RespondError(c, http.StatusBadRequest, "package_name is required")
		return
	}

	if err := settings.SaveApp(req); err != nil {
		api.RespondError(c, http.StatusInternalServerError, "failed to save app settings: "+err.Error())
		return
	}

	api.RespondSuccessMessage(c, "app settings saved", nil)
}

// RemoveApp deletes the override row for one package.
func RemoveApp(c *gin.Context) {
	var req struct {
		PackageName string `json:"package_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := settings.DeleteApp(req.PackageName); err != nil {
		api.RespondError(c, http.StatusInternalServerError, "failed to remove app settings: "+err.Error())
		return
	}

	api.RespondSuccessMessage(c, "app settings removed", nil)
}

// ToggleApp enables or disables bridging for a package.
func ToggleApp(c *gin.Context) {
	var req struct {
		PackageName string `json:"package_name" binding:"required"`
		Enabled     *bool  `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := settings.ToggleApp(req.PackageName, *req.Enabled); err != nil {
		api.RespondError(c, http.StatusInternalServerError, "failed to toggle app: "+err.Error())
		return
	}

	api.RespondSuccessMessage(c, "app toggled", nil)
}
