package admin

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/D4vidDf/HyperBridge/api"
	"github.com/D4vidDf/HyperBridge/theme"
)

var repo *theme.Repository

// SetRepository wires the theme repository the admin endpoints manage.
func SetRepository(r *theme.Repository) {
	repo = r
}

// UploadTheme installs a theme package uploaded as the request body.
func UploadTheme(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil || len(data) == 0 {
		api.RespondError(c, http.StatusBadRequest, "please select a theme file to upload")
		return
	}

	id, err := repo.InstallTheme(data)
	if err != nil {
		api.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	api.RespondSuccessMessage(c, "theme installed", gin.H{"id": id})
}

// ListThemes lists all installed themes.
func ListThemes(c *gin.Context) {
	themes := repo.AvailableThemes()
	if themes == nil {
		themes = []theme.HyperTheme{}
	}
	api.RespondSuccess(c, themes)
}

// SetTheme activates a theme. An empty id resets to the system default.
func SetTheme(c *gin.Context) {
	id := c.Query("id")

	if err := repo.ActivateTheme(id); err != nil {
		if errors.Is(err, theme.ErrThemeNotFound) {
			api.RespondError(c, http.StatusNotFound, "theme does not exist")
			return
		}
		api.RespondError(c, http.StatusInternalServerError, "failed to activate theme: "+err.Error())
		return
	}

	api.RespondSuccessMessage(c, "theme activated", gin.H{"id": id})
}

// DeleteTheme removes an installed theme.
func DeleteTheme(c *gin.Context) {
	var req struct {
		ID string `json:"id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := repo.DeleteTheme(req.ID); err != nil {
		if errors.Is(err, theme.ErrThemeNotFound) {
			api.RespondError(c, http.StatusNotFound, "theme does not exist")
			return
		}
		api.RespondError(c, http.StatusInternalServerError, "failed to delete theme: "+err.Error())
		return
	}

	api.RespondSuccessMessage(c, "theme deleted", nil)
}

// ExportTheme serves an installed theme re-packed as a shareable archive.
func ExportTheme(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		api.RespondError(c, http.StatusBadRequest, "theme id is required")
		return
	}

	data, err := repo.ExportTheme(id)
	if err != nil {
		if errors.Is(err, theme.ErrThemeNotFound) {
			api.RespondError(c, http.StatusNotFound, "theme does not exist")
			return
		}
		api.RespondError(c, http.StatusInternalServerError, "failed to export theme: "+err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id+".zip"))
	c.Data(http.StatusOK, "application/zip", data)
}

// UpdateTheme re-downloads a theme from its provider URL and reinstalls it.
func UpdateTheme(c *gin.Context) {
	var req struct {
		ID  string `json:"id" binding:"required"`
		URL string `json:"url"` // optional replacement URL
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	var current *theme.HyperTheme
	for _, t := range repo.AvailableThemes() {
		if t.ID == req.ID {
			doc := t
			current = &doc
			break
		}
	}
	if current == nil {
		api.RespondError(c, http.StatusNotFound, "theme does not exist")
		return
	}

	var data []byte
	var err error
	if current.Meta.ProviderURL != "" {
		data, err = downloadThemeFromURL(current.Meta.ProviderURL)
	}
	if len(data) == 0 && req.URL != "" {
		data, err = downloadThemeFromURL(req.URL)
	}
	if len(data) == 0 {
		msg := "theme has no provider URL; supply a new one"
		if err != nil {
			msg = "failed to download theme: " + err.Error()
		}
		api.RespondError(c, http.StatusBadRequest, msg)
		return
	}

	id, err := repo.InstallTheme(data)
	if err != nil {
		api.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	api.RespondSuccessMessage(c, "theme updated", gin.H{"id": id})
}

// downloadThemeFromURL fetches a theme archive from a provider URL.
func downloadThemeFromURL(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("download theme: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download theme: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read theme download: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("downloaded theme file is empty")
	}
	return data, nil
}
