package cmd

import (
	"log"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/D4vidDf/HyperBridge/api"
	"github.com/D4vidDf/HyperBridge/api/admin"
	"github.com/D4vidDf/HyperBridge/cmd/flags"
	"github.com/D4vidDf/HyperBridge/database/settings"
	"github.com/D4vidDf/HyperBridge/theme"
	"github.com/D4vidDf/HyperBridge/translator"
	"github.com/D4vidDf/HyperBridge/ws"
)

var ServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the bridge server",
	Long:  `Start the bridge server`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := settings.Get()
		if err != nil {
			log.Fatalln("Failed to get settings:", err)
		}

		repo := theme.NewRepository(filepath.Join(flags.DataDir, "theme"), settings.ActiveThemeStore{})
		repo.Resync()

		pipeline := translator.NewPipeline(repo)
		api.SetPipeline(pipeline)
		admin.SetRepository(repo)

		settings.Subscribe(func(event settings.Event) {
			if event.Old.ActiveTheme != event.New.ActiveTheme {
				log.Printf("Active theme changed: %q -> %q", event.Old.ActiveTheme, event.New.ActiveTheme)
			}
		})

		r := gin.Default()

		if cfg.AllowCors {
			r.Use(cors.New(cors.Config{
				AllowOrigins:     []string{"*"},
				AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
				AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
				ExposeHeaders:    []string{"Content-Length"},
				AllowCredentials: true,
				MaxAge:           12 * time.Hour,
			}))
		}

		r.Any("/ping", func(c *gin.Context) {
			c.String(200, "pong")
		})

		bridge := r.Group("/api/bridge")
		{
			bridge.POST("/notify", api.Notify)
			bridge.POST("/dismiss", api.Dismiss)
			bridge.GET("/stream", ws.Stream) // websocket
		}

		adminGroup := r.Group("/api/admin")
		{
			// themes
			adminGroup.POST("/theme/upload", admin.UploadTheme)
			adminGroup.GET("/theme/list", admin.ListThemes)
			adminGroup.POST("/theme/set", admin.SetTheme)
			adminGroup.POST("/theme/delete", admin.DeleteTheme)
			adminGroup.GET("/theme/export", admin.ExportTheme)
			adminGroup.POST("/theme/update", admin.UpdateTheme)
			// settings
			adminGroup.GET("/settings", admin.GetSettings)
			adminGroup.POST("/settings", admin.EditSettings)
			// per-app configuration
			adminGroup.GET("/apps", admin.ListApps)
			adminGroup.GET("/app", admin.GetApp)
			adminGroup.POST("/app", admin.EditApp)
			adminGroup.POST("/app/remove", admin.RemoveApp)
			adminGroup.POST("/app/toggle", admin.ToggleApp)
		}

		r.Run(flags.Listen)
	},
}

func init() {
	RootCmd.AddCommand(ServerCmd)
}
