package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/D4vidDf/HyperBridge/cmd/flags"
)

var RootCmd = &cobra.Command{
	Use:   "hyperbridge",
	Short: "HyperBridge bridges platform notifications onto the island surface",
	Long: `HyperBridge receives raw platform notifications from a device agent,
re-renders them through the active theme into island payloads and streams
those payloads to connected render sinks.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetArgs([]string{"server"})
		cmd.Execute()
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&flags.DatabaseFile, "database", "d", "hyperbridge.db", "Database file")
	RootCmd.PersistentFlags().StringVarP(&flags.Listen, "listen", "l", "0.0.0.0:5000", "Listen address")
	RootCmd.PersistentFlags().StringVar(&flags.DataDir, "data-dir", "./data", "Data directory for theme storage")
	RootCmd.PersistentFlags().StringVar(&flags.DatabaseType, "database-type", "sqlite", "Database type: sqlite or mysql")
	RootCmd.PersistentFlags().StringVar(&flags.DatabaseHost, "database-host", "localhost", "MySQL host")
	RootCmd.PersistentFlags().StringVar(&flags.DatabasePort, "database-port", "3306", "MySQL port")
	RootCmd.PersistentFlags().StringVar(&flags.DatabaseUser, "database-user", "root", "MySQL user")
	RootCmd.PersistentFlags().StringVar(&flags.DatabasePass, "database-pass", "", "MySQL password")
	RootCmd.PersistentFlags().StringVar(&flags.DatabaseName, "database-name", "hyperbridge", "MySQL database name")
}
