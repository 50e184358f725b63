package cmd

import (
	"fmt"
	"os"

	"OctoUptime/internal/startup"

	"github.com/spf13/cobra"
)

var (
	configPath string
	pidFile    = "/var/run/octo_uptime.pid"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "octo_uptime",
	Short: "System and process uptime service",
	Long: `OctoUptime reports how long the host and the service have been running.
It serves the uptime over HTTP and pushes it to navbar clients over WebSocket.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Initialize default logger for early startup
	startup.SetupDefaultLogger()

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "conf/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&pidFile, "pid-file", pidFile, "Path to the PID file")
}
