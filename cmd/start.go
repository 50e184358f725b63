package cmd

import (
	"OctoUptime/internal/pkg/logger"
	"OctoUptime/internal/startup"
	"OctoUptime/internal/utils/daemon"
	"OctoUptime/internal/utils/signal"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	foreground bool
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the uptime service",
	Long:  `Start the uptime service in foreground or as a daemon.`,
	Run: func(cmd *cobra.Command, args []string) {
		if daemon.IsRunning(pidFile) {
			fmt.Printf("Uptime service is already running (PID file exists at %s)\n", pidFile)
			os.Exit(1)
		}

		isChild := daemon.IsChild()

		// If not in foreground mode and not already a child process, daemonize
		if !foreground && !isChild {
			daemon.Daemonize(configPath, pidFile)
			return
		}

		application := startup.InitializeApplication(configPath)
		builder := startup.StartServer(application)

		if isChild {
			if err := daemon.WritePIDFile(pidFile); err != nil {
				logger.Error("Failed to write PID file", logger.Err(err))
			}
			signal.RegisterCleanupFunc(func() {
				daemon.RemovePIDFile(pidFile)
			})
		}

		signal.HandleSignals(application, builder)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().BoolVarP(&foreground, "foreground", "f", false, "Run in foreground (not as daemon)")
}
