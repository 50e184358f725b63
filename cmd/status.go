package cmd

import (
	"OctoUptime/internal/utils/daemon"
	"fmt"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the status of the uptime service",
	Long:  `Check if the uptime service daemon is currently running.`,
	Run: func(cmd *cobra.Command, args []string) {
		running, pid := daemon.GetStatus(pidFile)
		if running {
			fmt.Printf("Uptime service is running (PID: %d)\n", pid)
		} else {
			fmt.Println("Uptime service is not running")
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
