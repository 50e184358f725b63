package cmd

import (
	"OctoUptime/internal/utils/daemon"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the uptime service",
	Long:  `Stop the running uptime service daemon.`,
	Run: func(cmd *cobra.Command, args []string) {
		pid, err := daemon.StopProcess(pidFile)
		if err != nil {
			fmt.Printf("Failed to stop uptime service: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Uptime service (PID: %d) has been stopped\n", pid)
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
