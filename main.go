package main

import (
	"OctoUptime/cmd"
	"OctoUptime/internal/pkg/logger"
)

func main() {
	defer logger.Sync()
	cmd.Execute()
}
