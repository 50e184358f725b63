package signal

import (
	"OctoUptime/internal/api/router"
	"OctoUptime/internal/app"
	"OctoUptime/internal/pkg/logger"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	cleanupMu    sync.Mutex
	cleanupFuncs []func()
)

// RegisterCleanupFunc adds fn to the functions run before the process exits
func RegisterCleanupFunc(fn func()) {
	cleanupMu.Lock()
	defer cleanupMu.Unlock()
	cleanupFuncs = append(cleanupFuncs, fn)
}

func runCleanup() {
	cleanupMu.Lock()
	funcs := cleanupFuncs
	cleanupFuncs = nil
	cleanupMu.Unlock()

	for i := len(funcs) - 1; i >= 0; i-- {
		funcs[i]()
	}
}

// HandleSignals blocks until SIGINT or SIGTERM, reloading settings on SIGHUP
func HandleSignals(application *app.Application, builder *router.Builder) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	for {
		sig := <-sigChan
		switch sig {
		case syscall.SIGINT, syscall.SIGTERM:
			logger.Info("Received termination signal, shutting down...",
				logger.String("signal", sig.String()))

			builder.Shutdown()
			application.Shutdown()
			runCleanup()
			os.Exit(0)
		case syscall.SIGHUP:
			logger.Info("Received SIGHUP signal, reloading settings...")
			if err := application.Reload(); err != nil {
				logger.Warn("Settings reload failed", logger.Err(err))
			}
		}
	}
}
