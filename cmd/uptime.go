package cmd

import (
	"OctoUptime/internal/monitoring/uptime"
	"OctoUptime/internal/pkg/config"
	"OctoUptime/internal/pkg/i18n"
	"OctoUptime/internal/utils/finder"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	uptimeFormat string
	uptimeJSON   bool
	uptimeLang   string
)

// uptimeCmd prints the current uptime once without starting the service
var uptimeCmd = &cobra.Command{
	Use:   "uptime",
	Short: "Print the system uptime",
	Long: `Resolve the system uptime with the configured sources and print it.
Formats: full, dhm, dh, d. With --json the complete API payload is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printUptime(cmd.Context(), cmd.OutOrStdout())
	},
}

func printUptime(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.GetDefaultConfig()
	if path, err := finder.FindConfigFile(configPath, true); err == nil {
		if cfg, err = config.LoadConfig(path); err != nil {
			return err
		}
	}

	settings := cfg.Plugin.Uptime
	if uptimeFormat != "" {
		if !uptime.DisplayFormat(uptimeFormat).Valid() {
			return fmt.Errorf("unknown format %q (want full, dhm, dh or d)", uptimeFormat)
		}
		settings.DisplayFormat = uptimeFormat
	}

	l := i18n.New(uptimeLang, os.Getenv("LANG"))
	reporter := uptime.NewReporter(uptime.NewResolver(cfg.Uptime), uptime.NewProcessReader())
	payload := reporter.Build(ctx, settings, uptime.Messages{
		Unknown: l.T(i18n.MsgUnknown),
		Note:    l.T(i18n.MsgUptimeNote),
	})

	if uptimeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	fmt.Fprintf(out, "%s (source: %s)\n", payload.Select(uptime.DisplayFormat(payload.DisplayFormat)), payload.UptimeSource)
	return nil
}

func init() {
	rootCmd.AddCommand(uptimeCmd)
	uptimeCmd.Flags().StringVarP(&uptimeFormat, "format", "F", "", "Display format: full, dhm, dh or d")
	uptimeCmd.Flags().BoolVar(&uptimeJSON, "json", false, "Print the full payload as JSON")
	uptimeCmd.Flags().StringVar(&uptimeLang, "lang", "", "Language for placeholders, e.g. de")
}
