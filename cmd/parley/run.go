package main

import (
	"context"
	"os"

	"github.com/aretw0/parley/internal/cli"
	"github.com/aretw0/parley/internal/config"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play the sample conversation",
	Long:  `Plays the built-in sample conversation on stdin/stdout. Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, stop := cli.InterruptContext(context.Background())
		defer stop()

		cmd.SilenceUsage = true
		return cli.RunSession(ctx, cfg, cli.Streams{
			In:  os.Stdin,
			Out: os.Stdout,
			Err: os.Stderr,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().Bool("no-banner", false, "Do not print the banner")
	runCmd.Flags().Int("max-attempts", 0, "Invalid selections allowed per choice (0 = unlimited)")
	runCmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :2112")

	// 'run' is the default command.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}

// loadConfig reads the config file and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("json") {
		if v, _ := flags.GetBool("json"); v {
			cfg.Format = config.FormatJSON
		} else {
			cfg.Format = config.FormatText
		}
	}
	if flags.Changed("no-banner") {
		v, _ := flags.GetBool("no-banner")
		cfg.Banner = !v
	}
	if flags.Changed("max-attempts") {
		cfg.MaxAttempts, _ = flags.GetInt("max-attempts")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}

	return cfg, cfg.Validate()
}
