package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kerbaras/scriptures/pkg/app"
	"github.com/kerbaras/scriptures/pkg/config"
	"github.com/kerbaras/scriptures/pkg/logging"
	"github.com/kerbaras/scriptures/pkg/services"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "scriptures [hash]",
	Short: "Read the standard works in your terminal",
	Long: "Browse volumes, books and chapters of the scriptures with the places they mention.\n" +
		"An optional hash such as 0:101:12 opens that location directly.",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, cleanup, err := newController()
		if err != nil {
			return err
		}
		defer cleanup()

		startHash := ""
		if len(args) == 1 {
			startHash = args[0]
		}

		return app.NewApp(ctrl, startHash).Run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".scriptures.yml", "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(volumesCmd)
	rootCmd.AddCommand(booksCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(historyCmd)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newController loads the configuration and logger and opens the store.
// cleanup flushes the log and closes the store.
func newController() (*services.Controller, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log, err := logging.New(cfg.LogFile, level)
	if err != nil {
		return nil, nil, err
	}

	ctrl, err := services.NewController(cfg, log)
	if err != nil {
		log.Error("startup failed", zap.Error(err))
		_ = log.Sync()
		return nil, nil, err
	}

	return ctrl, func() {
		if err := ctrl.Close(); err != nil {
			log.Warn("failed to close store", zap.Error(err))
		}
		_ = log.Sync()
	}, nil
}

// bootstrap is newController followed by loading the reference tables.
func bootstrap(cmd *cobra.Command) (*services.Controller, func(), error) {
	ctrl, cleanup, err := newController()
	if err != nil {
		return nil, nil, err
	}
	if _, err := ctrl.Bootstrap(cmd.Context()); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("could not load the scriptures: %w", err)
	}
	return ctrl, cleanup, nil
}

func truncateString(s string, maxLen int) string {
	if len([]rune(s)) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen-1]) + "…"
}
