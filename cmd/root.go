package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/relloyd/mtgpipe/actions"
	"github.com/relloyd/mtgpipe/config"
	"github.com/relloyd/mtgpipe/constants"
	"github.com/relloyd/mtgpipe/logger"
	"github.com/spf13/cobra"
)

var (
	// Default values may be set at compile time.
	version          = "0.1.0"
	buildDate        = "2024-01-02T03:04+0000"
	stackDumpOnPanic bool
	overrides        config.Overrides
)

var rootCmd = &cobra.Command{
	Use:   constants.ServiceName,
	Short: "Import MTGJSON card data into a database table",
	Long: `mtgpipe downloads the MTGJSON AllPrintings archive, flattens every card into a row
and upserts the rows into a database table in batches, keyed by card uuid.
Run it with no arguments to import using settings from the environment, the optional
config file and the flags below.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runImport,
}

func init() {
	// General setup.
	cobra.EnableCommandSorting = false
	// Global flags.
	switches.addFlag(rootCmd.PersistentFlags(), &overrides.LogLevel, "log-level")
	switches.addFlag(rootCmd.PersistentFlags(), &overrides.ConfigFile, "config-file")
	rootCmd.PersistentFlags().BoolVar(&stackDumpOnPanic, "print-stack", false, "Print a stack dump if there is a panic")
	_ = rootCmd.PersistentFlags().MarkHidden("print-stack")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Execute() prints the error.
		os.Exit(1)
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(overrides)
	if err != nil {
		return err
	}
	log := logger.NewLogger(constants.ServiceName, cfg.LogLevel, stackDumpOnPanic)
	if cfg.ConfigFile != "" {
		log.Debug("Loaded config file ", cfg.ConfigFile)
	}
	if cfg.LambdaMode { // if we should handle lambda execution...
		startLambda(log, cfg)
		return nil
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	_, err = actions.RunImport(ctx, log, &actions.ImportConfig{Config: cfg, Out: cmd.OutOrStdout()})
	if err != nil {
		log.Error(constants.EmojiBang, " import failed: ", err)
	}
	return err
}
