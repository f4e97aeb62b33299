package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harlequix/hamming/config"
	log "github.com/harlequix/hamming/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var stopProfile interface{ Stop() }

var rootCmd = &cobra.Command{
	Use:   "hamming",
	Short: "Hamming(7,4) codec for binary erasure channels",
	Long: `hamming encodes binary messages into Hamming(7,4) codewords and decodes
received codewords in which some symbols were erased ('?') or flipped.

Codewords can be checked locally, pushed through a simulated erasure
channel, or sent to a receiver over QUIC.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	flags.String("trace", "", "write trace and warn logs as JSON to <path>.trace and <path>.warn")
	flags.String("profile", "", "write a CPU profile into this directory")
	viper.BindPFlag("LogLevel", flags.Lookup("log-level"))
	viper.BindPFlag("TraceFile", flags.Lookup("trace"))
	viper.BindPFlag("Profile", flags.Lookup("profile"))
}

func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		<-signals
		cancel()
	}()
	if err := run(ctx); err != nil {
		os.Exit(1)
	}
}

// run executes the command line. Post-run hooks are skipped when a command
// fails, so the profile is stopped here.
func run(ctx context.Context) error {
	defer teardown()
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, args []string) error {
	if err := config.SetConfig(cfgFile); err != nil {
		return err
	}
	cfg, err := config.Get()
	if err != nil {
		return err
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.TraceFile != "" {
		log.AddTracer(cfg.TraceFile)
	}
	if cfg.Profile != "" {
		stopProfile = profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.Profile), profile.Quiet)
	}
	return nil
}

func teardown() {
	if stopProfile != nil {
		stopProfile.Stop()
		stopProfile = nil
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
