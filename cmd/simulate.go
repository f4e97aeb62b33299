package cmd

import (
	"fmt"

	"github.com/harlequix/hamming/channel"
	"github.com/harlequix/hamming/config"
	"github.com/harlequix/hamming/encoding"
	"github.com/harlequix/hamming/framing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	simulateRandom  int
	simulateText    bool
	simulateVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [bits]",
	Short: "Send a message through a simulated erasure channel",
	Long: `Simulate encodes the message, erases (and optionally flips) symbols at
random, decodes what arrives and reports whether the message survived.
Without an argument a random message of --random bits is used.`,
	Args:   cobra.MaximumNArgs(1),
	PreRun: bindChannelFlags,
	RunE:   simulate,
}

func init() {
	flags := simulateCmd.Flags()
	flags.IntVar(&simulateRandom, "random", 16, "length of the random message")
	flags.BoolVar(&simulateText, "text", false, "treat the argument as text")
	flags.BoolVarP(&simulateVerbose, "verbose", "v", false, "print the outcome of every block")
	flags.Float64("erasure", 0.1, "probability that a symbol is erased")
	flags.Float64("flip", 0, "probability that a symbol is flipped")
	flags.Int64("seed", 0, "random seed, 0 picks one from the clock")
	rootCmd.AddCommand(simulateCmd)
}

// bindChannelFlags runs per command since simulate and receive share keys.
func bindChannelFlags(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()
	for key, name := range map[string]string{
		"ErasureProbability": "erasure",
		"FlipProbability":    "flip",
		"Seed":               "seed",
	} {
		if flag := flags.Lookup(name); flag != nil {
			viper.BindPFlag(key, flag)
		}
	}
}

func simulate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Get()
	if err != nil {
		return err
	}
	var chConfig channel.Config
	if err := config.Derive(&chConfig, cfg); err != nil {
		return err
	}
	ch, err := channel.New(chConfig)
	if err != nil {
		return err
	}

	var message string
	switch {
	case len(args) == 0:
		message = channel.RandomBits(ch.Rand(), simulateRandom)
	case simulateText:
		message = encoding.TextToBits(args[0])
	default:
		message = args[0]
	}

	report, err := framing.RoundTrip(message, ch, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "message:  %s\n", report.Message)
	fmt.Fprintf(out, "codeword: %s\n", report.Codeword)
	fmt.Fprintf(out, "received: %s\n", report.Received)
	fmt.Fprintf(out, "decoded:  %s\n", report.Decoded)
	if simulateVerbose {
		printResults(cmd, report.Results)
	}
	stats := ch.Stats()
	fmt.Fprintf(out, "erased %d/%d symbols, flipped %d, unresolved blocks %d/%d\n",
		stats.Erased, stats.Symbols, stats.Flipped, report.Unresolved(), len(report.Results))
	if report.OK {
		fmt.Fprintln(out, "status: ok")
	} else {
		fmt.Fprintln(out, "status: mismatch")
	}
	return nil
}
