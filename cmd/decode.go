package cmd

import (
	"fmt"

	"github.com/harlequix/hamming/config"
	"github.com/harlequix/hamming/encoding"
	"github.com/harlequix/hamming/framing"
	prot "github.com/harlequix/hamming/protocol"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	decodeLength  int
	decodeExpect  string
	decodeText    bool
	decodeVerbose bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode <symbols>",
	Short: "Decode received codewords over {0,1,?}",
	Long: `Decode corrects single flipped bits, resolves erased symbols ('?') and
prints the data bits. Symbols that cannot be resolved stay '?'.

The input must be a positive multiple of 7 symbols long. Padding is kept
unless --length or --expect tells decode how long the message was.`,
	Args: cobra.ExactArgs(1),
	RunE: decode,
}

func init() {
	flags := decodeCmd.Flags()
	flags.IntVar(&decodeLength, "length", -1, "original message length in bits")
	flags.StringVar(&decodeExpect, "expect", "", "original message to compare against")
	flags.BoolVar(&decodeText, "text", false, "print the decoded bits as text")
	flags.BoolVarP(&decodeVerbose, "verbose", "v", false, "print the outcome of every block")
	flags.Int("workers", 1, "decode blocks on this many goroutines")
	viper.BindPFlag("Workers", flags.Lookup("workers"))
	rootCmd.AddCommand(decodeCmd)
}

func decode(cmd *cobra.Command, args []string) error {
	cfg, err := config.Get()
	if err != nil {
		return err
	}
	symbols, err := prot.ParseSymbols(args[0])
	if err != nil {
		return err
	}

	length := decodeLength
	if decodeExpect != "" {
		length = len(decodeExpect)
		if err := framing.CheckReceived(len(symbols), length); err != nil {
			return err
		}
	}

	var results []encoding.Result
	if cfg.Workers > 1 {
		results, err = framing.DecodeConcurrent(commandContext(cmd), symbols, cfg.Workers)
	} else {
		results, err = framing.DecodeBlocks(symbols)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if decodeVerbose {
		printResults(cmd, results)
	}
	decoded := prot.Format(framing.Truncate(framing.Nibbles(results), length))
	if decodeText {
		fmt.Fprintln(out, encoding.BitsToText(decoded))
	} else {
		fmt.Fprintln(out, decoded)
	}

	if decodeExpect != "" {
		if decoded != decodeExpect {
			return errors.Errorf("mismatch: decoded %s, expected %s", decoded, decodeExpect)
		}
		fmt.Fprintln(out, "ok: message recovered")
	}
	return nil
}

func printResults(cmd *cobra.Command, results []encoding.Result) {
	for i, res := range results {
		line := fmt.Sprintf("block %d: %s -> %s %s", i, res.Received, res.Nibble, res.Status)
		switch res.Status {
		case encoding.Corrected:
			line += fmt.Sprintf(" (position %d)", res.Position)
		case encoding.Unique, encoding.Ambiguous, encoding.NoSolution:
			line += fmt.Sprintf(" (%d erased, %d candidates)", res.Erasures, res.Candidates)
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}
