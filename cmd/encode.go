package cmd

import (
	"fmt"

	"github.com/harlequix/hamming/encoding"
	"github.com/harlequix/hamming/framing"
	"github.com/spf13/cobra"
)

var encodeText bool

var encodeCmd = &cobra.Command{
	Use:   "encode <bits>",
	Short: "Encode a binary message into codewords",
	Long: `Encode splits the message into groups of four bits, zero-pads the last
group and prints the concatenated 7-bit codewords.`,
	Args: cobra.ExactArgs(1),
	RunE: encode,
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeText, "text", false, "encode the bytes of the argument instead of a bit string")
	rootCmd.AddCommand(encodeCmd)
}

func encode(cmd *cobra.Command, args []string) error {
	message := args[0]
	if encodeText {
		message = encoding.TextToBits(message)
	}
	codeword, err := framing.Encode(message)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), codeword)
	return nil
}
