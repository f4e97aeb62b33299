package cmd

import (
	"fmt"

	"github.com/harlequix/hamming/backends"
	"github.com/harlequix/hamming/config"
	"github.com/harlequix/hamming/encoding"
	"github.com/spf13/cobra"
)

var sendText bool

var sendCmd = &cobra.Command{
	Use:   "send <addr> <bits>",
	Short: "Send an encoded message to a receiver over QUIC",
	Args:  cobra.ExactArgs(2),
	RunE:  send,
}

func init() {
	sendCmd.Flags().BoolVar(&sendText, "text", false, "send the bytes of the argument instead of a bit string")
	rootCmd.AddCommand(sendCmd)
}

func backendConfig(addr string) (backends.Config, error) {
	var bcfg backends.Config
	cfg, err := config.Get()
	if err != nil {
		return bcfg, err
	}
	if err := config.Derive(&bcfg, cfg); err != nil {
		return bcfg, err
	}
	if addr != "" {
		bcfg.Address = addr
	}
	return bcfg, nil
}

func send(cmd *cobra.Command, args []string) error {
	bcfg, err := backendConfig(args[0])
	if err != nil {
		return err
	}
	message := args[1]
	if sendText {
		message = encoding.TextToBits(message)
	}
	reply, err := backends.NewNativeBackend(bcfg).Send(commandContext(cmd), message)
	if reply != "" {
		fmt.Fprintln(cmd.OutOrStdout(), reply)
	}
	return err
}
