package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/harlequix/hamming/backends"
	"github.com/harlequix/hamming/channel"
	"github.com/harlequix/hamming/config"
	"github.com/harlequix/hamming/encoding"
	"github.com/harlequix/hamming/framing"
	log "github.com/harlequix/hamming/log"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var (
	receiveCount   int
	receiveText    bool
	receiveMetrics string
)

var receiveCmd = &cobra.Command{
	Use:   "receive [addr]",
	Short: "Receive encoded messages over QUIC",
	Long: `Receive listens for senders, passes every codeword through the simulated
erasure channel, decodes it and tells the sender whether the decoded message
matches its digest.`,
	Args:   cobra.MaximumNArgs(1),
	PreRun: bindChannelFlags,
	RunE:   receive,
}

func init() {
	flags := receiveCmd.Flags()
	flags.IntVar(&receiveCount, "count", 1, "number of messages to receive, 0 for no limit")
	flags.BoolVar(&receiveText, "text", false, "print decoded messages as text")
	flags.StringVar(&receiveMetrics, "metrics-addr", "", "serve prometheus metrics on this address")
	flags.Float64("erasure", 0.1, "probability that a received symbol is erased")
	flags.Float64("flip", 0, "probability that a received symbol is flipped")
	flags.Int64("seed", 0, "random seed, 0 picks one from the clock")
	rootCmd.AddCommand(receiveCmd)
}

func receive(cmd *cobra.Command, args []string) error {
	logger := log.NewLogger("Receiver")
	addr := ""
	if len(args) > 0 {
		addr = args[0]
	}
	bcfg, err := backendConfig(addr)
	if err != nil {
		return err
	}
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

	var metrics *framing.Metrics
	if receiveMetrics != "" {
		registry := prometheus.NewRegistry()
		metrics = framing.NewMetrics(registry, "hamming", "receiver")
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
			if err := http.ListenAndServe(receiveMetrics, mux); err != nil {
				logger.WithError(err).Error("metrics server stopped")
			}
		}()
	}

	receiver, err := backends.NewNativeBackend(bcfg).Listen()
	if err != nil {
		return err
	}
	defer receiver.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "listening on %s\n", receiver.Addr())
	return serve(commandContext(cmd), out, receiver, ch, metrics)
}

type messageReceiver interface {
	Receive(ctx context.Context, ch framing.Transmitter, metrics *framing.Metrics) (*framing.Report, error)
}

// serve prints one line per received message until --count messages arrived,
// ctx is cancelled or the listener fails.
func serve(ctx context.Context, out io.Writer, receiver messageReceiver, ch framing.Transmitter, metrics *framing.Metrics) error {
	logger := log.NewLogger("Receiver")
	for n := 0; receiveCount == 0 || n < receiveCount; n++ {
		report, err := receiver.Receive(ctx, ch, metrics)
		if ctx.Err() != nil {
			return nil
		}
		if errors.Is(err, backends.ErrAccept) {
			return err
		}
		if report == nil {
			logger.WithError(err).Warn("receive failed")
			continue
		}
		decoded := report.Decoded
		if receiveText {
			decoded = encoding.BitsToText(decoded)
		}
		status := "ok"
		if err != nil {
			status = "mismatch"
			logger.WithError(err).Warn("message not recovered")
		}
		fmt.Fprintf(out, "%s (%s, %d/%d blocks unresolved)\n", decoded, status, report.Unresolved(), len(report.Results))
	}
	return nil
}
