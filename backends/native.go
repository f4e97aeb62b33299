package backends

import (
	"bufio"
	"context"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	log "github.com/harlequix/hamming/log"
	"github.com/harlequix/hamming/framing"
	prot "github.com/harlequix/hamming/protocol"
	quic "github.com/lucas-clemente/quic-go"
	"github.com/pkg/errors"
)

var (
	ErrDigestMismatch = errors.New("decoded message does not match digest")
	// ErrAccept marks failures of the listener itself, after which no further
	// session can be received.
	ErrAccept = errors.New("accepting session")
)

const (
	replyOK       = "ok"
	replyMismatch = "mismatch"
	replyError    = "error"
)

type Config struct {
	Address          string
	Secret           string
	HandshakeTimeout time.Duration
	IdleTimeout      time.Duration
	Protocols        []string
}

var logger *log.Logger

func init() {
	logger = log.NewLogger("BackendNative")
}

// NativeBackend carries codewords over a single QUIC stream. The sender
// writes a header line "<bits> <digest>" followed by the codeword line and
// waits for a one line verdict from the receiver.
type NativeBackend struct {
	config    Config
	tlsconfig *tls.Config
	quic      *quic.Config
}

func NewNativeBackend(config Config) *NativeBackend {
	tlsConf := &tls.Config{
		InsecureSkipVerify: true,
		NextProtos:         config.Protocols,
	}
	logger.WithField("address", config.Address).WithField("protocols", config.Protocols).Info("creating new Backend")
	return &NativeBackend{
		config:    config,
		tlsconfig: tlsConf,
		quic: &quic.Config{
			HandshakeIdleTimeout: config.HandshakeTimeout,
			KeepAlive:            true,
			MaxIdleTimeout:       config.IdleTimeout,
		},
	}
}

// Send encodes message, transmits the codeword and returns the receiver's
// verdict.
func (b *NativeBackend) Send(ctx context.Context, message string) (string, error) {
	bits, err := prot.ParseBits(message)
	if err != nil {
		return "", err
	}
	codeword := prot.Format(framing.EncodeMessage(bits))
	digest := Digest(b.config.Secret, message)
	cid := prot.NewCID(digest)

	newGen := quic.GenConnectionID(cid.Bytes())
	session, err := quic.DialAddr(b.config.Address, b.tlsconfig, b.quic, newGen)
	if err != nil {
		return "", errors.Wrapf(err, "dialing %s", b.config.Address)
	}
	defer session.CloseWithError(0, "")

	stream, err := session.OpenStreamSync(ctx)
	if err != nil {
		return "", errors.Wrap(err, "opening stream")
	}
	defer stream.Close()

	if _, err := fmt.Fprintf(stream, "%d %s\n%s\n", len(bits), hex.EncodeToString(digest), codeword); err != nil {
		return "", errors.Wrap(err, "writing codeword")
	}
	logger.WithField("CID", cid.String()).WithField("symbols", len(codeword)).Debug("codeword sent")

	reply, err := bufio.NewReader(stream).ReadString('\n')
	if err != nil {
		return "", errors.Wrap(err, "reading verdict")
	}
	reply = strings.TrimSpace(reply)
	if reply != replyOK {
		return reply, errors.Wrapf(ErrDigestMismatch, "receiver replied %q", reply)
	}
	return reply, nil
}

type Receiver struct {
	backend  *NativeBackend
	listener quic.Listener
}

func (b *NativeBackend) Listen() (*Receiver, error) {
	tlsConf, err := generateTLSConfig(b.config.Protocols)
	if err != nil {
		return nil, err
	}
	listener, err := quic.ListenAddr(b.config.Address, tlsConf, b.quic)
	if err != nil {
		return nil, errors.Wrapf(err, "listening on %s", b.config.Address)
	}
	return &Receiver{
		backend:  b,
		listener: listener,
	}, nil
}

func (r *Receiver) Addr() string {
	return r.listener.Addr().String()
}

func (r *Receiver) Close() error {
	return r.listener.Close()
}

// Receive accepts one session, passes the codeword through ch, decodes it
// and checks the result against the sender's digest.
func (r *Receiver) Receive(ctx context.Context, ch framing.Transmitter, metrics *framing.Metrics) (*framing.Report, error) {
	session, err := r.listener.Accept(ctx)
	if err != nil {
		return nil, errors.WithMessage(ErrAccept, err.Error())
	}
	stream, err := session.AcceptStream(ctx)
	if err != nil {
		session.CloseWithError(0, "")
		return nil, errors.Wrap(err, "accepting stream")
	}

	report, digest, err := r.read(bufio.NewReader(stream), ch, metrics)
	reply := replyOK
	switch {
	case err != nil:
		reply = replyError + " " + err.Error()
	case !VerifyDigest(r.backend.config.Secret, report.Decoded, digest):
		reply = replyMismatch + " " + report.Decoded
		err = errors.Wrapf(ErrDigestMismatch, "%d of %d blocks unresolved", report.Unresolved(), len(report.Results))
	default:
		report.Message = report.Decoded
		report.OK = true
	}
	fmt.Fprintf(stream, "%s\n", reply)
	stream.Close()

	// the sender closes the session once it has read the verdict
	select {
	case <-session.Context().Done():
	case <-ctx.Done():
		session.CloseWithError(0, "")
	}
	return report, err
}

func (r *Receiver) read(reader *bufio.Reader, ch framing.Transmitter, metrics *framing.Metrics) (*framing.Report, string, error) {
	header, err := reader.ReadString('\n')
	if err != nil {
		return nil, "", errors.Wrap(err, "reading header")
	}
	var length int
	var digest string
	header = strings.TrimSpace(header)
	if _, err := fmt.Sscanf(header, "%d %s", &length, &digest); err != nil {
		return nil, "", errors.Wrapf(err, "parsing header %q", header)
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return nil, "", errors.Wrap(err, "reading codeword")
	}
	codeword := strings.TrimSpace(line)
	sent, err := prot.ParseSymbols(codeword)
	if err != nil {
		return nil, "", err
	}
	received := ch.Transmit(sent)
	logger.WithField("bits", length).WithField("erased", prot.CountErased(received)).Debug("codeword received")

	report, err := framing.Finish("", length, codeword, received, metrics)
	if err != nil {
		return nil, "", err
	}
	return report, digest, nil
}
