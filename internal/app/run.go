package app

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/yellottyellott/chat-parser/internal/title"
	"github.com/yellottyellott/chat-parser/internal/usecase"
)

// Version is reported by -version and used in the default User-Agent.
const Version = "0.0.1"

type Config struct {
	// Text is parsed when set; otherwise all of stdin is read.
	Text string

	Timeout      time.Duration
	Workers      int
	UserAgent    string
	MaxBodyBytes int64
	Verbose      bool
}

// Run reads a chat message, finds its mentions, emoticons and links, and
// writes them to stdout as one JSON object. Logs go to stderr.
func Run(ctx context.Context, cfg Config, stdin io.Reader, stdout, stderr io.Writer) error {
	if cfg.Timeout <= 0 {
		cfg.Timeout = title.DefaultTimeout
	}
	if cfg.Workers <= 0 {
		cfg.Workers = usecase.DefaultWorkers
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "chat-parser/" + Version
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = title.DefaultMaxBodyRead
	}

	log := newLogger(stderr, cfg.Verbose)

	text := cfg.Text
	if text == "" && stdin != nil {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return errors.Wrap(err, "read input")
		}
		text = string(b)
	}

	h := newHandler(cfg, log)
	msg, err := h.Parse(ctx, text)
	if err != nil {
		return errors.Wrap(err, "parse message")
	}
	if msg.IsEmpty() {
		log.Debug("no tokens found")
	} else {
		log.WithField("kinds", msg.Kinds()).Debug("tokens found")
	}

	enc := json.NewEncoder(stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(msg); err != nil {
		return errors.Wrap(err, "write result")
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// JoinArgs joins positional arguments into one message.
func JoinArgs(args []string) string {
	return strings.Join(args, " ")
}
